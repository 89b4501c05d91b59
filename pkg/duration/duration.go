package duration

import (
	"math"
	"time"
)

// Unit conversion factors (fixed, no calendar awareness).
const (
	// MillisecondsPerSecond is the number of milliseconds in a second.
	MillisecondsPerSecond = 1000

	// SecondsPerMinute is the number of seconds in a minute.
	SecondsPerMinute = 60

	// MinutesPerHour is the number of minutes in an hour.
	MinutesPerHour = 60

	// HoursPerDay is the number of hours in a day.
	HoursPerDay = 24

	// DaysPerYear is the number of days in a year (no leap-year adjustment).
	DaysPerYear = 365
)

// Unit identifies one of the six duration fields, in descending magnitude
// order from UnitYears to UnitMilliseconds.
type Unit uint8

const (
	// UnitYears is the years field.
	UnitYears Unit = iota

	// UnitDays is the days field.
	UnitDays

	// UnitHours is the hours field.
	UnitHours

	// UnitMinutes is the minutes field.
	UnitMinutes

	// UnitSeconds is the seconds field.
	UnitSeconds

	// UnitMilliseconds is the milliseconds field.
	UnitMilliseconds

	unitCount = 6
)

// String returns the unit's field name.
func (u Unit) String() string {
	switch u {
	case UnitYears:
		return "years"
	case UnitDays:
		return "days"
	case UnitHours:
		return "hours"
	case UnitMinutes:
		return "minutes"
	case UnitSeconds:
		return "seconds"
	case UnitMilliseconds:
		return "milliseconds"
	default:
		return "unknown"
	}
}

// factorBelow[u] is how many of the next-smaller unit make up one unit u.
// Indexed by Unit; milliseconds has no smaller unit.
var factorBelow = [unitCount - 1]int64{
	UnitYears:   DaysPerYear,
	UnitDays:    HoursPerDay,
	UnitHours:   MinutesPerHour,
	UnitMinutes: SecondsPerMinute,
	UnitSeconds: MillisecondsPerSecond,
}

// Duration decomposes elapsed time into up to six magnitude-ordered unit
// fields. A nil field is absent (not tracked); a pointer to zero is present
// and zero. The distinction drives both normalization carry targets and
// formatted output, see the package documentation.
//
// Fields hold float64 so that fractional values, which can arrive through
// decoding or direct construction, are detected and rejected by Normalize
// and Format rather than silently truncated. Valid values are whole and
// non-negative.
type Duration struct {
	Years        *float64 `cbor:"years,omitempty"`
	Days         *float64 `cbor:"days,omitempty"`
	Hours        *float64 `cbor:"hours,omitempty"`
	Minutes      *float64 `cbor:"minutes,omitempty"`
	Seconds      *float64 `cbor:"seconds,omitempty"`
	Milliseconds *float64 `cbor:"milliseconds,omitempty"`
}

// Ptr returns a pointer to v, for constructing Duration literals.
func Ptr(v float64) *float64 {
	return &v
}

// FromMilliseconds returns a Duration with all six fields present and the
// whole total in the milliseconds field, ready to be normalized.
func FromMilliseconds(ms int64) Duration {
	return Duration{
		Years:        Ptr(0),
		Days:         Ptr(0),
		Hours:        Ptr(0),
		Minutes:      Ptr(0),
		Seconds:      Ptr(0),
		Milliseconds: Ptr(float64(ms)),
	}
}

// FromDuration converts a standard library duration, truncating
// sub-millisecond precision. All six fields are present.
func FromDuration(d time.Duration) Duration {
	return FromMilliseconds(d.Milliseconds())
}

// IsZero reports whether no field is present.
func (d Duration) IsZero() bool {
	for _, f := range d.fields() {
		if f != nil {
			return false
		}
	}
	return true
}

// TotalMilliseconds recombines the present fields into a total number of
// milliseconds, treating absent fields as zero. It returns a
// NonIntegerValue error if any present field is not a whole number.
func (d Duration) TotalMilliseconds() (int64, error) {
	v, _, err := d.values("total")
	if err != nil {
		return 0, err
	}

	var total int64
	for u := UnitYears; u <= UnitMilliseconds; u++ {
		total += v[u]
		if u < UnitMilliseconds {
			total *= factorBelow[u]
		}
	}
	return total, nil
}

// fields returns the field pointers in descending magnitude order,
// indexed by Unit.
func (d Duration) fields() [unitCount]*float64 {
	return [unitCount]*float64{
		UnitYears:        d.Years,
		UnitDays:         d.Days,
		UnitHours:        d.Hours,
		UnitMinutes:      d.Minutes,
		UnitSeconds:      d.Seconds,
		UnitMilliseconds: d.Milliseconds,
	}
}

// setField stores v into the field for unit u.
func (d *Duration) setField(u Unit, v float64) {
	switch u {
	case UnitYears:
		d.Years = &v
	case UnitDays:
		d.Days = &v
	case UnitHours:
		d.Hours = &v
	case UnitMinutes:
		d.Minutes = &v
	case UnitSeconds:
		d.Seconds = &v
	case UnitMilliseconds:
		d.Milliseconds = &v
	}
}

// values validates every present field and returns the whole-number values
// (absent treated as zero) alongside a presence mask. op tags any
// validation error with the calling operation.
func (d Duration) values(op string) (v [unitCount]int64, present [unitCount]bool, err error) {
	for u, f := range d.fields() {
		if f == nil {
			continue
		}
		if *f != math.Trunc(*f) || math.IsNaN(*f) || math.IsInf(*f, 0) {
			return v, present, &Error{
				Kind:  KindNonIntegerValue,
				Op:    op,
				Unit:  Unit(u),
				Value: *f,
			}
		}
		v[u] = int64(*f)
		present[u] = true
	}
	return v, present, nil
}
