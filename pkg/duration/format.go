package duration

import (
	"strconv"
	"strings"
)

// DefaultSeparator joins formatted entries when no separator override is
// given.
const DefaultSeparator = ", "

// ZeroMode selects how zero-valued entries are treated by Format.
type ZeroMode uint8

const (
	// ZeroShow renders zero entries like any other (default).
	ZeroShow ZeroMode = iota

	// ZeroHide omits every zero entry, unless all present entries are
	// zero, in which case the smallest present unit is shown as zero.
	ZeroHide

	// ZeroHideLeading omits only a leading run of zero entries,
	// stopping at the first non-zero; later zeros are kept.
	ZeroHideLeading
)

// UnitName overrides the word used for one unit. An empty string keeps the
// English default.
type UnitName struct {
	Singular string `yaml:"singular"`
	Plural   string `yaml:"plural"`
}

// UnitNames carries per-unit name overrides for all six units.
type UnitNames struct {
	Years        UnitName `yaml:"years"`
	Days         UnitName `yaml:"days"`
	Hours        UnitName `yaml:"hours"`
	Minutes      UnitName `yaml:"minutes"`
	Seconds      UnitName `yaml:"seconds"`
	Milliseconds UnitName `yaml:"milliseconds"`
}

// name returns the override for unit u.
func (n UnitNames) name(u Unit) UnitName {
	switch u {
	case UnitYears:
		return n.Years
	case UnitDays:
		return n.Days
	case UnitHours:
		return n.Hours
	case UnitMinutes:
		return n.Minutes
	case UnitSeconds:
		return n.Seconds
	case UnitMilliseconds:
		return n.Milliseconds
	}
	return UnitName{}
}

// defaultNames are the English unit words.
var defaultNames = [unitCount]UnitName{
	UnitYears:        {Singular: "year", Plural: "years"},
	UnitDays:         {Singular: "day", Plural: "days"},
	UnitHours:        {Singular: "hour", Plural: "hours"},
	UnitMinutes:      {Singular: "minute", Plural: "minutes"},
	UnitSeconds:      {Singular: "second", Plural: "seconds"},
	UnitMilliseconds: {Singular: "millisecond", Plural: "milliseconds"},
}

// FormatOptions configures Format. The zero value applies all defaults.
type FormatOptions struct {
	// HideZero controls zero-entry suppression.
	HideZero ZeroMode `yaml:"hideZero"`

	// MaxEntries caps the number of rendered entries, keeping the
	// largest-magnitude ones. Nil means unlimited; a value below 1 is
	// rejected with an InvalidOption error.
	MaxEntries *int `yaml:"maxEntries"`

	// NoSpaceBeforeUnit omits the space between value and unit name.
	NoSpaceBeforeUnit bool `yaml:"noSpaceBeforeUnit"`

	// Separator joins successive entries. Nil means DefaultSeparator;
	// an explicit empty string is honored.
	Separator *string `yaml:"separator"`

	// Names overrides the per-unit words.
	Names UnitNames `yaml:"names"`
}

// validate checks option values that Format rejects.
func (o *FormatOptions) validate(op string) error {
	if o.MaxEntries != nil && *o.MaxEntries < 1 {
		return &Error{
			Kind:   KindInvalidOption,
			Op:     op,
			Reason: "maxEntries must be a positive integer, got " + strconv.Itoa(*o.MaxEntries),
		}
	}
	return nil
}

// entry is one resolved field ready for rendering.
type entry struct {
	value int64
	name  string
}

// Format renders the present fields as human-readable text, largest unit
// first, each entry as "<value> <unit-name>" with the name pluralized
// unless the value is exactly 1. Entries are joined with the configured
// separator. A nil opts applies all defaults. The receiver is not
// modified, and prior normalization is not required.
//
// It returns a NonIntegerValue error for fractional field values, an
// InvalidOption error for a non-positive MaxEntries, and an EmptyDuration
// error when no field is present.
func (d Duration) Format(opts *FormatOptions) (string, error) {
	const op = "format"

	if opts == nil {
		opts = &FormatOptions{}
	}

	v, present, err := d.values(op)
	if err != nil {
		return "", err
	}
	if err := opts.validate(op); err != nil {
		return "", err
	}

	resolve := func(u Unit) entry {
		n := defaultNames[u]
		o := opts.Names.name(u)
		if o.Singular != "" {
			n.Singular = o.Singular
		}
		if o.Plural != "" {
			n.Plural = o.Plural
		}
		name := n.Plural
		if v[u] == 1 {
			name = n.Singular
		}
		return entry{value: v[u], name: name}
	}

	var entries []entry
	smallest := UnitYears
	any := false
	for u := UnitYears; u <= UnitMilliseconds; u++ {
		if !present[u] {
			continue
		}
		entries = append(entries, resolve(u))
		smallest = u
		any = true
	}
	if !any {
		return "", &Error{Kind: KindEmptyDuration, Op: op}
	}

	switch opts.HideZero {
	case ZeroHide:
		kept := entries[:0]
		for _, e := range entries {
			if e.value != 0 {
				kept = append(kept, e)
			}
		}
		entries = kept
	case ZeroHideLeading:
		for len(entries) > 0 && entries[0].value == 0 {
			entries = entries[1:]
		}
	}

	// Zero-hiding emptied the list even though fields were present:
	// show the smallest present unit as zero.
	if len(entries) == 0 {
		entries = append(entries, resolve(smallest))
	}

	if opts.MaxEntries != nil && len(entries) > *opts.MaxEntries {
		entries = entries[:*opts.MaxEntries]
	}

	sep := DefaultSeparator
	if opts.Separator != nil {
		sep = *opts.Separator
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(strconv.FormatInt(e.value, 10))
		if !opts.NoSpaceBeforeUnit {
			b.WriteByte(' ')
		}
		b.WriteString(e.name)
	}
	return b.String(), nil
}
