package duration

// Normalize redistributes magnitude so that every unit smaller than the
// largest present one holds the minimal non-negative value consistent with
// the original total, carrying the remainder upward. Carry propagates
// through absent units into the next present one, so the largest present
// field absorbs all remaining overflow unbounded; no field that was absent
// becomes present and no field that was present becomes absent.
//
// Normalize is pure: it returns a new Duration and never mutates the
// receiver. Normalizing an already-normalized value is a no-op, as is
// normalizing a Duration with no present fields.
//
// It returns a NonIntegerValue error if any present field is not a whole
// number; normalization is one-directional and never re-expands larger
// units into smaller ones.
func (d Duration) Normalize() (Duration, error) {
	v, present, err := d.values("normalize")
	if err != nil {
		return Duration{}, err
	}

	if d.IsZero() {
		return d, nil
	}

	// Carry upward, smallest unit to largest. Absent fields contribute
	// zero, so only present values move.
	for u := UnitMilliseconds; u > UnitYears; u-- {
		f := factorBelow[u-1]
		v[u-1] += v[u] / f
		v[u] %= f
	}

	// Fold each absent unit's share back into the next-smaller unit,
	// top-down, so every remainder lands on a present field. Whatever
	// reaches an absent bottom unit is necessarily zero.
	for u := UnitYears; u < UnitMilliseconds; u++ {
		if !present[u] {
			v[u+1] += v[u] * factorBelow[u]
			v[u] = 0
		}
	}

	var out Duration
	for u := UnitYears; u <= UnitMilliseconds; u++ {
		if present[u] {
			out.setField(u, float64(v[u]))
		}
	}
	return out, nil
}
