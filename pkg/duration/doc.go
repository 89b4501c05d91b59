// Package duration represents a span of elapsed time decomposed into unit
// fields (years, days, hours, minutes, seconds, milliseconds) and provides
// two operations on that representation: carrying overflow between units
// (Normalize) and rendering it as human-readable text (Format).
//
// # Optional Fields
//
// Every field of Duration is optional. An absent field (nil) means the unit
// is not tracked; a present-and-zero field means the unit is tracked and
// currently zero. The two are never interchangeable: absent fields are
// excluded from normalization carry targets and from formatted output,
// while present zeros participate in both.
//
// # Normalization
//
// Normalize redistributes magnitude upward so every unit below the largest
// present one holds the minimal value consistent with the original total:
// 1500 milliseconds become 1 second and 500 milliseconds when a seconds
// field is present to receive the carry. Carry propagates through absent
// units and folds back down into the nearest present field, so the largest
// present unit absorbs unbounded overflow. Unit conversions are fixed
// (1 year = 365 days); there is no calendar awareness.
//
// # Formatting
//
// Format renders the present fields in magnitude order, pluralized, joined
// by a configurable separator. Options control zero-hiding, entry limits,
// unit-name overrides, and spacing; see FormatOptions. Reusable option
// sets can be loaded from YAML with ParsePreset and LoadPreset.
//
// # Purity
//
// Both operations are pure: they return new values and never mutate their
// receiver. Distinct Duration values may be normalized and formatted
// concurrently without synchronization.
//
// # Errors
//
// All failures are reported as *Error values carrying a Kind, matchable by
// category with errors.As or by leaf sentinel (ErrNonIntegerValue,
// ErrEmptyDuration, ErrInvalidOption) with errors.Is. Errors are fatal to
// the call; no partial results are produced.
package duration
