package duration

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder mode for Duration values.
// Configured for deterministic encoding with absent fields omitted.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for Duration values.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical, // Deterministic key ordering
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		// Absent fields must disappear from the wire entirely; a
		// present zero is a non-nil pointer and stays.
		OmitEmpty: cbor.OmitEmptyGoValue,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Lenient decoding for forward compatibility
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet, // Ignore duplicate keys (last wins)
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Marshal encodes a Duration to CBOR bytes. Absent fields are omitted from
// the encoded map, so the absent-vs-zero distinction survives a round
// trip. The value is validated first; fractional fields are rejected.
func Marshal(d Duration) ([]byte, error) {
	if _, _, err := d.values("encode"); err != nil {
		return nil, err
	}
	return encMode.Marshal(d)
}

// Unmarshal decodes CBOR bytes into a Duration. Unknown map keys are
// ignored. Decoded values are not validated; a fractional field surfaces
// as a NonIntegerValue error from the next Normalize or Format call.
func Unmarshal(data []byte) (Duration, error) {
	var d Duration
	if err := decMode.Unmarshal(data, &d); err != nil {
		return Duration{}, fmt.Errorf("failed to decode duration: %w", err)
	}
	return d, nil
}

// NewEncoder creates a CBOR encoder that writes to w, using the same mode
// as Marshal.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder creates a CBOR decoder that reads from r, using the same mode
// as Unmarshal.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return decMode.NewDecoder(r)
}
