package rust

import (
	"errors"
	"fmt"
)

// Closed error set for a generation run. Every error aborts the run and
// propagates to the caller; there is no local recovery. Padding mismatches
// are not errors: they are emitted as WARNING comments and generation
// proceeds (see structs.go).
var (
	ErrZeroSizedField = errors.New("property reports a zero-sized footprint")
	ErrLastBitfield   = errors.New("bitfield continuation without an open bitfield bag")
	ErrMaxPackages    = errors.New("too many packages")
	ErrMaxBitfields   = errors.New("too many bitfield bags in one struct")
	ErrBitfieldFull   = errors.New("too many properties in one bitfield bag")
	ErrMaxParameters  = errors.New("too many function parameters")
)

// BadBitfieldSizeError reports a bitfield storage size that is not 1, 2, 4,
// or 8 bytes.
type BadBitfieldSizeError struct {
	Size uint8
}

func (e *BadBitfieldSizeError) Error() string {
	return fmt.Sprintf("bad bitfield size: %d bytes", e.Size)
}
