package kompressor

import (
	"github.com/markomilutin/kompressor/internal/arcoder"
	"github.com/markomilutin/kompressor/internal/bitio"
)

// Error is a string-constant error type, following the convention of
// naming every failure kind up front as an exported sentinel rather than
// wrapping ad hoc fmt.Errorf values.
type Error string

func (e Error) Error() string { return "kompressor: " + string(e) }

// Sentinel errors, one per failure kind named in the design.
const (
	ErrInvalidWordSize    = Error("invalid word size")
	ErrInvalidSectionSize = Error("invalid section size")
	ErrOutOfSpace         = Error("output buffer out of space")
	ErrExceededBuffer     = Error("bit stream exceeded buffer")
	ErrSymbolOutOfRange   = Error("symbol out of range")
	ErrInvalidFirstSymbol = Error("invalid first symbol")
	ErrNotEnoughSpace     = Error("not enough scratch space")
	ErrNotEnoughData      = Error("not enough data")
	ErrInvalidSymbol      = Error("invalid symbol")
	ErrCorruptStream      = Error("corrupt stream")
	ErrSectionTooLarge    = Error("section too large")
	ErrOutputOverflow     = Error("output capacity overflow")
)

// errRecover converts a panic carrying one of this package's Error values
// (or an internal/bitio or internal/arcoder sentinel, which is matched by
// value and mapped to the corresponding root sentinel; any other error
// value is returned as is) back into a
// clean returned error. It is installed with defer at every exported entry
// point so internal stages can panic freely without leaking across the
// public API.
func errRecover(err *error) {
	if r := recover(); r != nil {
		switch r {
		case bitio.ErrOutOfSpace:
			*err = ErrOutOfSpace
			return
		case bitio.ErrExceededBuffer:
			*err = ErrExceededBuffer
			return
		case arcoder.ErrInvalidWordSize:
			*err = ErrInvalidWordSize
			return
		case arcoder.ErrCorruptStream:
			*err = ErrCorruptStream
			return
		}
		if e, ok := r.(error); ok {
			*err = e
			return
		}
		panic(r)
	}
}
