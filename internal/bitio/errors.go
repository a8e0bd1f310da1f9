package bitio

// Error is a string-constant error type, mirroring the convention used by
// the root kompressor package's own Error type.
type Error string

func (e Error) Error() string { return "bitio: " + string(e) }

const (
	// ErrOutOfSpace is panicked by Writer when the backing buffer has no
	// room left for another output byte.
	ErrOutOfSpace = Error("out of space")
	// ErrExceededBuffer is panicked by Reader when a bit is requested past
	// the declared end of the backing buffer.
	ErrExceededBuffer = Error("exceeded buffer")
)
