package extract

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput    = errors.New("extract: empty pdf input")
	ErrUnknownEngine = errors.New("extract: unknown engine")
	ErrMissingPage   = errors.New("page object missing")
	ErrDecoderPanic  = errors.New("pdf decoder panic")
)

// DecodeError reports bytes the engine could not open as a PDF.
type DecodeError struct {
	Engine string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode pdf (%s): %v", e.Engine, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// PageAccessError reports a page that failed to yield its text content.
// Extraction of the remaining pages is abandoned.
type PageAccessError struct {
	Page int
	Err  error
}

func (e *PageAccessError) Error() string {
	return fmt.Sprintf("read page %d: %v", e.Page, e.Err)
}

func (e *PageAccessError) Unwrap() error { return e.Err }

// recoverAs turns a decoder panic into an error. Both decoders panic on
// malformed content streams instead of returning errors.
func recoverAs(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrDecoderPanic, r)
	}
}
