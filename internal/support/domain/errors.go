package domain

import "fmt"

// GenerationError wraps any failure from the live generation call: network,
// timeout, bad status, malformed response. It never leaves the composer; the
// caller of GetResponse only ever sees a well-formed ResponseResult.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation %s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
