package timer

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("timer index out of range")

// IndexError reports an operation addressed to a position the store does
// not hold.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s timer %d: %v (len %d)", e.Op, e.Index, ErrIndexOutOfRange, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
