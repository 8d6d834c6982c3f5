package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the reader of our record
// stream went away (EPIPE or a closed pipe), as when output is piped
// into a pager that exits early. Such runs count as success, not as
// write failures.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
