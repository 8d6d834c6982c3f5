// internal/writers/record.go
package writers

import (
	"fmt"
	"io"

	"vjex-core/extract"
)

// StartRecordWriter spins up a writer goroutine that renders extracted
// segments as two-line FASTA records:
//
//	>N        or  >N-TAG
//	SEQUENCE
//
// The goroutine owns the record counter: identifiers are 1-based,
// strictly increasing in arrival order, and span every read and input
// file of a run. Close the returned channel, then receive the error.
func StartRecordWriter(out io.Writer, bufSize int) (chan<- extract.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan extract.Record, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		id := 1
		for r := range in {
			if err != nil {
				continue // drain after first failure
			}
			if r.Tag != "" {
				_, err = fmt.Fprintf(out, ">%d-%s\n%s\n", id, r.Tag, r.Seq)
			} else {
				_, err = fmt.Fprintf(out, ">%d\n%s\n", id, r.Seq)
			}
			id++
		}
		errCh <- err
	}()

	return in, errCh
}
