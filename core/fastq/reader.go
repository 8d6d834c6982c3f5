// core/fastq/reader.go
package fastq

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// StreamSeqsCtx scans 4-line FASTQ records from r and emits the
// sequence line (0-based line index 1 of each group) with trailing
// whitespace stripped. Header and quality lines are never surfaced.
//
// Framing is enforced: header lines must start with '@', separator
// lines with '+', and the input must end on a record boundary. A
// framing violation is fatal for the source, since recovery mid-record
// would desynchronize every following group.
//
// It is cancelable: returning promptly when ctx is Done.
func StreamSeqsCtx(ctx context.Context, r io.Reader, emit func(seq string) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long reads (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	lineno := 0
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Text()
		switch lineno % 4 {
		case 0:
			if len(line) == 0 || line[0] != '@' {
				return fmt.Errorf("fastq: line %d: malformed header %q", lineno+1, clip(line))
			}
		case 1:
			if err := emit(strings.TrimRight(line, " \t\r")); err != nil {
				return err
			}
		case 2:
			if len(line) == 0 || line[0] != '+' {
				return fmt.Errorf("fastq: line %d: malformed separator %q", lineno+1, clip(line))
			}
		}
		lineno++
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fastq scan: %w", err)
	}
	if lineno%4 != 0 {
		return fmt.Errorf("fastq: truncated record at line %d", lineno)
	}
	return nil
}

// StreamSeqsPathCtx opens path (plain, gzip, or "-" for stdin) and
// streams its sequence lines through emit.
func StreamSeqsPathCtx(ctx context.Context, path string, emit func(seq string) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	if err := StreamSeqsCtx(ctx, rc, emit); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func clip(s string) string {
	if len(s) > 20 {
		return s[:20] + "..."
	}
	return s
}
