// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"vjex-core/extract"
	"vjex-core/fastq"
	"vjex-core/seqtx"
	"vjex/internal/cli"
	"vjex/internal/cliutil"
	"vjex/internal/version"
	"vjex/internal/writers"
)

// RunContext wires CLI options into a run: expand inputs, stream each
// file's reads, scan forward and reverse-complement orientations, and
// hand segments to the record writer. Returns a process exit code:
// 0 ok, 2 usage error, 3 runtime/write error, 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("vjex")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "vjex version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	files, err := cliutil.ExpandInputs(opts.Inputs)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	xtr, err := extract.New(extract.Config{Virus: opts.Virus, Tag: opts.Tag})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	recCh, writeErr := writers.StartRecordWriter(outw, 64)

	var reads, written int64
	send := func(r extract.Record) error {
		select {
		case recCh <- r:
			written++
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	var runErr error
	for _, path := range files {
		runErr = fastq.StreamSeqsPathCtx(ctx, path, func(seq string) error {
			reads++
			// forward orientation first, then the reverse complement
			if err := xtr.Scan(seq, send); err != nil {
				return err
			}
			return xtr.Scan(seqtx.ReverseComplement(seq), send)
		})
		if runErr != nil {
			break
		}
	}
	close(recCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, runErr)
		return 3
	}

	if !opts.Quiet {
		_, _ = fmt.Fprintf(stderr, "vjex: scanned %s reads from %d file(s); wrote %s records\n",
			humanize.Comma(reads), len(files), humanize.Comma(written))
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
