// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"vjex/internal/cliutil"
	"vjex/internal/version"

	"vjex-core/extract"
)

// Options holds all CLI flags and arguments.
type Options struct {
	Inputs []string // FASTQ file(s), post glob expansion; '-' = stdin

	Virus string // viral motif variant: HIV | SIV
	Tag   string // 6-nt barcode gate; empty disables

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: extract viral-junction segments from gzipped FASTQ

Scans each read (and its reverse complement) for an adapter anchor,
then emits the segment between the last upstream viral-motif
occurrence and the following poly-A run as numbered FASTA records.

Version: %s

Usage: %s [options] <reads.fastq.gz>...  (globs ok, '-' = stdin)
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags; positionals are the input
// files (still unexpanded — see cliutil.ExpandPositionals).
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Virus, "virus", extract.VirusHIV, "viral motif variant: HIV | SIV [HIV]")
	fs.StringVar(&opt.Tag, "tag", "", "6-nt barcode required after the anchor; emitted in headers [off]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress the stderr run summary [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	// Flags may appear before or after the positional inputs.
	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Inputs = posArgs

	// Validation
	if opt.Virus != extract.VirusHIV && opt.Virus != extract.VirusSIV {
		return opt, fmt.Errorf("invalid --virus %q (want HIV or SIV)", opt.Virus)
	}
	if opt.Tag != "" {
		if len(opt.Tag) != extract.TagLength {
			return opt, fmt.Errorf("--tag must be exactly %d symbols", extract.TagLength)
		}
		for i := 0; i < len(opt.Tag); i++ {
			switch opt.Tag[i] {
			case 'A', 'C', 'G', 'T':
			default:
				return opt, fmt.Errorf("--tag %q: invalid symbol %q", opt.Tag, opt.Tag[i])
			}
		}
	}
	if len(opt.Inputs) == 0 {
		return opt, errors.New("at least one input FASTQ file is required")
	}
	return opt, nil
}
