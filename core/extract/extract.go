// core/extract/extract.go
package extract

import (
	"fmt"

	"vjex-core/motif"
)

// Virus selects which viral signature motif is searched for upstream of
// the adapter anchor.
const (
	VirusHIV = "HIV"
	VirusSIV = "SIV"
)

// TagLength is the number of symbols compared (exactly, not fuzzily)
// against the text immediately downstream of the adapter anchor when
// tag gating is enabled.
const TagLength = 6

// Config selects the viral motif variant and, optionally, a tag that
// gates emission.
type Config struct {
	Virus string // VirusHIV or VirusSIV
	Tag   string // TagLength symbols; empty disables gating
}

// Record is one extracted segment, ready for the record writer. Tag is
// empty unless tag gating was enabled.
type Record struct {
	Seq string
	Tag string
}

// Extractor walks a read, splitting on approximate adapter-anchor
// occurrences, and emits the segment between the last viral-motif
// occurrence and the following poly-A run of each anchor-bounded
// prefix. It holds no per-read state; a single Extractor serves an
// entire run.
type Extractor struct {
	anchor motif.Matcher
	viral  motif.Matcher
	polyA  motif.Matcher
	tag    string
}

// New validates cfg and builds an Extractor.
func New(cfg Config) (*Extractor, error) {
	var viral motif.Matcher
	switch cfg.Virus {
	case VirusHIV:
		viral = motif.HIVMatcher()
	case VirusSIV:
		viral = motif.SIVMatcher()
	default:
		return nil, fmt.Errorf("unknown virus %q (want %s or %s)", cfg.Virus, VirusHIV, VirusSIV)
	}
	if cfg.Tag != "" && len(cfg.Tag) != TagLength {
		return nil, fmt.Errorf("tag %q must be exactly %d symbols", cfg.Tag, TagLength)
	}
	return &Extractor{
		anchor: motif.AdapterMatcher(),
		viral:  viral,
		polyA:  motif.PolyAMatcher(),
		tag:    cfg.Tag,
	}, nil
}

// anchored is one anchor-bounded sub-problem: the text before the
// anchor and the text after it (the latter is where the tag sits).
type anchored struct {
	prefix string
	after  string
}

// Scan processes one read. Emission order matches the depth-first
// suffix-before-prefix recursion of the underlying algorithm: the
// segment belonging to the most downstream anchor is emitted first.
// Realized as a split loop plus reverse-order evaluation so that reads
// with many anchor occurrences cost O(anchors) heap instead of call
// stack. Every "not found" condition ends that sub-problem silently;
// Scan only fails when emit does.
func (x *Extractor) Scan(text string, emit func(Record) error) error {
	var parts []anchored
	rest := text
	for {
		prefix, suffix, ok := x.anchor.Split(rest)
		if !ok {
			break
		}
		parts = append(parts, anchored{prefix: prefix, after: suffix})
		rest = suffix
	}
	for i := len(parts) - 1; i >= 0; i-- {
		seg, ok := x.segment(parts[i].prefix)
		if !ok {
			continue
		}
		tag := ""
		if x.tag != "" {
			after := parts[i].after
			if len(after) < TagLength || after[:TagLength] != x.tag {
				continue
			}
			tag = x.tag
		}
		if err := emit(Record{Seq: seg, Tag: tag}); err != nil {
			return err
		}
	}
	return nil
}

// segment inspects one anchor-bounded prefix: the viral occurrence
// closest to the anchor (the last one) marks the start, the earliest
// poly-A run from there marks the end. Zero-length segments are
// rejected.
func (x *Extractor) segment(prefix string) (string, bool) {
	occs := x.viral.FindAll(prefix)
	if occs == nil {
		return "", false
	}
	virEnd := occs[len(occs)-1].End
	a, ok := x.polyA.FindFirst(prefix[virEnd:])
	if !ok {
		return "", false
	}
	aStart := virEnd + a.Start
	// The earliest qualifying window may spend its mismatch budget on
	// segment bases leading into the run; the boundary is the first
	// adenosine, not the window start.
	limit := aStart + motif.PolyAMismatches
	for aStart < limit && aStart < len(prefix) && prefix[aStart] != 'A' {
		aStart++
	}
	if aStart <= virEnd {
		return "", false
	}
	return prefix[virEnd:aStart], true
}
