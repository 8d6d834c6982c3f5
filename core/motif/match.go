// core/motif/match.go
package motif

/* ----------------------- types --------------------- */

// Matcher is a compiled approximate pattern: fixed-length windows over
// the text, counting substitutions only, up to MaxMismatches.
type Matcher struct {
	pattern []byte
	maxMM   int
}

// Match is one qualifying occurrence. End = Start + len(pattern);
// offsets are 0-based into the searched text.
type Match struct {
	Start      int
	End        int
	Mismatches int
}

// Compile builds a Matcher for pattern with the given mismatch budget.
func Compile(pattern string, maxMismatches int) Matcher {
	return Matcher{pattern: []byte(pattern), maxMM: maxMismatches}
}

// Pattern returns the pattern string the matcher was compiled from.
func (m Matcher) Pattern() string { return string(m.pattern) }

/* ---------------------- search --------------------- */

// FindFirst returns the earliest qualifying occurrence in text.
func (m Matcher) FindFirst(text string) (Match, bool) {
	pl := len(m.pattern)
	if pl == 0 || len(text) < pl {
		return Match{}, false
	}
	end := len(text) - pl
window:
	for pos := 0; pos <= end; pos++ {
		mm := 0
		for j := 0; j < pl; j++ {
			if text[pos+j] != m.pattern[j] {
				mm++
				if mm > m.maxMM {
					continue window
				}
			}
		}
		return Match{Start: pos, End: pos + pl, Mismatches: mm}, true
	}
	return Match{}, false
}

// FindAll returns every qualifying occurrence, left to right.
// Occurrences may overlap. Returns nil when there are none.
func (m Matcher) FindAll(text string) []Match {
	pl := len(m.pattern)
	if pl == 0 || len(text) < pl {
		return nil
	}
	end := len(text) - pl
	var out []Match
window:
	for pos := 0; pos <= end; pos++ {
		mm := 0
		for j := 0; j < pl; j++ {
			if text[pos+j] != m.pattern[j] {
				mm++
				if mm > m.maxMM {
					continue window
				}
			}
		}
		out = append(out, Match{Start: pos, End: pos + pl, Mismatches: mm})
	}
	return out
}

// Split cuts text around the first qualifying occurrence, returning the
// text before the matched span and the text after it. prefix + span +
// suffix reconstruct text exactly.
func (m Matcher) Split(text string) (prefix, suffix string, ok bool) {
	hit, found := m.FindFirst(text)
	if !found {
		return "", "", false
	}
	return text[:hit.Start], text[hit.End:], true
}
