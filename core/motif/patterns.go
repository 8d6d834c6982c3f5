// core/motif/patterns.go
package motif

import "strings"

// Built-in signature sequences. The mismatch budgets were tuned for
// practical tolerance to sequencing errors; raising them makes matching
// more permissive but riskier.
const (
	HIV       = "CTTGTCTTCGTTGGGAGTGAATTAGCCCTTCCA"
	SIV       = "TCTATGTCTTCTTGCACTGTAATAAATCCCTTCCA"
	AdapterS2 = "AAAAAAAGATCGGAAGAGCACACGTCTGAACTCCAGTCAC"

	PolyALength = 20

	ViralMismatches   = 5
	AdapterMismatches = 6
	PolyAMismatches   = 3
)

// PolyA returns the poly-adenosine run pattern (PolyALength × 'A').
func PolyA() string { return strings.Repeat("A", PolyALength) }

// Default matchers.
func HIVMatcher() Matcher     { return Compile(HIV, ViralMismatches) }
func SIVMatcher() Matcher     { return Compile(SIV, ViralMismatches) }
func AdapterMatcher() Matcher { return Compile(AdapterS2, AdapterMismatches) }
func PolyAMatcher() Matcher   { return Compile(PolyA(), PolyAMismatches) }
