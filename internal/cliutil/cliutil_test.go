package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	var s string
	fs.BoolVar(&b, "bool", false, "")
	fs.StringVar(&s, "str", "", "")

	flagArgs, posArgs := SplitFlagsAndPositionals(fs,
		[]string{"a.fq.gz", "--bool", "--str", "SIV", "b.fq.gz", "--", "-weird"})
	if len(flagArgs) != 3 {
		t.Fatalf("flagArgs=%v", flagArgs)
	}
	want := []string{"a.fq.gz", "b.fq.gz", "-weird"}
	if len(posArgs) != len(want) {
		t.Fatalf("posArgs=%v", posArgs)
	}
	for i := range want {
		if posArgs[i] != want[i] {
			t.Fatalf("posArgs=%v, want %v", posArgs, want)
		}
	}
}

func TestSplitKeepsStdinDash(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	_, posArgs := SplitFlagsAndPositionals(fs, []string{"-"})
	if len(posArgs) != 1 || posArgs[0] != "-" {
		t.Fatalf("posArgs=%v", posArgs)
	}
}

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fastq.gz")
	b := filepath.Join(dir, "b.fastq.gz")
	_ = os.WriteFile(a, []byte("x"), 0o644)
	_ = os.WriteFile(b, []byte("x"), 0o644)

	got, err := ExpandInputs([]string{filepath.Join(dir, "*.fastq.gz"), "-"})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if len(got) != 3 || got[0] != a || got[1] != b || got[2] != "-" {
		t.Fatalf("got=%v", got)
	}
}

func TestExpandInputsEmptyGlob(t *testing.T) {
	if _, err := ExpandInputs([]string{filepath.Join(t.TempDir(), "*.fastq.gz")}); err == nil {
		t.Fatalf("expected error for glob with no matches")
	}
}

func TestExpandInputsLiteralPathKept(t *testing.T) {
	got, err := ExpandInputs([]string{"does-not-exist.fastq.gz"})
	if err != nil || len(got) != 1 {
		t.Fatalf("got=%v err=%v", got, err)
	}
}
