package names

import (
	"errors"
	"testing"

	"github.com/BBN-D/poi/pkg/names/ref"
)

func TestSetRefersToCanonicalizes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Sheet1!$B$3", "Sheet1!$B$3"},
		{"sheet1!b3", "sheet1!B3"},
		{"Sheet1!A1:C10", "Sheet1!A1:C10"},
		// Reversed bounds come back normalized.
		{"Sheet1!C10:A1", "Sheet1!A1:C10"},
		{"'My Sheet'!A1", "'My Sheet'!A1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			reg := NewRegistry()
			n := reg.CreateName()
			n.SetRefersTo(tt.input)
			if got := n.RefersTo(); got != tt.want {
				t.Errorf("RefersTo() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetRefersToFallback(t *testing.T) {
	reg := NewRegistry()
	var warned []string
	var lastErr error
	reg.Warn = func(refText string, err error) {
		warned = append(warned, refText)
		lastErr = err
	}
	n := reg.CreateName()

	const raw = "not a reference at all"
	n.SetRefersTo(raw)

	// The original text survives byte-identical.
	if got := n.RefersTo(); got != raw {
		t.Errorf("RefersTo() = %q, want raw %q", got, raw)
	}
	if len(warned) != 1 || warned[0] != raw {
		t.Fatalf("warn hook calls = %v, want exactly one with %q", warned, raw)
	}
	if !errors.Is(lastErr, ref.ErrMalformedReference) {
		t.Errorf("warn error %v does not wrap ref.ErrMalformedReference", lastErr)
	}

	// A parseable reference afterwards produces no further warning.
	n.SetRefersTo("Sheet1!A1")
	if len(warned) != 1 {
		t.Errorf("warn hook called %d times, want 1", len(warned))
	}
}

func TestSetRefersToUnionPassThrough(t *testing.T) {
	reg := NewRegistry()
	reg.Warn = func(refText string, err error) {
		t.Errorf("warn hook called for union reference %q: %v", refText, err)
	}
	n := reg.CreateName()

	// Union references skip structured parsing entirely and are stored
	// verbatim, warn-free.
	const union = "Sheet1!$A$1:$C$3,Sheet1!$E$5"
	n.SetRefersTo(union)
	if got := n.RefersTo(); got != union {
		t.Errorf("RefersTo() = %q, want verbatim %q", got, union)
	}
}

func TestSetRefersToNilWarnHook(t *testing.T) {
	reg := NewRegistry()
	n := reg.CreateName()

	// The fallback must succeed with no diagnostics collaborator installed.
	n.SetRefersTo("garbage!!!")
	if got := n.RefersTo(); got != "garbage!!!" {
		t.Errorf("RefersTo() = %q, want raw text", got)
	}
}

func TestIsDeleted(t *testing.T) {
	reg := NewRegistry()
	n := reg.CreateName()

	n.SetRefersTo("Sheet1!#REF!")
	if !n.IsDeleted() {
		t.Error("IsDeleted() = false for Sheet1!#REF!")
	}

	// The marker in only one axis of a range still counts.
	n.SetRefersTo("Sheet1!A1:#REF!")
	if !n.IsDeleted() {
		t.Error("IsDeleted() = false for Sheet1!A1:#REF!")
	}

	n.SetRefersTo("Sheet1!A1")
	if n.IsDeleted() {
		t.Error("IsDeleted() = true for Sheet1!A1")
	}
}

func TestCommentAndFunctionMetadata(t *testing.T) {
	reg := NewRegistry()
	n := reg.CreateName()

	n.SetComment("scoped to Sheet1")
	if n.Comment() != "scoped to Sheet1" {
		t.Errorf("Comment() = %q", n.Comment())
	}

	if n.Function() || n.IsFunctionName() {
		t.Error("new name should not be a function name")
	}
	n.SetFunction(true)
	n.SetFunctionGroupID(4)
	if !n.IsFunctionName() {
		t.Error("IsFunctionName() = false after SetFunction(true)")
	}
	if n.FunctionGroupID() != 4 {
		t.Errorf("FunctionGroupID() = %d, want 4", n.FunctionGroupID())
	}
}

func TestEqualAndHash(t *testing.T) {
	build := func(reg *Registry) *DefinedName {
		n := reg.CreateName()
		if err := n.SetName("Sales"); err != nil {
			t.Fatal(err)
		}
		n.SetRefersTo("Sheet1!C20:C30")
		n.SetComment("quarterly")
		n.SetLocalSheetID(0)
		return n
	}

	a := build(NewRegistry())
	b := build(NewRegistry())

	if !a.Equal(b) {
		t.Error("names with identical records should be equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal names must have equal hashes")
	}
	if !a.Equal(a) {
		t.Error("a name must equal itself")
	}
	if a.Equal(nil) {
		t.Error("a name must not equal nil")
	}

	// Any serialized field difference breaks equality.
	b.SetComment("annual")
	if a.Equal(b) {
		t.Error("names differing in comment should not be equal")
	}
}
