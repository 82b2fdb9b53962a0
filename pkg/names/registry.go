// Package names manages the defined names of a spreadsheet workbook:
// creation, naming rules, workbook-wide uniqueness, scoping, and tolerant
// canonicalization of the area references the names point to.
//
// A Registry is not safe for concurrent mutation: the uniqueness check and
// the subsequent commit are not atomic, so concurrent renames can race to
// produce duplicates. Callers targeting concurrent use must serialize all
// mutation externally.
package names

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// deletedMarker is the error text a reference carries once its target
// cells have been removed.
const deletedMarker = "#REF!"

// SheetResolver maps a 0-based sheet index to a sheet name. The workbook
// owns sheet bookkeeping; the registry only consumes this lookup.
type SheetResolver interface {
	SheetNameForIndex(index int) (string, error)
}

// WarnFunc receives the offending reference text and the parse failure
// each time SetRefersTo falls back to storing raw text.
type WarnFunc func(refText string, err error)

// Registry owns the collection of defined names for one workbook and
// enforces the naming and uniqueness rules across it.
type Registry struct {
	names []*DefinedName

	// Warn is invoked exactly once per failed-then-fallback reference
	// parse. When nil, fallbacks are reported through slog at warn level.
	Warn WarnFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// CreateName adds a new, empty defined name backed by an in-memory record
// and returns it for the caller to populate.
func (r *Registry) CreateName() *DefinedName {
	return r.Attach(NewMemoryRecord())
}

// Attach adds a defined name backed by an existing record, e.g. one read
// from a persisted workbook. The record's current contents are taken as-is.
func (r *Registry) Attach(rec Record) *DefinedName {
	n := &DefinedName{reg: r, rec: rec}
	r.names = append(r.names, n)
	return n
}

// NameCount returns the number of defined names in the registry.
func (r *Registry) NameCount() int {
	return len(r.names)
}

// NameAt returns the defined name at the given index, nil if out of range.
func (r *Registry) NameAt(i int) *DefinedName {
	if i < 0 || i >= len(r.names) {
		return nil
	}
	return r.names[i]
}

// Name returns the first defined name whose text matches
// case-insensitively, or nil if absent.
func (r *Registry) Name(text string) *DefinedName {
	for _, n := range r.names {
		if strings.EqualFold(n.Name(), text) {
			return n
		}
	}
	return nil
}

// Remove removes the given defined name from the registry. Removal is by
// identity; a name equal in content but attached elsewhere is untouched.
func (r *Registry) Remove(n *DefinedName) bool {
	for i, existing := range r.names {
		if existing == n {
			r.names = append(r.names[:i], r.names[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAt removes the defined name at the given index.
func (r *Registry) RemoveAt(i int) bool {
	if i < 0 || i >= len(r.names) {
		return false
	}
	r.names = append(r.names[:i], r.names[i+1:]...)
	return true
}

// checkDuplicate scans all live entries other than the one being renamed
// for a case-insensitive match. Exclusion is by identity, so renaming an
// entry to its own unchanged value never conflicts with itself.
func (r *Registry) checkDuplicate(renaming *DefinedName, name string) error {
	for _, n := range r.names {
		if n != renaming && strings.EqualFold(n.Name(), name) {
			return &DuplicateNameError{Name: name}
		}
	}
	return nil
}

func (r *Registry) warn(refText string, err error) {
	if r.Warn != nil {
		r.Warn(refText, err)
		return
	}
	slog.Warn("failed to parse cell reference, storing raw value", "ref", refText, "error", err)
}

// validateName checks the name-text invariant: the first character is a
// letter or underscore and the text contains no space.
func validateName(name string) error {
	first, _ := utf8.DecodeRuneInString(name)
	if name == "" || !(first == '_' || unicode.IsLetter(first)) || strings.ContainsRune(name, ' ') {
		return &InvalidNameError{Name: name}
	}
	return nil
}

func containsDeletedMarker(refText string) bool {
	return strings.Contains(refText, deletedMarker)
}
