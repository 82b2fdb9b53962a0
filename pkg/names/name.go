package names

import (
	"hash/fnv"

	"github.com/BBN-D/poi/pkg/names/ref"
)

// DefinedName represents one defined name in a workbook: descriptive text
// bound to a cell, range of cells, formula, or constant value. Instances
// are created by Registry.CreateName and mutate their backing Record
// through validating setters.
type DefinedName struct {
	reg *Registry
	rec Record
}

// Record returns the backing store of this defined name.
func (n *DefinedName) Record() Record {
	return n.rec
}

// Name returns the text that appears in the user interface for this
// defined name.
func (n *DefinedName) Name() string {
	return n.rec.Name()
}

// SetName sets the name text. Names must begin with a letter or
// underscore, contain no spaces, and be unique across the registry
// (case-insensitive). The name is committed only after both checks pass;
// on failure nothing changes.
func (n *DefinedName) SetName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := n.reg.checkDuplicate(n, name); err != nil {
		return err
	}
	n.rec.SetName(name)
	return nil
}

// RefersTo returns the reference of this named range, such as
// "Sales!C20:C30". The stored text is canonical when the reference was
// parseable and the original raw text otherwise.
func (n *DefinedName) RefersTo() string {
	return n.rec.RefersTo()
}

// SetRefersTo sets the reference of this named range.
//
// Contiguous references are parsed and stored in canonical form. When
// parsing fails the error is not propagated: the registry's warn hook is
// invoked once and the raw text is stored byte-identical, so references
// in forms not modeled here (exotic external-reference syntax, legacy
// documents) survive a round trip. Non-contiguous (union) references are
// stored verbatim without structural validation. Callers needing strict
// validation should use ref.Parse directly.
func (n *DefinedName) SetRefersTo(text string) {
	if ref.IsContiguous(text) {
		area, err := ref.Parse(text)
		if err != nil {
			n.reg.warn(text, err)
		} else {
			text = area.String()
		}
	}
	n.rec.SetRefersTo(text)
}

// IsDeleted reports whether this name points to a cell that no longer
// exists. The check is textual: any occurrence of the "#REF!" marker in
// the stored reference counts, even in only one axis of a range.
func (n *DefinedName) IsDeleted() bool {
	return containsDeletedMarker(n.rec.RefersTo())
}

// LocalSheetID returns the 0-based sheet index this name applies to, or
// NoLocalSheet if it applies to the entire workbook.
func (n *DefinedName) LocalSheetID() int {
	return n.rec.LocalSheetID()
}

// SetLocalSheetID scopes this name to the sheet at the given index
// instead of the entire workbook. A negative id clears the scope, making
// the name workbook-global. The index is not checked against the actual
// sheet count; that validation belongs to the workbook.
func (n *DefinedName) SetLocalSheetID(id int) {
	if id < 0 {
		n.rec.UnsetLocalSheetID()
		return
	}
	n.rec.SetLocalSheetID(id)
}

// Comment returns the comment the user provided when the name was created.
func (n *DefinedName) Comment() string {
	return n.rec.Comment()
}

// SetComment sets the user comment for this named range.
func (n *DefinedName) SetComment(comment string) {
	n.rec.SetComment(comment)
}

// Function reports whether the defined name refers to a user-defined
// function, as set when an add-in or other code project is associated
// with the workbook.
func (n *DefinedName) Function() bool {
	return n.rec.Function()
}

// SetFunction marks the defined name as referring to a user-defined function.
func (n *DefinedName) SetFunction(value bool) {
	n.rec.SetFunction(value)
}

// FunctionGroupID returns the function group index, the general category
// for the function when Function is set.
func (n *DefinedName) FunctionGroupID() int {
	return n.rec.FunctionGroupID()
}

// SetFunctionGroupID sets the function group index.
func (n *DefinedName) SetFunctionGroupID(id int) {
	n.rec.SetFunctionGroupID(id)
}

// IsFunctionName reports whether this name refers to a user-defined function.
func (n *DefinedName) IsFunctionName() bool {
	return n.Function()
}

// SheetName resolves the sheet this named range belongs to. A locally
// scoped name resolves through the given resolver; otherwise the sheet
// qualifier of the stored reference is used. Returns an
// UnresolvableSheetError when neither is available.
func (n *DefinedName) SheetName(resolver SheetResolver) (string, error) {
	if id := n.rec.LocalSheetID(); id != NoLocalSheet {
		return resolver.SheetNameForIndex(id)
	}
	refersTo := n.rec.RefersTo()
	area, err := ref.Parse(refersTo)
	if err != nil || area.Sheet == "" {
		return "", &UnresolvableSheetError{Name: n.rec.Name(), RefersTo: refersTo}
	}
	return area.Sheet, nil
}

// Equal reports whether two defined names have equal serialized
// representations: name, reference, scope, comment and function flags.
func (n *DefinedName) Equal(other *DefinedName) bool {
	if other == nil {
		return false
	}
	if n == other {
		return true
	}
	return n.rec.Key() == other.rec.Key()
}

// Hash returns a hash derived from the same serialized representation
// Equal compares, preserving the equals/hash consistency contract.
func (n *DefinedName) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(n.rec.Key()))
	return h.Sum64()
}
