package names

import (
	"errors"
	"fmt"
)

// ErrInvalidName indicates a name violates the naming rules.
var ErrInvalidName = errors.New("invalid name")

// ErrDuplicateName indicates a case-insensitive collision with an existing name.
var ErrDuplicateName = errors.New("duplicate name")

// ErrUnresolvableSheet indicates a name has neither a local scope nor a
// sheet-qualified reference.
var ErrUnresolvableSheet = errors.New("unresolvable sheet")

// InvalidNameError reports a name that breaks the first-character or
// no-space rule.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid name %q: names must begin with a letter or underscore and not contain spaces", e.Name)
}

func (e *InvalidNameError) Unwrap() error {
	return ErrInvalidName
}

// DuplicateNameError reports a case-insensitive collision with another
// defined name in the same registry.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("the workbook already contains this name: %s", e.Name)
}

func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicateName
}

// UnresolvableSheetError reports a name whose owning sheet cannot be
// determined: it is workbook-global and its reference carries no sheet
// qualifier.
type UnresolvableSheetError struct {
	Name     string
	RefersTo string
}

func (e *UnresolvableSheetError) Error() string {
	return fmt.Sprintf("cannot resolve sheet for name %q (reference %q): no local scope and no sheet qualifier", e.Name, e.RefersTo)
}

func (e *UnresolvableSheetError) Unwrap() error {
	return ErrUnresolvableSheet
}
