// Package models defines data structures for defined-name reports.
package models

// NameReport represents one defined name after canonicalization.
type NameReport struct {
	// Name is the defined name text.
	Name string `json:"name"`
	// RefersTo is the stored reference: canonical when parseable, the
	// original raw text otherwise.
	RefersTo string `json:"refers_to"`
	// Sheet is the resolved owning sheet name (empty when unresolvable).
	Sheet string `json:"sheet,omitempty"`
	// LocalSheetID is the 0-based scope sheet index (nil when workbook-global).
	LocalSheetID *int `json:"local_sheet_id,omitempty"`
	// Builtin indicates an application-reserved name (_xlnm.*).
	Builtin bool `json:"builtin,omitempty"`
	// Deleted indicates the reference contains the #REF! marker.
	Deleted bool `json:"deleted,omitempty"`
	// Comment is the user comment attached to the name.
	Comment string `json:"comment,omitempty"`
	// Function indicates the name refers to a user-defined function.
	Function bool `json:"function,omitempty"`
	// FunctionGroupID is the function group index when Function is set.
	FunctionGroupID int `json:"function_group_id,omitempty"`
}

// Warning represents one tolerated reference-parse fallback.
type Warning struct {
	// RefersTo is the reference text stored raw.
	RefersTo string `json:"refers_to"`
	// Reason is the parser's failure reason.
	Reason string `json:"reason"`
}

// WorkbookReport represents the workbook-level defined-name report.
type WorkbookReport struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Names contains the defined names in registry order.
	Names []NameReport `json:"names"`
	// Warnings contains one entry per reference stored raw after a parse
	// failure.
	Warnings []Warning `json:"warnings,omitempty"`
}
