package names

import "strings"

// Built-in defined names reserved by the spreadsheet application. Their
// text is opaque here; the application attaches the behavior.
const (
	// BuiltinPrintArea specifies the workbook's print area.
	BuiltinPrintArea = "_xlnm.Print_Area"
	// BuiltinPrintTitle specifies the row(s) or column(s) to repeat at the
	// top of each printed page.
	BuiltinPrintTitle = "_xlnm.Print_Titles"
	// BuiltinCriteria refers to a range containing the criteria values used
	// in applying an advanced filter to a range of data.
	BuiltinCriteria = "_xlnm.Criteria:"
	// BuiltinExtract refers to the range containing the filtered output
	// values resulting from applying an advanced filter.
	BuiltinExtract = "_xlnm.Extract:"
	// BuiltinFilterDB refers to a range to which an advanced filter or an
	// AutoFilter has been applied.
	BuiltinFilterDB = "_xlnm._FilterDatabase:"
	// BuiltinConsolidateArea refers to a consolidation area.
	BuiltinConsolidateArea = "_xlnm.Consolidate_Area"
	// BuiltinDatabase specifies that the range is from a database data source.
	BuiltinDatabase = "_xlnm.Database"
	// BuiltinSheetTitle refers to a sheet title.
	BuiltinSheetTitle = "_xlnm.Sheet_Title"
)

// builtinPrefix marks every application-reserved defined name.
const builtinPrefix = "_xlnm."

// IsBuiltIn reports whether the name text is reserved by the application
// (case-insensitive).
func IsBuiltIn(name string) bool {
	return len(name) >= len(builtinPrefix) && strings.EqualFold(name[:len(builtinPrefix)], builtinPrefix)
}
