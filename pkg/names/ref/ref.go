// Package ref parses and formats spreadsheet area references such as
// "Sheet1!$B$3" or "'My Sheet'!A1:C10".
package ref

import (
	"strconv"
	"strings"
)

// OOXML worksheet limits (XFD1048576 is the last addressable cell).
const (
	// MaxRows is the maximum number of rows in a sheet.
	MaxRows = 1048576
	// MaxColumns is the maximum number of columns in a sheet.
	MaxColumns = 16384
)

// CellRef represents a single cell coordinate with per-axis absolute flags.
type CellRef struct {
	// Row is the 0-based row index.
	Row int
	// Col is the 0-based column index.
	Col int
	// AbsRow indicates the row component carries a $ marker.
	AbsRow bool
	// AbsCol indicates the column component carries a $ marker.
	AbsCol bool
}

// AreaRef represents a single cell or a rectangular range, optionally
// qualified by a sheet name.
type AreaRef struct {
	// Sheet is the sheet qualifier, empty when the reference is unqualified.
	Sheet string
	// First is the top-left cell of the area.
	First CellRef
	// Last is the bottom-right cell, nil for a single-cell reference.
	Last *CellRef
}

// IsSingleCell reports whether the area covers exactly one cell.
func (a AreaRef) IsSingleCell() bool {
	return a.Last == nil
}

// String formats the area in canonical form: ['Sheet'!]$Col$Row[:$Col$Row]
// with $ markers emitted exactly where the absolute flags are set.
func (a AreaRef) String() string {
	var sb strings.Builder
	if a.Sheet != "" {
		sb.WriteString(quoteSheetName(a.Sheet))
		sb.WriteByte('!')
	}
	writeCell(&sb, a.First)
	if a.Last != nil {
		sb.WriteByte(':')
		writeCell(&sb, *a.Last)
	}
	return sb.String()
}

func writeCell(sb *strings.Builder, c CellRef) {
	if c.AbsCol {
		sb.WriteByte('$')
	}
	sb.WriteString(ColumnName(c.Col))
	if c.AbsRow {
		sb.WriteByte('$')
	}
	sb.WriteString(strconv.Itoa(c.Row + 1))
}

// quoteSheetName wraps the sheet name in single quotes when it would be
// ambiguous unquoted: contains a space or '!', or starts with a digit.
// Embedded single quotes are doubled per spreadsheet convention.
func quoteSheetName(name string) string {
	if !needsQuoting(name) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func needsQuoting(name string) bool {
	if name == "" {
		return false
	}
	if name[0] >= '0' && name[0] <= '9' {
		return true
	}
	return strings.ContainsAny(name, " !")
}

// ColumnName converts a 0-based column index to its letter name
// (0 -> "A", 25 -> "Z", 26 -> "AA").
func ColumnName(col int) string {
	name := make([]byte, 0, 3)
	for n := col + 1; n > 0; n = (n - 1) / 26 {
		name = append(name, byte('A'+(n-1)%26))
	}
	// Reverse: letters were appended least significant first.
	for i, j := 0, len(name)-1; i < j; i, j = i+1, j-1 {
		name[i], name[j] = name[j], name[i]
	}
	return string(name)
}

// ParseColumnName converts a column letter name to its 0-based index.
// The name is case-insensitive; base-26 with no zero digit (A=1).
func ParseColumnName(name string) (int, error) {
	if name == "" {
		return 0, NewMalformedReferenceError(name, "empty column name")
	}
	col := 0
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
			col = col*26 + int(c-'A') + 1
		case c >= 'a' && c <= 'z':
			col = col*26 + int(c-'a') + 1
		default:
			return 0, NewMalformedReferenceError(name, "invalid column letter")
		}
		if col > MaxColumns {
			return 0, NewMalformedReferenceError(name, "column out of range")
		}
	}
	return col - 1, nil
}
