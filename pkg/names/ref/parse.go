package ref

import (
	"strconv"
	"strings"
)

// Parse parses a reference string into an AreaRef.
//
// The string may be prefixed with a sheet qualifier ("Sheet1!" or
// "'My Sheet'!"); single-quoted sheet names have their outer quotes
// stripped and doubled quotes unescaped. The cell portion is either a
// single cell token or two tokens joined by ':'. Each token is an
// optional '$', column letters, an optional '$', and a 1-based row
// number. The first/last cells of a range are normalized so that First
// is the top-left and Last the bottom-right corner.
func Parse(text string) (AreaRef, error) {
	sheet, cells, err := splitSheetName(text)
	if err != nil {
		return AreaRef{}, err
	}

	first, rest, found := strings.Cut(cells, ":")
	firstCell, err := parseCellToken(text, first)
	if err != nil {
		return AreaRef{}, err
	}
	area := AreaRef{Sheet: sheet, First: firstCell}
	if !found {
		return area, nil
	}

	lastCell, err := parseCellToken(text, rest)
	if err != nil {
		return AreaRef{}, err
	}
	if firstCell.Row > lastCell.Row {
		firstCell.Row, lastCell.Row = lastCell.Row, firstCell.Row
		firstCell.AbsRow, lastCell.AbsRow = lastCell.AbsRow, firstCell.AbsRow
	}
	if firstCell.Col > lastCell.Col {
		firstCell.Col, lastCell.Col = lastCell.Col, firstCell.Col
		firstCell.AbsCol, lastCell.AbsCol = lastCell.AbsCol, firstCell.AbsCol
	}
	area.First = firstCell
	area.Last = &lastCell
	return area, nil
}

// IsContiguous reports whether the reference text denotes at most one
// rectangular block: no unquoted comma and at most one ':' in the cell
// portion. It is a cheap textual check and does not validate the grammar.
func IsContiguous(text string) bool {
	colons := 0
	inQuote := false
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\'':
			inQuote = !inQuote
		case ',':
			if !inQuote {
				return false
			}
		case ':':
			if !inQuote {
				colons++
			}
		}
	}
	return colons <= 1
}

// splitSheetName splits a reference on the first unquoted '!' and returns
// the unquoted sheet name (empty if absent) and the cell portion.
func splitSheetName(text string) (sheet, cells string, err error) {
	if text == "" {
		return "", "", NewMalformedReferenceError(text, "empty reference")
	}
	if text[0] == '\'' {
		// Quoted sheet name: scan to the closing quote, treating '' as an
		// escaped quote.
		var name strings.Builder
		i := 1
		for {
			if i >= len(text) {
				return "", "", NewMalformedReferenceError(text, "unterminated quoted sheet name")
			}
			if text[i] == '\'' {
				if i+1 < len(text) && text[i+1] == '\'' {
					name.WriteByte('\'')
					i += 2
					continue
				}
				break
			}
			name.WriteByte(text[i])
			i++
		}
		if i+1 >= len(text) || text[i+1] != '!' {
			return "", "", NewMalformedReferenceError(text, "expected '!' after quoted sheet name")
		}
		return name.String(), text[i+2:], nil
	}
	if sheet, cells, found := strings.Cut(text, "!"); found {
		return sheet, cells, nil
	}
	return "", text, nil
}

// parseCellToken parses a single cell token such as "B12", "$B12", "B$12"
// or "$B$12". The full reference text is carried only for error reporting.
func parseCellToken(refText, token string) (CellRef, error) {
	var cell CellRef
	i := 0
	if i < len(token) && token[i] == '$' {
		cell.AbsCol = true
		i++
	}
	start := i
	for i < len(token) && isLetter(token[i]) {
		i++
	}
	if i == start {
		return CellRef{}, NewMalformedReferenceError(refText, "missing column letters")
	}
	col, err := ParseColumnName(token[start:i])
	if err != nil {
		return CellRef{}, NewMalformedReferenceError(refText, "column out of range")
	}
	cell.Col = col

	if i < len(token) && token[i] == '$' {
		cell.AbsRow = true
		i++
	}
	start = i
	for i < len(token) && token[i] >= '0' && token[i] <= '9' {
		i++
	}
	if i == start || i != len(token) {
		return CellRef{}, NewMalformedReferenceError(refText, "malformed cell token")
	}
	row, err := strconv.Atoi(token[start:i])
	if err != nil || row < 1 || row > MaxRows {
		return CellRef{}, NewMalformedReferenceError(refText, "row out of range")
	}
	cell.Row = row - 1
	return cell, nil
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
