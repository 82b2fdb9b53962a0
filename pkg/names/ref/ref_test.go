package ref

import "testing"

func TestAreaRefString(t *testing.T) {
	tests := []struct {
		name string
		area AreaRef
		want string
	}{
		{
			"single cell",
			AreaRef{First: CellRef{Row: 0, Col: 0}},
			"A1",
		},
		{
			"absolute cell",
			AreaRef{First: CellRef{Row: 2, Col: 1, AbsRow: true, AbsCol: true}},
			"$B$3",
		},
		{
			"mixed markers",
			AreaRef{First: CellRef{Row: 0, Col: 0, AbsCol: true}},
			"$A1",
		},
		{
			"sheet qualified",
			AreaRef{Sheet: "Sheet1", First: CellRef{Row: 2, Col: 1, AbsRow: true, AbsCol: true}},
			"Sheet1!$B$3",
		},
		{
			"range",
			AreaRef{Sheet: "Sales", First: CellRef{Row: 19, Col: 2}, Last: &CellRef{Row: 29, Col: 2}},
			"Sales!C20:C30",
		},
		{
			"sheet with space requoted",
			AreaRef{Sheet: "My Sheet", First: CellRef{Row: 0, Col: 0}},
			"'My Sheet'!A1",
		},
		{
			"sheet starting with digit requoted",
			AreaRef{Sheet: "2024", First: CellRef{Row: 0, Col: 0}},
			"'2024'!A1",
		},
		{
			"plain sheet not quoted",
			AreaRef{Sheet: "Sheet1", First: CellRef{Row: 0, Col: 0}},
			"Sheet1!A1",
		},
		{
			"embedded quote doubled",
			AreaRef{Sheet: "O'Brien Sales", First: CellRef{Row: 0, Col: 0}},
			"'O''Brien Sales'!A1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.area.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColumnName(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{0, "A"},
		{25, "Z"},
		{26, "AA"},
		{51, "AZ"},
		{701, "ZZ"},
		{702, "AAA"},
		{16383, "XFD"},
	}

	for _, tt := range tests {
		if got := ColumnName(tt.col); got != tt.want {
			t.Errorf("ColumnName(%d) = %q, want %q", tt.col, got, tt.want)
		}
	}
}

func TestParseColumnName(t *testing.T) {
	tests := []struct {
		name    string
		want    int
		wantErr bool
	}{
		{"A", 0, false},
		{"z", 25, false},
		{"AA", 26, false},
		{"XFD", 16383, false},
		{"XFE", 0, true},
		{"A1", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseColumnName(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseColumnName(%q) succeeded, expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColumnName(%q) failed: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColumnName(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}
