package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/BBN-D/poi/pkg/names/models"
)

func sampleReport() *models.WorkbookReport {
	id := 0
	return &models.WorkbookReport{
		BookName: "book.xlsx",
		Names: []models.NameReport{
			{Name: "Sales", RefersTo: "Sheet1!C20:C30", Sheet: "Sheet1"},
			{Name: "Local", RefersTo: "Data!$A$1", Sheet: "Data", LocalSheetID: &id},
		},
		Warnings: []models.Warning{
			{RefersTo: "Sheet1!SalesData", Reason: "malformed cell token"},
		},
	}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleReport(), false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var decoded models.WorkbookReport
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.BookName != "book.xlsx" || len(decoded.Names) != 2 || len(decoded.Warnings) != 1 {
		t.Errorf("decoded report = %+v", decoded)
	}
	if decoded.Names[1].LocalSheetID == nil || *decoded.Names[1].LocalSheetID != 0 {
		t.Error("local sheet id 0 must survive serialization")
	}
}

func TestToJSONPretty(t *testing.T) {
	compact, err := ToJSON(sampleReport(), false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	pretty, err := ToJSON(sampleReport(), true)
	if err != nil {
		t.Fatalf("ToJSON pretty failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n") {
		t.Error("pretty output should be indented")
	}
	if strings.Contains(string(compact), "\n") {
		t.Error("compact output should be single-line")
	}
}
