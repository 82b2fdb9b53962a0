package names

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/BBN-D/poi/pkg/names/models"
)

// excelize represents workbook scope with this sentinel sheet name.
const workbookScope = "Workbook"

// Load reads every defined name of an open workbook into a new registry,
// canonicalizing each reference through the tolerant SetRefersTo path.
// The registry's Warn hook is installed before ingestion so callers
// observe every parse fallback.
func Load(f *excelize.File, warn WarnFunc) *Registry {
	reg := NewRegistry()
	reg.Warn = warn
	for _, dn := range f.GetDefinedName() {
		rec := NewMemoryRecord()
		rec.SetName(dn.Name)
		rec.SetComment(dn.Comment)
		if dn.Scope != "" && dn.Scope != workbookScope {
			if idx, err := f.GetSheetIndex(dn.Scope); err == nil && idx >= 0 {
				rec.SetLocalSheetID(idx)
			}
		}
		reg.Attach(rec).SetRefersTo(dn.RefersTo)
	}
	return reg
}

// Store writes the registry's defined names back into the workbook,
// replacing entries of the same name and scope.
func Store(f *excelize.File, reg *Registry) error {
	for i := 0; i < reg.NameCount(); i++ {
		n := reg.NameAt(i)
		dn := &excelize.DefinedName{
			Name:     n.Name(),
			RefersTo: n.RefersTo(),
			Comment:  n.Comment(),
		}
		if id := n.LocalSheetID(); id != NoLocalSheet {
			dn.Scope = f.GetSheetName(id)
		}
		// Replace-then-set keeps repeated stores idempotent.
		if err := f.DeleteDefinedName(dn); err != nil && !errors.Is(err, excelize.ErrDefinedNameScope) {
			return fmt.Errorf("delete defined name %q: %w", n.Name(), err)
		}
		if err := f.SetDefinedName(dn); err != nil {
			return fmt.Errorf("set defined name %q: %w", n.Name(), err)
		}
	}
	return nil
}

// WorkbookResolver adapts an open workbook to the SheetResolver contract.
type WorkbookResolver struct {
	File *excelize.File
}

// SheetNameForIndex returns the name of the sheet at the given 0-based index.
func (r WorkbookResolver) SheetNameForIndex(index int) (string, error) {
	name := r.File.GetSheetName(index)
	if name == "" {
		return "", fmt.Errorf("no sheet at index %d", index)
	}
	return name, nil
}

// ReportOptions configures report building.
type ReportOptions struct {
	// IncludeBuiltin keeps application-reserved names (_xlnm.*) in the report.
	IncludeBuiltin bool
	// Sheet restricts the report to names resolving to this sheet.
	Sheet string
}

// BuildReport summarizes the registry's defined names for one workbook.
// Sheet resolution failures are not fatal: such names appear with an
// empty sheet field.
func BuildReport(bookName string, reg *Registry, resolver SheetResolver, opts ReportOptions) *models.WorkbookReport {
	report := &models.WorkbookReport{BookName: bookName, Names: []models.NameReport{}}
	for i := 0; i < reg.NameCount(); i++ {
		n := reg.NameAt(i)
		if !opts.IncludeBuiltin && IsBuiltIn(n.Name()) {
			continue
		}
		sheet, err := n.SheetName(resolver)
		if err != nil {
			sheet = ""
		}
		if opts.Sheet != "" && sheet != opts.Sheet {
			continue
		}
		nr := models.NameReport{
			Name:            n.Name(),
			RefersTo:        n.RefersTo(),
			Sheet:           sheet,
			Builtin:         IsBuiltIn(n.Name()),
			Deleted:         n.IsDeleted(),
			Comment:         n.Comment(),
			Function:        n.Function(),
			FunctionGroupID: n.FunctionGroupID(),
		}
		if id := n.LocalSheetID(); id != NoLocalSheet {
			nr.LocalSheetID = &id
		}
		report.Names = append(report.Names, nr)
	}
	return report
}
