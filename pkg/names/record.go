package names

import "fmt"

// NoLocalSheet is the LocalSheetID value of a workbook-global name.
const NoLocalSheet = -1

// Record is the backing store for one defined name. The registry reads and
// writes through this contract and never serializes to bytes itself; a
// concrete Record may be an in-memory bean or an adapter over a persisted
// workbook entry.
type Record interface {
	Name() string
	SetName(name string)

	RefersTo() string
	SetRefersTo(text string)

	Comment() string
	SetComment(comment string)

	// LocalSheetID returns the 0-based sheet index this name is scoped to,
	// or NoLocalSheet when the name is workbook-global.
	LocalSheetID() int
	SetLocalSheetID(id int)
	UnsetLocalSheetID()

	Function() bool
	SetFunction(value bool)

	FunctionGroupID() int
	SetFunctionGroupID(id int)

	// Key returns the complete serialized representation of the record.
	// Two records with equal keys describe the same defined name.
	Key() string
}

// MemoryRecord is the default in-memory Record implementation.
type MemoryRecord struct {
	name            string
	refersTo        string
	comment         string
	localSheetID    int
	function        bool
	functionGroupID int
}

// NewMemoryRecord creates an empty workbook-global record.
func NewMemoryRecord() *MemoryRecord {
	return &MemoryRecord{localSheetID: NoLocalSheet}
}

func (r *MemoryRecord) Name() string         { return r.name }
func (r *MemoryRecord) SetName(name string)  { r.name = name }
func (r *MemoryRecord) RefersTo() string     { return r.refersTo }
func (r *MemoryRecord) SetRefersTo(s string) { r.refersTo = s }
func (r *MemoryRecord) Comment() string      { return r.comment }
func (r *MemoryRecord) SetComment(c string)  { r.comment = c }

func (r *MemoryRecord) LocalSheetID() int { return r.localSheetID }

func (r *MemoryRecord) SetLocalSheetID(id int) {
	if id < 0 {
		r.localSheetID = NoLocalSheet
		return
	}
	r.localSheetID = id
}

func (r *MemoryRecord) UnsetLocalSheetID() { r.localSheetID = NoLocalSheet }

func (r *MemoryRecord) Function() bool            { return r.function }
func (r *MemoryRecord) SetFunction(v bool)        { r.function = v }
func (r *MemoryRecord) FunctionGroupID() int      { return r.functionGroupID }
func (r *MemoryRecord) SetFunctionGroupID(id int) { r.functionGroupID = id }

func (r *MemoryRecord) Key() string {
	return fmt.Sprintf("name=%s;refersTo=%s;comment=%s;localSheetId=%d;function=%t;functionGroupId=%d",
		r.name, r.refersTo, r.comment, r.localSheetID, r.function, r.functionGroupID)
}
