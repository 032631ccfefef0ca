package finstmt

// The edit session is the pending-edit overlay: the transient raw text of
// every field currently being edited, shadowing the canonical model until
// committed. A field is in one of three states. Display, the resting state,
// keeps no record at all. Editing holds the last cleaned raw text, shown
// verbatim while the user types. Committed-pending means the cleaned value
// has been pushed into the model but the display still shows the raw text,
// waiting for end-edit to reformat it. Phase and raw text live in one
// record per field, so there is a single source of truth to diverge from.

type editPhase int

const (
	phaseEditing editPhase = iota + 1
	phaseCommittedPending
)

// editRecord is the single pending-edit record of one field.
type editRecord struct {
	phase editPhase
	raw   string
}

// Session holds the transient edit state of a whole report. It is owned by
// a Composer and passed by reference to whichever view needs it; it is
// never process-wide state. The zero Session is not ready, use NewSession.
type Session struct {
	records map[FieldRef]editRecord
	limits  Limits
}

// NewSession returns an empty edit session enforcing the given limits.
func NewSession(limits Limits) *Session {
	return &Session{records: make(map[FieldRef]editRecord), limits: limits}
}

// StartEdit moves a field into the editing state and returns the raw text
// the editor starts from. A field already carrying a pending record resumes
// from its raw text; otherwise fallback, the field's committed text, is
// used. Numeric fields are de-formatted either way: editing always starts
// from the bare number.
func (s *Session) StartEdit(ref FieldRef, fallback string) string {
	raw := fallback
	if rec, ok := s.records[ref]; ok {
		raw = rec.raw
	}
	if ref.Kind.Numeric() {
		raw = deformat(raw)
	}
	s.records[ref] = editRecord{phase: phaseEditing, raw: raw}
	return raw
}

// ValueChanged records one keystroke's worth of new text: the input is
// cleaned for the field's kind and stored in the pending record. It
// returns the cleaned text and whether it is acceptable; acceptable text
// moves the field to committed-pending and must be pushed into the model
// by the caller, anything else leaves the field editing and the model
// untouched.
func (s *Session) ValueChanged(ref FieldRef, input string) (string, bool) {
	clean := ref.Kind.Clean(input)
	ok := Acceptable(clean, s.limits.For(ref.Kind))
	phase := phaseEditing
	if ok {
		phase = phaseCommittedPending
	}
	s.records[ref] = editRecord{phase: phase, raw: clean}
	return clean, ok
}

// EndEdit drops the pending record, returning the field to the display
// state. The caller reformats the committed value for display.
func (s *Session) EndEdit(ref FieldRef) {
	delete(s.records, ref)
}

// Reset drops every pending record, as when the report is replaced
// wholesale by a regeneration.
func (s *Session) Reset() {
	s.records = make(map[FieldRef]editRecord)
}

// Raw returns the pending raw text of a field, if it has one. While a
// record exists the display shows this text instead of the formatted
// committed value.
func (s *Session) Raw(ref FieldRef) (string, bool) {
	rec, ok := s.records[ref]
	return rec.raw, ok
}

// Editing reports whether a field currently has a pending record.
func (s *Session) Editing(ref FieldRef) bool {
	_, ok := s.records[ref]
	return ok
}

// Pending reports whether a field's cleaned value has been pushed to the
// model but its display not yet reformatted.
func (s *Session) Pending(ref FieldRef) bool {
	return s.records[ref].phase == phaseCommittedPending
}
