package trace

// Recorder is a Sink that keeps every event in memory, for tests and for the
// inspect command's classification dry run.
type Recorder struct {
	Lines     []LineEvent
	Fields    []FieldEvent
	Summaries []Summary
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Line appends a classification decision.
func (r *Recorder) Line(e LineEvent) { r.Lines = append(r.Lines, e) }

// Field appends an extracted field value.
func (r *Recorder) Field(e FieldEvent) { r.Fields = append(r.Fields, e) }

// Summary appends the pass totals.
func (r *Recorder) Summary(s Summary) { r.Summaries = append(r.Summaries, s) }

// FieldsForLine returns the extracted fields recorded for one input line.
func (r *Recorder) FieldsForLine(line int) []FieldEvent {
	var out []FieldEvent
	for _, f := range r.Fields {
		if f.Line == line {
			out = append(out, f)
		}
	}
	return out
}
