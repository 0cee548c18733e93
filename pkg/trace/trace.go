// Package trace carries the parser's per-line diagnostic events to a
// pluggable sink. The trace exists for human diagnosis only; sinks must not
// influence parsing.
package trace

// Action names used in LineEvent.Action.
const (
	ActionDiscard    = "discard"
	ActionTableStart = "table-start"
	ActionTableEnd   = "table-end"
	ActionProcess    = "process"
	ActionReject     = "reject"
)

// LineEvent records one classification decision.
type LineEvent struct {
	// Line is the 1-based input line number.
	Line int `json:"line"`

	// Raw is the trimmed line content.
	Raw string `json:"raw"`

	// Action is the classification outcome (see the Action constants).
	Action string `json:"action"`

	// Reason explains the decision, e.g. "second header line".
	Reason string `json:"reason"`
}

// FieldEvent records one extracted field value of a processed row.
type FieldEvent struct {
	Line  int    `json:"line"`
	Field string `json:"field"`
	Value string `json:"value"`
}

// Summary totals one full parse pass.
type Summary struct {
	RowsParsed   int `json:"rows_parsed"`
	LinesSkipped int `json:"lines_skipped"`
}

// Sink receives diagnostic events from a parse pass. Implementations are
// called from a single goroutine and need no locking.
type Sink interface {
	// Line reports a classification decision.
	Line(e LineEvent)

	// Field reports one extracted field of a processed row.
	Field(e FieldEvent)

	// Summary reports the pass totals, once per parse.
	Summary(s Summary)
}

type nopSink struct{}

func (nopSink) Line(LineEvent)   {}
func (nopSink) Field(FieldEvent) {}
func (nopSink) Summary(Summary)  {}

// Nop returns a sink that drops every event.
func Nop() Sink { return nopSink{} }
