package parser

import (
	"strings"

	"github.com/hrushabhNano/careermantrana-neet-ug-pdf-extraction/pkg/trace"
)

// Parser converts raw selection-list text into an ordered record sequence.
// A Parser holds no per-pass state: Parse may be called repeatedly and
// concurrently with different inputs, and parsing the same text twice yields
// identical results.
type Parser struct {
	trace trace.Sink
}

// Option configures the Parser.
type Option func(*Parser)

// WithTrace routes the parser's diagnostic events to the given sink.
// The default sink drops all events.
func WithTrace(sink trace.Sink) Option {
	return func(p *Parser) {
		if sink != nil {
			p.trace = sink
		}
	}
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{trace: trace.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse decodes every recognized table row in text. Row-level anomalies are
// absorbed locally (the row is omitted and traced); Parse itself cannot fail.
// An empty result is a valid outcome, not an error.
func (p *Parser) Parse(text string) *Result {
	result := &Result{}
	var c Classifier

	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)

		d := c.Classify(line)
		switch d.Action {
		case ActionProcess:
			p.parseRow(lineNo, line, result)
		case ActionTableStart, ActionTableEnd:
			p.trace.Line(trace.LineEvent{Line: lineNo, Raw: line, Action: d.Action.String(), Reason: d.Reason})
		default:
			p.trace.Line(trace.LineEvent{Line: lineNo, Raw: line, Action: d.Action.String(), Reason: d.Reason})
			if d.Tally {
				result.LinesSkipped++
			}
		}
	}

	p.trace.Summary(trace.Summary{RowsParsed: result.RowsParsed, LinesSkipped: result.LinesSkipped})
	return result
}

// parseRow runs the field extractor over one in-table line.
func (p *Parser) parseRow(lineNo int, line string, result *Result) {
	tokens := strings.Fields(line)

	// A row exists only if it opens with a numeric Sr No; anything else
	// inside the table is layout noise.
	if len(tokens) == 0 || !allDigits(tokens[0]) {
		p.trace.Line(trace.LineEvent{Line: lineNo, Raw: line, Action: trace.ActionDiscard, Reason: "not a data row (no Sr No)"})
		result.LinesSkipped++
		return
	}

	p.trace.Line(trace.LineEvent{Line: lineNo, Raw: line, Action: trace.ActionProcess, Reason: "data row"})

	rec, reject := extract(tokens)
	if reject != "" {
		p.trace.Line(trace.LineEvent{Line: lineNo, Raw: line, Action: trace.ActionReject, Reason: reject})
		return
	}

	for i, value := range rec.Values() {
		p.trace.Field(trace.FieldEvent{Line: lineNo, Field: Columns[i], Value: value})
	}

	result.Records = append(result.Records, rec)
	result.RowsParsed++
}
