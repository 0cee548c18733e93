package parser

import (
	"regexp"
	"strings"
)

// Action is the classifier's verdict for a single line.
type Action int

const (
	// ActionDiscard drops the line without extraction.
	ActionDiscard Action = iota

	// ActionTableStart marks a table header line. The classifier enters the
	// table and arms a skip for the following sub-header line.
	ActionTableStart

	// ActionTableEnd marks the "Legends :" line that closes the table.
	ActionTableEnd

	// ActionProcess hands the line to the field extractor.
	ActionProcess
)

// String returns the action name used in trace events.
func (a Action) String() string {
	switch a {
	case ActionTableStart:
		return "table-start"
	case ActionTableEnd:
		return "table-end"
	case ActionProcess:
		return "process"
	default:
		return "discard"
	}
}

// skipState is the two-state flip-flop that guarantees the sub-header line
// directly after a table header is never parsed.
type skipState int

const (
	skipNone skipState = iota
	skipNext
)

// Decision is the classifier's output for one line.
type Decision struct {
	Action Action

	// Reason is the human-readable explanation carried into the trace.
	Reason string

	// Tally reports whether a discarded line counts toward the
	// skipped-lines total. Lines outside the table that match no rule are
	// discarded but not tallied.
	Tally bool
}

// Classifier decides, per physical line, whether the line is table data, a
// table boundary, or noise. The in-table flag persists across lines; a zero
// Classifier starts outside the table.
type Classifier struct {
	inTable bool
	skip    skipState
}

// headerStart matches the first header row of the table, tolerating the
// irregular spacing the PDF conversion produces.
var headerStart = regexp.MustCompile(`^\s*Sr\.\s+AIR\s+NEET`)

// prosePrefixes open the page header/footer lines that surround each table.
// They are only discarded outside the table: a data row could in principle
// begin a name with one of these words.
var prosePrefixes = []string{"GOVERNMENT", "Note:", "Admissions", "SELECTION", "Printed", "I.Q.:"}

// classRule pairs a predicate with the action it triggers. Rules are
// evaluated in order and the first match wins; the order mirrors the layout's
// precedence (a header line re-arms the sub-header skip even while one is
// already pending).
type classRule struct {
	reason     string
	match      func(c *Classifier, line string) bool
	action     Action
	transition func(c *Classifier)
}

var classRules = []classRule{
	{
		reason: "empty line",
		match:  func(_ *Classifier, line string) bool { return line == "" },
		action: ActionDiscard,
	},
	{
		reason: "table header",
		match: func(_ *Classifier, line string) bool {
			return headerStart.MatchString(line) || strings.Contains(line, "Sr.     AIR     NEET")
		},
		action:     ActionTableStart,
		transition: func(c *Classifier) { c.inTable = true; c.skip = skipNext },
	},
	{
		reason:     "second header line",
		match:      func(c *Classifier, _ string) bool { return c.skip == skipNext },
		action:     ActionDiscard,
		transition: func(c *Classifier) { c.skip = skipNone },
	},
	{
		reason:     "table end (Legends)",
		match:      func(_ *Classifier, line string) bool { return strings.Contains(line, "Legends :") },
		action:     ActionTableEnd,
		transition: func(c *Classifier) { c.inTable = false },
	},
	{
		reason: "page header/footer",
		match: func(c *Classifier, line string) bool {
			if c.inTable {
				return false
			}
			for _, prefix := range prosePrefixes {
				if strings.HasPrefix(line, prefix) {
					return true
				}
			}
			return false
		},
		action: ActionDiscard,
	},
	{
		reason: "selection details banner",
		match: func(_ *Classifier, line string) bool {
			return strings.Contains(line, "Current Selection Details")
		},
		action: ActionDiscard,
	},
	{
		reason: "divider line",
		match: func(_ *Classifier, line string) bool {
			return strings.HasPrefix(line, "----") || strings.HasPrefix(line, "====")
		},
		action: ActionDiscard,
	},
}

// Classify decides what to do with one line and advances the classifier
// state. The line must already be whitespace-trimmed.
func (c *Classifier) Classify(line string) Decision {
	for _, rule := range classRules {
		if !rule.match(c, line) {
			continue
		}
		if rule.transition != nil {
			rule.transition(c)
		}
		return Decision{
			Action: rule.action,
			Reason: rule.reason,
			Tally:  rule.action == ActionDiscard,
		}
	}

	if c.inTable {
		return Decision{Action: ActionProcess, Reason: "in-table row"}
	}
	return Decision{Action: ActionDiscard, Reason: "outside table"}
}

// InTable reports whether the classifier is currently inside the data table.
func (c *Classifier) InTable() bool { return c.inTable }
