package trace

import "github.com/rs/zerolog"

// Logger forwards trace events to a zerolog logger. Levels mirror the
// original extraction script: routine skips at debug, table boundaries and
// processed rows at info, rejected rows at warn.
type Logger struct {
	log zerolog.Logger
}

// NewLogger returns a Sink backed by the given logger.
func NewLogger(log zerolog.Logger) *Logger { return &Logger{log: log} }

// Line logs a classification decision.
func (l *Logger) Line(e LineEvent) {
	var ev *zerolog.Event
	switch e.Action {
	case ActionTableStart, ActionTableEnd, ActionProcess:
		ev = l.log.Info()
	case ActionReject:
		ev = l.log.Warn()
	default:
		ev = l.log.Debug()
	}
	ev.Int("line", e.Line).
		Str("action", e.Action).
		Str("reason", e.Reason).
		Str("raw", e.Raw).
		Msg("line")
}

// Field logs one extracted field value.
func (l *Logger) Field(e FieldEvent) {
	l.log.Debug().
		Int("line", e.Line).
		Str("field", e.Field).
		Str("value", e.Value).
		Msg("field")
}

// Summary logs the pass totals.
func (l *Logger) Summary(s Summary) {
	l.log.Info().
		Int("rows_parsed", s.RowsParsed).
		Int("lines_skipped", s.LinesSkipped).
		Msg("parsing complete")
}
