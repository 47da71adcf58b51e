// SPDX-License-Identifier: MIT

package observe

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/floydpaths/floyd"
)

// ErrBadLevel is returned by NewConsoleLogger for an unknown level name.
var ErrBadLevel = errors.New("observe: unknown log level")

// NewConsoleLogger builds a charmbracelet logger writing to w.
// level is one of debug, info, warn, error, fatal.
func NewConsoleLogger(w io.Writer, level string, timestamps bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadLevel, level, err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: timestamps,
		Level:           lvl,
	}), nil
}

// Logger reports build progress through a charmbracelet logger.
// Many Loggers may share one *log.Logger across goroutines.
type Logger struct {
	logger  *log.Logger
	keyvals []any // prepended to every line
}

// NewLogger wraps l. Extra key-values (e.g. the matrix name) are attached to
// every line.
func NewLogger(l *log.Logger, keyvals ...any) *Logger {
	return &Logger{logger: l, keyvals: keyvals}
}

func (l *Logger) with(kv ...any) []any {
	out := make([]any, 0, len(l.keyvals)+len(kv))
	out = append(out, l.keyvals...)

	return append(out, kv...)
}

// OnStep logs the eliminated node and the number of improved cells.
func (l *Logger) OnStep(ev floyd.StepEvent) {
	l.logger.Debug("calculating matrix", l.with(
		"step", ev.Step,
		"of", ev.Order,
		"node", ev.Node,
		"relaxed", ev.Relaxed,
	)...)
}

// OnComplete logs the build summary.
func (l *Logger) OnComplete(ev floyd.CompleteEvent) {
	l.logger.Info("distance matrices ready", l.with(
		"order", ev.Order,
		"snapshots", ev.Snapshots,
		"elapsed", ev.Elapsed,
	)...)
}

var _ floyd.Observer = (*Logger)(nil)
