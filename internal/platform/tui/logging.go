package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// NewLogger creates a timestamped logger. Debug enables per-event logging.
func NewLogger(w io.Writer, prefix string, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// lifecycleEvents are logged at Info; everything else is Debug.
var lifecycleEvents = map[string]bool{
	"game started": true,
	"topped out":   true,
	"restart":      true,
}

// logEvents writes game events to the logger.
func logEvents(logger *log.Logger, events []core.Event) {
	if logger == nil {
		return
	}
	for _, ev := range events {
		if lifecycleEvents[ev.Name] {
			logger.Info(ev.Name, ev.Attrs...)
			continue
		}
		logger.Debug(ev.Name, ev.Attrs...)
	}
}
