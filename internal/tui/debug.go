package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DebugLogger logs TUI state, keystrokes, and events to a file.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "moim-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{
		file:    f,
		enabled: true,
	}

	debugLog.log("DEBUG_START", map[string]any{
		"log_file": DebugLogPath,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.file != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.file.Close()
	}
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.file == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.file, "%s\n", b)
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key":  msg.String(),
		"type": fmt.Sprintf("%T", msg.Type),
	})
}

// LogStepChange logs a form step transition.
func LogStepChange(from, to Step, reason string) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("STEP_CHANGE", map[string]any{
		"from":   stepString(from),
		"to":     stepString(to),
		"reason": reason,
	})
}

// LogPopup logs calendar popup transitions.
func LogPopup(card int, action string) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("POPUP", map[string]any{
		"card":   card,
		"action": action,
	})
}

// LogReconcile logs a debounced time reconciliation pass.
func LogReconcile(card int, outcome ReconcileOutcome, startMinutes, endMinutes int) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("RECONCILE", map[string]any{
		"card":    card,
		"outcome": outcomeString(outcome),
		"start":   startMinutes,
		"end":     endMinutes,
	})
}

// LogDateSelect logs a confirmed calendar selection.
func LogDateSelect(card int, date string) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("DATE_SELECT", map[string]any{
		"card": card,
		"date": date,
	})
}

// LogError logs an error.
func LogError(context string, err error) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}

func outcomeString(o ReconcileOutcome) string {
	switch o {
	case ReconcileFollowed:
		return "followed"
	case ReconcileAccepted:
		return "accepted"
	case ReconcileClamped:
		return "clamped"
	case ReconcileReverted:
		return "reverted"
	default:
		return "none"
	}
}
