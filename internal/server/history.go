package server

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// HistoryLog is the append-only record of relayed chat lines backed by a
// single flat text file. Typing indicators and history requests are control
// traffic and are never written. Appends open and close the file per line so
// every write is independently durable; truncation happens when the registry
// empties out.
type HistoryLog struct {
	mu      sync.Mutex
	path    string
	logger  *slog.Logger
	metrics *Metrics
}

// NewHistoryLog creates a history log writing to the given file path.
func NewHistoryLog(path string, logger *slog.Logger, metrics *Metrics) *HistoryLog {
	return &HistoryLog{
		path:    path,
		logger:  logger.With("component", "history"),
		metrics: metrics,
	}
}

func isControlLine(line string) bool {
	return strings.HasPrefix(line, "TYPING:") ||
		strings.HasPrefix(line, "TYPING_END:") ||
		strings.HasPrefix(line, "REQUEST_CHAT_HISTORY")
}

// Append writes one relayed line to the log. Control lines are skipped.
// Failures are reported to the caller but are not fatal to delivery; the
// caller is expected to log and carry on.
func (h *HistoryLog) Append(line string) error {
	if isControlLine(line) {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open history log: %w", err)
	}

	_, writeErr := f.WriteString(line + "\n")
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("append history log: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close history log: %w", closeErr)
	}
	return nil
}

// appendBestEffort records the line and downgrades any failure to a log entry
// plus a metric bump, preserving delivery to clients.
func (h *HistoryLog) appendBestEffort(line string) {
	if err := h.Append(line); err != nil {
		h.logger.Error("history write skipped", "error", err)
		if h.metrics != nil {
			h.metrics.HistoryWriteFailures.Inc()
		}
	}
}

// Lines returns every logged line in append order. A missing file reads as an
// empty history.
func (h *HistoryLog) Lines() ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history log: %w", err)
	}

	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// Truncate resets the log to empty. Called when the last session departs.
func (h *HistoryLog) Truncate() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := os.WriteFile(h.path, nil, 0o644); err != nil {
		return fmt.Errorf("truncate history log: %w", err)
	}
	return nil
}
