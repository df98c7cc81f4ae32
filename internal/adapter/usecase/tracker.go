package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"mesa-budget/internal/core/domain"
	"mesa-budget/internal/core/port"
)

// maxLogLines bounds the log kept for the current run.
const maxLogLines = 2000

// tracker holds the state and the log of the latest run for polling
// clients. Only one run writes to it at a time.
type tracker struct {
	mu      sync.RWMutex
	runID   uuid.UUID
	policy  domain.Policy
	state   domain.RunState
	running bool
	logs    []string
}

func (t *tracker) begin(rc domain.RunContext) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.runID = rc.RunID
	t.policy = rc.Policy
	t.state = domain.StateCollecting
	t.running = true
	t.logs = t.logs[:0]
}

func (t *tracker) setState(s domain.RunState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = s
}

func (t *tracker) finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
}

func (t *tracker) appendLine(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.logs) >= maxLogLines {
		t.logs = append(t.logs[:0], t.logs[len(t.logs)-maxLogLines+1:]...)
	}
	t.logs = append(t.logs, line)
}

func (t *tracker) status() port.RunStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return port.RunStatus{
		RunID:   t.runID,
		Policy:  t.policy,
		State:   t.state,
		Running: t.running,
		Logs:    append([]string{}, t.logs...),
	}
}

// teeHandler copies every record it handles into the tracker log before
// passing it on. Attributes bound with With are kept in every line.
type teeHandler struct {
	slog.Handler
	t *tracker
	// prefix is the rendered form of the bound attributes.
	prefix string
	group  string
}

func (h teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.Format("15:04:05"))
	b.WriteByte(' ')
	b.WriteString(r.Level.String())
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteString(h.prefix)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.group, a)
		return true
	})
	h.t.appendLine(b.String())
	return h.Handler.Handle(ctx, r)
}

func (h teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(h.prefix)
	for _, a := range attrs {
		writeAttr(&b, h.group, a)
	}
	return teeHandler{Handler: h.Handler.WithAttrs(attrs), t: h.t, prefix: b.String(), group: h.group}
}

func (h teeHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return teeHandler{Handler: h.Handler.WithGroup(name), t: h.t, prefix: h.prefix, group: group}
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(b, key, ga)
		}
		return
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value.Resolve())
}
