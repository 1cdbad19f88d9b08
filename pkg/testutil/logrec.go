package testutil

import (
	"context"
	"log/slog"
	"sync"
)

// Record is one captured log entry. Attrs are flattened into a
// [key1, value1, key2, value2, ...] slice so tests can use pkg/attrs helpers.
type Record struct {
	Level   slog.Level
	Message string
	Attrs   []any
}

// LogRecorder is a slog.Handler that captures records for assertions. Wrap it
// in slog.New and hand the logger to the code under test:
//
//	rec := testutil.NewLogRecorder()
//	svc, _ := syncer.New(model, solver, syncer.WithLogger(slog.New(rec)))
type LogRecorder struct {
	state *recorderState
	attrs []any // handler-level attrs accumulated via WithAttrs
}

type recorderState struct {
	mu      sync.Mutex
	records []Record
}

func NewLogRecorder() *LogRecorder {
	return &LogRecorder{state: &recorderState{}}
}

func (r *LogRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *LogRecorder) Handle(_ context.Context, rec slog.Record) error {
	attrs := make([]any, 0, len(r.attrs)+rec.NumAttrs()*2)
	attrs = append(attrs, r.attrs...)
	rec.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a.Key, a.Value.Any())
		return true
	})

	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	r.state.records = append(r.state.records, Record{
		Level:   rec.Level,
		Message: rec.Message,
		Attrs:   attrs,
	})
	return nil
}

func (r *LogRecorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	child := &LogRecorder{state: r.state, attrs: append([]any{}, r.attrs...)}
	for _, a := range attrs {
		child.attrs = append(child.attrs, a.Key, a.Value.Any())
	}
	return child
}

// WithGroup is accepted but flattened; grouped attrs keep their leaf keys.
// Good enough for tests, which match on leaf keys only.
func (r *LogRecorder) WithGroup(string) slog.Handler { return r }

// Records returns a copy of everything captured so far.
func (r *LogRecorder) Records() []Record {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	out := make([]Record, len(r.state.records))
	copy(out, r.state.records)
	return out
}

// AtLevel returns captured records matching the given level.
func (r *LogRecorder) AtLevel(level slog.Level) []Record {
	var out []Record
	for _, rec := range r.Records() {
		if rec.Level == level {
			out = append(out, rec)
		}
	}
	return out
}
