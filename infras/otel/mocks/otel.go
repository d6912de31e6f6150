// Package mocks provides an in-memory tracer for tests. Nothing is exported;
// spans are kept so tests can assert on what was traced.
package mocks

import (
	"context"
	"sync"

	"todofeed/infras/otel"
)

// Recorder implements otel.Otel and remembers every span it opens.
type Recorder struct {
	mu    sync.Mutex
	spans []*Span
}

func NewOtel() *Recorder {
	return &Recorder{}
}

// NewScope implements otel.Otel.
func (r *Recorder) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	span := &Span{ScopeName: scopeName, name: spanName, attributes: map[string]any{}}

	r.mu.Lock()
	r.spans = append(r.spans, span)
	r.mu.Unlock()

	return ctx, span
}

// Shutdown implements otel.Otel.
func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Span returns the first span currently carrying the given name, or nil.
func (r *Recorder) Span(name string) *Span {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, span := range r.spans {
		if span.Name() == name {
			return span
		}
	}

	return nil
}

// Len is the number of spans opened so far.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.spans)
}
