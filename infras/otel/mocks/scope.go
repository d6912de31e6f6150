package mocks

import "sync"

// Span implements otel.Scope by keeping what is traced on it.
type Span struct {
	ScopeName string

	mu         sync.Mutex
	name       string
	attributes map[string]any
	events     []string
	errors     []error
	ended      bool
}

// AddEvent implements otel.Scope.
func (s *Span) AddEvent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, name)
}

// SetName implements otel.Scope.
func (s *Span) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.name = name
}

func (s *Span) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.name
}

// End implements otel.Scope.
func (s *Span) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ended = true
}

// SetAttribute implements otel.Scope.
func (s *Span) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attributes[key] = value
}

// SetAttributes implements otel.Scope.
func (s *Span) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

// TraceError implements otel.Scope.
func (s *Span) TraceError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errors = append(s.errors, err)
}

// TraceIfError implements otel.Scope.
func (s *Span) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *Span) Attribute(key string) any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.attributes[key]
}

func (s *Span) Events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.events...)
}

func (s *Span) Errors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]error(nil), s.errors...)
}

func (s *Span) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ended
}
