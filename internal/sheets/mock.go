package sheets

import (
	"context"
	"slices"
	"sync"

	"github.com/Veraticus/windowwise/internal/model"
	"github.com/Veraticus/windowwise/internal/service"
)

// WriteCall is one comparison handed to a MockWriter.
type WriteCall struct {
	Error           error
	Summary         *service.ComparisonSummary
	Recommendations []model.Recommendation
}

// MockWriter stands in for Writer in tests. It keeps every comparison it is
// given and fails with a preset error, if any.
type MockWriter struct {
	failWith error
	calls    []WriteCall
	mu       sync.Mutex
}

var _ service.ComparisonWriter = (*MockWriter)(nil)

// NewMockWriter returns a writer that accepts everything.
func NewMockWriter() *MockWriter { return &MockWriter{} }

// Write records the comparison.
func (m *MockWriter) Write(_ context.Context, recs []model.Recommendation, summary *service.ComparisonSummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, WriteCall{Recommendations: recs, Summary: summary, Error: m.failWith})
	return m.failWith
}

// SetWriteError makes later writes fail with err.
func (m *MockWriter) SetWriteError(err error) {
	m.mu.Lock()
	m.failWith = err
	m.mu.Unlock()
}

// Calls returns the recorded writes, oldest first.
func (m *MockWriter) Calls() []WriteCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.calls)
}
