package export

import (
	"context"

	"github.com/srharri3/pumsflow/internal/model"
	"github.com/srharri3/pumsflow/internal/service"
)

// MockExporter is a mock implementation of service.Exporter for
// testing.
type MockExporter struct {
	// ExportFn can be set by tests to control behavior
	ExportFn func(ctx context.Context, dataset *model.Dataset, name string) error

	// Call tracking
	ExportCalls []ExportCall
}

// ExportCall records the parameters of an Export call.
type ExportCall struct {
	Dataset *model.Dataset
	Name    string
}

// NewMockExporter creates a new mock exporter.
func NewMockExporter() *MockExporter {
	return &MockExporter{
		ExportCalls: []ExportCall{},
	}
}

// Export implements service.Exporter.
func (m *MockExporter) Export(ctx context.Context, dataset *model.Dataset, name string) error {
	m.ExportCalls = append(m.ExportCalls, ExportCall{Dataset: dataset, Name: name})

	if m.ExportFn != nil {
		return m.ExportFn(ctx, dataset, name)
	}

	return nil
}

// Reset clears all call tracking.
func (m *MockExporter) Reset() {
	m.ExportCalls = []ExportCall{}
}

// Ensure MockExporter implements the exporter interface.
var _ service.Exporter = (*MockExporter)(nil)
