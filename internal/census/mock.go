package census

import (
	"context"
	"sync"

	"github.com/srharri3/pumsflow/internal/model"
	"github.com/srharri3/pumsflow/internal/service"
)

// MockClient is a mock implementation of the fetcher interfaces for
// testing. Call tracking is mutex-guarded so concurrent fetch tests
// can count calls safely.
type MockClient struct {
	// Functions that can be set by tests to control behavior
	RowsFn       func(ctx context.Context, spec model.QuerySpec) (*model.RawTable, error)
	DictionaryFn func(ctx context.Context, varName string, year int) (map[string]string, error)

	mu sync.Mutex

	// Call tracking
	RowsCalls       []model.QuerySpec
	DictionaryCalls []DictionaryCall
}

// DictionaryCall records the parameters of a Dictionary call.
type DictionaryCall struct {
	Var  string
	Year int
}

// NewMockClient creates a new mock Census client.
func NewMockClient() *MockClient {
	return &MockClient{
		RowsCalls:       []model.QuerySpec{},
		DictionaryCalls: []DictionaryCall{},
	}
}

// Rows implements service.RowsFetcher.
func (m *MockClient) Rows(ctx context.Context, spec model.QuerySpec) (*model.RawTable, error) {
	m.mu.Lock()
	m.RowsCalls = append(m.RowsCalls, spec)
	m.mu.Unlock()

	if m.RowsFn != nil {
		return m.RowsFn(ctx, spec)
	}

	// Default behavior: a header-only table for the spec's fields
	header := append(spec.Fields(), "state")
	return model.NewRawTable([][]string{header}), nil
}

// Dictionary implements service.DictionaryFetcher.
func (m *MockClient) Dictionary(ctx context.Context, varName string, year int) (map[string]string, error) {
	m.mu.Lock()
	m.DictionaryCalls = append(m.DictionaryCalls, DictionaryCall{Var: varName, Year: year})
	m.mu.Unlock()

	if m.DictionaryFn != nil {
		return m.DictionaryFn(ctx, varName, year)
	}

	// Default behavior: return empty map
	return map[string]string{}, nil
}

// RowsCallCount returns how many Rows calls the mock has seen.
func (m *MockClient) RowsCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.RowsCalls)
}

// DictionaryCallCount returns how many Dictionary calls the mock has
// seen.
func (m *MockClient) DictionaryCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.DictionaryCalls)
}

// Reset clears all call tracking.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RowsCalls = []model.QuerySpec{}
	m.DictionaryCalls = []DictionaryCall{}
}

// Ensure MockClient implements the fetcher interfaces.
var (
	_ service.RowsFetcher       = (*MockClient)(nil)
	_ service.DictionaryFetcher = (*MockClient)(nil)
)
