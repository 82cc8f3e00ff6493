//go:build !integration

package middleware

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/guttosm/cardapio-service/internal/service"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockLoggingService is a testify mock of service.LoggingService that also keeps every entry it receives.
type MockLoggingService struct {
	mock.Mock
	mu      sync.Mutex
	entries []*model.LogEntry
}

func (m *MockLoggingService) record(entries ...*model.LogEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entries...)
}

// Entries returns a copy of what was written so far.
func (m *MockLoggingService) Entries() []*model.LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*model.LogEntry(nil), m.entries...)
}

func (m *MockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	if args.Error(0) == nil {
		m.record(entry)
	}
	return args.Error(0)
}

func (m *MockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	if args.Error(0) == nil {
		m.record(entries...)
	}
	return args.Error(0)
}

func (m *MockLoggingService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1) //nolint:errcheck
}

func (m *MockLoggingService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1) //nolint:errcheck
}

var _ service.LoggingService = (*MockLoggingService)(nil)

// acceptingLogs returns a mock that accepts every write.
func acceptingLogs() *MockLoggingService {
	m := &MockLoggingService{}
	m.On("CreateLog", mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("CreateLogs", mock.Anything, mock.Anything).Return(nil).Maybe()
	return m
}
