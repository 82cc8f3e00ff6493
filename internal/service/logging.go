package service

import (
	"context"
	"time"

	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/guttosm/cardapio-service/internal/repository"
)

const maxLogQueryLimit = 500

// LoggingService persists and reads request and audit log entries.
type LoggingService interface {
	CreateLog(ctx context.Context, entry *model.LogEntry) error
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

// LoggingServiceImpl implements LoggingService on top of a logs repository.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
	now  func() time.Time
}

// NewLoggingService creates a new logging service.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{repo: repo, now: time.Now}
}

// CreateLog stores a single entry, stamping its timestamp when missing.
func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	if entry == nil {
		return nil
	}
	s.stamp(entry)
	return s.repo.Create(ctx, entry)
}

// CreateLogs stores entries in bulk. Nil entries are skipped.
func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	batch := make([]*model.LogEntry, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		s.stamp(e)
		batch = append(batch, e)
	}
	if len(batch) == 0 {
		return nil
	}
	return s.repo.CreateMany(ctx, batch)
}

// QueryLogs returns matching entries, newest first. The page size is capped.
func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if opts.Limit <= 0 || opts.Limit > maxLogQueryLimit {
		opts.Limit = maxLogQueryLimit
	}
	if opts.Skip < 0 {
		opts.Skip = 0
	}
	return s.repo.Query(ctx, opts)
}

func (s *LoggingServiceImpl) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	if s.repo == nil {
		return 0, ErrRepositoryNotConfigured
	}
	return s.repo.Count(ctx, opts)
}

func (s *LoggingServiceImpl) stamp(entry *model.LogEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now().UTC()
	}
}
