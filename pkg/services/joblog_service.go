package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/painscope/painscope/ent"
	"github.com/painscope/painscope/ent/joblog"
)

// JobLogService writes operational log rows for background processing.
// Writes are best-effort: a failed log write is reported to slog and never
// fails the operation being logged.
type JobLogService struct {
	client *ent.Client
}

// NewJobLogService creates a new JobLogService.
func NewJobLogService(client *ent.Client) *JobLogService {
	return &JobLogService{client: client}
}

// Info writes an info-level log row.
func (s *JobLogService) Info(ctx context.Context, searchID, message string, logCtx map[string]interface{}) {
	s.write(ctx, joblog.LevelInfo, searchID, message, logCtx)
}

// Warn writes a warn-level log row.
func (s *JobLogService) Warn(ctx context.Context, searchID, message string, logCtx map[string]interface{}) {
	s.write(ctx, joblog.LevelWarn, searchID, message, logCtx)
}

// Error writes an error-level log row.
func (s *JobLogService) Error(ctx context.Context, searchID, message string, logCtx map[string]interface{}) {
	s.write(ctx, joblog.LevelError, searchID, message, logCtx)
}

func (s *JobLogService) write(ctx context.Context, level joblog.Level, searchID, message string, logCtx map[string]interface{}) {
	create := s.client.JobLog.Create().
		SetLevel(level).
		SetMessage(message)
	if searchID != "" {
		create.SetSearchID(searchID)
	}
	if logCtx != nil {
		create.SetContext(logCtx)
	}
	if _, err := create.Save(ctx); err != nil {
		slog.Warn("Failed to write job log row",
			"search_id", searchID, "level", level, "message", message, "error", err)
	}
}

// CleanupOldLogs removes log rows older than the retention window.
func (s *JobLogService) CleanupOldLogs(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.JobLog.Delete().
		Where(joblog.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old job logs: %w", err)
	}

	return count, nil
}
