package job

import (
	"Prism/internal/pkg/consts"
	"Prism/internal/pkg/logger"
	"Prism/internal/pkg/redis"
	"Prism/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// DatasetAuditJob 定时校验导出文件，多副本部署时通过 Redis 锁只让一个实例执行
type DatasetAuditJob struct {
	auditSvc service.AuditService
	timeout  time.Duration
}

func NewDatasetAuditJob(auditSvc service.AuditService) *DatasetAuditJob {
	return &DatasetAuditJob{
		auditSvc: auditSvc,
		timeout:  consts.AuditLockTTL,
	}
}

func (s *DatasetAuditJob) Run() {
	ctx, cancel := context.WithTimeout(logger.WithTraceID(context.Background(), "job-audit-"), s.timeout)
	defer cancel()

	if redis.Enabled() {
		lockValue := uuid.NewString()
		ok, err := redis.TryLock(ctx, consts.AuditLock, lockValue, consts.AuditLockTTL, 1)
		if err != nil {
			log.ErrorContext(ctx, "acquire audit lock error", "err", err)
			return
		}
		if !ok {
			log.InfoContext(ctx, "DatasetAuditJob skipped, another instance holds the lock")
			return
		}
		defer redis.UnLock(context.Background(), consts.AuditLock, lockValue)
	}

	start := time.Now()
	record, err := s.auditSvc.Run(ctx)
	if err != nil {
		log.ErrorContext(ctx, "DatasetAuditJob failed", "err", err)
		return
	}
	log.InfoContext(ctx, "DatasetAuditJob finished",
		"datasets", len(record.Validations),
		"sample", record.UsingSampleData,
		"latency", time.Since(start),
	)
}
