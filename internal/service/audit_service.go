package service

import (
	"Prism/internal/model"
	"Prism/internal/pkg/consts"
	"Prism/internal/pkg/redis"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
)

type AuditService interface {
	Run(ctx context.Context) (*model.AuditRecord, error)
	Last(ctx context.Context) (*model.AuditRecord, error)
}

type auditServiceImpl struct {
	dashboardSvc DashboardService
}

func NewAuditService(dashboardSvc DashboardService) AuditService {
	return &auditServiceImpl{dashboardSvc: dashboardSvc}
}

// Run 校验全部数据集并记录结果；配置了 Redis 时保存最近一次结果
func (s *auditServiceImpl) Run(ctx context.Context) (*model.AuditRecord, error) {
	report, err := s.dashboardSvc.Validate(ctx)
	if err != nil {
		return nil, err
	}
	record := &model.AuditRecord{CheckedAt: time.Now().UTC(), ValidationReport: *report}

	for _, v := range report.Validations {
		attrs := []any{
			log.String("dataset", string(v.Dataset)),
			log.String("status", string(v.Status)),
			log.String("provenance", string(v.Provenance)),
			log.Int("rows", v.Rows),
			log.Any("missing_required", v.MissingRequired),
		}
		switch v.Status {
		case model.StatusNeedsAttention, model.StatusMissingFile:
			log.WarnContext(ctx, "dataset audit", attrs...)
		default:
			log.InfoContext(ctx, "dataset audit", attrs...)
		}
	}

	if !redis.Enabled() {
		return record, nil
	}
	data, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	if err = redis.SetWithExpiration(ctx, consts.AuditLastReportKey, data, consts.AuditReportTTL); err != nil {
		log.ErrorContext(ctx, "save audit record error", "err", err)
	}
	return record, nil
}

// Last 读取最近一次定时校验结果
func (s *auditServiceImpl) Last(ctx context.Context) (*model.AuditRecord, error) {
	if !redis.Enabled() {
		return nil, ErrAuditDisabled
	}
	raw, err := redis.GetValue(ctx, consts.AuditLastReportKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, ErrAuditNotFound
	}

	var record model.AuditRecord
	if err = json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, err
	}
	return &record, nil
}
