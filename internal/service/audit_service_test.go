package service

import (
	"Prism/internal/model"
	"Prism/internal/pkg/field"
	"Prism/internal/pkg/source"
	"context"
	"errors"
	"testing"
)

func TestAuditWithoutRedis(t *testing.T) {
	dashboardSvc := NewDashboardService(source.DemoProvider(), field.MonthFirst, DefaultRankingLimits)
	svc := NewAuditService(dashboardSvc)
	ctx := context.Background()

	record, err := svc.Run(ctx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(record.Validations) != len(model.AllDatasets) || record.CheckedAt.IsZero() {
		t.Errorf("record = %+v", record)
	}

	if _, err = svc.Last(ctx); !errors.Is(err, ErrAuditDisabled) {
		t.Errorf("last err = %v", err)
	}
}
