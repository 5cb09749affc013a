package cron

import (
	"testing"
)

func TestRegisterJobsRejectsBadSpec(t *testing.T) {
	if err := NewCronManager("every minute", nil).RegisterJobs(); err == nil {
		t.Error("expected parse error")
	}
	if err := NewCronManager("0 */5 * * * *", nil).RegisterJobs(); err != nil {
		t.Errorf("valid spec rejected: %v", err)
	}
}
