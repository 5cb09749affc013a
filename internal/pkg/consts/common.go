package consts

import "time"

const (
	AuditLockTTL   = 5 * time.Minute
	AuditReportTTL = 7 * 24 * time.Hour
)

const (
	TraceHeader = "X-Trace-ID"
)
