package consts

const (
	AuditLastReportKey = "prism:audit:last"
)

const (
	AuditLock = "prism:audit:lock"
)
