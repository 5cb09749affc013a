package model

import "time"

// ValidationStatus 数据集校验状态
type ValidationStatus string

const (
	StatusOK             ValidationStatus = "ok"
	StatusPartial        ValidationStatus = "partial"
	StatusNeedsAttention ValidationStatus = "needs_attention"
	StatusMissingFile    ValidationStatus = "missing_file"
)

// CsvValidation 单个数据集的列校验结果
type CsvValidation struct {
	Dataset         DatasetID        `json:"dataset"`
	Label           string           `json:"label"`
	File            string           `json:"file"`
	Provenance      Provenance       `json:"provenance"`
	Rows            int              `json:"rows"`
	MissingRequired []string         `json:"missingRequired"`
	MissingOptional []string         `json:"missingOptional"`
	Status          ValidationStatus `json:"status"`
}

// ValidationReport 仅校验时的输出
type ValidationReport struct {
	Validations     []CsvValidation `json:"validations"`
	UsingSampleData bool            `json:"usingSampleData"`
}

// PlatformSeries 单个平台（或合并）的时间序列视图
type PlatformSeries struct {
	Platform    Platform           `json:"platform"`
	Daily       []DailyMetric      `json:"daily"`
	Monthly     []MonthSummary     `json:"monthly"`
	Totals      MonthSummary       `json:"totals"`
	Coverage    *Coverage          `json:"coverage"`
	DataQuality DataQualitySummary `json:"dataQuality"`
	Growth      MonthGrowth        `json:"growth"`
}

// PostRanking 单平台的帖子排行
type PostRanking struct {
	Platform       Platform             `json:"platform"`
	Posts          int                  `json:"posts"`
	TopImpressions []PostSummary        `json:"topImpressions"`
	TopEngagement  []PostSummary        `json:"topEngagement"`
	ContentTypes   []ContentTypeSummary `json:"contentTypes"`
	TimeSlots      []TimeSlot           `json:"timeSlots"`
}

// Dashboard 一次管道运行的完整输出
type Dashboard struct {
	X               PlatformSeries  `json:"x"`
	LinkedIn        PlatformSeries  `json:"linkedin"`
	Combined        PlatformSeries  `json:"combined"`
	XPosts          PostRanking     `json:"xPosts"`
	LinkedInPosts   PostRanking     `json:"linkedinPosts"`
	Validations     []CsvValidation `json:"validations"`
	UsingSampleData bool            `json:"usingSampleData"`

	// 去重后的全部帖子，供按需排序接口使用
	AllXPosts        []PostSummary `json:"-"`
	AllLinkedInPosts []PostSummary `json:"-"`
}

// AuditRecord 定时校验的一次结果
type AuditRecord struct {
	CheckedAt time.Time `json:"checkedAt"`
	ValidationReport
}
