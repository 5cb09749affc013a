package model

import (
	"time"
)

// Counters 每日/每月共用的 16 个计数指标
type Counters struct {
	Views                   float64 `json:"views"`
	Likes                   float64 `json:"likes"`
	Comments                float64 `json:"comments"`
	Reposts                 float64 `json:"reposts"`
	Clicks                  float64 `json:"clicks"`
	Shares                  float64 `json:"shares"`
	Bookmarks               float64 `json:"bookmarks"`
	ProfileVisits           float64 `json:"profileVisits"`
	Engagements             float64 `json:"engagements"`
	VideoViews              float64 `json:"videoViews"`
	VideoWatchViews         float64 `json:"videoWatchViews"`
	VideoWatchTimeMs        float64 `json:"videoWatchTimeMs"`
	VideoCompletionWeighted float64 `json:"videoCompletionWeighted"`
	Posts                   float64 `json:"posts"`
	NewFollows              float64 `json:"newFollows"`
	Unfollows               float64 `json:"unfollows"`
}

// CounterField 计数字段名与取址函数
type CounterField struct {
	Name string
	Ptr  func(c *Counters) *float64
}

// CounterFields 字段顺序固定，环比计算与合并均按此遍历
var CounterFields = []CounterField{
	{"views", func(c *Counters) *float64 { return &c.Views }},
	{"likes", func(c *Counters) *float64 { return &c.Likes }},
	{"comments", func(c *Counters) *float64 { return &c.Comments }},
	{"reposts", func(c *Counters) *float64 { return &c.Reposts }},
	{"clicks", func(c *Counters) *float64 { return &c.Clicks }},
	{"shares", func(c *Counters) *float64 { return &c.Shares }},
	{"bookmarks", func(c *Counters) *float64 { return &c.Bookmarks }},
	{"profileVisits", func(c *Counters) *float64 { return &c.ProfileVisits }},
	{"engagements", func(c *Counters) *float64 { return &c.Engagements }},
	{"videoViews", func(c *Counters) *float64 { return &c.VideoViews }},
	{"videoWatchViews", func(c *Counters) *float64 { return &c.VideoWatchViews }},
	{"videoWatchTimeMs", func(c *Counters) *float64 { return &c.VideoWatchTimeMs }},
	{"videoCompletionWeighted", func(c *Counters) *float64 { return &c.VideoCompletionWeighted }},
	{"posts", func(c *Counters) *float64 { return &c.Posts }},
	{"newFollows", func(c *Counters) *float64 { return &c.NewFollows }},
	{"unfollows", func(c *Counters) *float64 { return &c.Unfollows }},
}

// Add 逐字段累加
func (c *Counters) Add(o Counters) {
	for _, f := range CounterFields {
		*f.Ptr(c) += *f.Ptr(&o)
	}
}

// Max 逐字段取较大值
func (c *Counters) Max(o Counters) {
	for _, f := range CounterFields {
		if v := *f.Ptr(&o); v > *f.Ptr(c) {
			*f.Ptr(c) = v
		}
	}
}

// Get 按字段名读取，未知字段返回 0
func (c Counters) Get(name string) float64 {
	for _, f := range CounterFields {
		if f.Name == name {
			return *f.Ptr(&c)
		}
	}
	return 0
}

// DailyMetric 单平台单日指标
type DailyMetric struct {
	Platform Platform  `json:"platform"`
	Day      time.Time `json:"day"`
	Counters
}

// MonthSummary 月度汇总
type MonthSummary struct {
	MonthKey string `json:"monthKey"`
	Days     int    `json:"days"`
	Counters
}

// Coverage 序列覆盖的日期范围
type Coverage struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Days  int       `json:"days"`
}

// DataQualitySummary 数据完整性概览
type DataQualitySummary struct {
	Coverage       *Coverage `json:"coverage"`
	ExpectedDays   int       `json:"expectedDays"`
	MissingDays    int       `json:"missingDays"`
	ZeroMetricDays int       `json:"zeroMetricDays"`
}

// MonthGrowth 最近两个月的环比
type MonthGrowth struct {
	Previous string              `json:"previous,omitempty"`
	Current  string              `json:"current,omitempty"`
	Deltas   map[string]*float64 `json:"deltas"`
}
