package model

import (
	"time"
)

// PostSummary 单条帖子的去重后表现
type PostSummary struct {
	Platform       Platform   `json:"platform"`
	Title          string     `json:"title"`
	Permalink      string     `json:"permalink"`
	CreatedAt      *time.Time `json:"createdAt"`
	TimeKnown      bool       `json:"timeKnown"`
	Impressions    float64    `json:"impressions"`
	Views          float64    `json:"views"`
	Likes          float64    `json:"likes"`
	Comments       float64    `json:"comments"`
	Reposts        float64    `json:"reposts"`
	Clicks         float64    `json:"clicks"`
	EngagementRate *float64   `json:"engagementRate"`
	ContentType    string     `json:"contentType,omitempty"`
}

// Engagements 点赞 + 评论 + 转发
func (p *PostSummary) Engagements() float64 {
	return p.Likes + p.Comments + p.Reposts
}

// ContentTypeSummary 按内容类型的汇总
type ContentTypeSummary struct {
	Type        string  `json:"type"`
	Posts       int     `json:"posts"`
	Impressions float64 `json:"impressions"`
	Views       float64 `json:"views"`
	Engagements float64 `json:"engagements"`
}

// TimeSlot 发布时段汇总，Hour 为空表示源数据没有具体时间
type TimeSlot struct {
	Label          string       `json:"label"`
	Weekday        time.Weekday `json:"weekday"`
	Hour           *int         `json:"hour"`
	Posts          int          `json:"posts"`
	Impressions    float64      `json:"impressions"`
	Engagements    float64      `json:"engagements"`
	EngagementRate *float64     `json:"engagementRate"`
}
