package dto

import (
	"Prism/internal/model"
	"time"

	"github.com/jinzhu/copier"
)

// DayLayout 对外输出的日期格式
const DayLayout = "2006-01-02"

// DashboardQueryDTO 仪表盘查询参数
type DashboardQueryDTO struct {
	DateOrder string `form:"date_order" binding:"omitempty,oneof=mdy dmy"`
}

// PostQueryDTO 帖子排行查询参数
type PostQueryDTO struct {
	Platform  string `form:"platform" binding:"required,oneof=x linkedin"`
	Sort      string `form:"sort" binding:"omitempty,oneof=impressions engagement"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=50"`
	DateOrder string `form:"date_order" binding:"omitempty,oneof=mdy dmy"`
}

// DailyPointDTO 每日指标
type DailyPointDTO struct {
	Day string `json:"day"` // 2025-02-01
	model.Counters
}

// CoverageDTO 覆盖范围
type CoverageDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

// DataQualityDTO 数据完整性
type DataQualityDTO struct {
	Coverage       *CoverageDTO `json:"coverage"`
	ExpectedDays   int          `json:"expectedDays"`
	MissingDays    int          `json:"missingDays"`
	ZeroMetricDays int          `json:"zeroMetricDays"`
}

// SeriesDTO 单平台时间序列
type SeriesDTO struct {
	Platform    string               `json:"platform"`
	Daily       []DailyPointDTO      `json:"daily"`
	Monthly     []model.MonthSummary `json:"monthly"`
	Totals      model.MonthSummary   `json:"totals"`
	Coverage    *CoverageDTO         `json:"coverage"`
	DataQuality DataQualityDTO       `json:"dataQuality"`
	Growth      model.MonthGrowth    `json:"growth"`
}

// DashboardDTO 仪表盘返回体
type DashboardDTO struct {
	X               SeriesDTO             `json:"x"`
	LinkedIn        SeriesDTO             `json:"linkedin"`
	Combined        SeriesDTO             `json:"combined"`
	XPosts          model.PostRanking     `json:"xPosts"`
	LinkedInPosts   model.PostRanking     `json:"linkedinPosts"`
	Validations     []model.CsvValidation `json:"validations"`
	UsingSampleData bool                  `json:"usingSampleData"`
}

// PostListDTO 按需排行的帖子列表
type PostListDTO struct {
	Platform string              `json:"platform"`
	Sort     string              `json:"sort"`
	Posts    []model.PostSummary `json:"posts"`
}

var dayConverter = copier.TypeConverter{
	SrcType: time.Time{},
	DstType: copier.String,
	Fn: func(src interface{}) (interface{}, error) {
		t, _ := src.(time.Time)
		return t.UTC().Format(DayLayout), nil
	},
}

// NewDashboardDTO 将内部模型转换为对外结构，日期统一输出为 YYYY-MM-DD
func NewDashboardDTO(d *model.Dashboard) (*DashboardDTO, error) {
	out := &DashboardDTO{}
	err := copier.CopyWithOption(out, d, copier.Option{
		DeepCopy:   true,
		Converters: []copier.TypeConverter{dayConverter},
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
