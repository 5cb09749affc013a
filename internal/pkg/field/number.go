package field

import (
	"math"
	"strconv"
	"strings"
)

var thousandsReplacer = strings.NewReplacer(",", "", " ", "", "\u00a0", "", "\u202f", "")

// Number 将单元格转为数值，去掉千分位与末尾的 %；空值、非法值与非有限值都视为 0
func Number(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	v, err := strconv.ParseFloat(thousandsReplacer.Replace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Count 计数类字段，负数归零
func Count(s string) float64 {
	return math.Max(Number(s), 0)
}

// Rate 解析比率列，空值或非法值返回 nil，由调用方提供计算出的兜底值
func Rate(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// EngagementRate (likes + secondary + reposts) / impressions，曝光为 0 时返回 nil
func EngagementRate(likes, secondary, reposts, impressions float64) *float64 {
	if impressions <= 0 {
		return nil
	}
	rate := (likes + secondary + reposts) / impressions
	return &rate
}

// RateOr 优先使用显式比率，否则使用兜底值
func RateOr(explicit string, fallback *float64) *float64 {
	if r := Rate(explicit); r != nil {
		return r
	}
	return fallback
}
