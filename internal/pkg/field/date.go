package field

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DateStrategy 按数据集显式选择的日期解析策略
type DateStrategy int

const (
	// GenericDate 通用日期，结果截断到 UTC 自然日
	GenericDate DateStrategy = iota
	// PlatformDateTime 表格序列号 / M/D/Y[ H:MM[ AM|PM]] / 通用解析兜底，保留时刻
	PlatformDateTime
	// TimestampDate 帖子时间戳，保留时刻，允许缺失
	TimestampDate
)

// DateOrder 斜杠日期的月日顺序
type DateOrder string

const (
	MonthFirst DateOrder = "mdy"
	DayFirst   DateOrder = "dmy"
)

const msPerDay = 24 * 60 * 60 * 1000

// maxSerial 9999-12-31 对应的表格序列号
const maxSerial = 2958465

// 通用解析结果的有效年份区间，区间外视为无法解析
const (
	minYear = 1900
	maxYear = 9999
)

var (
	spreadsheetEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	slashDateRe      = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2,4})(?:,?[ T]+(\d{1,2}):(\d{2})(?::(\d{2}))?(?:\s*([AaPp])\.?[Mm]\.?)?)?$`)
)

// DateTime 解析结果，TimeKnown 表示源数据带有具体时刻
type DateTime struct {
	Time      time.Time
	TimeKnown bool
}

// Day 所在自然日
func (d DateTime) Day() time.Time {
	return ToDay(d.Time)
}

// DateParser 绑定策略与月日顺序的解析器
type DateParser struct {
	Strategy DateStrategy
	Order    DateOrder
}

// NewDateParser 构造解析器，未知顺序按月在前处理
func NewDateParser(strategy DateStrategy, order DateOrder) DateParser {
	if order != DayFirst {
		order = MonthFirst
	}
	return DateParser{Strategy: strategy, Order: order}
}

// Parse 解析单元格，失败返回 false
func (p DateParser) Parse(s string) (DateTime, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DateTime{}, false
	}
	switch p.Strategy {
	case PlatformDateTime:
		return parsePlatformDateTime(s, p.Order)
	case TimestampDate:
		return parseLoose(s)
	default:
		dt, ok := parseLoose(s)
		if !ok {
			return DateTime{}, false
		}
		return DateTime{Time: ToDay(dt.Time)}, true
	}
}

// ToDay 统一的 UTC 自然日截断，所有按日分桶的地方都经过这里
func ToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// FromSerial 表格序列号转时间，小数部分为当日时刻
func FromSerial(serial float64) (DateTime, bool) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) || serial <= 0 || serial > maxSerial {
		return DateTime{}, false
	}
	days, frac := math.Modf(serial)
	ms := math.Round(frac * msPerDay)
	t := spreadsheetEpoch.AddDate(0, 0, int(days)).Add(time.Duration(ms) * time.Millisecond)
	return DateTime{Time: t, TimeKnown: frac != 0}, true
}

func parsePlatformDateTime(s string, order DateOrder) (DateTime, bool) {
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if dt, ok := FromSerial(serial); ok {
			return dt, true
		}
		return parseLoose(s)
	}
	if m := slashDateRe.FindStringSubmatch(s); m != nil {
		return fromSlashMatch(m, order)
	}
	return parseLoose(s)
}

func fromSlashMatch(m []string, order DateOrder) (DateTime, bool) {
	first, _ := strconv.Atoi(m[1])
	second, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if len(m[3]) == 2 {
		year += 2000
	}

	month, day := first, second
	if order == DayFirst {
		month, day = second, first
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return DateTime{}, false
	}

	hour, minute, sec := 0, 0, 0
	timeKnown := m[4] != ""
	if timeKnown {
		hour, _ = strconv.Atoi(m[4])
		minute, _ = strconv.Atoi(m[5])
		if m[6] != "" {
			sec, _ = strconv.Atoi(m[6])
		}
		switch strings.ToUpper(m[7]) {
		case "A":
			if hour == 12 {
				hour = 0
			}
		case "P":
			if hour < 12 {
				hour += 12
			}
		}
		if hour > 23 || minute > 59 || sec > 59 {
			return DateTime{}, false
		}
	}

	t := time.Date(year, time.Month(month), day, hour, minute, sec, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return DateTime{}, false
	}
	return DateTime{Time: t, TimeKnown: timeKnown}, true
}

// parseLoose 与地区无关的通用解析，字符串含冒号即视为带时刻
func parseLoose(s string) (DateTime, bool) {
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return DateTime{}, false
	}
	// "9/"、"12:" 之类的残缺值会被解析成 0 年
	if y := t.UTC().Year(); y < minYear || y > maxYear {
		return DateTime{}, false
	}
	return DateTime{Time: t.UTC(), TimeKnown: strings.Contains(s, ":")}, true
}
