package rules

import (
	"testing"
	"time"
)

func TestParseDate_ISO(t *testing.T) {
	d, ok := ParseDate("2024-06-15")
	if !ok {
		t.Fatal("ISO 日期应解析成功")
	}
	if d.Year != 2024 || d.Month != time.June || d.Day != 15 {
		t.Errorf("解析结果错误: %v", d)
	}
}

func TestParseDate_StripTimeSuffix(t *testing.T) {
	tests := []string{
		"2024-06-15T00:00:00Z",
		"2024-06-15T10:30:00.000Z",
		"2024-06-15 10:30",
	}
	for _, s := range tests {
		d, ok := ParseDate(s)
		if !ok {
			t.Errorf("%q 应解析成功", s)
			continue
		}
		if d.String() != "2024-06-15" {
			t.Errorf("%q: 期望 2024-06-15，实际=%s", s, d)
		}
	}
}

func TestParseDate_Placeholders(t *testing.T) {
	// 历史导入数据用 "--" / "---" 表示未完成
	for _, s := range []string{"", "--", "---", "  ", " -- "} {
		if d, ok := ParseDate(s); ok || !d.IsZero() {
			t.Errorf("占位符 %q 应返回零值日期", s)
		}
	}
}

func TestParseDate_Garbage(t *testing.T) {
	for _, s := range []string{"not-a-date", "2024/06/15", "15-06-2024", "2024-13-01"} {
		if _, ok := ParseDate(s); ok {
			t.Errorf("非法输入 %q 不应解析成功", s)
		}
	}
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2024, time.June, 15)
	b := NewDate(2024, time.June, 16)
	c := NewDate(2025, time.January, 1)

	if !a.Before(b) || !b.After(a) {
		t.Error("2024-06-15 应早于 2024-06-16")
	}
	if !b.Before(c) {
		t.Error("跨年比较错误")
	}
	if a.Compare(a) != 0 {
		t.Error("相同日期 Compare 应为 0")
	}
}

func TestDate_AddDays(t *testing.T) {
	// 跨月与跨年进位
	if got := NewDate(2025, time.March, 16).AddDays(1); got != NewDate(2025, time.March, 17) {
		t.Errorf("期望 2025-03-17，实际=%s", got)
	}
	if got := NewDate(2024, time.December, 31).AddDays(1); got != NewDate(2025, time.January, 1) {
		t.Errorf("期望 2025-01-01，实际=%s", got)
	}
	if got := NewDate(2024, time.March, 1).AddDays(-1); got != NewDate(2024, time.February, 29) {
		t.Errorf("闰年回退错误，实际=%s", got)
	}
}

func TestDate_String(t *testing.T) {
	if got := NewDate(2023, time.March, 7).String(); got != "2023-03-07" {
		t.Errorf("期望 2023-03-07，实际=%s", got)
	}
}
