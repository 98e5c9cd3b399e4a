package rules

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) Date { return NewDate(y, m, d) }

func testIntervals() []Interval {
	return []Interval{
		// 故意乱序插入，NewIndex 应自行排序
		{CourseKey: KeyAgency, ApprovalNumber: "1035-1132", ValidFrom: date(2023, 3, 17), ValidTo: date(2025, 3, 16)},
		{CourseKey: KeyAgency, ApprovalNumber: "1035-1114", ValidFrom: date(2021, 3, 17), ValidTo: date(2023, 3, 16)},
		{CourseKey: KeyAgency, ApprovalNumber: "1035-1144", ValidFrom: date(2025, 3, 17), ValidTo: date(2027, 3, 16)},
		{CourseKey: KeyEthics, ApprovalNumber: "1035-1133", ValidFrom: date(2023, 3, 17), ValidTo: date(2025, 3, 16)},
	}
}

func TestIndex_Lookup_InsideInterval(t *testing.T) {
	ix := NewIndex(testIntervals())

	iv, ok := ix.Lookup(KeyAgency, date(2024, 6, 15))
	if !ok {
		t.Fatal("2024-06-15 应命中 AGENCY 区间")
	}
	if iv.ApprovalNumber != "1035-1132" {
		t.Errorf("期望 1035-1132，实际=%s", iv.ApprovalNumber)
	}
}

func TestIndex_Lookup_BoundariesInclusive(t *testing.T) {
	ix := NewIndex(testIntervals())

	// 区间两端均含
	for _, d := range []Date{date(2023, 3, 17), date(2025, 3, 16)} {
		iv, ok := ix.Lookup(KeyAgency, d)
		if !ok || iv.ApprovalNumber != "1035-1132" {
			t.Errorf("边界日 %s 应命中 1035-1132，实际=%s (ok=%v)", d, iv.ApprovalNumber, ok)
		}
	}

	// 边界外一天命中相邻周期，而非本区间
	iv, ok := ix.Lookup(KeyAgency, date(2023, 3, 16))
	if !ok || iv.ApprovalNumber != "1035-1114" {
		t.Errorf("2023-03-16 应命中上一周期 1035-1114，实际=%s (ok=%v)", iv.ApprovalNumber, ok)
	}
	iv, ok = ix.Lookup(KeyAgency, date(2025, 3, 17))
	if !ok || iv.ApprovalNumber != "1035-1144" {
		t.Errorf("2025-03-17 应命中下一周期 1035-1144，实际=%s (ok=%v)", iv.ApprovalNumber, ok)
	}
}

func TestIndex_Lookup_OutsideAllIntervals(t *testing.T) {
	ix := NewIndex(testIntervals())

	if _, ok := ix.Lookup(KeyAgency, date(2019, 1, 1)); ok {
		t.Error("记录范围之前的日期不应命中")
	}
	if _, ok := ix.Lookup(KeyAgency, date(2030, 1, 1)); ok {
		t.Error("记录范围之后的日期不应命中")
	}
}

func TestIndex_Lookup_UnknownKey(t *testing.T) {
	ix := NewIndex(testIntervals())

	if _, ok := ix.Lookup(KeyTrustFund, date(2024, 6, 15)); ok {
		t.Error("索引中不存在的类别不应命中")
	}
}

func TestIndex_Lookup_ZeroDate(t *testing.T) {
	ix := NewIndex(testIntervals())

	if _, ok := ix.Lookup(KeyAgency, Date{}); ok {
		t.Error("零值日期不应命中任何区间")
	}
}

func TestIndex_Lookup_OverlapTieBreak(t *testing.T) {
	// 数据异常：两个区间重叠时确定性地取 ValidFrom 最新的一条
	ix := NewIndex([]Interval{
		{CourseKey: KeyEthics, ApprovalNumber: "OLD", ValidFrom: date(2023, 1, 1), ValidTo: date(2024, 12, 31)},
		{CourseKey: KeyEthics, ApprovalNumber: "NEW", ValidFrom: date(2024, 1, 1), ValidTo: date(2025, 12, 31)},
	})

	iv, ok := ix.Lookup(KeyEthics, date(2024, 6, 1))
	if !ok {
		t.Fatal("重叠日期应命中")
	}
	if iv.ApprovalNumber != "NEW" {
		t.Errorf("重叠时应取 ValidFrom 最新的区间，实际=%s", iv.ApprovalNumber)
	}
}

func TestIndex_Validate_Clean(t *testing.T) {
	ix := NewIndex(testIntervals())

	if anomalies := ix.Validate(); len(anomalies) != 0 {
		t.Errorf("首尾相接的数据不应报异常: %+v", anomalies)
	}
}

func TestIndex_Validate_Overlap(t *testing.T) {
	ix := NewIndex([]Interval{
		{CourseKey: KeyEthics, ApprovalNumber: "A", ValidFrom: date(2023, 1, 1), ValidTo: date(2024, 6, 30)},
		{CourseKey: KeyEthics, ApprovalNumber: "B", ValidFrom: date(2024, 1, 1), ValidTo: date(2025, 12, 31)},
	})

	anomalies := ix.Validate()
	if len(anomalies) != 1 {
		t.Fatalf("期望1条异常，实际=%d", len(anomalies))
	}
	if anomalies[0].Kind != "overlap" || anomalies[0].CourseKey != KeyEthics {
		t.Errorf("异常内容错误: %+v", anomalies[0])
	}
}

func TestIndex_Validate_Gap(t *testing.T) {
	ix := NewIndex([]Interval{
		{CourseKey: KeyAgency, ApprovalNumber: "A", ValidFrom: date(2021, 3, 17), ValidTo: date(2023, 3, 16)},
		{CourseKey: KeyAgency, ApprovalNumber: "B", ValidFrom: date(2023, 4, 1), ValidTo: date(2025, 3, 16)},
	})

	anomalies := ix.Validate()
	if len(anomalies) != 1 {
		t.Fatalf("期望1条异常，实际=%d", len(anomalies))
	}
	if anomalies[0].Kind != "gap" {
		t.Errorf("期望 gap 异常，实际=%s", anomalies[0].Kind)
	}
}

func TestIndex_LenAndKeys(t *testing.T) {
	ix := NewIndex(testIntervals())

	if ix.Len() != 4 {
		t.Errorf("期望4条区间，实际=%d", ix.Len())
	}
	keys := ix.Keys()
	if len(keys) != 2 || keys[0] != KeyAgency || keys[1] != KeyEthics {
		t.Errorf("Keys 排序错误: %v", keys)
	}
}
