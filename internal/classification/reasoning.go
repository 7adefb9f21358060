package classification

import (
	"strings"

	"smedecl/internal/industry"
)

const (
	clauseSeparator = "；"
	reasoningPrefix = "根据" + Regulation + "标准，该企业属于"
	largeSuffix     = "超过中型企业标准上限"
)

// describeRange renders "<min>至<max><unit>" or "<min>及以上<unit>".
func describeRange(metric industry.Metric, r industry.Range) string {
	lower := formatNumber(r.Lower())
	if upper, ok := r.Upper(); ok {
		return lower + "至" + formatNumber(upper) + metric.Unit()
	}
	return lower + "及以上" + metric.Unit()
}

func tierReasoning(tier Tier, rule industry.TierRule, m Metrics) string {
	clauses := make([]string, 0, 3)
	for _, metric := range rule.Bounded() {
		clauses = append(clauses,
			metric.Label()+formatNumber(m.Value(metric))+metric.Unit()+
				"（标准："+describeRange(metric, *rule.Range(metric))+"）")
	}

	return reasoningPrefix + tier.Name() + "，" + rule.Combinator.Phrase() + "以下条件：" +
		strings.Join(clauses, clauseSeparator)
}

// largeReasoning cites only the metrics that actually exceeded their medium max.
func largeReasoning(medium industry.TierRule, m Metrics) string {
	clauses := make([]string, 0, 3)
	for _, metric := range medium.Bounded() {
		upper, ok := medium.Range(metric).Upper()
		if !ok {
			continue
		}
		v := m.Value(metric)
		if v < upper {
			continue
		}
		clauses = append(clauses,
			metric.Label()+formatNumber(v)+metric.Unit()+
				"（超过中型企业标准"+formatNumber(upper)+metric.Unit()+"）")
	}

	if len(clauses) == 0 {
		return reasoningPrefix + TierLarge.Name() + "，" + largeSuffix
	}
	return reasoningPrefix + TierLarge.Name() + "，" + strings.Join(clauses, clauseSeparator) + "，" + largeSuffix
}
