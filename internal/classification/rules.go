package classification

import "smedecl/internal/industry"

// Classify places an enterprise into a tier for the given industry.
// This is pure domain logic: no I/O, no shared state. The only error is an
// *industry.UnknownIndustryError from the registry.
//
// Rule priority:
//  1. Large: any medium-bounded metric at or above its medium max
//  2. Medium: the medium rule under its own combinator
//  3. Small: the small rule under its own combinator
//  4. Micro: everything else
func Classify(id industry.ID, m Metrics) (*Result, error) {
	std, err := industry.Lookup(id)
	if err != nil {
		return nil, err
	}
	return evaluate(std, m), nil
}

func evaluate(std industry.Standard, m Metrics) *Result {
	// The large check is OR across every bounded metric regardless of the
	// medium combinator. Exceeding one upper bound is enough.
	if exceedsMedium(std.Medium, m) {
		return &Result{
			Tier:      TierLarge,
			Industry:  std.ID,
			Criteria:  largeCriteria(std.Medium, m),
			Reasoning: largeReasoning(std.Medium, m),
		}
	}

	tier, rule := TierMicro, std.Micro
	switch {
	case matches(std.Medium, m):
		tier, rule = TierMedium, std.Medium
	case matches(std.Small, m):
		tier, rule = TierSmall, std.Small
	}

	return &Result{
		Tier:      tier,
		Industry:  std.ID,
		Criteria:  tierCriteria(rule, m),
		Reasoning: tierReasoning(tier, rule, m),
	}
}

// exceedsMedium reports whether any metric with a medium upper bound is at or
// above it. A rule without upper bounds never exceeds.
func exceedsMedium(medium industry.TierRule, m Metrics) bool {
	for _, metric := range medium.Bounded() {
		upper, ok := medium.Range(metric).Upper()
		if ok && m.Value(metric) >= upper {
			return true
		}
	}
	return false
}

// matches applies the rule's combinator to its range checks. A rule that
// evaluates no metric never matches.
func matches(rule industry.TierRule, m Metrics) bool {
	bounded := rule.Bounded()
	if len(bounded) == 0 {
		return false
	}

	for _, metric := range bounded {
		ok := rule.Range(metric).Contains(m.Value(metric))
		if rule.Combinator == industry.Any && ok {
			return true
		}
		if rule.Combinator != industry.Any && !ok {
			return false
		}
	}
	return rule.Combinator != industry.Any
}

func tierCriteria(rule industry.TierRule, m Metrics) map[industry.Metric]Criterion {
	out := make(map[industry.Metric]Criterion, 3)
	for _, metric := range rule.Bounded() {
		r := rule.Range(metric)
		v := m.Value(metric)
		out[metric] = Criterion{
			Value:     v,
			Bounds:    describeRange(metric, *r),
			Satisfied: r.Contains(v),
		}
	}
	return out
}

func largeCriteria(medium industry.TierRule, m Metrics) map[industry.Metric]Criterion {
	out := make(map[industry.Metric]Criterion, 3)
	for _, metric := range medium.Bounded() {
		upper, ok := medium.Range(metric).Upper()
		if !ok {
			continue
		}
		v := m.Value(metric)
		out[metric] = Criterion{
			Value:     v,
			Bounds:    "超过" + formatNumber(upper) + metric.Unit(),
			Satisfied: v >= upper,
		}
	}
	return out
}
