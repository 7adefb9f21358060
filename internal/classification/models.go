package classification

import (
	"strconv"

	"smedecl/internal/industry"
)

// Regulation is the citation embedded in every reasoning string.
const Regulation = "工信部联企业〔2011〕300号"

// Tier is the size classification outcome.
type Tier string

const (
	TierLarge  Tier = "large"
	TierMedium Tier = "medium"
	TierSmall  Tier = "small"
	TierMicro  Tier = "micro"
)

var tierNames = map[Tier]string{
	TierLarge:  "大型企业",
	TierMedium: "中型企业",
	TierSmall:  "小型企业",
	TierMicro:  "微型企业",
}

// Name is the tier's display name in declaration prose.
func (t Tier) Name() string {
	if n, ok := tierNames[t]; ok {
		return n
	}
	return string(t)
}

func (t Tier) String() string {
	return string(t)
}

// Metrics are the enterprise figures to classify. Employees is a head count;
// Revenue and Assets are in 万元.
//
// A nil field is compared as 0, not skipped. For ALL-combinator industries a
// missing required metric therefore blocks medium and small while still
// satisfying micro's "below max" check. Callers that want a different policy
// must fill the field before calling Classify.
type Metrics struct {
	Employees *float64
	Revenue   *float64
	Assets    *float64
}

// NewMetrics builds Metrics with all three values present.
func NewMetrics(employees, revenue, assets float64) Metrics {
	return Metrics{Employees: &employees, Revenue: &revenue, Assets: &assets}
}

// Value returns the comparison value for m, 0 when unset.
func (m Metrics) Value(metric industry.Metric) float64 {
	var p *float64
	switch metric {
	case industry.Employees:
		p = m.Employees
	case industry.Revenue:
		p = m.Revenue
	case industry.Assets:
		p = m.Assets
	}
	if p == nil {
		return 0
	}
	return *p
}

// Criterion explains one metric check.
type Criterion struct {
	Value     float64 `json:"value"`
	Bounds    string  `json:"criterion"`
	Satisfied bool    `json:"passed"`
}

// Result is the outcome of a single Classify call.
type Result struct {
	Tier      Tier                          `json:"enterprise_type"`
	Industry  industry.ID                   `json:"industry"`
	Criteria  map[industry.Metric]Criterion `json:"criteria"`
	Reasoning string                        `json:"reasoning"`
}

// formatNumber prints v in shortest decimal form: 500, 5000.5.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
