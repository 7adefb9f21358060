// Package industry holds the fixed threshold table of 工信部联企业〔2011〕300号.
//
// The table is plain data: fifteen industries, each with a medium, small and
// micro TierRule. Rules bound up to three metrics with half-open ranges
// [min, max) and combine them with ALL or ANY. Nothing here is mutable after
// package init; Lookup hands out copies.
package industry

import (
	"strings"

	dErrors "smedecl/pkg/domain-errors"
)

// ID identifies an industry in the registry.
type ID string

const (
	Manufacturing      ID = "manufacturing"
	Construction       ID = "construction"
	Wholesale          ID = "wholesale"
	Retail             ID = "retail"
	Transportation     ID = "transportation"
	Warehousing        ID = "warehousing"
	Postal             ID = "postal"
	Accommodation      ID = "accommodation"
	Catering           ID = "catering"
	Information        ID = "information"
	Software           ID = "software"
	RealEstate         ID = "real_estate"
	PropertyManagement ID = "property_management"
	LeasingServices    ID = "leasing_services"
	Other              ID = "other"
)

// ParseID normalizes external input into an ID. It does not check membership;
// Lookup reports unknown identifiers.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "industry cannot be empty")
	}
	return ID(s), nil
}

func (id ID) String() string {
	return string(id)
}

// Metric names one of the measured enterprise figures.
type Metric string

const (
	Employees Metric = "employees"
	Revenue   Metric = "revenue"
	Assets    Metric = "assets"
)

// Metrics lists every metric in the order reasoning text cites them.
var Metrics = []Metric{Employees, Revenue, Assets}

// Label is the metric's name in declaration prose.
func (m Metric) Label() string {
	switch m {
	case Employees:
		return "从业人员"
	case Revenue:
		return "营业收入"
	case Assets:
		return "资产总额"
	}
	return string(m)
}

// Unit is the unit suffix used when printing values and bounds.
func (m Metric) Unit() string {
	if m == Employees {
		return "人"
	}
	return "万元"
}

// Combinator decides how the checks of a TierRule are combined.
type Combinator string

const (
	All Combinator = "ALL"
	Any Combinator = "ANY"
)

// Phrase is the clause used in reasoning text.
func (c Combinator) Phrase() string {
	if c == All {
		return "同时满足"
	}
	return "满足其中任一"
}

// Range is a half-open interval [Min, Max). A nil Min means 0, a nil Max means
// unbounded.
type Range struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Lower returns the inclusive lower bound.
func (r Range) Lower() float64 {
	if r.Min == nil {
		return 0
	}
	return *r.Min
}

// Upper returns the exclusive upper bound and whether one is set.
func (r Range) Upper() (float64, bool) {
	if r.Max == nil {
		return 0, false
	}
	return *r.Max, true
}

// Contains reports min <= v < max.
func (r Range) Contains(v float64) bool {
	if v < r.Lower() {
		return false
	}
	if upper, ok := r.Upper(); ok && v >= upper {
		return false
	}
	return true
}

// TierRule is the bound specification for one tier of one industry. A nil
// range means the metric is not evaluated for this tier.
type TierRule struct {
	Employees  *Range     `json:"employees,omitempty"`
	Revenue    *Range     `json:"revenue,omitempty"`
	Assets     *Range     `json:"assets,omitempty"`
	Combinator Combinator `json:"combinator"`
}

// Range returns the bound for m, or nil when the rule does not evaluate it.
func (t TierRule) Range(m Metric) *Range {
	switch m {
	case Employees:
		return t.Employees
	case Revenue:
		return t.Revenue
	case Assets:
		return t.Assets
	}
	return nil
}

// Bounded lists the metrics this rule evaluates, in Metrics order.
func (t TierRule) Bounded() []Metric {
	out := make([]Metric, 0, len(Metrics))
	for _, m := range Metrics {
		if t.Range(m) != nil {
			out = append(out, m)
		}
	}
	return out
}

// Standard is the three-tier threshold definition of one industry.
type Standard struct {
	ID             ID       `json:"id"`
	Name           string   `json:"name"`
	Medium         TierRule `json:"medium"`
	Small          TierRule `json:"small"`
	Micro          TierRule `json:"micro"`
	RequiredFields []Metric `json:"required_fields"`
}

// Summary is the {id, name} pair used to populate selection lists.
type Summary struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}
