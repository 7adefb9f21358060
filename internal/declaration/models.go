// Package declaration renders the 中小企业声明函 (SME declaration letter)
// required by 财库〔2020〕46号 from classified enterprises.
package declaration

import (
	"strings"
	"time"

	"smedecl/internal/classification"
	"smedecl/internal/industry"
	dErrors "smedecl/pkg/domain-errors"
)

// Type selects the procurement category the letter is written for.
type Type string

const (
	TypeGoods        Type = "goods"
	TypeConstruction Type = "construction"
	TypeService      Type = "service"
)

var typeLabels = map[Type]string{
	TypeGoods:        "货物",
	TypeConstruction: "工程",
	TypeService:      "服务",
}

var typeRoles = map[Type]string{
	TypeGoods:        "制造商",
	TypeConstruction: "承建企业",
	TypeService:      "承接企业",
}

var typeCommitments = map[Type]string{
	TypeGoods:        "提供的货物全部由符合政策要求的中小企业制造",
	TypeConstruction: "工程的施工单位全部为符合政策要求的中小企业",
	TypeService:      "服务全部由符合政策要求的中小企业承接",
}

// ParseType constructs a Type from external input.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := typeLabels[t]; !ok {
		return "", dErrors.New(dErrors.CodeInvalidInput, "declaration_type must be one of goods, construction, service")
	}
	return t, nil
}

// Label is the bracketed category in the letter title.
func (t Type) Label() string {
	return typeLabels[t]
}

// Role names the enterprise's part in the procurement.
func (t Type) Role() string {
	return typeRoles[t]
}

// TierName returns the Chinese display name for a tier identifier, or the
// input unchanged when it is not a known tier.
func TierName(tier string) string {
	return classification.Tier(tier).Name()
}

// Enterprise is the company declared for one target.
type Enterprise struct {
	Name      string
	Employees *float64
	Revenue   *float64
	Assets    *float64
}

// Metrics converts the enterprise figures into classifier input.
func (e Enterprise) Metrics() classification.Metrics {
	return classification.Metrics{
		Employees: e.Employees,
		Revenue:   e.Revenue,
		Assets:    e.Assets,
	}
}

// Target is one procurement item (标的) and the enterprise behind it.
type Target struct {
	Name       string
	Industry   industry.ID
	Enterprise Enterprise
}

// Request collects everything needed to write one letter.
type Request struct {
	TendererName string
	ProjectName  string
	Type         Type
	Targets      []Target
}

// Line is a target after classification.
type Line struct {
	Target       Target
	IndustryName string
	Result       *classification.Result
}

// Declaration is the rendered letter plus the classifications behind it.
type Declaration struct {
	Title       string
	Content     string
	Lines       []Line
	GeneratedAt time.Time
}
