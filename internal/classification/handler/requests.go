package handler

import (
	"strings"

	"smedecl/internal/classification"
	"smedecl/internal/industry"
	dErrors "smedecl/pkg/domain-errors"
)

// maxIndustryLength bounds the industry identifier accepted from clients.
const maxIndustryLength = 64

// ClassifyRequest is the HTTP request body for POST /v1/classify.
// Metric fields are optional; an omitted metric is classified as 0.
type ClassifyRequest struct {
	Industry  string   `json:"industry"`
	Employees *float64 `json:"employees,omitempty"`
	Revenue   *float64 `json:"revenue,omitempty"`
	Assets    *float64 `json:"assets,omitempty"`

	parsedIndustry industry.ID
}

// Validate follows the order Size -> Required -> Syntax -> Semantic.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *ClassifyRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	if len(r.Industry) > maxIndustryLength {
		return dErrors.New(dErrors.CodeValidation, "industry must be at most 64 characters")
	}

	r.Industry = strings.TrimSpace(r.Industry)
	if r.Industry == "" {
		return dErrors.New(dErrors.CodeValidation, "industry is required")
	}
	id, err := industry.ParseID(r.Industry)
	if err != nil {
		return err
	}
	r.parsedIndustry = id

	return ValidateMetrics(r.Employees, r.Revenue, r.Assets)
}

// ParsedIndustry returns the validated industry identifier.
func (r *ClassifyRequest) ParsedIndustry() industry.ID {
	return r.parsedIndustry
}

// Metrics converts the request into classifier input.
func (r *ClassifyRequest) Metrics() classification.Metrics {
	return classification.Metrics{
		Employees: r.Employees,
		Revenue:   r.Revenue,
		Assets:    r.Assets,
	}
}

// ValidateMetrics rejects negative figures. The classifier itself accepts any
// value; this check belongs to the HTTP boundary.
func ValidateMetrics(employees, revenue, assets *float64) error {
	if employees != nil && *employees < 0 {
		return dErrors.New(dErrors.CodeValidation, "employees must not be negative")
	}
	if revenue != nil && *revenue < 0 {
		return dErrors.New(dErrors.CodeValidation, "revenue must not be negative")
	}
	if assets != nil && *assets < 0 {
		return dErrors.New(dErrors.CodeValidation, "assets must not be negative")
	}
	return nil
}
