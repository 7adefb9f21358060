package handler

import (
	"smedecl/internal/classification"
	"smedecl/internal/industry"
)

// IndustriesResponse is the HTTP response for GET /v1/industries.
type IndustriesResponse struct {
	Industries []industry.Summary `json:"industries"`
}

// CriterionResponse is one metric check in a classification response.
type CriterionResponse struct {
	Value     float64 `json:"value"`
	Criterion string  `json:"criterion"`
	Passed    bool    `json:"passed"`
}

// ClassifyResponse is the HTTP response for POST /v1/classify.
type ClassifyResponse struct {
	Industry       string                       `json:"industry"`
	EnterpriseType string                       `json:"enterprise_type"`
	TypeName       string                       `json:"type_name"`
	Criteria       map[string]CriterionResponse `json:"criteria"`
	Reasoning      string                       `json:"reasoning"`
}

// FromResult converts a domain Result to an HTTP response.
func FromResult(result *classification.Result) *ClassifyResponse {
	criteria := make(map[string]CriterionResponse, len(result.Criteria))
	for metric, c := range result.Criteria {
		criteria[string(metric)] = CriterionResponse{
			Value:     c.Value,
			Criterion: c.Bounds,
			Passed:    c.Satisfied,
		}
	}
	return &ClassifyResponse{
		Industry:       result.Industry.String(),
		EnterpriseType: result.Tier.String(),
		TypeName:       result.Tier.Name(),
		Criteria:       criteria,
		Reasoning:      result.Reasoning,
	}
}
