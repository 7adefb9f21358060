package handler

import (
	"fmt"
	"strings"
	"unicode/utf8"

	classhandler "smedecl/internal/classification/handler"
	"smedecl/internal/declaration"
	"smedecl/internal/industry"
	dErrors "smedecl/pkg/domain-errors"
)

const (
	maxNameLength = 200

	// MaxTargets is the hard ceiling on targets per letter; the configured
	// limit may be lower.
	MaxTargets = 100
)

// EnterpriseRequest is the enterprise part of a target.
type EnterpriseRequest struct {
	Name      string   `json:"name"`
	Employees *float64 `json:"employees,omitempty"`
	Revenue   *float64 `json:"revenue,omitempty"`
	Assets    *float64 `json:"assets,omitempty"`
}

// TargetRequest is one procurement item.
type TargetRequest struct {
	TargetName string            `json:"target_name"`
	Industry   string            `json:"industry"`
	Enterprise EnterpriseRequest `json:"enterprise"`
}

// CreateDeclarationRequest is the HTTP request body for POST /v1/declarations.
type CreateDeclarationRequest struct {
	TendererName    string          `json:"tenderer_name"`
	ProjectName     string          `json:"project_name"`
	DeclarationType string          `json:"declaration_type"`
	Targets         []TargetRequest `json:"targets"`

	parsedType declaration.Type
}

// Normalize trims every free-text field.
func (r *CreateDeclarationRequest) Normalize() {
	if r == nil {
		return
	}
	r.TendererName = strings.TrimSpace(r.TendererName)
	r.ProjectName = strings.TrimSpace(r.ProjectName)
	r.DeclarationType = strings.TrimSpace(r.DeclarationType)
	for i := range r.Targets {
		t := &r.Targets[i]
		t.TargetName = strings.TrimSpace(t.TargetName)
		t.Industry = strings.TrimSpace(t.Industry)
		t.Enterprise.Name = strings.TrimSpace(t.Enterprise.Name)
	}
}

// Validate follows the order Size -> Required -> Syntax -> Semantic.
func (r *CreateDeclarationRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Normalize()

	if len(r.Targets) > MaxTargets {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("at most %d targets are allowed", MaxTargets))
	}
	if tooLong(r.TendererName) || tooLong(r.ProjectName) {
		return dErrors.New(dErrors.CodeValidation, "tenderer_name and project_name must be at most 200 characters")
	}

	if r.TendererName == "" {
		return dErrors.New(dErrors.CodeValidation, "tenderer_name is required")
	}
	if r.ProjectName == "" {
		return dErrors.New(dErrors.CodeValidation, "project_name is required")
	}
	if r.DeclarationType == "" {
		return dErrors.New(dErrors.CodeValidation, "declaration_type is required")
	}
	if len(r.Targets) == 0 {
		return dErrors.New(dErrors.CodeValidation, "at least one target is required")
	}

	t, err := declaration.ParseType(r.DeclarationType)
	if err != nil {
		return err
	}
	r.parsedType = t

	for i, target := range r.Targets {
		if err := validateTarget(i, target); err != nil {
			return err
		}
	}
	return nil
}

func validateTarget(i int, t TargetRequest) error {
	field := func(name string) string {
		return fmt.Sprintf("targets[%d].%s", i, name)
	}

	if tooLong(t.TargetName) || tooLong(t.Enterprise.Name) {
		return dErrors.New(dErrors.CodeValidation, field("target_name")+" and enterprise.name must be at most 200 characters")
	}
	if t.TargetName == "" {
		return dErrors.New(dErrors.CodeValidation, field("target_name")+" is required")
	}
	if t.Enterprise.Name == "" {
		return dErrors.New(dErrors.CodeValidation, field("enterprise.name")+" is required")
	}
	if t.Industry == "" {
		return dErrors.New(dErrors.CodeValidation, field("industry")+" is required")
	}
	if !industry.Known(industry.ID(t.Industry)) {
		return dErrors.New(dErrors.CodeValidation, field("industry")+": unknown industry: "+t.Industry)
	}
	if err := classhandler.ValidateMetrics(t.Enterprise.Employees, t.Enterprise.Revenue, t.Enterprise.Assets); err != nil {
		return dErrors.New(dErrors.CodeValidation, field("enterprise")+": "+err.Error())
	}
	return nil
}

func tooLong(s string) bool {
	return utf8.RuneCountInString(s) > maxNameLength
}

// ToDomain converts the validated request.
func (r *CreateDeclarationRequest) ToDomain() declaration.Request {
	targets := make([]declaration.Target, len(r.Targets))
	for i, t := range r.Targets {
		targets[i] = declaration.Target{
			Name:     t.TargetName,
			Industry: industry.ID(t.Industry),
			Enterprise: declaration.Enterprise{
				Name:      t.Enterprise.Name,
				Employees: t.Enterprise.Employees,
				Revenue:   t.Enterprise.Revenue,
				Assets:    t.Enterprise.Assets,
			},
		}
	}
	return declaration.Request{
		TendererName: r.TendererName,
		ProjectName:  r.ProjectName,
		Type:         r.parsedType,
		Targets:      targets,
	}
}
