package handler

import (
	"time"

	classhandler "smedecl/internal/classification/handler"
	"smedecl/internal/declaration"
)

// TargetResponse is one classified target of the letter.
type TargetResponse struct {
	TargetName     string                         `json:"target_name"`
	EnterpriseName string                         `json:"enterprise_name"`
	Industry       string                         `json:"industry"`
	IndustryName   string                         `json:"industry_name"`
	Classification *classhandler.ClassifyResponse `json:"classification"`
}

// DeclarationResponse is the HTTP response for POST /v1/declarations.
type DeclarationResponse struct {
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	Targets     []TargetResponse `json:"targets"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// FromDeclaration converts a rendered declaration to an HTTP response.
func FromDeclaration(d *declaration.Declaration) *DeclarationResponse {
	targets := make([]TargetResponse, len(d.Lines))
	for i, line := range d.Lines {
		targets[i] = TargetResponse{
			TargetName:     line.Target.Name,
			EnterpriseName: line.Target.Enterprise.Name,
			Industry:       line.Target.Industry.String(),
			IndustryName:   line.IndustryName,
			Classification: classhandler.FromResult(line.Result),
		}
	}
	return &DeclarationResponse{
		Title:       d.Title,
		Content:     d.Content,
		Targets:     targets,
		GeneratedAt: d.GeneratedAt,
	}
}
