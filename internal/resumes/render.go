package resumes

import (
	"context"

	"resume-builder/internal/sanitize"
)

// RenderContext is the template-ready binding set for one résumé view.
// It always carries both binding shapes: the nested "data" object and the
// flattened top-level names, since the template variants disagree on
// which one they read. Both come from the same normalization pass.
type RenderContext map[string]any

// Prepare reloads the record behind handle and builds its template
// bindings. A stale or missing handle yields ErrNotFound.
func (s *Service) Prepare(ctx context.Context, handle string) (RenderContext, error) {
	rec, err := s.Repo.Load(ctx, handle)
	if err != nil {
		return nil, err
	}

	data := withDefaults(rec.Data)
	return RenderContext{
		"data":         data,
		"photo":        data.Photo,
		"photo_exists": data.PhotoExists,
		"initials":     sanitize.Initials(data.Name),

		"name":       data.Name,
		"title":      data.Title,
		"email":      data.Email,
		"phone":      data.Phone,
		"address":    data.Address,
		"summary":    data.Summary,
		"skills":     data.Skills,
		"languages":  data.Languages,
		"experience": data.Experience,
		"education":  data.Education,
	}, nil
}

// withDefaults fills fields that documents stored by older versions of
// the schema may lack, so every binding is always present.
func withDefaults(d ResumeData) ResumeData {
	if d.Skills == nil {
		d.Skills = []string{}
	}
	if d.Languages == nil {
		d.Languages = []string{}
	}
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	return d
}
