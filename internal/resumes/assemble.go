package resumes

import (
	"strings"
	"time"
)

// Intake is the typed multipart form a browser submits to /generate. The
// repeated experience/education inputs arrive as parallel arrays aligned
// by position.
type Intake struct {
	Name    string `form:"name"`
	Title   string `form:"title"`
	Email   string `form:"email"`
	Phone   string `form:"phone"`
	Address string `form:"address"`
	Summary string `form:"summary"`

	Skills    string   `form:"skills"`
	Languages []string `form:"languages[]"`

	ExperienceTitles       []string `form:"experience_title[]"`
	ExperienceCompanies    []string `form:"experience_company[]"`
	ExperienceDurations    []string `form:"experience_duration[]"`
	ExperienceDescriptions []string `form:"experience_description[]"`

	EducationDegrees      []string `form:"education_degree[]"`
	EducationUniversities []string `form:"education_university[]"`
	EducationYears        []string `form:"education_year[]"`

	Template string `form:"template"`
}

// assemble normalizes the raw submission into the canonical ResumeData.
// Nothing downstream ever sees the raw form shape.
func (in Intake) assemble(now time.Time) ResumeData {
	return ResumeData{
		Name:       strings.TrimSpace(in.Name),
		Title:      strings.TrimSpace(in.Title),
		Email:      strings.TrimSpace(in.Email),
		Phone:      strings.TrimSpace(in.Phone),
		Address:    strings.TrimSpace(in.Address),
		Summary:    strings.TrimSpace(in.Summary),
		Skills:     splitSkills(in.Skills),
		Languages:  filterBlank(in.Languages),
		Experience: zipExperience(in.ExperienceTitles, in.ExperienceCompanies, in.ExperienceDurations, in.ExperienceDescriptions),
		Education:  zipEducation(in.EducationDegrees, in.EducationUniversities, in.EducationYears),
		CreatedAt:  now,
	}
}

// splitSkills breaks a comma-delimited list into trimmed entries,
// dropping blanks.
func splitSkills(raw string) []string {
	return filterBlank(strings.Split(raw, ","))
}

func filterBlank(values []string) []string {
	out := []string{}
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// zipExperience aligns the parallel experience arrays by position. The
// titles array governs the record count: shorter companion arrays pad
// with "" and longer ones are truncated.
func zipExperience(titles, companies, durations, descriptions []string) []Experience {
	out := make([]Experience, 0, len(titles))
	for i := range titles {
		out = append(out, Experience{
			Title:       titles[i],
			Company:     at(companies, i),
			Duration:    at(durations, i),
			Description: at(descriptions, i),
		})
	}
	return out
}

// zipEducation aligns the parallel education arrays by position, governed
// by the degrees array.
func zipEducation(degrees, universities, years []string) []Education {
	out := make([]Education, 0, len(degrees))
	for i := range degrees {
		out = append(out, Education{
			Degree:     degrees[i],
			University: at(universities, i),
			Year:       at(years, i),
		})
	}
	return out
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}
