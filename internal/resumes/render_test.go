package resumes

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/shared/storage/docstore"
)

func TestPrepareProducesBothBindingShapes(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	in := validIntake()
	in.Summary = "Ships software"
	in.ExperienceTitles = []string{"Dev"}
	handle, err := svc.Generate(ctx, uuid.NewString(), in, nil)
	require.NoError(t, err)

	rc, err := svc.Prepare(ctx, handle)
	require.NoError(t, err)

	// Nested shape.
	data, ok := rc["data"].(ResumeData)
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", data.Name)
	assert.Equal(t, "Ships software", data.Summary)

	// Flat shape, populated from the same pass.
	assert.Equal(t, "Jane Doe", rc["name"])
	assert.Equal(t, "Engineer", rc["title"])
	assert.Equal(t, "Ships software", rc["summary"])
	assert.Equal(t, []string{"Go", "Rust"}, rc["skills"])
	require.Len(t, rc["experience"], 1)

	assert.Equal(t, "JD", rc["initials"])
	assert.Equal(t, false, rc["photo_exists"])
	assert.Equal(t, "", rc["photo"])
}

func TestPrepareStaleHandle(t *testing.T) {
	svc, _ := newTestService(t)

	stale := docstore.Key(uuid.NewString(), uuid.NewString())
	_, err := svc.Prepare(context.Background(), stale)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPrepareMalformedHandle(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Prepare(context.Background(), "../etc/passwd")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPrepareDefaultsDriftedDocuments(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// A document written by an older schema: scalar fields only.
	repo := svc.Repo.(*FileRepo)
	owner, record := uuid.NewString(), uuid.NewString()
	key := docstore.Key(owner, record)
	err := repo.Store.WriteDocument(key, map[string]any{
		"id":       record,
		"owner_id": owner,
		"data":     map[string]any{"name": "Old Timer"},
	})
	require.NoError(t, err)

	rc, err := svc.Prepare(ctx, key)
	require.NoError(t, err)

	assert.Equal(t, "Old Timer", rc["name"])
	assert.Equal(t, []string{}, rc["skills"])
	assert.Equal(t, []string{}, rc["languages"])
	assert.Equal(t, []Experience{}, rc["experience"])
	assert.Equal(t, []Education{}, rc["education"])
	assert.Equal(t, false, rc["photo_exists"])
	assert.Equal(t, "OT", rc["initials"])
}

func TestRoundTripPreservesEveryField(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	in := Intake{
		Name:                   "Jane Doe",
		Title:                  "Engineer",
		Email:                  "jane@example.com",
		Phone:                  "555-0100",
		Address:                "12 Baker St\nLondon",
		Summary:                "Builds<br>things",
		Skills:                 "Go, Rust",
		Languages:              []string{"English"},
		ExperienceTitles:       []string{"Dev", "Lead"},
		ExperienceCompanies:    []string{"Acme"},
		ExperienceDurations:    []string{"2019", "2021"},
		ExperienceDescriptions: []string{"wrote code", "led team"},
		EducationDegrees:       []string{"BSc"},
		EducationUniversities:  []string{"MIT"},
		EducationYears:         []string{"2015"},
		Template:               "template3",
	}

	handle, err := svc.Generate(ctx, uuid.NewString(), in, nil)
	require.NoError(t, err)

	rc, err := svc.Prepare(ctx, handle)
	require.NoError(t, err)

	data := rc["data"].(ResumeData)
	assert.Equal(t, "12 Baker St\nLondon", data.Address, "stored data is raw; escaping happens at render time")
	assert.Equal(t, "Builds<br>things", data.Summary)
	assert.Equal(t, []string{"English"}, data.Languages)
	require.Len(t, data.Experience, 2)
	assert.Equal(t, Experience{Title: "Lead", Company: "", Duration: "2021", Description: "led team"}, data.Experience[1])
	require.Len(t, data.Education, 1)
	assert.Equal(t, Education{Degree: "BSc", University: "MIT", Year: "2015"}, data.Education[0])
}
