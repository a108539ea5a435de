package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-studio/internal/i18n"
	"cv-studio/internal/model"
)

func fullResume() model.Resume {
	photo := "data:image/png;base64,iVBORw0KGgo="
	return model.Resume{
		Profile: model.Profile{
			Name:     "LIM CHILONG",
			Title:    "GRAPHIC DESIGNER",
			Photo:    &photo,
			Email:    "thver.cv@example.com",
			Phone:    "+855 123 456 7",
			Website:  "tenten.dev",
			Location: "Phnom Penh",
		},
		Summary: "A concise professional summary.",
		Experience: []model.Experience{
			{ID: "exp1", Title: "Senior Frontend Developer", Company: "Tech Solutions Inc.", StartDate: "2020-01", EndDate: "Present", Description: "Led dashboard development."},
		},
		Education: []model.Education{
			{ID: "edu1", Degree: "Bachelor of Science in Computer Science", Institution: "State University", StartDate: "2014-09", EndDate: "2018-05"},
		},
		Skills:    []model.Skill{{ID: "skill1", Name: "PHOTOSHOP", Level: 4}},
		Languages: []model.Language{{ID: "lang1", Name: "English", Proficiency: "Fluent"}},
		Interests: []model.Interest{{ID: "int1", Name: "Photography"}},
	}
}

// Every populated field of a document with one entry per collection must
// appear verbatim in the output of every variant.
func TestRenderCoversEveryPopulatedField(t *testing.T) {
	r := fullResume()
	lookup := i18n.For("en")

	fields := []string{
		"LIM CHILONG", "GRAPHIC DESIGNER",
		"thver.cv@example.com", "+855 123 456 7", "tenten.dev", "Phnom Penh",
		"A concise professional summary.",
		"Senior Frontend Developer", "Tech Solutions Inc.", "2020-01", "Present", "Led dashboard development.",
		"Bachelor of Science in Computer Science", "State University", "2014-09", "2018-05",
		"PHOTOSHOP",
		"English", "Fluent",
		"Photography",
	}

	for _, id := range IDs() {
		t.Run(id, func(t *testing.T) {
			out, err := Render(id, r, lookup)
			require.NoError(t, err)
			for _, f := range fields {
				assert.Contains(t, out, f, "%s template dropped %q", id, f)
			}
			assert.Contains(t, out, *r.Profile.Photo, "%s template dropped the photo", id)
		})
	}
}

func TestRenderOmitsEmptySections(t *testing.T) {
	r := fullResume()
	r.Languages = nil
	r.Interests = nil
	lookup := i18n.For("en")

	for _, id := range IDs() {
		t.Run(id, func(t *testing.T) {
			out, err := Render(id, r, lookup)
			require.NoError(t, err)
			assert.NotContains(t, out, lookup("form.languages"))
			assert.NotContains(t, out, lookup("form.interests"))
			// populated sections still render
			assert.Contains(t, out, lookup("form.skills"))
		})
	}
}

func TestRenderOmitsMissingPhotoAndContactFieldsIndependently(t *testing.T) {
	r := fullResume()
	r.Profile.Photo = nil
	r.Profile.Email = ""
	lookup := i18n.For("en")

	for _, id := range IDs() {
		out, err := Render(id, r, lookup)
		require.NoError(t, err)
		assert.NotContains(t, out, "<img", "%s should omit the photo slot entirely", id)
		assert.NotContains(t, out, "thver.cv@example.com")
		// the other contact fields are unaffected
		assert.Contains(t, out, "+855 123 456 7")
		assert.Contains(t, out, "tenten.dev")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	r := fullResume()
	lookup := i18n.For("km")

	for _, id := range IDs() {
		a, err := Render(id, r, lookup)
		require.NoError(t, err)
		b, err := Render(id, r, lookup)
		require.NoError(t, err)
		assert.Equal(t, a, b, "%s must render identically without intervening mutation", id)
	}
}

func TestRenderUsesInjectedCaptions(t *testing.T) {
	r := fullResume()

	en, err := Render(Regional, r, i18n.For("en"))
	require.NoError(t, err)
	km, err := Render(Regional, r, i18n.For("km"))
	require.NoError(t, err)

	assert.Contains(t, en, "Skills")
	assert.Contains(t, km, "ជំនាញ")
}

func TestModernSkillBarWidth(t *testing.T) {
	r := fullResume()
	r.Skills = []model.Skill{{ID: "s1", Name: "GO", Level: 3}}

	out, err := Render(Modern, r, i18n.For("en"))
	require.NoError(t, err)
	assert.Contains(t, out, "width: 60%", "bar width must be level/5 of full width")
}

func TestRenderToleratesOutOfRangeSkillLevel(t *testing.T) {
	// Levels are not clamped by the model; every variant must still render.
	r := fullResume()
	r.Skills = []model.Skill{{ID: "s1", Name: "GO", Level: -2}}

	for _, id := range IDs() {
		out, err := Render(id, r, i18n.For("en"))
		require.NoError(t, err, "%s must not fail on a negative level", id)
		assert.Contains(t, out, "GO")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render("fancy", fullResume(), i18n.For("en"))
	assert.Error(t, err)
}

func TestSeededScenarioAfterSkillDeletion(t *testing.T) {
	// End-to-end reducer + render: drop skill2 from the seeded document and
	// re-render Classic.
	r := model.Apply(model.Seed(), model.Op{Type: model.OpDeleteItem, Section: model.SectionSkills, ID: "skill2"})

	require.Len(t, r.Skills, 2)
	assert.Equal(t, "skill1", r.Skills[0].ID)
	assert.Equal(t, "skill3", r.Skills[1].ID)

	out, err := Render(Classic, r, i18n.For("en"))
	require.NoError(t, err)
	assert.Contains(t, out, "PHOTOSHOP")
	assert.Contains(t, out, "BLEDER")
	assert.NotContains(t, out, "ILLUSTRATOR")
}

func TestPageWrapsFragmentWithSharedStyling(t *testing.T) {
	frag, err := Render(Classic, fullResume(), i18n.For("en"))
	require.NoError(t, err)

	page := Page(frag, "en", "light")
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, frag)
	assert.Contains(t, page, "print-color-adjust: exact")
	assert.Contains(t, page, "fonts.googleapis.com")
	assert.Contains(t, page, `id="resume"`)
	assert.NotContains(t, page, `class="dark"`)

	dark := Page(frag, "km", "dark")
	assert.Contains(t, dark, `class="dark"`)
	assert.Contains(t, dark, "font-khmer")
}
