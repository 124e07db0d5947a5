package screens

import (
	"fmt"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/appdata"
)

// Me holds the four reflection sections.
type Me struct {
	Data   app.Slice[appdata.MeData]
	Labels *Labels
}

// Section describes one reflection field.
type Section struct {
	Field       string
	Label       string
	Placeholder string
}

// MeFields lists the section field names in display order.
var MeFields = []string{"values", "vision", "strengths", "achievements"}

var mePlaceholders = map[string]string{
	"values":       "What principles guide you? (e.g., Curiosity, Integrity, Kindness...)",
	"vision":       "What is your long-term vision for yourself? What impact do you want to make?",
	"strengths":    "What are you great at? Where do you have room to grow?",
	"achievements": "What are you proud of? Big or small, log your wins here.",
}

var meLabels = map[string]string{
	"values":       appdata.LabelMeValuesTitle,
	"vision":       appdata.LabelMeVisionTitle,
	"strengths":    appdata.LabelMeStrengthsTitle,
	"achievements": appdata.LabelMeAchievementsTitle,
}

func (m *Me) Title() string    { return m.Labels.Get(appdata.LabelMeTitle) }
func (m *Me) Subtitle() string { return m.Labels.Get(appdata.LabelMeSubtitle) }

// Sections returns the sections with their current headings.
func (m *Me) Sections() []Section {
	out := make([]Section, len(MeFields))
	for i, f := range MeFields {
		out[i] = Section{Field: f, Label: m.Labels.Get(meLabels[f]), Placeholder: mePlaceholders[f]}
	}
	return out
}

// Get returns the stored reflections.
func (m *Me) Get() appdata.MeData { return m.Data.Get() }

// SetField stores one section.
func (m *Me) SetField(field, value string) error {
	return m.Data.Try(func(prev appdata.MeData) (appdata.MeData, error) {
		p, err := MeField(&prev, field)
		if err != nil {
			return prev, err
		}
		*p = value
		return prev, nil
	})
}

// Clear empties every section.
func (m *Me) Clear() error { return m.Data.Set(appdata.MeData{}) }

// MeField returns a pointer to the named section of d.
func MeField(d *appdata.MeData, field string) (*string, error) {
	switch field {
	case "values":
		return &d.Values, nil
	case "vision":
		return &d.Vision, nil
	case "strengths":
		return &d.Strengths, nil
	case "achievements":
		return &d.Achievements, nil
	}
	return nil, fmt.Errorf("%w: unknown section %q", ErrInvalid, field)
}
