package model

import "encoding/json"

// Op is the envelope for every document mutation. The set of recognized
// types is closed; anything else leaves the document unchanged.
type Op struct {
	Type    string          `json:"type"`
	Field   string          `json:"field,omitempty"`
	Value   string          `json:"value,omitempty"`
	Photo   *string         `json:"photo,omitempty"`
	Section string          `json:"section,omitempty"`
	ID      string          `json:"id,omitempty"`
	Item    json.RawMessage `json:"item,omitempty"`
	Updates map[string]any  `json:"updates,omitempty"`
}

const (
	OpUpdateProfile = "update_profile"
	OpUpdatePhoto   = "update_photo"
	OpUpdateSummary = "update_summary"
	OpAddItem       = "add_item"
	OpUpdateItem    = "update_item"
	OpDeleteItem    = "delete_item"
)

const (
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionLanguages  = "languages"
	SectionInterests  = "interests"
)

// Apply produces the next document from the current one and a single op.
// It is a pure function: the input resume is never touched, and the same
// inputs always yield the same output. Ops referencing an unknown id,
// section, or field are silent no-ops; the caller still gets a full copy.
func Apply(r Resume, op Op) Resume {
	next := r.Clone()

	switch op.Type {
	case OpUpdateProfile:
		applyProfileField(&next.Profile, op.Field, op.Value)
	case OpUpdatePhoto:
		if op.Photo != nil {
			p := *op.Photo
			next.Profile.Photo = &p
		} else {
			next.Profile.Photo = nil
		}
	case OpUpdateSummary:
		next.Summary = op.Value
	case OpAddItem:
		applyAdd(&next, op.Section, op.Item)
	case OpUpdateItem:
		applyUpdate(&next, op.Section, op.ID, op.Updates)
	case OpDeleteItem:
		applyDelete(&next, op.Section, op.ID)
	}

	return next
}

func applyProfileField(p *Profile, field, value string) {
	switch field {
	case "name":
		p.Name = value
	case "title":
		p.Title = value
	case "email":
		p.Email = value
	case "phone":
		p.Phone = value
	case "website":
		p.Website = value
	case "location":
		p.Location = value
	}
}

// applyAdd appends a fully-formed entry to the end of the named collection.
// The caller supplies the id; collection-unique ids are a caller contract,
// not something the reducer checks.
func applyAdd(r *Resume, section string, item json.RawMessage) {
	if len(item) == 0 {
		return
	}
	switch section {
	case SectionExperience:
		var e Experience
		if json.Unmarshal(item, &e) == nil {
			r.Experience = append(r.Experience, e)
		}
	case SectionEducation:
		var e Education
		if json.Unmarshal(item, &e) == nil {
			r.Education = append(r.Education, e)
		}
	case SectionSkills:
		var s Skill
		if json.Unmarshal(item, &s) == nil {
			r.Skills = append(r.Skills, s)
		}
	case SectionLanguages:
		var l Language
		if json.Unmarshal(item, &l) == nil {
			r.Languages = append(r.Languages, l)
		}
	case SectionInterests:
		var i Interest
		if json.Unmarshal(item, &i) == nil {
			r.Interests = append(r.Interests, i)
		}
	}
}

func applyUpdate(r *Resume, section, id string, updates map[string]any) {
	switch section {
	case SectionExperience:
		for i := range r.Experience {
			if r.Experience[i].ID == id {
				mergeExperience(&r.Experience[i], updates)
				return
			}
		}
	case SectionEducation:
		for i := range r.Education {
			if r.Education[i].ID == id {
				mergeEducation(&r.Education[i], updates)
				return
			}
		}
	case SectionSkills:
		for i := range r.Skills {
			if r.Skills[i].ID == id {
				mergeSkill(&r.Skills[i], updates)
				return
			}
		}
	case SectionLanguages:
		for i := range r.Languages {
			if r.Languages[i].ID == id {
				mergeLanguage(&r.Languages[i], updates)
				return
			}
		}
	case SectionInterests:
		for i := range r.Interests {
			if r.Interests[i].ID == id {
				mergeInterest(&r.Interests[i], updates)
				return
			}
		}
	}
}

func applyDelete(r *Resume, section, id string) {
	switch section {
	case SectionExperience:
		out := r.Experience[:0]
		for _, e := range r.Experience {
			if e.ID != id {
				out = append(out, e)
			}
		}
		r.Experience = out
	case SectionEducation:
		out := r.Education[:0]
		for _, e := range r.Education {
			if e.ID != id {
				out = append(out, e)
			}
		}
		r.Education = out
	case SectionSkills:
		out := r.Skills[:0]
		for _, s := range r.Skills {
			if s.ID != id {
				out = append(out, s)
			}
		}
		r.Skills = out
	case SectionLanguages:
		out := r.Languages[:0]
		for _, l := range r.Languages {
			if l.ID != id {
				out = append(out, l)
			}
		}
		r.Languages = out
	case SectionInterests:
		out := r.Interests[:0]
		for _, it := range r.Interests {
			if it.ID != id {
				out = append(out, it)
			}
		}
		r.Interests = out
	}
}

// Partial-merge helpers. Only keys present in the updates map are applied;
// the id is never reassigned. Numeric values arrive as float64 from JSON.

func str(u map[string]any, key string) (string, bool) {
	v, ok := u[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func num(u map[string]any, key string) (int, bool) {
	v, ok := u[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

func mergeExperience(e *Experience, u map[string]any) {
	if v, ok := str(u, "title"); ok {
		e.Title = v
	}
	if v, ok := str(u, "company"); ok {
		e.Company = v
	}
	if v, ok := str(u, "startDate"); ok {
		e.StartDate = v
	}
	if v, ok := str(u, "endDate"); ok {
		e.EndDate = v
	}
	if v, ok := str(u, "description"); ok {
		e.Description = v
	}
}

func mergeEducation(e *Education, u map[string]any) {
	if v, ok := str(u, "degree"); ok {
		e.Degree = v
	}
	if v, ok := str(u, "institution"); ok {
		e.Institution = v
	}
	if v, ok := str(u, "startDate"); ok {
		e.StartDate = v
	}
	if v, ok := str(u, "endDate"); ok {
		e.EndDate = v
	}
}

func mergeSkill(s *Skill, u map[string]any) {
	if v, ok := str(u, "name"); ok {
		s.Name = v
	}
	if v, ok := num(u, "level"); ok {
		s.Level = v
	}
}

func mergeLanguage(l *Language, u map[string]any) {
	if v, ok := str(u, "name"); ok {
		l.Name = v
	}
	if v, ok := str(u, "proficiency"); ok {
		l.Proficiency = v
	}
}

func mergeInterest(i *Interest, u map[string]any) {
	if v, ok := str(u, "name"); ok {
		i.Name = v
	}
}
