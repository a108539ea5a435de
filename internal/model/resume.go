package model

// Go models for the resume document edited by a session. The document is
// immutable-by-replacement: every mutation goes through Apply, which returns
// a fresh copy so renders in flight keep a consistent snapshot.

type Profile struct {
	Name     string  `json:"name"`
	Title    string  `json:"title"`
	Photo    *string `json:"photo"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Location string  `json:"location"`
}

type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// Skill level ranges 1..5; templates render it as a discrete indicator or a
// proportional bar (level/5). The model itself does not clamp.
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type Language struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

type Interest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Resume struct {
	Profile    Profile      `json:"profile"`
	Summary    string       `json:"summary"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Skills     []Skill      `json:"skills"`
	Languages  []Language   `json:"languages"`
	Interests  []Interest   `json:"interests"`
}

// Clone returns a deep copy of the resume. Entry structs are plain values,
// so copying the slices is enough; the photo pointer is re-boxed so the
// copy shares nothing with the original.
func (r Resume) Clone() Resume {
	out := r
	if r.Profile.Photo != nil {
		p := *r.Profile.Photo
		out.Profile.Photo = &p
	}
	out.Experience = cloneSlice(r.Experience)
	out.Education = cloneSlice(r.Education)
	out.Skills = cloneSlice(r.Skills)
	out.Languages = cloneSlice(r.Languages)
	out.Interests = cloneSlice(r.Interests)
	return out
}

// cloneSlice keeps nil nil and empty empty; a collection deleted down to
// zero entries must stay [] rather than flip to null in API responses.
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// Seed returns the document every new session starts from.
func Seed() Resume {
	return Resume{
		Profile: Profile{
			Name:     "LIM CHILONG",
			Title:    "GRAPHIC DESIGNER",
			Photo:    nil,
			Email:    "thver.cv@example.com",
			Phone:    "+855 123 456 7",
			Website:  "tenten.dev",
			Location: "Phnom Penh",
		},
		Summary: "Experienced Frontend Developer with a demonstrated history of working in the computer software industry. Skilled in React, TypeScript, and Tailwind CSS. Strong engineering professional with a Bachelor of Science (B.S.) focused in Computer Science.",
		Experience: []Experience{
			{
				ID:          "exp1",
				Title:       "Senior Frontend Developer",
				Company:     "Tech Solutions Inc.",
				StartDate:   "2020-01",
				EndDate:     "Present",
				Description: "Led the development of a new customer-facing dashboard using React and TypeScript, improving user engagement by 25%. Collaborated with UX/UI designers to implement responsive and accessible designs.",
			},
		},
		Education: []Education{
			{
				ID:          "edu1",
				Degree:      "Bachelor of Science in Computer Science",
				Institution: "State University",
				StartDate:   "2014-09",
				EndDate:     "2018-05",
			},
		},
		Skills: []Skill{
			{ID: "skill1", Name: "PHOTOSHOP", Level: 5},
			{ID: "skill2", Name: "ILLUSTRATOR", Level: 5},
			{ID: "skill3", Name: "BLEDER", Level: 4},
		},
		Languages: []Language{
			{ID: "lang1", Name: "English", Proficiency: "Fluent"},
			{ID: "lang2", Name: "Khmer", Proficiency: "Native"},
		},
		Interests: []Interest{
			{ID: "int1", Name: "Photography"},
			{ID: "int2", Name: "Minimalist Design"},
		},
	}
}
