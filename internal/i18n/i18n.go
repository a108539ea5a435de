package i18n

// Dotted-key text lookup for template captions and UI strings. Lookup falls
// back to the literal key when a translation is missing so templates never
// render an empty caption.

type Lookup func(key string) string

var translations = map[string]map[string]string{
	"en": {
		"form.personalInfo":      "Personal Information",
		"form.fullName":          "Full Name",
		"form.professionalTitle": "Professional Title",
		"form.email":             "Email",
		"form.phone":             "Phone",
		"form.website":           "Website",
		"form.location":          "Location",
		"form.summary":           "Summary",
		"form.experience":        "Experience",
		"form.education":         "Education",
		"form.skills":            "Skills",
		"form.languages":         "Languages",
		"form.interests":         "Interests",
		"form.uploadPhoto":       "Upload Photo",
		"form.changePhoto":       "Change Photo",
		"preview.downloadPDF":    "Download PDF",
		"preview.print":          "Print",
	},
	"km": {
		"form.personalInfo":      "ព័ត៌មានផ្ទាល់ខ្លួន",
		"form.fullName":          "ឈ្មោះពេញ",
		"form.professionalTitle": "មុខតំណែង",
		"form.email":             "អ៊ីមែល",
		"form.phone":             "ទូរស័ព្ទ",
		"form.website":           "គេហទំព័រ",
		"form.location":          "ទីតាំង",
		"form.summary":           "ប្រវត្តិរូបសង្ខេប",
		"form.experience":        "បទពិសោធន៍ការងារ",
		"form.education":         "ការអប់រំ",
		"form.skills":            "ជំនាញ",
		"form.languages":         "ភាសា",
		"form.interests":         "ចំណាប់អារម្មណ៍",
		"form.uploadPhoto":       "បញ្ចូលរូបថត",
		"form.changePhoto":       "ប្តូររូបថត",
		"preview.downloadPDF":    "ទាញយក PDF",
		"preview.print":          "បោះពុម្ព",
	},
}

// Languages lists the locales the service ships with.
func Languages() []string { return []string{"en", "km"} }

// Supported reports whether lang has a translation table.
func Supported(lang string) bool {
	_, ok := translations[lang]
	return ok
}

// For returns the lookup function for the given language. Unknown languages
// fall back to English; unknown keys fall back to the key itself.
func For(lang string) Lookup {
	table, ok := translations[lang]
	if !ok {
		table = translations["en"]
	}
	return func(key string) string {
		if s, ok := table[key]; ok && s != "" {
			return s
		}
		return key
	}
}
