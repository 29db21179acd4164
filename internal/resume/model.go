package resume

// Package resume holds the canonical structured resume record exchanged with
// the editing UI and persistence layer. The JSON field names are part of the
// downstream contract and must not change.

// PersonalInfo carries the contact block and professional summary.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// GradeType enumerates the grading schemes the editor understands.
type GradeType string

const (
	GradePercentage GradeType = "percentage"
	GradeCGPA10     GradeType = "cgpa10"
	GradeCGPA95     GradeType = "cgpa9.5"
)

// Education is one degree or qualification.
type Education struct {
	ID          string    `json:"id"`
	Institution string    `json:"institution"`
	Degree      string    `json:"degree"`
	Field       string    `json:"field"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	GradeType   GradeType `json:"gradeType,omitempty"`
	GradeValue  string    `json:"gradeValue,omitempty"`
	Description string    `json:"description,omitempty"`
}

// Experience is one job. If Current is true, EndDate holds the date the
// record was produced in YYYY-MM-DD form.
type Experience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// Project is one project entry.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
	GitHub       string   `json:"github,omitempty"`
}

// Skill groups a list of short skill tokens under a category label.
// Tokens keep document order; duplicates are not removed.
type Skill struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// Certification is one certificate or license.
type Certification struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
	CredentialID string `json:"credentialId,omitempty"`
	Link         string `json:"link,omitempty"`
}

// SectionType identifies one of the six fixed resume sections.
type SectionType string

const (
	SectionPersonal       SectionType = "personal"
	SectionExperience     SectionType = "experience"
	SectionEducation      SectionType = "education"
	SectionSkills         SectionType = "skills"
	SectionProjects       SectionType = "projects"
	SectionCertifications SectionType = "certifications"
)

// Section describes visibility and display order for one section.
type Section struct {
	ID      string      `json:"id"`
	Type    SectionType `json:"type"`
	Visible bool        `json:"visible"`
	Order   int         `json:"order"`
}

// Resume is the aggregate record. Presentation defaults (title, template,
// colors, font) are set once at import time and owned by the editor after
// that.
type Resume struct {
	Title          string          `json:"title"`
	TemplateID     string          `json:"templateId"`
	AccentColor    string          `json:"accentColor"`
	FontFamily     string          `json:"fontFamily"`
	Sections       []Section       `json:"sections"`
	Personal       PersonalInfo    `json:"personal"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
}

// Presentation defaults applied to every imported resume.
const (
	DefaultTitle       = "Imported Resume"
	DefaultTemplateID  = "professional"
	DefaultAccentColor = "#2563eb"
	DefaultFontFamily  = "inter"
)

// NewImported returns an all-default record: six canonical section
// descriptors in display order, empty entry lists, import presentation
// defaults. Entry slices are allocated so they serialize as [] rather than
// null.
func NewImported() Resume {
	return Resume{
		Title:       DefaultTitle,
		TemplateID:  DefaultTemplateID,
		AccentColor: DefaultAccentColor,
		FontFamily:  DefaultFontFamily,
		Sections: []Section{
			{ID: "personal", Type: SectionPersonal, Visible: true, Order: 0},
			{ID: "experience", Type: SectionExperience, Visible: true, Order: 1},
			{ID: "education", Type: SectionEducation, Visible: true, Order: 2},
			{ID: "skills", Type: SectionSkills, Visible: true, Order: 3},
			{ID: "projects", Type: SectionProjects, Visible: true, Order: 4},
			{ID: "certifications", Type: SectionCertifications, Visible: true, Order: 5},
		},
		Education:      []Education{},
		Experience:     []Experience{},
		Skills:         []Skill{},
		Projects:       []Project{},
		Certifications: []Certification{},
	}
}
