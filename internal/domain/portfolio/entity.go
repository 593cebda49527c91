package portfolio

import "strings"

type Profile struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Title           string `json:"title"`
	Summary         string `json:"summary"`
	Location        string `json:"location"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	LinkedIn        string `json:"linkedin"`
	GitHub          string `json:"github"`
	EducationDegree string `json:"education_degree"`
	EducationUni    string `json:"education_uni"`
	EducationYear   string `json:"education_year"`
}

type SkillCategory struct {
	ID        int64  `json:"id"`
	Category  string `json:"category"`
	SkillList string `json:"skill_list"`
}

type Service struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	IconClass   string `json:"icon_class"`
	Description string `json:"description"`
}

type Project struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	IconClass  string `json:"icon_class"`
	ShortDesc  string `json:"short_desc"`
	FullDesc   string `json:"full_desc"`
	TechStack  string `json:"tech_stack"`
	GitHubLink string `json:"github_link"`
}

// Record is the combined payload served by the data endpoint. Services is
// nil when the store does not provision them; an empty provisioned list is
// kept in the JSON.
type Record struct {
	Profile  *Profile        `json:"profile,omitempty"`
	Skills   []SkillCategory `json:"skills"`
	Projects []Project       `json:"projects"`
	Services []Service       `json:"services,omitzero"`
}

// FirstSentence returns the text up to the first period, period included.
func (p Profile) FirstSentence() string {
	head, _, _ := strings.Cut(p.Summary, ".")
	return head + "."
}

func (s SkillCategory) Items() []string {
	return splitTrim(s.SkillList, ",")
}

func (p Project) Tags() []string {
	return splitTrim(p.TechStack, ",")
}

// Bullets splits the long description on '|'. Blank segments are dropped.
func (p Project) Bullets() []string {
	return splitTrim(p.FullDesc, "|")
}

// ServiceTitles lists the provisioned service titles in display order.
func (r Record) ServiceTitles() []string {
	out := make([]string, 0, len(r.Services))
	for _, s := range r.Services {
		if t := strings.TrimSpace(s.Title); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// CVFilename derives the export filename from the person's name. Only the
// first space is replaced, so "Ana Maria Lopez" becomes "Ana_Maria Lopez".
func CVFilename(name, ext string) string {
	return strings.Replace(name, " ", "_", 1) + "_CV." + ext
}

func splitTrim(s, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
