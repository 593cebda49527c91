package render

import (
	"net/url"
	"strings"

	"portfolio/internal/domain/portfolio"
)

const (
	IconCode   = "fa-code"
	IconLayers = "fa-layer-group"
	IconTool   = "fa-screwdriver-wrench"

	revealClass    = "reveal-on-scroll"
	staggerStepMS  = 100
	defaultProject = "fa-folder"
)

type ProfileView struct {
	Name         string
	Title        string
	SummaryShort string
	Summary      string
	Degree       string
	University   string
	Year         string
	Location     string
}

type SkillCard struct {
	Icon     string
	Category string
	Tags     []string
	DelayMS  int
}

type ServiceCard struct {
	Icon        string
	Title       string
	Description string
	DelayMS     int
}

type ProjectCard struct {
	Icon        string
	Link        string
	Title       string
	Description string
	Tags        []string
}

// View is what the page shows for one record. Profile and Services are nil
// when the record does not carry them.
type View struct {
	Profile  *ProfileView
	Skills   []SkillCard
	Services []ServiceCard
	Projects []ProjectCard
}

func BuildView(rec portfolio.Record) View {
	v := View{
		Skills:   make([]SkillCard, 0, len(rec.Skills)),
		Projects: make([]ProjectCard, 0, len(rec.Projects)),
	}

	if p := rec.Profile; p != nil {
		v.Profile = &ProfileView{
			Name:         p.Name,
			Title:        p.Title,
			SummaryShort: p.FirstSentence(),
			Summary:      p.Summary,
			Degree:       p.EducationDegree,
			University:   p.EducationUni,
			Year:         p.EducationYear,
			Location:     p.Location,
		}
	}

	for i, s := range rec.Skills {
		v.Skills = append(v.Skills, SkillCard{
			Icon:     SkillIcon(s.Category),
			Category: s.Category,
			Tags:     s.Items(),
			DelayMS:  (i + 1) * staggerStepMS,
		})
	}

	if rec.Services != nil {
		v.Services = make([]ServiceCard, 0, len(rec.Services))
		for i, s := range rec.Services {
			v.Services = append(v.Services, ServiceCard{
				Icon:        s.IconClass,
				Title:       s.Title,
				Description: s.Description,
				DelayMS:     (i + 1) * staggerStepMS,
			})
		}
	}

	for _, p := range rec.Projects {
		icon := p.IconClass
		if icon == "" {
			icon = defaultProject
		}
		v.Projects = append(v.Projects, ProjectCard{
			Icon:        icon,
			Link:        safeLink(p.GitHubLink),
			Title:       p.Title,
			Description: p.ShortDesc,
			Tags:        p.Tags(),
		})
	}

	return v
}

// SkillIcon picks the card icon from the category label. "Tool" wins over
// "Framework" when both appear.
func SkillIcon(category string) string {
	icon := IconCode
	if strings.Contains(category, "Framework") {
		icon = IconLayers
	}
	if strings.Contains(category, "Tool") {
		icon = IconTool
	}
	return icon
}

// safeLink keeps http(s) URLs and replaces anything else with "#". A link
// stored without a scheme, like github.com/x/y, is read as https.
func safeLink(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "#"
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme == "" && !strings.HasPrefix(raw, "/") {
		u, err = url.Parse("https://" + raw)
		if err == nil && !strings.Contains(u.Hostname(), ".") {
			return "#"
		}
	}
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "#"
	}
	return u.String()
}
