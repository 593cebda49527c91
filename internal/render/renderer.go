package render

import (
	"fmt"
	"strconv"

	"portfolio/internal/domain/portfolio"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Element ids the page must carry. Missing ids are skipped.
const (
	IDName         = "p-name"
	IDTitle        = "p-title"
	IDSummaryShort = "p-summary-short"
	IDAboutFull    = "p-about-full"
	IDEduDegree    = "p-edu-degree"
	IDEduUni       = "p-edu-uni"
	IDEduYear      = "p-edu-year"
	IDLocation     = "p-location"

	IDSkills   = "skills-container"
	IDServices = "services-container"
	IDProjects = "projects-container"
)

// RevealObserver is told about every revealable element after a render.
// Elements from earlier renders are gone by then and must not be kept.
type RevealObserver interface {
	Observe(doc *html.Node, targets []*html.Node)
}

type Renderer struct {
	observer RevealObserver
}

func New(observer RevealObserver) *Renderer {
	if observer == nil {
		observer = ScriptObserver{}
	}
	return &Renderer{observer: observer}
}

// Render fills the page regions from rec. Each region is cleared before it
// is repopulated, so rendering the same record twice gives the same page.
func (r *Renderer) Render(doc *html.Node, rec portfolio.Record) {
	q := goquery.NewDocumentFromNode(doc)
	v := BuildView(rec)

	if v.Profile != nil {
		renderProfile(q, *v.Profile)
	}

	skills := make([]*html.Node, 0, len(v.Skills))
	for _, card := range v.Skills {
		skills = append(skills, skillCardNode(card))
	}
	replaceChildren(byID(q, IDSkills), skills...)

	if v.Services != nil {
		services := make([]*html.Node, 0, len(v.Services))
		for _, card := range v.Services {
			services = append(services, serviceCardNode(card))
		}
		replaceChildren(byID(q, IDServices), services...)
	}

	projects := make([]*html.Node, 0, len(v.Projects))
	for _, card := range v.Projects {
		projects = append(projects, projectCardNode(card))
	}
	replaceChildren(byID(q, IDProjects), projects...)

	r.observer.Observe(doc, q.Find("."+revealClass).Nodes)
}

// Fallback writes only the name slot; used when the fetch failed.
func (r *Renderer) Fallback(doc *html.Node, name string) {
	byID(goquery.NewDocumentFromNode(doc), IDName).SetText(name)
}

func renderProfile(q *goquery.Document, p ProfileView) {
	byID(q, IDName).SetText(p.Name)
	byID(q, IDTitle).SetText(p.Title)
	byID(q, IDSummaryShort).SetText(p.SummaryShort)
	replaceChildren(byID(q, IDAboutFull), el("p", classes("text-light-gray", "lead"), text(p.Summary)))
	byID(q, IDEduDegree).SetText(p.Degree)
	byID(q, IDEduUni).SetText(p.University)
	byID(q, IDEduYear).SetText(p.Year)
	byID(q, IDLocation).SetText(p.Location)
}

func delayStyle(ms int) attr {
	return a("style", "transition-delay: "+strconv.Itoa(ms)+"ms")
}

func skillCardNode(c SkillCard) *html.Node {
	tags := el("div", classes("skill-tags"))
	for _, t := range c.Tags {
		tags.AppendChild(el("span", nil, text(t)))
	}

	return el("div", append(classes("col-md-4", revealClass), delayStyle(c.DelayMS)),
		el("div", classes("skill-card", "h-100"),
			el("div", classes("icon-box"),
				el("i", classes("fa-solid", c.Icon)),
			),
			el("h4", nil, text(c.Category)),
			tags,
		),
	)
}

func serviceCardNode(c ServiceCard) *html.Node {
	return el("div", append(classes("col-md-6", "col-lg-3", revealClass), delayStyle(c.DelayMS)),
		el("div", classes("glass-panel", "p-4", "h-100", "text-center", "service-card"),
			el("div", classes("icon-box", "mb-3", "mx-auto"),
				el("i", classes("fa-solid", c.Icon, "fa-2x")),
			),
			el("h5", classes("fw-bold", "mb-3"), text(c.Title)),
			el("p", classes("small", "text-light-gray"), text(c.Description)),
		),
	)
}

func projectCardNode(c ProjectCard) *html.Node {
	tech := el("ul", classes("tech-list"))
	for _, t := range c.Tags {
		tech.AppendChild(el("li", nil, text(t)))
	}

	link := el("a", []attr{
		a("href", c.Link),
		a("target", "_blank"),
		a("rel", "noopener noreferrer"),
		a("class", "github-link"),
		a("aria-label", fmt.Sprintf("%s repository", c.Title)),
	}, el("i", classes("fa-brands", "fa-github")))

	return el("div", classes("col-md-6", revealClass),
		el("div", classes("project-card"),
			el("div", classes("d-flex", "justify-content-between", "align-items-center", "mb-3"),
				el("i", classes("fa-solid", c.Icon, "folder-icon")),
				link,
			),
			el("h3", nil, text(c.Title)),
			el("p", nil, text(c.Description)),
			tech,
		),
	)
}
