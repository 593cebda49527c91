// Package export lays the combined record out as a printable CV.
//
// The layout keeps a running vertical cursor and a fixed left margin.
// Before each section, and before each project, the cursor is compared with
// a threshold; past it a new page is started and the cursor returns to the
// top margin. There is no finer orphan control, so a long project can still
// run past the bottom of a page.
package export

import (
	"errors"
	"io"
	"strings"

	"portfolio/internal/domain/portfolio"
)

var ErrNoProfile = errors.New("record has no profile")

// Layout holds the page geometry in millimetres. The break thresholds were
// tuned for A4 with the font sizes below; recompute them if either changes.
type Layout struct {
	Margin       float64
	Top          float64
	LineHeight   float64
	BulletIndent float64

	SectionBreak   float64
	ProjectBreak   float64
	EducationBreak float64

	Bullet    string
	Separator string
}

func DefaultLayout() Layout {
	return Layout{
		Margin:         20,
		Top:            20,
		LineHeight:     5,
		BulletIndent:   4,
		SectionBreak:   240,
		ProjectBreak:   230,
		EducationBreak: 250,
		Bullet:         "• ",
		Separator:      " • ",
	}
}

const (
	headingSummary      = "PROFESSIONAL SUMMARY"
	headingCompetencies = "CORE COMPETENCIES"
	headingSkills       = "TECHNICAL SKILLS"
	headingProjects     = "PROJECTS"
	headingEducation    = "EDUCATION"
)

type Exporter struct {
	layout Layout
}

func New(layout Layout) *Exporter {
	return &Exporter{layout: layout}
}

// Export writes the CV for rec as a PDF.
func (e *Exporter) Export(rec portfolio.Record, w io.Writer) error {
	if rec.Profile == nil {
		return ErrNoProfile
	}
	c := NewPDF(rec.Profile.Name+" CV", rec.Profile.Name)
	if err := e.Draw(c, rec); err != nil {
		return err
	}
	return c.Output(w)
}

// Draw lays rec out on c, starting a first page.
func (e *Exporter) Draw(c Canvas, rec portfolio.Record) error {
	p := rec.Profile
	if p == nil {
		return ErrNoProfile
	}

	d := &drawer{c: c, l: e.layout}
	c.AddPage()
	d.y = d.l.Top
	d.width = c.PageWidth() - 2*d.l.Margin

	d.header(*p)

	d.breakPast(d.l.SectionBreak)
	d.heading(headingSummary)
	d.paragraph(p.Summary)

	if titles := rec.ServiceTitles(); len(titles) > 0 {
		d.breakPast(d.l.SectionBreak)
		d.heading(headingCompetencies)
		d.paragraph(strings.Join(titles, d.l.Separator))
	}

	d.breakPast(d.l.SectionBreak)
	d.heading(headingSkills)
	for _, s := range rec.Skills {
		d.skillLine(s)
	}
	d.y += 5

	d.breakPast(d.l.SectionBreak)
	d.heading(headingProjects)
	d.y++
	for _, pr := range rec.Projects {
		d.breakPast(d.l.ProjectBreak)
		d.project(pr)
	}

	d.breakPast(d.l.EducationBreak)
	d.heading(headingEducation)
	d.education(*p)

	return nil
}

type drawer struct {
	c     Canvas
	l     Layout
	y     float64
	width float64
}

func (d *drawer) breakPast(limit float64) {
	if d.y > limit {
		d.c.AddPage()
		d.y = d.l.Top
	}
}

func (d *drawer) body() {
	d.c.SetFont(Regular, 10)
	d.c.SetTextColor(Black)
}

func (d *drawer) header(p portfolio.Profile) {
	m := d.l.Margin

	d.c.SetFont(Bold, 26)
	d.c.SetTextColor(Black)
	d.c.Text(m, d.y, strings.ToUpper(p.Name))
	d.y += 10

	if p.Title != "" {
		d.c.SetFont(Regular, 13)
		d.c.SetTextColor(Muted)
		d.c.Text(m, d.y, strings.ToUpper(p.Title))
		d.y += 7
	}

	d.c.SetFont(Regular, 10)
	d.c.SetTextColor(Muted)
	for _, ln := range d.split(joinNonEmpty(" | ", p.Location, p.Email, p.Phone), d.width) {
		d.c.Text(m, d.y, ln)
		d.y += 6
	}
	for _, ln := range d.split(joinNonEmpty(" | ", prefixed("LinkedIn: ", p.LinkedIn), prefixed("GitHub: ", p.GitHub)), d.width) {
		d.c.Text(m, d.y, ln)
		d.y += 6
	}

	d.c.SetDrawColor(Rule)
	d.c.Line(m, d.y, m+d.width, d.y)
	d.y += 10
}

func (d *drawer) heading(s string) {
	d.c.SetFont(Bold, 14)
	d.c.SetTextColor(Heading)
	d.c.Text(d.l.Margin, d.y, s)
	d.y += 7
	d.body()
}

// paragraph writes wrapped text and advances past it plus a gap.
func (d *drawer) paragraph(s string) {
	lines := d.split(s, d.width)
	for i, ln := range lines {
		d.c.Text(d.l.Margin, d.y+float64(i)*d.l.LineHeight, ln)
	}
	d.y += float64(len(lines))*d.l.LineHeight + 5
}

func (d *drawer) skillLine(s portfolio.SkillCategory) {
	label := s.Category + ":"
	d.c.SetFont(Bold, 10)
	d.c.Text(d.l.Margin, d.y, label)
	offset := d.c.StringWidth(label) + 2

	d.c.SetFont(Regular, 10)
	lines := d.split(strings.Join(s.Items(), ", "), d.width-offset)
	for i, ln := range lines {
		d.c.Text(d.l.Margin+offset, d.y+float64(i)*d.l.LineHeight, ln)
	}
	extra := 0
	if len(lines) > 1 {
		extra = len(lines) - 1
	}
	d.y += 6 + float64(extra)*d.l.LineHeight
}

func (d *drawer) project(p portfolio.Project) {
	m := d.l.Margin

	d.c.SetFont(Bold, 12)
	d.c.SetTextColor(Black)
	d.c.Text(m, d.y, p.Title)
	if tags := p.Tags(); len(tags) > 0 {
		x := m + d.c.StringWidth(p.Title) + 2
		d.c.SetFont(Italic, 9)
		d.c.SetTextColor(Subtle)
		d.c.Text(x, d.y, "("+strings.Join(tags, ", ")+")")
	}
	d.y += 6

	d.body()
	x := m + d.l.BulletIndent
	bulletW := d.c.StringWidth(d.l.Bullet)
	for _, b := range p.Bullets() {
		lines := d.split(b, d.width-d.l.BulletIndent-bulletW)
		for i, ln := range lines {
			if i == 0 {
				d.c.Text(x, d.y, d.l.Bullet+ln)
			} else {
				d.c.Text(x+bulletW, d.y+float64(i)*d.l.LineHeight, ln)
			}
		}
		d.y += float64(len(lines)) * d.l.LineHeight
	}
	d.y += 4
}

func (d *drawer) education(p portfolio.Profile) {
	d.c.SetFont(Bold, 12)
	d.c.SetTextColor(Black)
	d.c.Text(d.l.Margin, d.y, p.EducationDegree)
	d.y += 6

	d.body()
	d.c.Text(d.l.Margin, d.y, joinNonEmpty(" | ", p.EducationUni, p.EducationYear))
	d.y += 6
}

// split collapses runs of whitespace and wraps s to width in the current
// font. Blank input gives no lines.
func (d *drawer) split(s string, width float64) []string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return nil
	}
	return d.c.SplitText(s, width)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func prefixed(prefix, v string) string {
	if strings.TrimSpace(v) == "" {
		return ""
	}
	return prefix + v
}
