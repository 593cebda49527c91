package export

import (
	"io"

	"github.com/go-pdf/fpdf"
)

type FontStyle string

const (
	Regular    FontStyle = ""
	Bold       FontStyle = "B"
	Italic     FontStyle = "I"
	fontFamily           = "Helvetica"
)

type Color struct{ R, G, B int }

var (
	Black   = Color{0, 0, 0}
	Heading = Color{0, 100, 200}
	Muted   = Color{80, 80, 80}
	Subtle  = Color{100, 100, 100}
	Rule    = Color{200, 200, 200}
)

// Canvas is the drawing surface the CV is laid out on. Coordinates are in
// millimetres from the top-left corner; y is the text baseline. Strings are
// UTF-8.
type Canvas interface {
	AddPage()
	SetFont(style FontStyle, size float64)
	SetTextColor(c Color)
	SetDrawColor(c Color)
	Text(x, y float64, s string)
	Line(x1, y1, x2, y2 float64)
	StringWidth(s string) float64
	// SplitText breaks s into lines no wider than width in the current
	// font, breaking inside a word only when it does not fit on a line.
	SplitText(s string, width float64) []string
	PageWidth() float64
	PageCount() int
	Output(w io.Writer) error
}

// PDF is a Canvas backed by an A4 portrait fpdf document using the core
// Helvetica font. Text is translated to cp1252 so glyphs like the bullet
// render with the core fonts.
type PDF struct {
	doc *fpdf.Fpdf
	tr  func(string) string
}

func NewPDF(title, author string) *PDF {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle(title, true)
	doc.SetAuthor(author, true)
	doc.SetCreator("portfolio", true)
	doc.SetFont(fontFamily, string(Regular), 10)
	return &PDF{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}
}

func (p *PDF) AddPage() { p.doc.AddPage() }

func (p *PDF) SetFont(style FontStyle, size float64) {
	p.doc.SetFont(fontFamily, string(style), size)
}

func (p *PDF) SetTextColor(c Color) { p.doc.SetTextColor(c.R, c.G, c.B) }

func (p *PDF) SetDrawColor(c Color) { p.doc.SetDrawColor(c.R, c.G, c.B) }

func (p *PDF) Text(x, y float64, s string) { p.doc.Text(x, y, p.tr(s)) }

func (p *PDF) Line(x1, y1, x2, y2 float64) { p.doc.Line(x1, y1, x2, y2) }

func (p *PDF) StringWidth(s string) float64 { return p.doc.GetStringWidth(p.tr(s)) }

// SplitText measures the cp1252 form of s with fpdf and maps the lines back
// onto the UTF-8 input. The translator emits one byte per rune, so rune
// offsets line up.
func (p *PDF) SplitText(s string, width float64) []string {
	src := []rune(s)
	enc := []byte(p.tr(s))
	if len(enc) != len(src) {
		return []string{s}
	}
	single := make([]rune, len(enc))
	for i, b := range enc {
		single[i] = rune(b)
	}

	// fpdf subtracts the cell margin on both sides.
	split := p.doc.SplitText(string(single), width+2*p.doc.GetCellMargin())

	out := make([]string, 0, len(split))
	pos := 0
	for _, ln := range split {
		lr := []rune(ln)
		for pos < len(single) && !hasRunePrefix(single[pos:], lr) {
			pos++
		}
		end := min(pos+len(lr), len(src))
		out = append(out, string(src[pos:end]))
		pos = end
	}
	return out
}

func hasRunePrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}

func (p *PDF) PageWidth() float64 {
	w, _ := p.doc.GetPageSize()
	return w
}

func (p *PDF) PageCount() int { return p.doc.PageCount() }

func (p *PDF) Output(w io.Writer) error {
	if err := p.doc.Error(); err != nil {
		return err
	}
	return p.doc.Output(w)
}
