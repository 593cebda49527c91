package render

import (
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	RevealScriptID = "reveal-observer"

	revealThreshold = "0.1"
	revealActive    = "active"
)

const revealScript = `(function () {
  var observer = new IntersectionObserver(function (entries) {
    entries.forEach(function (entry) {
      if (entry.isIntersecting) entry.target.classList.add("` + revealActive + `");
    });
  }, { threshold: ` + revealThreshold + ` });
  document.querySelectorAll(".` + revealClass + `").forEach(function (el) { observer.observe(el); });
})();`

// ScriptObserver registers the browser-side IntersectionObserver by placing
// exactly one bootstrap script at the end of <body>. A previous script is
// replaced, so re-rendering never stacks observers.
type ScriptObserver struct{}

func (ScriptObserver) Observe(doc *html.Node, targets []*html.Node) {
	q := goquery.NewDocumentFromNode(doc)
	q.Find("#" + RevealScriptID).Remove()

	q.Find("body").First().AppendNodes(el("script", []attr{
		a("id", RevealScriptID),
		a("data-targets", strconv.Itoa(len(targets))),
	}, text(revealScript)))
}
