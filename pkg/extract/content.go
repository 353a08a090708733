package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// fallbackSelectors are tried in order when readability scoring finds
// nothing; first selector yielding enough text wins.
var fallbackSelectors = []string{"main", "article", "[role=main]", "#content", ".content", "body"}

// noiseSelectors are removed before any text extraction.
var noiseSelectors = []string{"script", "style", "noscript", "iframe", "img", "form", "nav", "header", "footer", "aside"}

var (
	spaceRun   = regexp.MustCompile(`[ \t]+`)
	newlineRun = regexp.MustCompile(`\n{3,}`)
)

// stripNonContent removes markup that never carries readable text.
func stripNonContent(doc *goquery.Document) {
	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}
}

// readableContent scores candidate containers the way readability
// implementations do: text volume weighted by paragraph density, penalized
// by link density. The best-scoring container's text is returned, cleaned.
func readableContent(doc *goquery.Document) string {
	var best *goquery.Selection
	var bestScore float64

	doc.Find("article, main, section, div").Each(func(_ int, s *goquery.Selection) {
		text := s.Text()
		textLen := float64(len(strings.TrimSpace(text)))
		if textLen == 0 {
			return
		}

		linkLen := 0.0
		s.Find("a").Each(func(_ int, a *goquery.Selection) {
			linkLen += float64(len(a.Text()))
		})
		linkDensity := linkLen / textLen

		paragraphs := float64(s.Find("p").Length())

		score := textLen * (1 - linkDensity) * (1 + paragraphs/10)
		if score > bestScore {
			bestScore = score
			best = s
		}
	})

	if best == nil {
		return ""
	}
	return cleanText(paragraphText(best))
}

// selectorFallback walks the fixed selector chain and returns the first
// block with at least minLen characters of cleaned text.
func selectorFallback(doc *goquery.Document, minLen int) string {
	for _, sel := range fallbackSelectors {
		s := doc.Find(sel).First()
		if s.Length() == 0 {
			continue
		}
		text := cleanText(paragraphText(s))
		if len(text) >= minLen {
			return text
		}
	}
	return ""
}

// paragraphText joins block-level text with newlines so cleanText can
// preserve paragraph boundaries.
func paragraphText(s *goquery.Selection) string {
	blocks := s.Find("p, h1, h2, h3, h4, h5, h6, li, blockquote, pre")
	if blocks.Length() == 0 {
		return s.Text()
	}
	var sb strings.Builder
	blocks.Each(func(_ int, b *goquery.Selection) {
		t := strings.TrimSpace(b.Text())
		if t == "" {
			return
		}
		sb.WriteString(t)
		sb.WriteString("\n\n")
	})
	return sb.String()
}

// cleanText collapses whitespace: runs of spaces/tabs become one space,
// three or more newlines become two.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = spaceRun.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	s = strings.Join(lines, "\n")
	s = newlineRun.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
