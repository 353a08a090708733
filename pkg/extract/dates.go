package extract

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// dateMetaNames are checked in priority order against both the name and
// property attributes of meta tags.
var dateMetaNames = []string{
	"article:published_time",
	"pubdate",
	"date",
	"og:updated_time",
	"DC.date.issued",
}

// dateLayouts are the formats seen in the wild for publication dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"02 Jan 2006",
	"2006/01/02",
}

// publishedDate discovers the publication date from meta tags, a
// <time datetime> element, or JSON-LD, normalized to ISO-8601. Returns ""
// when nothing parses.
func publishedDate(doc *goquery.Document) string {
	for _, name := range dateMetaNames {
		var found string
		doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			n, _ := s.Attr("name")
			p, _ := s.Attr("property")
			if !strings.EqualFold(n, name) && !strings.EqualFold(p, name) {
				return true
			}
			if c, ok := s.Attr("content"); ok && c != "" {
				found = c
				return false
			}
			return true
		})
		if iso := normalizeDate(found); iso != "" {
			return iso
		}
	}

	if dt, ok := doc.Find("time[datetime]").First().Attr("datetime"); ok {
		if iso := normalizeDate(dt); iso != "" {
			return iso
		}
	}

	return jsonLDDate(doc)
}

// jsonLDDate scans ld+json blocks for a datePublished field.
func jsonLDDate(doc *goquery.Document) string {
	var found string
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var blob map[string]any
		if err := json.Unmarshal([]byte(s.Text()), &blob); err != nil {
			return true
		}
		if d, ok := blob["datePublished"].(string); ok {
			if iso := normalizeDate(d); iso != "" {
				found = iso
				return false
			}
		}
		return true
	})
	return found
}

// normalizeDate parses a raw date string and re-renders it as ISO-8601.
func normalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(time.RFC3339)
		}
	}
	return ""
}
