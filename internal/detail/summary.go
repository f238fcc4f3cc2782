package detail

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Summary is the structured digest of a detail page: the page heading plus
// the label/value pairs from its info tables.
type Summary struct {
	Title  string            `json:"title"`
	Fields map[string]string `json:"fields"`
}

// ExtractSummary pulls a structured summary out of sanitized detail HTML.
// The first heading becomes the title; table rows with exactly two cells
// are read as label/value pairs. Pages without either yield an empty
// summary, never an error.
func ExtractSummary(html string) Summary {
	summary := Summary{Fields: map[string]string{}}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return summary
	}

	heading := doc.Find("h1, h2, h3, h4, h5, h6").First()
	summary.Title = strings.TrimSpace(heading.Text())

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() != 2 {
			return
		}

		label := strings.TrimSpace(cells.Eq(0).Text())
		value := strings.TrimSpace(cells.Eq(1).Text())
		if label == "" || value == "" {
			return
		}

		label = strings.TrimSuffix(label, ":")
		if _, exists := summary.Fields[label]; !exists {
			summary.Fields[label] = value
		}
	})

	return summary
}
