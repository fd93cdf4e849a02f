package rendering

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Text flattens rendered HTML into plain text: the name, one contact line,
// then each block with its heading underlined.
func Text(page []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", &RenderError{Message: "failed to parse HTML", Cause: err}
	}
	doc.Find("style, script, .icon").Remove()

	var b strings.Builder
	line := func(s string) {
		if s = cleanLine(s); s != "" {
			b.WriteString(s)
			b.WriteByte('\n')
		}
	}

	header := doc.Find("header.header")
	line(header.Find(".name").Text())
	line(header.Find(".tagline").Text())
	var contacts []string
	header.Find(".contact").Each(func(_ int, s *goquery.Selection) {
		if v := cleanLine(s.Text()); v != "" {
			contacts = append(contacts, v)
		}
	})
	line(strings.Join(contacts, " | "))

	doc.Find("section.block").Each(func(_ int, block *goquery.Selection) {
		heading := cleanLine(block.Find(".heading").Text())
		b.WriteByte('\n')
		line(heading)
		line(strings.Repeat("-", len([]rune(heading))))
		line(block.Find(".text").Text())

		block.Find(".item").Each(func(i int, item *goquery.Selection) {
			if i > 0 {
				b.WriteByte('\n')
			}
			line(item.Find(".item-heading").Text())
			line(joinNonEmpty(" | ",
				cleanLine(item.Find(".subheading").Text()),
				cleanLine(item.Find(".period").Text())))
			line(item.Find(".body").Text())
		})

		var badges []string
		block.Find(".badge").Each(func(_ int, s *goquery.Selection) {
			badges = append(badges, cleanLine(s.Text()))
		})
		line(joinNonEmpty(", ", badges...))
	})

	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

// cleanLine trims each line of s and drops blank ones, keeping paragraph breaks
// inside descriptions as single newlines.
func cleanLine(s string) string {
	var kept []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}
