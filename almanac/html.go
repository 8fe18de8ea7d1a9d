// SPDX-License-Identifier: MIT

package almanac

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractExample returns the text of the first <pre><code> block of a saved
// puzzle page, which holds the example almanac.
func ExtractExample(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("almanac: parse html: %w", err)
	}

	var text string
	doc.Find("pre code").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		t := s.Text()
		if strings.TrimSpace(t) == "" {
			return true
		}
		text = t
		return false
	})
	if text == "" {
		return "", ErrNoExample
	}
	return text, nil
}
