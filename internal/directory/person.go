// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package directory

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/pdiddy/dirsearch/pkg/types"
)

// ErrNoName is returned when a page has no <big> name element.
var ErrNoName = errors.New("no name element on page")

// ParsePerson parses an HTML page or fragment and builds the record it lists.
func ParsePerson(r io.Reader) (*types.Person, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return BuildPerson(doc)
}

// BuildPerson builds a record from a parsed search result or detail page.
//
// The name comes from the first <big> element; a link inside it is the
// homepage. The first link among the siblings that follow the name's
// container, up to the next <div>, is the department. Each two-item line of
// the #Indented block becomes a "label: value" attribute.
func BuildPerson(doc *html.Node) (*types.Person, error) {
	big := findElement(doc, isTag("big"))
	if big == nil {
		return nil, ErrNoName
	}
	name, err := ParseName(textContent(big))
	if err != nil {
		return nil, err
	}
	var fields []types.Field
	add := func(key, value string) {
		fields = append(fields, types.Field{Key: key, Value: value})
	}

	if a := findElement(big, isTag("a")); a != nil {
		add(types.FieldHomepage, attr(a, "href"))
	}

	if parent := big.Parent; parent != nil && !isElement(parent, "div") {
		for s := parent.NextSibling; s != nil && !isElement(s, "div"); s = s.NextSibling {
			if isElement(s, "a") {
				add(types.FieldDepartment, strings.TrimSpace(textContent(s)))
				add(types.FieldDepartmentURL, attr(s, "href"))
				break
			}
		}
	}

	if indent := findElement(doc, hasID("Indented")); indent != nil {
		for _, group := range splitAtBreaks(indent) {
			if len(group) != 2 {
				continue
			}
			key := labelKey(textContent(group[0]))
			if key == "" {
				continue
			}
			add(key, strings.TrimSpace(textContent(group[1])))
		}
	}
	return types.NewPerson(name, fields...), nil
}

// labelKey turns "Business Email:" into "business_email". Only the text
// before the first colon is used.
func labelKey(label string) string {
	label, _, _ = strings.Cut(label, ":")
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "_")
}
