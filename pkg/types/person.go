// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"regexp"
	"strings"
)

// Attribute keys the record builder produces outside the indented info block,
// plus the info block labels other code relies on.
const (
	FieldHomepage       = "homepage"
	FieldDepartment     = "department"
	FieldDepartmentURL  = "department_url"
	FieldClassification = "classification"
	FieldBusinessEmail  = "business_email"
)

// institutionalEmail matches campus addresses; the first group is the username.
var institutionalEmail = regexp.MustCompile(`^([A-Za-z0-9_-]+)@(?:mymail\.)?mines\.edu`)

// Field is one named attribute discovered on a directory page.
type Field struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Person is a directory entry. Name is always set; every other attribute is
// optional and present only if the source page listed it. Attributes keep the
// order in which they were discovered.
type Person struct {
	Name Name

	keys   []string
	values map[string]string
}

// NewPerson returns a record with the given name and attributes. A key given
// more than once keeps its first position and its last value. The record has
// no mutators.
func NewPerson(name Name, fields ...Field) *Person {
	p := &Person{Name: name, values: make(map[string]string, len(fields))}
	for _, f := range fields {
		p.set(f.Key, f.Value)
	}
	return p
}

func (p *Person) set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the attribute value and whether it is present.
func (p *Person) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether the attribute is present.
func (p *Person) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Keys returns attribute keys in discovery order.
func (p *Person) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Fields returns all attributes in discovery order.
func (p *Person) Fields() []Field {
	out := make([]Field, 0, len(p.keys))
	for _, k := range p.keys {
		out = append(out, Field{Key: k, Value: p.values[k]})
	}
	return out
}

func (p *Person) Homepage() string       { return p.values[FieldHomepage] }
func (p *Person) Department() string     { return p.values[FieldDepartment] }
func (p *Person) DepartmentURL() string  { return p.values[FieldDepartmentURL] }
func (p *Person) Classification() string { return p.values[FieldClassification] }
func (p *Person) BusinessEmail() string  { return p.values[FieldBusinessEmail] }

// Username returns the lower-cased local part of the business email when it
// is an institutional address, or "" otherwise.
func (p *Person) Username() string {
	m := institutionalEmail.FindStringSubmatch(p.BusinessEmail())
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}

// Desc joins classification and department, whichever are present.
func (p *Person) Desc() string {
	var parts []string
	for _, k := range []string{FieldClassification, FieldDepartment} {
		if v, ok := p.values[k]; ok {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}

// Equal reports whether p and o describe the same person: their usernames
// match (both non-empty) or their names match.
func (p *Person) Equal(o *Person) bool {
	if u := p.Username(); u != "" && u == o.Username() {
		return true
	}
	return p.Name == o.Name
}

// PersonSet tracks records already seen. Contains is consistent with
// Person.Equal: it reports true iff some added record is Equal to the query.
// A PersonSet is not safe for concurrent use.
type PersonSet struct {
	byUsername map[string]struct{}
	byName     map[Name]struct{}
}

// NewPersonSet returns an empty set.
func NewPersonSet() *PersonSet {
	return &PersonSet{
		byUsername: make(map[string]struct{}),
		byName:     make(map[Name]struct{}),
	}
}

// Contains reports whether an equal record has been added.
func (s *PersonSet) Contains(p *Person) bool {
	if u := p.Username(); u != "" {
		if _, ok := s.byUsername[u]; ok {
			return true
		}
	}
	_, ok := s.byName[p.Name]
	return ok
}

// Add records p. It returns false if an equal record was already present.
func (s *PersonSet) Add(p *Person) bool {
	if s.Contains(p) {
		return false
	}
	if u := p.Username(); u != "" {
		s.byUsername[u] = struct{}{}
	}
	s.byName[p.Name] = struct{}{}
	return true
}

// Len returns the number of distinct records added.
func (s *PersonSet) Len() int {
	return len(s.byName)
}
