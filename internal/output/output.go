// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output renders streams of directory records for the CLI.
//
// Every formatter consumes its sequence lazily and writes each record as it
// arrives, except YAML, which needs the whole list. Each returns the number
// of records written and the first error from the sequence or the writer.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"

	"go.yaml.in/yaml/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/dirsearch/pkg/types"
)

// Format names accepted by Lookup.
const (
	FormatPretty = "pretty"
	FormatMutt   = "mutt"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
)

// Formatter writes a record stream to w.
type Formatter func(w io.Writer, seq iter.Seq2[*types.Person, error]) (int, error)

// Lookup returns the formatter for name.
func Lookup(name string) (Formatter, error) {
	switch name {
	case FormatPretty:
		return Pretty, nil
	case FormatMutt:
		return Mutt, nil
	case FormatJSON:
		return JSON, nil
	case FormatYAML:
		return YAML, nil
	}
	return nil, fmt.Errorf("unknown format %q (valid: pretty, mutt, json, yaml)", name)
}

// prettySkip lists attributes Pretty folds into the description line.
var prettySkip = map[string]bool{
	types.FieldClassification: true,
	types.FieldDepartment:     true,
	types.FieldDepartmentURL:  true,
}

var titler = cases.Title(language.English)

// Pretty writes each record as a name line, a description line, one
// "Label: value" line per remaining attribute, and a blank line.
func Pretty(w io.Writer, seq iter.Seq2[*types.Person, error]) (int, error) {
	n := 0
	for p, err := range seq {
		if err != nil {
			return n, err
		}
		var b strings.Builder
		fmt.Fprintln(&b, p.Name)
		if desc := p.Desc(); desc != "" {
			fmt.Fprintln(&b, desc)
		}
		for _, f := range p.Fields() {
			if prettySkip[f.Key] {
				continue
			}
			fmt.Fprintf(&b, "%s: %s\n", titler.String(strings.ReplaceAll(f.Key, "_", " ")), f.Value)
		}
		b.WriteString("\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Mutt writes the query_command format used by the mutt mail client:
// a status line, then "email<TAB>name<TAB>description" per record that has
// a business email. Records without one are skipped and not counted.
func Mutt(w io.Writer, seq iter.Seq2[*types.Person, error]) (int, error) {
	fmt.Fprint(w, "Searching dirsearch ...")
	n := 0
	for p, err := range seq {
		if err != nil {
			fmt.Fprintln(w)
			return n, err
		}
		email := p.BusinessEmail()
		if email == "" {
			continue
		}
		n++
		if n == 1 {
			fmt.Fprintln(w)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", email, p.Name.Format("{pfirst} {last}"), p.Desc()); err != nil {
			return n, err
		}
	}
	if n == 0 {
		fmt.Fprintln(w, " no results found!")
	}
	return n, nil
}

// record is the serialized form of a person.
type record struct {
	Name        types.Name        `json:"name" yaml:"name"`
	DisplayName string            `json:"display_name" yaml:"display_name"`
	Username    string            `json:"username,omitempty" yaml:"username,omitempty"`
	Fields      map[string]string `json:"fields,omitempty" yaml:"fields,omitempty"`
}

func toRecord(p *types.Person) record {
	r := record{
		Name:        p.Name,
		DisplayName: p.Name.String(),
		Username:    p.Username(),
	}
	for _, f := range p.Fields() {
		if r.Fields == nil {
			r.Fields = make(map[string]string)
		}
		r.Fields[f.Key] = f.Value
	}
	return r
}

// JSON writes one JSON object per record, one per line.
func JSON(w io.Writer, seq iter.Seq2[*types.Person, error]) (int, error) {
	enc := json.NewEncoder(w)
	n := 0
	for p, err := range seq {
		if err != nil {
			return n, err
		}
		if err := enc.Encode(toRecord(p)); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// YAML collects the stream and writes it as a single YAML list.
func YAML(w io.Writer, seq iter.Seq2[*types.Person, error]) (int, error) {
	records := []record{}
	for p, err := range seq {
		if err != nil {
			return 0, err
		}
		records = append(records, toRecord(p))
	}
	data, err := yaml.Marshal(records)
	if err != nil {
		return 0, fmt.Errorf("marshaling results: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return 0, err
	}
	return len(records), nil
}
