// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the records produced by the directory search pipeline
// and the configuration shared by the CLI and the directory client.
package types

import "strings"

// Name is a person's name as the directory lists it ("Last, First (Nick)").
// Any part may be empty. Name is comparable, so == and map keys use the
// (Last, First, Nick) triple.
type Name struct {
	Last  string `json:"last" yaml:"last"`
	First string `json:"first" yaml:"first"`
	Nick  string `json:"nick,omitempty" yaml:"nick,omitempty"`
}

// PFirst returns the preferred first name: the nickname when present.
func (n Name) PFirst() string {
	if n.Nick != "" {
		return n.Nick
	}
	return n.First
}

// NickP returns the nickname as " (Nick)", or "" when there is none.
func (n Name) NickP() string {
	if n.Nick == "" {
		return ""
	}
	return " (" + n.Nick + ")"
}

// Format renders tmpl, substituting {first}, {last}, {nick}, {pfirst} and
// {nickp}. Unknown placeholders are left as they are.
func (n Name) Format(tmpl string) string {
	r := strings.NewReplacer(
		"{first}", n.First,
		"{last}", n.Last,
		"{nick}", n.Nick,
		"{pfirst}", n.PFirst(),
		"{nickp}", n.NickP(),
	)
	return r.Replace(tmpl)
}

// String renders the name as "First (Nick) Last".
func (n Name) String() string {
	return n.Format("{first}{nickp} {last}")
}
