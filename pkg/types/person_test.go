// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func person(name Name, kv ...string) *Person {
	var fields []Field
	for i := 0; i+1 < len(kv); i += 2 {
		fields = append(fields, Field{Key: kv[i], Value: kv[i+1]})
	}
	return NewPerson(name, fields...)
}

// --- Name ---

func TestNamePFirst(t *testing.T) {
	assert.Equal(t, "Janie", Name{Last: "Doe", First: "Jane", Nick: "Janie"}.PFirst())
	assert.Equal(t, "Jane", Name{Last: "Doe", First: "Jane"}.PFirst())
}

func TestNameFormat(t *testing.T) {
	n := Name{Last: "Doe", First: "Jane", Nick: "Janie"}
	tests := []struct {
		tmpl string
		want string
	}{
		{"{last}, {first} ({nick})", "Doe, Jane (Janie)"},
		{"{pfirst} {last}", "Janie Doe"},
		{"{first}{nickp} {last}", "Jane (Janie) Doe"},
		{"{unknown} {last}", "{unknown} Doe"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.tmpl, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Format(tt.tmpl))
		})
	}
}

func TestNameStringWithoutNick(t *testing.T) {
	n := Name{Last: "Doe", First: "Jane"}
	assert.Equal(t, "", n.NickP())
	assert.Equal(t, "Jane Doe", n.String())
}

// --- Person ---

func TestPersonUsername(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"staff address", "jdoe@mines.edu", "jdoe"},
		{"student address", "JDoe2@mymail.mines.edu", "jdoe2"},
		{"external address", "jdoe@example.com", ""},
		{"no email", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var kv []string
			if tt.email != "" {
				kv = []string{FieldBusinessEmail, tt.email}
			}
			assert.Equal(t, tt.want, person(Name{Last: "Doe", First: "Jane"}, kv...).Username())
		})
	}
}

func TestPersonDesc(t *testing.T) {
	n := Name{Last: "Doe", First: "Jane"}
	assert.Equal(t, "Faculty, Physics", person(n, FieldDepartment, "Physics", FieldClassification, "Faculty").Desc())
	assert.Equal(t, "Physics", person(n, FieldDepartment, "Physics").Desc())
	assert.Equal(t, "", person(n).Desc())
}

func TestNewPersonRepeatedKeyKeepsFirstPosition(t *testing.T) {
	p := person(Name{First: "A"}, "office", "1", "phone", "2", "office", "3")
	assert.Equal(t, []string{"office", "phone"}, p.Keys())
	v, ok := p.Get("office")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
	assert.False(t, p.Has("fax"))

	keys := p.Keys()
	keys[0] = "changed"
	assert.Equal(t, []string{"office", "phone"}, p.Keys(), "Keys returns a copy")
}

func TestPersonEqual(t *testing.T) {
	jane := Name{Last: "Doe", First: "Jane"}
	janie := Name{Last: "Doe", First: "Jane", Nick: "Janie"}
	john := Name{Last: "Doe", First: "John"}

	tests := []struct {
		name string
		a, b *Person
		want bool
	}{
		{"same username different names", person(jane, FieldBusinessEmail, "jdoe@mines.edu"), person(janie, FieldBusinessEmail, "JDOE@mines.edu"), true},
		{"no usernames same name", person(jane), person(jane), true},
		{"no usernames different names", person(jane), person(janie), false},
		{"different usernames same name", person(jane, FieldBusinessEmail, "jdoe@mines.edu"), person(jane, FieldBusinessEmail, "jdoe2@mines.edu"), true},
		{"one username different names", person(jane, FieldBusinessEmail, "jdoe@mines.edu"), person(john), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestPersonSetMatchesEqual(t *testing.T) {
	jane := Name{Last: "Doe", First: "Jane"}
	janie := Name{Last: "Doe", First: "Jane", Nick: "Janie"}

	s := NewPersonSet()
	assert.True(t, s.Add(person(jane, FieldBusinessEmail, "jdoe@mines.edu")))
	assert.False(t, s.Add(person(janie, FieldBusinessEmail, "jdoe@mines.edu")), "same username")
	assert.False(t, s.Add(person(jane)), "same name")
	assert.True(t, s.Add(person(Name{Last: "Roe", First: "Richard"})))
	assert.True(t, s.Contains(person(Name{Last: "Roe", First: "Richard"}, FieldBusinessEmail, "rroe@mines.edu")))
	assert.Equal(t, 2, s.Len())
}
