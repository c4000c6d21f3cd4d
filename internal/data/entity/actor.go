package entity

import "strings"

// Gender is stored by name (MALE, FEMALE, PREFER_NOT_TO_SHARE).
type Gender string

const (
	GenderMale             Gender = "MALE"
	GenderFemale           Gender = "FEMALE"
	GenderPreferNotToShare Gender = "PREFER_NOT_TO_SHARE"
)

var genderLabels = map[Gender]string{
	GenderMale:             "male",
	GenderFemale:           "female",
	GenderPreferNotToShare: "prefer not to share",
}

// Label is the human readable value rendered in responses.
func (g Gender) Label() string {
	if label, ok := genderLabels[g]; ok {
		return label
	}
	return strings.ToLower(string(g))
}

// Valid reports whether g is one of the known names.
func (g Gender) Valid() bool {
	_, ok := genderLabels[g]
	return ok
}

// ParseGender accepts a name or a label in any case.
func ParseGender(s string) (Gender, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	g := Gender(normalized)
	return g, g.Valid()
}

type Actor struct {
	Base
	Name   string `db:"name"`
	Age    int    `db:"age"`
	Gender Gender `db:"gender"`
}
