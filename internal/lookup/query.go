package lookup

import (
	"regexp"
	"strings"
)

// MinDigits is the shortest code that can hold a tower and an apartment.
const MinDigits = 3

var reDigits = regexp.MustCompile(`[0-9]+`)

// Query is a parsed tower/apartment code. Either Tower and Apartment are
// set, or Digits holds a run whose split is left to the matcher.
type Query struct {
	Tower     string
	Apartment string
	Digits    string
}

func (q Query) IsPair() bool { return q.Digits == "" }

func (q Query) String() string {
	if q.IsPair() {
		return q.Tower + "-" + q.Apartment
	}
	return q.Digits
}

// ParseQuery reads a code such as "1-101", "1 101", "T1101" or "1101".
// Any non-digit breaks a group; the first two groups are tower and apartment.
func ParseQuery(text string) (Query, error) {
	norm := strings.ToLower(strings.TrimSpace(text))
	groups := reDigits.FindAllString(norm, -1)

	total := 0
	for _, g := range groups {
		total += len(g)
	}
	if total < MinDigits {
		return Query{}, &FormatError{Text: text, Digits: total}
	}

	if len(groups) >= 2 {
		return Query{Tower: groups[0], Apartment: groups[1]}, nil
	}
	return Query{Digits: groups[0]}, nil
}
