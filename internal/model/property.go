package model

import (
	"sort"
	"strings"
)

// Property represents a numeric property a candidate can be tested for
type Property string

const (
	Prime      Property = "prime"
	Palindrome Property = "palindrome"
)

// AllProperties lists every property a candidate must hold to be reported
var AllProperties = []Property{Prime, Palindrome}

// PropertyNames returns a sorted, comma-separated list of property names
func PropertyNames(props []Property) string {
	names := make([]string, 0, len(props))
	for _, p := range props {
		names = append(names, string(p))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
