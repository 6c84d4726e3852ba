package model

// Range is a half-open interval of candidates [Start, End)
type Range struct {
	Start int
	End   int
}

// DefaultRange is the range scanned by the CLI.
// It starts at 10, so single-digit prime palindromes are never reported.
var DefaultRange = Range{Start: 10, End: 1000}

// Contains reports whether n falls within the range
func (r Range) Contains(n int) bool {
	return n >= r.Start && n < r.End
}

// Len returns the number of candidates in the range, or 0 for an empty range
func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}
