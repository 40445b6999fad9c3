package knife

import "strings"

// Knife is a compiled field selection pattern, ready to be applied to any
// number of lines. The zero value is not usable, construct it with New.
//
// A Knife carries the matcher cursor for the line being processed, so a
// single Knife must not be used from several goroutines at once.
type Knife struct {
	matcher *Matcher
}

// New compiles a field selection pattern like "1,3-5".
func New(pattern string) (*Knife, error) {
	rules, err := ParseFields(pattern)
	if err != nil {
		return nil, err
	}
	return &Knife{matcher: NewMatcher(rules)}, nil
}

// Extract returns the whitespace-separated fields of line selected by the
// pattern, in their original order. Fields are numbered from 1. Every call
// starts with a rewound cursor, positions only need to stay ordered within
// one line.
func (k *Knife) Extract(line string) []string {
	k.matcher.Reset()

	out := []string{}
	for i, field := range strings.Fields(line) {
		pos := i + 1
		if pos < k.matcher.Min() {
			continue
		}
		if pos > k.matcher.Max() {
			break
		}
		if k.matcher.Matches(pos) {
			out = append(out, field)
		}
	}
	return out
}
