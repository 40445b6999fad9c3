package knife

import "sort"

// Matcher answers membership queries for a non-decreasing stream of field
// positions in amortized constant time per query. It keeps a cursor into
// the sorted rule list that only ever moves forward: once a rule's upper
// bound has been passed, the rule is retired and never looked at again.
//
// A Matcher must not be shared between goroutines, and a new position
// sequence needs a fresh cursor (see Reset).
type Matcher struct {
	rules []Rule
	cur   int
	min   int
	max   int
}

// NewMatcher builds a matcher from a list of rules. The rules are copied
// and sorted by their lower bound, so the caller's slice stays untouched.
func NewMatcher(rules []Rule) *Matcher {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Lo < sorted[j].Lo })

	m := &Matcher{rules: sorted, min: 0, max: MaxField}
	if len(sorted) > 0 {
		m.min = sorted[0].Lo
		m.max = sorted[0].Hi
		for _, r := range sorted[1:] {
			if r.Hi > m.max {
				m.max = r.Hi
			}
		}
	}
	return m
}

// Min returns the smallest position any rule can match. It is a skip hint
// for callers enumerating positions, not a correctness mechanism.
func (m *Matcher) Min() int { return m.min }

// Max returns the largest position any rule can match, MaxField when some
// rule is open-ended.
func (m *Matcher) Max() int { return m.max }

// Matches reports whether pos is selected by one of the rules. Positions
// must arrive in non-decreasing order across the life of the cursor.
func (m *Matcher) Matches(pos int) bool {
	for m.cur < len(m.rules) {
		r := m.rules[m.cur]
		switch {
		case pos < r.Lo:
			// not reached yet
			return false
		case pos < r.Hi:
			// inside the range, a later position may match it again
			return true
		case pos == r.Hi:
			// boundary hit, nothing larger can match this rule
			m.cur++
			return true
		default:
			// already behind us, retire it and retry
			m.cur++
		}
	}
	return false
}

// Reset rewinds the cursor so the matcher can be reused for a new
// position sequence starting over from 1.
func (m *Matcher) Reset() { m.cur = 0 }
