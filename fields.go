// Package knife selects whitespace-separated fields from lines of text.
//
// A selection is written as a comma-separated pattern: N picks the N-th
// field (numbering starts at 1), -N picks everything up to the N-th field,
// N- everything from the N-th on, and N-M a closed range. A colon works the
// same as a dash, so 1:3 and 1-3 are the same range.
package knife

import (
	"errors"
	"math"
	"sort"
	"unicode"
)

const (
	// MinField is the lowest addressable position, numbering is 1-based.
	MinField = 1
	// MaxField stands in for the missing bound of an open-ended range
	// like "5-". Iteration is always bounded by the actual line, so the
	// sentinel is never counted toward.
	MaxField = math.MaxInt
)

// Pattern parsing errors.
var (
	ErrCannotParse = errors.New("cannot parse the pattern")
	ErrStartsAtOne = errors.New("numbering starts at 1")
	ErrEmpty       = errors.New("no fields specified")
)

// Rule selects an inclusive range of field positions. A single position is
// the degenerate range with Lo == Hi, an open-ended range has Hi == MaxField.
type Rule struct {
	Lo, Hi int
}

// newRule validates the bounds and normalizes a reversed range.
func newRule(lo, hi int) (Rule, error) {
	if lo < MinField || hi < MinField {
		return Rule{}, ErrStartsAtOne
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return Rule{Lo: lo, Hi: hi}, nil
}

// ParseFields parses a field selection pattern like "1,3-5" into rules
// sorted by their lower bound. Whitespace is ignored anywhere, redundant
// commas are skipped, and any other character fails the whole parse.
func ParseFields(s string) ([]Rule, error) {
	var (
		rules   []Rule
		num     int
		hasNum  bool
		lo      int
		isRange bool
	)

	// an item ends at a comma or at the end of the pattern
	collect := func() error {
		switch {
		case isRange:
			hi := MaxField
			if hasNum {
				hi = num
			}
			r, err := newRule(lo, hi)
			if err != nil {
				return err
			}
			rules = append(rules, r)
		case hasNum:
			r, err := newRule(num, num)
			if err != nil {
				return err
			}
			rules = append(rules, r)
		}
		// nothing pending means an empty item, which is fine
		return nil
	}

	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			num = num*10 + int(c-'0')
			hasNum = true
		case c == '-' || c == ':':
			// the pending number, if any, is the lower bound
			lo = MinField
			if hasNum {
				lo = num
			}
			num, hasNum = 0, false
			isRange = true
		case c == ',':
			if err := collect(); err != nil {
				return nil, err
			}
			num, hasNum = 0, false
			isRange = false
		case unicode.IsSpace(c):
		default:
			return nil, ErrCannotParse
		}
	}

	// the last item has no trailing comma
	if err := collect(); err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, ErrEmpty
	}

	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Lo < rules[j].Lo })
	return rules, nil
}
