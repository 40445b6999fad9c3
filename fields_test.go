package knife

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFields(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []Rule
	}{
		{"single value", "7", []Rule{{7, 7}}},
		{"double-digit value", "17", []Rule{{17, 17}}},
		{"leading zeros", "007", []Rule{{7, 7}}},
		{"long number", "1037", []Rule{{1037, 1037}}},
		{"redundant commas ignored", ",7,,,", []Rule{{7, 7}}},
		{"comma-separated values", "1,2,3", []Rule{{1, 1}, {2, 2}, {3, 3}}},
		{"range without start", "-3", []Rule{{1, 3}}},
		{"range without end", "3-", []Rule{{3, MaxField}}},
		{"range without start and end", "-", []Rule{{1, MaxField}}},
		{"bare colon", ":", []Rule{{1, MaxField}}},
		{"simple range", "1-3", []Rule{{1, 3}}},
		{"reversed range", "3-1", []Rule{{1, 3}}},
		{"degenerate range is a value", "42-42", []Rule{{42, 42}}},
		{"two ranges", "1-2, 4-5", []Rule{{1, 2}, {4, 5}}},
		{"two ranges reversed", "4-5, 1-2", []Rule{{1, 2}, {4, 5}}},
		{"mixed", "-3, 4, 5-7, 9-", []Rule{{1, 3}, {4, 4}, {5, 7}, {9, MaxField}}},
		{"colon ranges", "1:3,:5,5:", []Rule{{1, 3}, {1, 5}, {5, MaxField}}},
		{"whitespace everywhere", " 2 , 4 - 6 ", []Rule{{2, 2}, {4, 6}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFields(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFieldsSorted(t *testing.T) {
	got, err := ParseFields("9-, 5-7, 4, -3")
	require.NoError(t, err)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Lo, got[i].Lo, "rules must be sorted by lower bound")
	}
}

func TestParseFieldsErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    error
	}{
		{"empty", "", ErrEmpty},
		{"only comma", ",", ErrEmpty},
		{"only commas", ",,,", ErrEmpty},
		{"only whitespace", "   ", ErrEmpty},
		{"zero", "0", ErrStartsAtOne},
		{"zero in range", "0-5", ErrStartsAtOne},
		{"zero in reversed range", "5-0", ErrStartsAtOne},
		{"invalid chars", "1-%^&5", ErrCannotParse},
		{"non-numbers", "a-z", ErrCannotParse},
		{"invalid char in the middle", "1-5, 3, X, 7-9", ErrCannotParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFields(tt.pattern)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewRule(t *testing.T) {
	r, err := newRule(5, 2)
	require.NoError(t, err)
	assert.Equal(t, Rule{2, 5}, r, "reversed bounds are swapped")

	_, err = newRule(0, 5)
	assert.ErrorIs(t, err, ErrStartsAtOne)
	_, err = newRule(5, 0)
	assert.ErrorIs(t, err, ErrStartsAtOne)
}
