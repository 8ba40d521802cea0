package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	cases := []struct {
		exp, level, until int
	}{
		{0, 0, 100},
		{99, 0, 1},
		{100, 1, 200},
		{299, 1, 1},
		{300, 2, 300},
		{10_000_000, 446, 12_800},
	}
	for _, tc := range cases {
		lvl := Level(tc.exp)
		assert.Equal(t, tc.level, lvl, "level for exp=%d", tc.exp)
		assert.Equal(t, tc.until, UntilNextLevel(lvl, tc.exp), "until for exp=%d", tc.exp)
	}
}

func TestLevelMonotonic(t *testing.T) {
	prev := 0
	for exp := 0; exp <= MaxExperience; exp += 997 {
		lvl := Level(exp)
		assert.GreaterOrEqual(t, lvl, prev)
		assert.Positive(t, UntilNextLevel(lvl, exp))
		prev = lvl
	}
}

func TestLevelBoundaries(t *testing.T) {
	// level L starts exactly at 50*L*(L+1)
	for l := 1; l <= 446; l++ {
		start := 50 * l * (l + 1)
		assert.Equal(t, l, Level(start))
		assert.Equal(t, l-1, Level(start-1))
	}
}
