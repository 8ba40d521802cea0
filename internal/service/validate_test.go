package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"player-registry/internal/domain"
)

func TestIsValidName(t *testing.T) {
	assert.False(t, IsValidName(""))
	assert.True(t, IsValidName("a"))
	assert.True(t, IsValidName(strings.Repeat("x", 12)))
	assert.False(t, IsValidName(strings.Repeat("x", 13)))
	assert.True(t, IsValidName("Камираж"))
}

func TestIsValidTitle(t *testing.T) {
	assert.False(t, IsValidTitle(""))
	assert.True(t, IsValidTitle(strings.Repeat("x", 30)))
	assert.False(t, IsValidTitle(strings.Repeat("x", 31)))
}

func TestIsValidExperience(t *testing.T) {
	assert.True(t, IsValidExperience(0))
	assert.True(t, IsValidExperience(10_000_000))
	assert.False(t, IsValidExperience(-1))
	assert.False(t, IsValidExperience(10_000_001))
}

func TestIsValidBirthYear(t *testing.T) {
	assert.False(t, IsValidBirthYear(time.Time{}))
	assert.False(t, IsValidBirthYear(time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC)))
	assert.True(t, IsValidBirthYear(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, IsValidBirthYear(time.Date(3000, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsValidBirthYear(time.Date(3001, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsValidBirthYear(time.UnixMilli(-1)))
}

func TestHasRequiredFields(t *testing.T) {
	assert.False(t, HasRequiredFields(PlayerFields{}))
	assert.False(t, HasRequiredFields(PlayerFields{Banned: domain.Some(true)}))
	// any single field is enough
	assert.True(t, HasRequiredFields(PlayerFields{Race: domain.Some(domain.RaceElf)}))
	assert.True(t, HasRequiredFields(PlayerFields{Experience: domain.Some(0)}))
}
