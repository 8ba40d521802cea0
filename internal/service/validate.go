package service

import (
	"time"
	"unicode/utf8"

	"player-registry/internal/domain"
)

const (
	MaxNameLen    = 12
	MaxTitleLen   = 30
	MaxExperience = 10_000_000
	MinBirthYear  = 2000
	MaxBirthYear  = 3000
)

func IsValidName(s string) bool {
	n := utf8.RuneCountInString(s)
	return n > 0 && n <= MaxNameLen
}

func IsValidTitle(s string) bool {
	n := utf8.RuneCountInString(s)
	return n > 0 && n <= MaxTitleLen
}

func IsValidExperience(n int) bool { return n >= 0 && n <= MaxExperience }

// IsValidBirthYear 年份按 UTC 计算
func IsValidBirthYear(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	y := t.UTC().Year()
	return y >= MinBirthYear && y <= MaxBirthYear
}

// HasRequiredFields reports whether any one of the creation fields is present.
// This is an OR across fields, not AND; the per-field validators that run
// after it reject a missing name, title, experience or birthday anyway.
func HasRequiredFields(f PlayerFields) bool {
	return f.Name.Set ||
		f.Title.Set ||
		f.Race.Set ||
		f.Profession.Set ||
		f.Birthday.Set ||
		f.Experience.Set
}

// PlayerFields 创建/更新入参，每个字段单独标记是否提供
type PlayerFields struct {
	Name       domain.Optional[string]
	Title      domain.Optional[string]
	Race       domain.Optional[domain.Race]
	Profession domain.Optional[domain.Profession]
	Experience domain.Optional[int]
	Birthday   domain.Optional[time.Time]
	Banned     domain.Optional[bool]
}
