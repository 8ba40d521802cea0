package player

import (
	"time"

	"player-registry/internal/domain"
)

type PlayerModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	Name           string    `gorm:"size:12;not null"`
	Title          string    `gorm:"size:30;not null"`
	Race           string    `gorm:"size:16;index"`
	Profession     string    `gorm:"size:16;index"`
	Experience     int       `gorm:"not null;index"`
	Level          int       `gorm:"not null;index"`
	UntilNextLevel int       `gorm:"column:untilNextLevel;not null"`
	Birthday       time.Time `gorm:"index"`
	Banned         bool      `gorm:"not null;default:false"`
}

func (PlayerModel) TableName() string { return "player" }

func FromDomain(p *domain.Player) *PlayerModel {
	return &PlayerModel{
		ID:             p.ID,
		Name:           p.Name,
		Title:          p.Title,
		Race:           string(p.Race),
		Profession:     string(p.Profession),
		Experience:     p.Experience,
		Level:          p.Level,
		UntilNextLevel: p.UntilNextLevel,
		Birthday:       p.Birthday.UTC(),
		Banned:         p.Banned,
	}
}

func (m *PlayerModel) ToDomain() domain.Player {
	return domain.Player{
		ID:             m.ID,
		Name:           m.Name,
		Title:          m.Title,
		Race:           domain.Race(m.Race),
		Profession:     domain.Profession(m.Profession),
		Experience:     m.Experience,
		Level:          m.Level,
		UntilNextLevel: m.UntilNextLevel,
		Birthday:       m.Birthday.UTC(),
		Banned:         m.Banned,
	}
}
