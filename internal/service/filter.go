package service

import (
	"strings"
	"time"

	"player-registry/internal/domain"
)

// Criteria 过滤条件，nil 表示不限制
type Criteria struct {
	Name          *string
	Title         *string
	Race          *domain.Race
	Profession    *domain.Profession
	After         *int64 // epoch millis
	Before        *int64 // epoch millis
	Banned        *bool
	MinExperience *int
	MaxExperience *int
	MinLevel      *int
	MaxLevel      *int
}

type predicate func(p *domain.Player) bool

// predicates builds one check per present criterion.
func (c Criteria) predicates() []predicate {
	var ps []predicate
	if c.Name != nil {
		s := *c.Name
		ps = append(ps, func(p *domain.Player) bool { return strings.Contains(p.Name, s) })
	}
	if c.Title != nil {
		s := *c.Title
		ps = append(ps, func(p *domain.Player) bool { return strings.Contains(p.Title, s) })
	}
	if c.Race != nil {
		r := *c.Race
		ps = append(ps, func(p *domain.Player) bool { return p.Race == r })
	}
	if c.Profession != nil {
		pr := *c.Profession
		ps = append(ps, func(p *domain.Player) bool { return p.Profession == pr })
	}
	if c.After != nil {
		after := time.UnixMilli(*c.After)
		ps = append(ps, func(p *domain.Player) bool { return !p.Birthday.Before(after) })
	}
	if c.Before != nil {
		before := time.UnixMilli(*c.Before)
		ps = append(ps, func(p *domain.Player) bool { return !p.Birthday.After(before) })
	}
	if c.Banned != nil {
		b := *c.Banned
		ps = append(ps, func(p *domain.Player) bool { return p.Banned == b })
	}
	if c.MinExperience != nil {
		n := *c.MinExperience
		ps = append(ps, func(p *domain.Player) bool { return p.Experience >= n })
	}
	if c.MaxExperience != nil {
		n := *c.MaxExperience
		ps = append(ps, func(p *domain.Player) bool { return p.Experience <= n })
	}
	if c.MinLevel != nil {
		n := *c.MinLevel
		ps = append(ps, func(p *domain.Player) bool { return p.Level >= n })
	}
	if c.MaxLevel != nil {
		n := *c.MaxLevel
		ps = append(ps, func(p *domain.Player) bool { return p.Level <= n })
	}
	return ps
}

// Matches reports whether p satisfies every present criterion.
func (c Criteria) Matches(p *domain.Player) bool {
	return matchAll(c.predicates(), p)
}

func matchAll(ps []predicate, p *domain.Player) bool {
	for _, ok := range ps {
		if !ok(p) {
			return false
		}
	}
	return true
}

// FilterPlayers 保持原有顺序
func FilterPlayers(players []domain.Player, c Criteria) []domain.Player {
	ps := c.predicates()
	out := make([]domain.Player, 0, len(players))
	for i := range players {
		if matchAll(ps, &players[i]) {
			out = append(out, players[i])
		}
	}
	return out
}
