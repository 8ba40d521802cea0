package service

import (
	"math"

	"player-registry/internal/domain"
)

// Level = floor((sqrt(2500 + 200*exp) - 50) / 100)
func Level(experience int) int {
	return int(math.Floor((math.Sqrt(2500+200*float64(experience)) - 50) / 100))
}

// UntilNextLevel 距下一级所需经验
func UntilNextLevel(level, experience int) int {
	return 50*(level+1)*(level+2) - experience
}

func recalcLevel(p *domain.Player) {
	p.Level = Level(p.Experience)
	p.UntilNextLevel = UntilNextLevel(p.Level, p.Experience)
}
