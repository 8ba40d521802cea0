package service

import (
	"cmp"
	"slices"
	"strings"

	"player-registry/internal/domain"
)

// SortPlayers sorts in place, stable and ascending, and returns the slice.
// Unknown orders fall back to ID.
func SortPlayers(players []domain.Player, order domain.PlayerOrder) []domain.Player {
	var compare func(a, b domain.Player) int
	switch order {
	case domain.OrderName:
		compare = func(a, b domain.Player) int { return strings.Compare(a.Name, b.Name) }
	case domain.OrderExperience:
		compare = func(a, b domain.Player) int { return cmp.Compare(a.Experience, b.Experience) }
	case domain.OrderBirthday:
		compare = func(a, b domain.Player) int { return a.Birthday.Compare(b.Birthday) }
	default:
		compare = func(a, b domain.Player) int { return cmp.Compare(a.ID, b.ID) }
	}
	slices.SortStableFunc(players, compare)
	return players
}
