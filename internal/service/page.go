package service

import "player-registry/internal/domain"

const (
	DefaultPageNumber = 0
	DefaultPageSize   = 3
)

// Paginate 页码从 0 开始；越界返回空切片
func Paginate(players []domain.Player, pageNumber, pageSize int) []domain.Player {
	if pageNumber < 0 || pageSize <= 0 {
		return []domain.Player{}
	}
	// 此后 pageNumber*pageSize <= len-1，乘加都不会溢出
	if len(players) == 0 || pageNumber > (len(players)-1)/pageSize {
		return []domain.Player{}
	}
	start := pageNumber * pageSize
	return players[start : start+min(pageSize, len(players)-start)]
}
