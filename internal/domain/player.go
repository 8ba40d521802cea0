package domain

import (
	"context"
	"errors"
	"time"
)

type Player struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Title          string     `json:"title"`
	Race           Race       `json:"race"`
	Profession     Profession `json:"profession"`
	Experience     int        `json:"experience"`
	Level          int        `json:"level"`
	UntilNextLevel int        `json:"untilNextLevel"`
	Birthday       time.Time  `json:"birthday"`
	Banned         bool       `json:"banned"`
}

// PlayerRepository 玩家存储（load-all / exists / get / save / delete）
type PlayerRepository interface {
	LoadAll(ctx context.Context) ([]Player, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Get(ctx context.Context, id int64) (*Player, error)
	// Save assigns an id when p.ID == 0, otherwise overwrites the stored record.
	Save(ctx context.Context, p *Player) (*Player, error)
	Delete(ctx context.Context, id int64) error
}

var ErrPlayerNotFound = errors.New("player not found")
