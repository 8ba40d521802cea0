package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"player-registry/internal/domain"
	"player-registry/internal/feature/player"
)

type PlayerRepo struct{ db *gorm.DB }

func NewPlayerRepo(db *gorm.DB) *PlayerRepo { return &PlayerRepo{db: db} }

var _ domain.PlayerRepository = (*PlayerRepo)(nil)

// Migrate 建表/补列
func (r *PlayerRepo) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&player.PlayerModel{})
}

func (r *PlayerRepo) LoadAll(ctx context.Context) ([]domain.Player, error) {
	var ms []player.PlayerModel
	if err := r.db.WithContext(ctx).Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Player, 0, len(ms))
	for i := range ms {
		out = append(out, ms[i].ToDomain())
	}
	return out, nil
}

func (r *PlayerRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&player.PlayerModel{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *PlayerRepo) Get(ctx context.Context, id int64) (*domain.Player, error) {
	var m player.PlayerModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}
	p := m.ToDomain()
	return &p, nil
}

func (r *PlayerRepo) Save(ctx context.Context, p *domain.Player) (*domain.Player, error) {
	m := player.FromDomain(p)
	tx := r.db.WithContext(ctx)
	var err error
	if m.ID == 0 {
		err = tx.Create(m).Error
	} else {
		err = tx.Save(m).Error
	}
	if err != nil {
		return nil, err
	}
	out := m.ToDomain()
	return &out, nil
}

func (r *PlayerRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&player.PlayerModel{}).Error
}
