package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"player-registry/internal/domain"
)

type PlayerService struct {
	repo domain.PlayerRepository
	log  *zap.Logger
}

func NewPlayerService(repo domain.PlayerRepository, l *zap.Logger) *PlayerService {
	if l == nil {
		l = zap.NewNop()
	}
	return &PlayerService{repo: repo, log: l}
}

// ListQuery 列表查询：过滤 + 排序 + 分页
type ListQuery struct {
	Criteria   Criteria
	Order      domain.PlayerOrder
	PageNumber int
	PageSize   int
}

func (s *PlayerService) List(ctx context.Context, q ListQuery) ([]domain.Player, error) {
	if q.PageNumber < 0 {
		return nil, fmt.Errorf("%w: pageNumber must be >= 0", ErrInvalidRequest)
	}
	if q.PageSize <= 0 {
		return nil, fmt.Errorf("%w: pageSize must be > 0", ErrInvalidRequest)
	}
	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := FilterPlayers(all, q.Criteria)
	SortPlayers(matched, q.Order)
	return Paginate(matched, q.PageNumber, q.PageSize), nil
}

func (s *PlayerService) Count(ctx context.Context, c Criteria) (int, error) {
	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(FilterPlayers(all, c)), nil
}

func (s *PlayerService) Create(ctx context.Context, f PlayerFields) (*domain.Player, error) {
	if err := validateCreate(f); err != nil {
		return nil, err
	}
	p := &domain.Player{
		Name:       f.Name.Value,
		Title:      f.Title.Value,
		Race:       f.Race.Value,
		Profession: f.Profession.Value,
		Experience: f.Experience.Value,
		Birthday:   f.Birthday.Value,
		Banned:     f.Banned.OrElse(false),
	}
	recalcLevel(p)

	saved, err := s.repo.Save(ctx, p)
	if err != nil {
		return nil, err
	}
	s.log.Debug("player created", zap.Int64("id", saved.ID), zap.String("name", saved.Name))
	return saved, nil
}

func validateCreate(f PlayerFields) error {
	switch {
	case !HasRequiredFields(f):
		return fmt.Errorf("%w: no player fields given", ErrInvalidRequest)
	case !IsValidName(f.Name.Value):
		return fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidRequest, MaxNameLen)
	case !IsValidTitle(f.Title.Value):
		return fmt.Errorf("%w: title must be 1..%d characters", ErrInvalidRequest, MaxTitleLen)
	case !f.Experience.Set || !IsValidExperience(f.Experience.Value):
		return fmt.Errorf("%w: experience must be 0..%d", ErrInvalidRequest, MaxExperience)
	case !IsValidBirthYear(f.Birthday.Value):
		return fmt.Errorf("%w: birthday year must be %d..%d", ErrInvalidRequest, MinBirthYear, MaxBirthYear)
	}
	return nil
}

func (s *PlayerService) Get(ctx context.Context, id int64) (*domain.Player, error) {
	if err := s.mustExist(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Update 只合并已提供的字段；等级无条件重算
func (s *PlayerService) Update(ctx context.Context, id int64, f PlayerFields) (*domain.Player, error) {
	if err := s.mustExist(ctx, id); err != nil {
		return nil, err
	}
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if v, ok := f.Name.Get(); ok {
		p.Name = v
	}
	if v, ok := f.Title.Get(); ok {
		p.Title = v
	}
	if v, ok := f.Race.Get(); ok {
		p.Race = v
	}
	if v, ok := f.Profession.Get(); ok {
		p.Profession = v
	}
	if v, ok := f.Birthday.Get(); ok {
		if !IsValidBirthYear(v) {
			return nil, fmt.Errorf("%w: birthday year must be %d..%d", ErrInvalidRequest, MinBirthYear, MaxBirthYear)
		}
		p.Birthday = v
	}
	if v, ok := f.Banned.Get(); ok {
		p.Banned = v
	}
	if v, ok := f.Experience.Get(); ok {
		if !IsValidExperience(v) {
			return nil, fmt.Errorf("%w: experience must be 0..%d", ErrInvalidRequest, MaxExperience)
		}
		p.Experience = v
	}
	p.ID = id
	recalcLevel(p)

	saved, err := s.repo.Save(ctx, p)
	if err != nil {
		return nil, err
	}
	s.log.Debug("player updated", zap.Int64("id", id))
	return saved, nil
}

func (s *PlayerService) Delete(ctx context.Context, id int64) error {
	if err := s.mustExist(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Debug("player deleted", zap.Int64("id", id))
	return nil
}

func (s *PlayerService) mustExist(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidRequest)
	}
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}
