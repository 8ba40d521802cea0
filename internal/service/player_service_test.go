package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"player-registry/internal/domain"
	"player-registry/internal/repo"
	"player-registry/internal/service"
)

type PlayerServiceSuite struct {
	suite.Suite
	ctx  context.Context
	repo *repo.MemoryPlayerRepo
	svc  *service.PlayerService
}

func TestPlayerServiceSuite(t *testing.T) {
	suite.Run(t, new(PlayerServiceSuite))
}

func (s *PlayerServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = repo.NewMemoryPlayerRepo()
	s.svc = service.NewPlayerService(s.repo, nil)
}

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func fields(name, title string, exp int, birthday time.Time) service.PlayerFields {
	return service.PlayerFields{
		Name:       domain.Some(name),
		Title:      domain.Some(title),
		Race:       domain.Some(domain.RaceHuman),
		Profession: domain.Some(domain.ProfessionWarrior),
		Experience: domain.Some(exp),
		Birthday:   domain.Some(birthday),
	}
}

func (s *PlayerServiceSuite) create(name string, exp int) *domain.Player {
	p, err := s.svc.Create(s.ctx, fields(name, "Tester", exp, day(2010, 5, 5)))
	s.Require().NoError(err)
	return p
}

func (s *PlayerServiceSuite) TestCreateComputesLevel() {
	p, err := s.svc.Create(s.ctx, service.PlayerFields{
		Name:       domain.Some("Kamirage"),
		Title:      domain.Some("Hero of the North"),
		Race:       domain.Some(domain.RaceElf),
		Profession: domain.Some(domain.ProfessionWarrior),
		Experience: domain.Some(0),
		Birthday:   domain.Some(day(2020, 1, 1)),
	})
	s.Require().NoError(err)
	s.Positive(p.ID)
	s.Equal(0, p.Level)
	s.Equal(100, p.UntilNextLevel)
	s.False(p.Banned)

	got, err := s.svc.Get(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(p.Name, got.Name)
	s.Equal(p.Title, got.Title)
	s.Equal(domain.RaceElf, got.Race)
	s.True(p.Birthday.Equal(got.Birthday))
}

func (s *PlayerServiceSuite) TestCreateAssignsDistinctIDs() {
	a := s.create("Alpha", 1)
	b := s.create("Beta", 2)
	s.NotEqual(a.ID, b.ID)
}

func (s *PlayerServiceSuite) TestCreateBannedDefault() {
	f := fields("Zul", "Shade", 10, day(2001, 1, 1))
	f.Banned = domain.Some(true)
	p, err := s.svc.Create(s.ctx, f)
	s.Require().NoError(err)
	s.True(p.Banned)
}

func (s *PlayerServiceSuite) TestCreateRejectsInvalid() {
	long := "ThisNameIsTooLong"
	cases := map[string]service.PlayerFields{
		"no fields":         {},
		"name too long":     fields(long, "Title", 0, day(2010, 1, 1)),
		"empty title":       fields("Name", "", 0, day(2010, 1, 1)),
		"negative exp":      fields("Name", "Title", -1, day(2010, 1, 1)),
		"exp too large":     fields("Name", "Title", 10_000_001, day(2010, 1, 1)),
		"birthday too old":  fields("Name", "Title", 0, day(1999, 12, 31)),
		"birthday too late": fields("Name", "Title", 0, day(3001, 1, 1)),
		"missing birthday":  {Name: domain.Some("Name"), Title: domain.Some("Title"), Experience: domain.Some(0)},
		"missing exp":       {Name: domain.Some("Name"), Title: domain.Some("Title"), Birthday: domain.Some(day(2010, 1, 1))},
	}
	for name, f := range cases {
		s.Run(name, func() {
			_, err := s.svc.Create(s.ctx, f)
			s.ErrorIs(err, service.ErrInvalidRequest)
		})
	}
	all, err := s.repo.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *PlayerServiceSuite) TestGetBadID() {
	_, err := s.svc.Get(s.ctx, -1)
	s.ErrorIs(err, service.ErrInvalidRequest)
	_, err = s.svc.Get(s.ctx, 0)
	s.ErrorIs(err, service.ErrInvalidRequest)
	_, err = s.svc.Get(s.ctx, 99999)
	s.ErrorIs(err, service.ErrNotFound)
}

func (s *PlayerServiceSuite) TestUpdateRejectsExperience() {
	var last *domain.Player
	for i := 0; i < 5; i++ {
		last = s.create("P", i*100)
	}
	_, err := s.svc.Update(s.ctx, last.ID, service.PlayerFields{Experience: domain.Some(10_000_001)})
	s.ErrorIs(err, service.ErrInvalidRequest)

	got, err := s.svc.Get(s.ctx, last.ID)
	s.Require().NoError(err)
	s.Equal(400, got.Experience)
}

func (s *PlayerServiceSuite) TestUpdateMergesAndRecalculates() {
	p := s.create("Brogan", 0)

	got, err := s.svc.Update(s.ctx, p.ID, service.PlayerFields{
		Title:      domain.Some("Ironfoot"),
		Experience: domain.Some(300),
		Banned:     domain.Some(true),
	})
	s.Require().NoError(err)
	s.Equal(p.ID, got.ID)
	s.Equal("Brogan", got.Name)
	s.Equal("Ironfoot", got.Title)
	s.Equal(2, got.Level)
	s.Equal(300, got.UntilNextLevel)
	s.True(got.Banned)
	s.True(p.Birthday.Equal(got.Birthday))
}

func (s *PlayerServiceSuite) TestUpdateEmptyPatchKeepsRecord() {
	p := s.create("Brogan", 100)
	got, err := s.svc.Update(s.ctx, p.ID, service.PlayerFields{})
	s.Require().NoError(err)
	s.Equal(p.Name, got.Name)
	s.Equal(1, got.Level)
	s.Equal(200, got.UntilNextLevel)
}

func (s *PlayerServiceSuite) TestUpdateRejectsBirthday() {
	p := s.create("Brogan", 100)
	_, err := s.svc.Update(s.ctx, p.ID, service.PlayerFields{Birthday: domain.Some(day(1990, 1, 1))})
	s.ErrorIs(err, service.ErrInvalidRequest)
}

func (s *PlayerServiceSuite) TestUpdateMissing() {
	_, err := s.svc.Update(s.ctx, 0, service.PlayerFields{})
	s.ErrorIs(err, service.ErrInvalidRequest)
	_, err = s.svc.Update(s.ctx, 42, service.PlayerFields{})
	s.ErrorIs(err, service.ErrNotFound)
}

func (s *PlayerServiceSuite) TestDelete() {
	p := s.create("Gone", 0)
	s.Require().NoError(s.svc.Delete(s.ctx, p.ID))

	_, err := s.svc.Get(s.ctx, p.ID)
	s.ErrorIs(err, service.ErrNotFound)
	s.ErrorIs(s.svc.Delete(s.ctx, p.ID), service.ErrNotFound)
	s.ErrorIs(s.svc.Delete(s.ctx, -5), service.ErrInvalidRequest)
}

func (s *PlayerServiceSuite) TestListAndCount() {
	s.create("Kamirage", 0)
	s.create("Mirabel", 300)
	s.create("Gruuk", 910_000)
	s.create("Ardwen", 58_000)

	name := "ir"
	c := service.Criteria{Name: &name}
	n, err := s.svc.Count(s.ctx, c)
	s.Require().NoError(err)
	s.Equal(2, n)

	got, err := s.svc.List(s.ctx, service.ListQuery{Criteria: c, Order: domain.OrderName, PageSize: 10})
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("Kamirage", got[0].Name)
	s.Equal("Mirabel", got[1].Name)

	// defaults: first page of three, ordered by id
	page, err := s.svc.List(s.ctx, service.ListQuery{PageSize: service.DefaultPageSize})
	s.Require().NoError(err)
	s.Len(page, 3)
	for i := 1; i < len(page); i++ {
		s.Less(page[i-1].ID, page[i].ID)
	}

	rest, err := s.svc.List(s.ctx, service.ListQuery{PageNumber: 1, PageSize: 3})
	s.Require().NoError(err)
	s.Len(rest, 1)

	empty, err := s.svc.List(s.ctx, service.ListQuery{PageNumber: 5, PageSize: 3})
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *PlayerServiceSuite) TestListRejectsBadPaging() {
	_, err := s.svc.List(s.ctx, service.ListQuery{PageNumber: -1, PageSize: 3})
	s.ErrorIs(err, service.ErrInvalidRequest)
	_, err = s.svc.List(s.ctx, service.ListQuery{PageSize: 0})
	s.ErrorIs(err, service.ErrInvalidRequest)
}

type brokenRepo struct{ domain.PlayerRepository }

var errStorage = errors.New("storage down")

func (brokenRepo) LoadAll(context.Context) ([]domain.Player, error) {
	return nil, errStorage
}

func (brokenRepo) Exists(context.Context, int64) (bool, error) {
	return false, errStorage
}

func (brokenRepo) Save(context.Context, *domain.Player) (*domain.Player, error) {
	return nil, errStorage
}

func TestPlayerServiceStorageErrors(t *testing.T) {
	ctx := context.Background()
	svc := service.NewPlayerService(brokenRepo{}, nil)

	_, err := svc.List(ctx, service.ListQuery{PageSize: 3})
	assert.ErrorIs(t, err, errStorage)
	_, err = svc.Count(ctx, service.Criteria{})
	assert.ErrorIs(t, err, errStorage)
	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, service.ErrNotFound)

	_, err = svc.Create(ctx, fields("Name", "Title", 0, day(2010, 1, 1)))
	require.ErrorIs(t, err, errStorage)
}
