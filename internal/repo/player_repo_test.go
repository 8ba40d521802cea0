package repo

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"player-registry/internal/core/database"
	"player-registry/internal/domain"
)

// PlayerRepoSuite 所有存储实现共用的契约测试
type PlayerRepoSuite struct {
	suite.Suite
	newRepo func(t *testing.T) domain.PlayerRepository
	repo    domain.PlayerRepository
	ctx     context.Context
}

func (s *PlayerRepoSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo(s.T())
}

func TestMemoryPlayerRepo(t *testing.T) {
	suite.Run(t, &PlayerRepoSuite{newRepo: func(*testing.T) domain.PlayerRepository {
		return NewMemoryPlayerRepo()
	}})
}

func TestGormPlayerRepo(t *testing.T) {
	suite.Run(t, &PlayerRepoSuite{newRepo: func(t *testing.T) domain.PlayerRepository {
		name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
		db, err := database.NewGorm(database.Opts{
			Driver:       "sqlite",
			DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
			MaxOpenConns: 1,
			LogLevel:     "silent",
		})
		if err != nil {
			t.Fatalf("open sqlite: %v", err)
		}
		t.Cleanup(func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		})
		r := NewPlayerRepo(db)
		if err := r.Migrate(context.Background()); err != nil {
			t.Fatalf("migrate: %v", err)
		}
		return r
	}})
}

func TestRedisPlayerRepo(t *testing.T) {
	suite.Run(t, &PlayerRepoSuite{newRepo: func(t *testing.T) domain.PlayerRepository {
		mr := miniredis.RunT(t)
		r := NewRedisPlayerRepo(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
		t.Cleanup(func() { _ = r.Close() })
		return r
	}})
}

func samplePlayer(name string, exp int) *domain.Player {
	return &domain.Player{
		Name:           name,
		Title:          "Wanderer",
		Race:           domain.RaceHobbit,
		Profession:     domain.ProfessionRogue,
		Experience:     exp,
		Level:          1,
		UntilNextLevel: 200 - exp,
		Birthday:       time.Date(2012, 7, 4, 0, 0, 0, 0, time.UTC),
	}
}

func (s *PlayerRepoSuite) TestSaveAssignsID() {
	a, err := s.repo.Save(s.ctx, samplePlayer("Pip", 100))
	s.Require().NoError(err)
	b, err := s.repo.Save(s.ctx, samplePlayer("Merry", 150))
	s.Require().NoError(err)

	s.Positive(a.ID)
	s.Positive(b.ID)
	s.NotEqual(a.ID, b.ID)
}

func (s *PlayerRepoSuite) TestGetRoundTrip() {
	in := samplePlayer("Pip", 100)
	in.Banned = true
	saved, err := s.repo.Save(s.ctx, in)
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, saved.ID)
	s.Require().NoError(err)
	s.Equal(saved.ID, got.ID)
	s.Equal("Pip", got.Name)
	s.Equal("Wanderer", got.Title)
	s.Equal(domain.RaceHobbit, got.Race)
	s.Equal(domain.ProfessionRogue, got.Profession)
	s.Equal(100, got.Experience)
	s.Equal(1, got.Level)
	s.Equal(100, got.UntilNextLevel)
	s.True(in.Birthday.Equal(got.Birthday), "birthday %v != %v", in.Birthday, got.Birthday)
	s.True(got.Banned)
}

func (s *PlayerRepoSuite) TestSaveExistingOverwrites() {
	saved, err := s.repo.Save(s.ctx, samplePlayer("Pip", 100))
	s.Require().NoError(err)

	saved.Title = "Thain"
	saved.Experience = 120
	_, err = s.repo.Save(s.ctx, saved)
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, saved.ID)
	s.Require().NoError(err)
	s.Equal("Thain", got.Title)
	s.Equal(120, got.Experience)

	all, err := s.repo.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *PlayerRepoSuite) TestExistsAndDelete() {
	saved, err := s.repo.Save(s.ctx, samplePlayer("Pip", 100))
	s.Require().NoError(err)

	ok, err := s.repo.Exists(s.ctx, saved.ID)
	s.Require().NoError(err)
	s.True(ok)

	s.Require().NoError(s.repo.Delete(s.ctx, saved.ID))

	ok, err = s.repo.Exists(s.ctx, saved.ID)
	s.Require().NoError(err)
	s.False(ok)

	_, err = s.repo.Get(s.ctx, saved.ID)
	s.ErrorIs(err, domain.ErrPlayerNotFound)
}

func (s *PlayerRepoSuite) TestMissing() {
	ok, err := s.repo.Exists(s.ctx, 404)
	s.Require().NoError(err)
	s.False(ok)

	_, err = s.repo.Get(s.ctx, 404)
	s.ErrorIs(err, domain.ErrPlayerNotFound)
}

func (s *PlayerRepoSuite) TestLoadAllOrderedByID() {
	all, err := s.repo.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)

	for _, n := range []string{"Pip", "Merry", "Sam", "Frodo"} {
		_, err := s.repo.Save(s.ctx, samplePlayer(n, 100))
		s.Require().NoError(err)
	}
	all, err = s.repo.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 4)
	for i := 1; i < len(all); i++ {
		s.Less(all[i-1].ID, all[i].ID)
	}
	s.Equal("Pip", all[0].Name)
	s.Equal("Frodo", all[3].Name)
}
