package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"player-registry/internal/domain"
	"player-registry/internal/service"
)

type migrator interface {
	Migrate(ctx context.Context) error
}

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the player table (gorm store only)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, ok := e.repo.(migrator)
			if !ok {
				e.output().Message("store needs no migration")
				return nil
			}
			if err := m.Migrate(cmd.Context()); err != nil {
				return err
			}
			e.output().Message("migrate done")
			return nil
		},
	}
}

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

var seedPlayers = []service.PlayerFields{
	seed("Kamirage", "Hero of the North", domain.RaceElf, domain.ProfessionWarrior, 0, day(2020, 1, 1), false),
	seed("Ardwen", "Keeper of the Grove", domain.RaceElf, domain.ProfessionDruid, 58_000, day(2007, 3, 14), false),
	seed("Brogan", "Ironfoot", domain.RaceDwarf, domain.ProfessionPaladin, 174_000, day(2004, 9, 2), false),
	seed("Gruuk", "Skullsplitter", domain.RaceOrc, domain.ProfessionWarrior, 910_000, day(2010, 6, 21), true),
	seed("Pippa", "Light-fingered", domain.RaceHobbit, domain.ProfessionRogue, 2_500, day(2015, 11, 30), false),
	seed("Morwen", "Voice of the Void", domain.RaceHuman, domain.ProfessionWarlock, 4_300_000, day(2001, 2, 28), false),
	seed("Tharok", "Stoneborn", domain.RaceGiant, domain.ProfessionCleric, 39_000, day(2012, 8, 8), false),
	seed("Zul", "Ringwraith", domain.RaceHuman, domain.ProfessionNazgul, 10_000_000, day(2000, 1, 1), true),
	seed("Grimble", "Bridge Warden", domain.RaceTroll, domain.ProfessionSorcerer, 750, day(2019, 4, 1), false),
}

func seed(name, title string, r domain.Race, p domain.Profession, exp int, bday time.Time, banned bool) service.PlayerFields {
	return service.PlayerFields{
		Name:       domain.Some(name),
		Title:      domain.Some(title),
		Race:       domain.Some(r),
		Profession: domain.Some(p),
		Experience: domain.Some(exp),
		Birthday:   domain.Some(bday),
		Banned:     domain.Some(banned),
	}
}

func newSeedCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert a fixed set of sample players",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, f := range seedPlayers {
				if _, err := e.svc.Create(cmd.Context(), f); err != nil {
					return fmt.Errorf("seed %s: %w", f.Name.Value, err)
				}
			}
			e.output().Message(fmt.Sprintf("seeded %d players", len(seedPlayers)))
			return nil
		},
	}
}
