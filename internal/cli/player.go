package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"player-registry/internal/domain"
	"player-registry/internal/service"
)

// filterFlags 只有显式传入的 flag 才成为过滤条件
type filterFlags struct {
	name, title, race, profession string
	after, before                 string // YYYY-MM-DD
	banned                        bool
	minExp, maxExp                int
	minLevel, maxLevel            int
}

func (f *filterFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "name contains")
	fs.StringVar(&f.title, "title", "", "title contains")
	fs.StringVar(&f.race, "race", "", "race (HUMAN, ELF, ...)")
	fs.StringVar(&f.profession, "profession", "", "profession (WARRIOR, ...)")
	fs.StringVar(&f.after, "after", "", "birthday on or after YYYY-MM-DD")
	fs.StringVar(&f.before, "before", "", "birthday on or before YYYY-MM-DD")
	fs.BoolVar(&f.banned, "banned", false, "banned flag")
	fs.IntVar(&f.minExp, "min-exp", 0, "minimum experience")
	fs.IntVar(&f.maxExp, "max-exp", 0, "maximum experience")
	fs.IntVar(&f.minLevel, "min-level", 0, "minimum level")
	fs.IntVar(&f.maxLevel, "max-level", 0, "maximum level")
}

func (f *filterFlags) criteria(fs *pflag.FlagSet) (service.Criteria, error) {
	var c service.Criteria
	if fs.Changed("name") {
		c.Name = &f.name
	}
	if fs.Changed("title") {
		c.Title = &f.title
	}
	if fs.Changed("race") {
		r, err := domain.ParseRace(f.race)
		if err != nil {
			return c, err
		}
		c.Race = &r
	}
	if fs.Changed("profession") {
		p, err := domain.ParseProfession(f.profession)
		if err != nil {
			return c, err
		}
		c.Profession = &p
	}
	if fs.Changed("after") {
		ms, err := dateMillis(f.after)
		if err != nil {
			return c, err
		}
		c.After = &ms
	}
	if fs.Changed("before") {
		ms, err := dateMillis(f.before)
		if err != nil {
			return c, err
		}
		c.Before = &ms
	}
	if fs.Changed("banned") {
		c.Banned = &f.banned
	}
	if fs.Changed("min-exp") {
		c.MinExperience = &f.minExp
	}
	if fs.Changed("max-exp") {
		c.MaxExperience = &f.maxExp
	}
	if fs.Changed("min-level") {
		c.MinLevel = &f.minLevel
	}
	if fs.Changed("max-level") {
		c.MaxLevel = &f.maxLevel
	}
	return c, nil
}

func dateMillis(s string) (int64, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.UnixMilli(), nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", service.ErrInvalidRequest, s)
	}
	return id, nil
}

func newListCmd(e *env) *cobra.Command {
	var (
		ff         filterFlags
		order      string
		page, size int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players matching the filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			crit, err := ff.criteria(cmd.Flags())
			if err != nil {
				return err
			}
			o, err := domain.ParsePlayerOrder(order)
			if err != nil {
				return err
			}
			ps, err := e.svc.List(cmd.Context(), service.ListQuery{
				Criteria: crit, Order: o, PageNumber: page, PageSize: size,
			})
			if err != nil {
				return err
			}
			e.output().Players(ps)
			return nil
		},
	}
	ff.bind(cmd.Flags())
	cmd.Flags().StringVar(&order, "order", string(domain.OrderID), "ID, NAME, EXPERIENCE or BIRTHDAY")
	cmd.Flags().IntVar(&page, "page", service.DefaultPageNumber, "page number, from 0")
	cmd.Flags().IntVar(&size, "size", service.DefaultPageSize, "page size")
	return cmd
}

func newCountCmd(e *env) *cobra.Command {
	var ff filterFlags
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count players matching the filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			crit, err := ff.criteria(cmd.Flags())
			if err != nil {
				return err
			}
			n, err := e.svc.Count(cmd.Context(), crit)
			if err != nil {
				return err
			}
			e.output().Count(n)
			return nil
		},
	}
	ff.bind(cmd.Flags())
	return cmd
}

func newGetCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := e.svc.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			e.output().Player(p)
			return nil
		},
	}
}

func newBanCmd(e *env, banned bool) *cobra.Command {
	use, short := "ban <id>", "Mark a player as banned"
	if !banned {
		use, short = "unban <id>", "Clear a player's banned flag"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := e.svc.Update(cmd.Context(), id, service.PlayerFields{Banned: domain.Some(banned)})
			if err != nil {
				return err
			}
			e.output().Player(p)
			return nil
		},
	}
}

func newDeleteCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := e.svc.Delete(cmd.Context(), id); err != nil {
				return err
			}
			e.output().Message(fmt.Sprintf("player %d deleted", id))
			return nil
		},
	}
}
