package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"player-registry/internal/core/config"
	"player-registry/internal/core/logger"
	"player-registry/internal/domain"
	"player-registry/internal/repo"
	"player-registry/internal/service"
)

type env struct {
	cfgPath string
	format  string

	repo    domain.PlayerRepository
	svc     *service.PlayerService
	log     *zap.Logger
	out     io.Writer
	closers []func()
}

// NewRootCmd 读取配置并按 store.backend 打开存储
func NewRootCmd() *cobra.Command {
	return newRootCmd(&env{out: os.Stdout})
}

// NewRootCmdWithRepo 跳过配置，直接使用给定存储（测试用）
func NewRootCmdWithRepo(r domain.PlayerRepository, out io.Writer) *cobra.Command {
	return newRootCmd(&env{repo: r, log: zap.NewNop(), out: out})
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:   "player-admin",
		Short: "Maintenance CLI for the player registry",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.open(cmd.Context())
		},
		SilenceUsage: true,
	}
	root.SetOut(e.out)

	root.PersistentFlags().StringVar(&e.cfgPath, "config", "", "config file (env: CONFIG_PATH)")
	root.PersistentFlags().StringVarP(&e.format, "output", "o", "text", "output format: text, json")

	root.AddCommand(
		newMigrateCmd(e),
		newSeedCmd(e),
		newListCmd(e),
		newCountCmd(e),
		newGetCmd(e),
		newBanCmd(e, true),
		newBanCmd(e, false),
		newDeleteCmd(e),
	)
	// PersistentPostRun 在 RunE 出错时不会执行，改为每个命令自己 defer 释放
	for _, c := range root.Commands() {
		closeAfter(c, e)
	}
	return root
}

func closeAfter(cmd *cobra.Command, e *env) {
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		defer e.close()
		return run(c, args)
	}
}

func (e *env) open(ctx context.Context) error {
	if e.repo == nil {
		cfg, err := config.LoadE(e.cfgPath)
		if err != nil {
			return err
		}
		l, sync := logger.New(cfg.Log.Level, cfg.Log.JSON)
		e.log = l
		e.closers = append(e.closers, sync)

		r, closeStore, err := repo.Open(ctx, cfg, l)
		if err != nil {
			e.close()
			return err
		}
		e.repo = r
		e.closers = append(e.closers, closeStore)
	}
	e.svc = service.NewPlayerService(e.repo, e.log)
	return nil
}

func (e *env) close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
	e.closers = nil
}

func (e *env) output() *Output { return NewOutput(e.format, e.out) }

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
