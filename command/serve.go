package command

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/nzai/stockwatch/api"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func init() {
	RegisterCommand(&Serve{})
}

type Serve struct {
	config string
}

func (s *Serve) Command() *cli.Command {
	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "serve landing page and stock quote api",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "specify config `file`",
				Value:       "stockwatch.toml",
				Destination: &s.config,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, q, cleanup, err := setup(s.config)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			err = api.NewServer(q, cfg.Server.Pprof).Run(ctx, cfg.Server.Address)
			if err != nil {
				zap.L().Error("run server failed", zap.Error(err), zap.String("address", cfg.Server.Address))
				return err
			}

			zap.L().Info("server stopped")
			return nil
		},
	}
}
