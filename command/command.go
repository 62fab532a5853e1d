package command

import (
	"github.com/nzai/stockwatch/config"
	"github.com/nzai/stockwatch/notifiers"
	"github.com/nzai/stockwatch/quoter"
	"github.com/nzai/stockwatch/sources"
	"github.com/nzai/stockwatch/utils"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

type Commander interface {
	Command() *cli.Command
}

var Commands = []Commander{}

func RegisterCommand(cmd Commander) {
	Commands = append(Commands, cmd)
}

// setup parse config, replace global logger and build quoter.
// the returned func must be called on exit.
func setup(configPath string) (*config.Config, *quoter.Quoter, func(), error) {
	c, err := config.Parse(configPath)
	if err != nil {
		zap.L().Error("parse config failed", zap.Error(err), zap.String("path", configPath))
		return nil, nil, nil, err
	}

	logger, err := utils.NewLogger(utils.LogConfig{
		Level:      c.Log.Level,
		File:       c.Log.File,
		MaxSize:    c.Log.MaxSize,
		MaxBackups: c.Log.MaxBackups,
		MaxAge:     c.Log.MaxAge,
	})
	if err != nil {
		zap.L().Error("create logger failed", zap.Error(err), zap.Any("log", c.Log))
		return nil, nil, nil, err
	}
	undo := zap.ReplaceGlobals(logger)

	var notifier notifiers.Notifier = notifiers.Nop{}
	if c.Nsq.Enabled {
		nsq, err := notifiers.NewNsq(c.Nsq.Broker, c.Nsq.TLSCert, c.Nsq.TLSKey, c.Nsq.Topic)
		if err != nil {
			undo()
			return nil, nil, nil, err
		}
		notifier = nsq
	}

	var upstream sources.Source
	if !c.Upstream.Disabled {
		upstream = sources.NewYahooFinance(c.Upstream.URL, c.Upstream.UserAgent, c.Upstream.Timeout())
	}

	q := quoter.New(upstream, sources.NewDemo(), notifier)
	cleanup := func() {
		q.Close()
		logger.Sync()
		undo()
	}

	return c, q, cleanup, nil
}
