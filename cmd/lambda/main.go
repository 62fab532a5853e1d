package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/nzai/stockwatch/api"
	"github.com/nzai/stockwatch/config"
	"github.com/nzai/stockwatch/notifiers"
	"github.com/nzai/stockwatch/quoter"
	"github.com/nzai/stockwatch/sources"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	undo := zap.ReplaceGlobals(logger)
	defer undo()

	// lambda reads environment variables only unless CONFIG_FILE is set
	c, err := config.Parse(os.Getenv("CONFIG_FILE"))
	if err != nil {
		zap.L().Fatal("parse config failed", zap.Error(err))
	}
	zap.L().Info("parse config success")

	var upstream sources.Source
	if !c.Upstream.Disabled {
		upstream = sources.NewYahooFinance(c.Upstream.URL, c.Upstream.UserAgent, c.Upstream.Timeout())
	}

	handler := api.NewLambdaHandler(quoter.New(upstream, sources.NewDemo(), notifiers.Nop{}))
	lambda.Start(handler.Handle)
}
