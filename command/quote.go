package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/nzai/stockwatch/constants"
	"github.com/nzai/stockwatch/quoter"
	"github.com/nzai/stockwatch/utils"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

func init() {
	RegisterCommand(&Quote{})
}

type Quote struct {
	config string
	json   bool
}

func (q *Quote) Command() *cli.Command {
	return &cli.Command{
		Name:      "quote",
		Aliases:   []string{"q"},
		Usage:     "query stock quotes once",
		ArgsUsage: "RELIANCE.NS,TCS.NS ...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "specify config `file`",
				Value:       "stockwatch.toml",
				Destination: &q.config,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print raw json",
				Destination: &q.json,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			symbols := utils.ParseSymbols(strings.Join(c.Args().Slice(), ","))
			if len(symbols) == 0 {
				return constants.ErrNoSymbols
			}

			_, qr, cleanup, err := setup(q.config)
			if err != nil {
				return err
			}
			defer cleanup()

			result := qr.Quotes(ctx, symbols)
			if q.json {
				return printJSON(os.Stdout, result)
			}

			printTable(os.Stdout, result)
			return nil
		},
	}
}

func printJSON(w io.Writer, result *quoter.Result) error {
	buffer, err := sonic.ConfigStd.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(buffer))
	return err
}

func printTable(w io.Writer, result *quoter.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Symbol", "Name", "Price", "Prev Close", "Change", "Change %"})
	for _, quote := range result.Stocks {
		table.Append([]string{
			quote.Symbol,
			quote.Name,
			fmt.Sprintf("%.2f", quote.CurrentPrice),
			fmt.Sprintf("%.2f", quote.PreviousClose),
			fmt.Sprintf("%+.2f", quote.Change),
			fmt.Sprintf("%+.2f%%", quote.ChangePercent),
		})
	}
	table.Render()

	if result.DemoMode {
		fmt.Fprintln(w, "* demo data, upstream unavailable")
	}
}
