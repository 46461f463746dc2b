package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/wordstat/internal/common"
	"github.com/dtnitsch/wordstat/internal/count"
	"github.com/dtnitsch/wordstat/internal/history"
	"github.com/dtnitsch/wordstat/internal/run"
	"github.com/dtnitsch/wordstat/models"
	"github.com/dtnitsch/wordstat/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "wordstat",
		Usage: "Word frequency, dispersion and word-cloud charts for text documents",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Chart every word-list line for every document and render word clouds",
				Action: run.RunAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Value:   models.DefaultConfigFile,
						Usage:   "YAML configuration file (defaults apply when the default file is missing)",
					},
					&cli.StringFlag{Name: "output-dir", Usage: "Directory for images and summary.yaml"},
					&cli.BoolFlag{Name: "mkdir", Usage: "Create the output directory if it does not exist"},
					&cli.StringFlag{Name: "words", Usage: "Word-list file"},
					&cli.StringFlag{Name: "mask", Usage: "Word-cloud mask image"},
					&cli.StringFlag{Name: "language", Usage: "Stopword language: spanish, english or auto"},
					&cli.StringFlag{Name: "history-db", Usage: "SQLite file to record the run in"},
					&cli.StringFlag{Name: "cache-dir", Usage: "Directory for cached token sequences"},
				},
			},
			{
				Name:   "count",
				Usage:  "Count query words in one document and print YAML",
				Action: count.CountAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "doc", Usage: "Document to analyse", Required: true},
					&cli.StringFlag{Name: "words", Usage: "Space-separated query words", Required: true},
					&cli.StringFlag{Name: "language", Value: "spanish", Usage: "Stopword language: spanish, english or auto"},
					&cli.BoolFlag{Name: "positions", Usage: "Include token positions of every match"},
				},
			},
			{
				Name:   "history",
				Usage:  "List recorded runs",
				Action: history.HistoryAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "History database (default: history_db from the config)"},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Value:   models.DefaultConfigFile,
						Usage:   "Config file providing history_db",
					},
					&cli.IntFlag{Name: "limit", Value: 20, Usage: "Maximum runs to list (0 for all)"},
					&cli.Int64Flag{Name: "run", Usage: "Show one run with its accumulated frequencies"},
				},
			},
			{
				Name:  "init",
				Usage: "Print a default configuration file",
				Action: func(c *cli.Context) error {
					return common.PrintYAML(models.DefaultConfig())
				},
			},
			{
				Name:  "quickstart",
				Usage: "Show a quick start guide",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
