package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const defaultConfigPath = "./twminer.yaml"

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "twminer"
	app.Usage = "search, analyze and look up X accounts from the terminal"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to a YAML config file",
			EnvVars: []string{"TWMINER_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "metrics-addr",
			Usage:   "serve /metrics and /health on this address",
			EnvVars: []string{"METRICS_ADDR"},
		},
	}
	app.Action = runMiner
	app.Commands = []*cli.Command{
		{
			Action:      runInit,
			Name:        "init",
			Usage:       "Write a default config file",
			Flags:       []cli.Flag{&cli.StringFlag{Name: "path", Value: defaultConfigPath, Usage: "where to write the config"}},
			Description: `Writes the default configuration as YAML. Credentials are left empty; fill them in or export X_CONSUMER_KEY and friends.`,
		},
		{
			Action: runHistory,
			Name:   "history",
			Usage:  "Show the most recent queries",
			Flags:  []cli.Flag{&cli.IntFlag{Name: "n", Value: 10, Usage: "how many queries to show"}},
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
