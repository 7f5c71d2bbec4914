// Command cram is an interactive exam-study planner. It collects
// subjects, exam dates and a daily hour budget, generates a day-by-day
// session plan, and tracks completion and rescheduling from a menu loop.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

var version = "dev"

func main() {
	app := cli.App{
		Name:      "cram",
		HelpName:  "cram",
		Usage:     "plan and track exam study sessions",
		UsageText: "cram [options]",
		Version:   version,
		Action:    run,
		Flags:     planFlags,
		Commands: []cli.Command{
			{
				Name:    "plan",
				Aliases: []string{"p"},
				Usage:   "generate a study plan and enter the tracking menu",
				Action:  run,
				Flags:   planFlags,
			},
			{
				Name:    "version",
				Aliases: []string{"v"},
				Usage:   "print the installed version",
				Action: func(ctx *cli.Context) error {
					fmt.Printf("cram %s\n", ctx.App.Version)
					return nil
				},
			},
		},
		UseShortOptionHandling: true,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Printf("cram: %s\n", err.Error())
		os.Exit(1)
	}
}
