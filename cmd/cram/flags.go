package main

import "github.com/urfave/cli"

var (
	dailyHours   float64
	planDays     int
	subjectsFile string
	plainOutput  bool
)

var planFlags = []cli.Flag{
	cli.Float64Flag{
		Name:        "hours, t",
		Usage:       "study hours available per day (prompted if omitted)",
		EnvVar:      "CRAM_HOURS",
		Destination: &dailyHours,
	},
	cli.IntFlag{
		Name:        "days, d",
		Usage:       "number of days to plan (prompted if omitted)",
		EnvVar:      "CRAM_DAYS",
		Destination: &planDays,
	},
	cli.StringFlag{
		Name:        "subjects, s",
		Usage:       "load subjects from a YAML file instead of prompting",
		Destination: &subjectsFile,
	},
	cli.BoolFlag{
		Name:        "plain, n",
		Usage:       "print the summary without progress bars",
		Destination: &plainOutput,
	},
}
