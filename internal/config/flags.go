package config

import (
	"strings"

	"github.com/urfave/cli/v2"
)

const (
	flagColor     = "color"
	flagVerbose   = "verbose"
	flagLogFile   = "log-file"
	flagNoSpinner = "no-spinner"
)

// Flags returns the global flags understood by FromContext.
func Flags() []cli.Flag {
	def := DefaultConfig()
	return []cli.Flag{
		&cli.StringFlag{
			Name:  flagColor,
			Value: string(def.ColorMode),
			Usage: "colour log output: auto, always or never",
		},
		&cli.BoolFlag{
			Name:    flagVerbose,
			Aliases: []string{"v"},
			Usage:   "print debug logs",
		},
		&cli.StringFlag{
			Name:      flagLogFile,
			Usage:     "also append logs to `FILE`",
			TakesFile: true,
		},
		&cli.BoolFlag{
			Name:  flagNoSpinner,
			Usage: "never show the progress spinner",
		},
	}
}

// FromContext builds and validates a Config from the global flags of c.
func FromContext(c *cli.Context) (Config, error) {
	cfg := DefaultConfig()
	cfg.ColorMode = ColorMode(strings.ToLower(strings.TrimSpace(c.String(flagColor))))
	cfg.Verbose = c.Bool(flagVerbose)
	cfg.LogFile = c.String(flagLogFile)
	cfg.Spinner = !c.Bool(flagNoSpinner)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
