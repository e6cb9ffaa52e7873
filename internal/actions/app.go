package actions

import (
	"github.com/urfave/cli/v2"

	"hummify/internal/config"
)

// NewApp builds the hummify command line application
func NewApp() *cli.App {
	return &cli.App{
		Name:      "hummify",
		Usage:     "Clean a playlist CSV export into the JSON song list used by Hummify.",
		ArgsUsage: "path/to/your/file.csv",
		Flags:     config.Flags(),
		Action:    ConvertPlaylist,
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "Check whether a guess names a song",
				ArgsUsage: "[guess...]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "list", Usage: "cleaned song list the track must be part of", TakesFile: true},
					&cli.StringFlag{Name: "title", Usage: "track title to check against", Required: true},
					&cli.StringFlag{Name: "artist", Usage: "artist to check against", Required: true},
					&cli.StringFlag{Name: "guess", Usage: "the guess; read from the arguments or prompted for when absent"},
				},
				Action: CheckGuess,
			},
			{
				Name:      "pick",
				Usage:     "Pick random songs from a cleaned list",
				ArgsUsage: "[" + config.OutputFileName + "]",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Value: 1, Usage: "number of songs to pick"},
					&cli.IntFlag{Name: "history", Value: config.RecentlyPlayedSize, Usage: "how many picked songs are kept from repeating"},
				},
				Action: PickSongs,
			},
		},
	}
}
