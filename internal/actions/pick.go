package actions

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"hummify/internal/config"
	"hummify/internal/game"
	"hummify/internal/logging"
)

// PickSongs prints --count random songs from a cleaned list without repeating recently picked ones
func PickSongs(c *cli.Context) error {
	listPath := config.OutputFileName
	if c.Args().Present() {
		listPath = c.Args().First()
	}

	cfg, err := config.FromContext(c)
	if err != nil {
		return err
	}
	log, err := logging.New(c.App.Writer, c.App.ErrWriter, &cfg)
	if err != nil {
		return fmt.Errorf("failed to open log file: %v", err)
	}
	defer log.Close()

	tracks, err := game.LoadTracks(listPath)
	if err != nil {
		return err
	}

	count := c.Int("count")
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	picker := game.NewPicker(tracks, game.WithHistorySize(c.Int("history")))
	log.Debug("picking %d of %d songs from %s", count, len(tracks), listPath)
	for i := 0; i < count; i++ {
		track, ok := picker.Next()
		if !ok {
			log.Warn("No valid songs left after checking all entries.")
			break
		}
		fmt.Fprintf(c.App.Writer, "%s by %s\n", track.Name, track.Artists)
	}
	return nil
}
