package actions

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v2"

	"hummify/internal/game"
	"hummify/internal/playlist"
)

// CheckGuess tells whether the guess names the given track.
// The guess comes from --guess, then the positional arguments, and is prompted for when both are empty.
// With --list the track must be part of that cleaned list.
func CheckGuess(c *cli.Context) error {
	track := playlist.Track{
		Name:    c.String("title"),
		Artists: c.String("artist"),
	}
	if track.Name == "" || track.Artists == "" {
		return game.ErrNoSongData
	}

	if listPath := c.String("list"); listPath != "" {
		tracks, err := game.LoadTracks(listPath)
		if err != nil {
			return err
		}
		listed, ok := game.FindTrack(tracks, track.Name, track.Artists)
		if !ok {
			return fmt.Errorf("%s by %s is not in %s", track.Name, track.Artists, listPath)
		}
		track = listed
	}

	guess := c.String("guess")
	if guess == "" {
		guess = strings.Join(c.Args().Slice(), " ")
	}
	if guess == "" {
		err := huh.NewInput().
			Title("What's the song? Name the title and the artist").
			Value(&guess).
			Run()
		if err != nil {
			return fmt.Errorf("failed to read guess: %v", err)
		}
	}

	verdict, err := game.CheckGuess(guess, track)
	if err != nil {
		return err
	}

	if verdict.Correct {
		fmt.Fprintf(c.App.Writer, "Correct! It was %s by %s\n", verdict.ActualTitle, verdict.ActualArtist)
	} else {
		fmt.Fprintf(c.App.Writer, "Not quite. It was %s by %s\n", verdict.ActualTitle, verdict.ActualArtist)
	}
	return nil
}
