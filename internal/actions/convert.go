package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"hummify/internal/config"
	"hummify/internal/logging"
	"hummify/internal/playlist"
	"hummify/internal/porter"
)

// UsageLine is printed when convert is not given exactly one CSV path
const UsageLine = "Input CSV File: hummify path/to/your/file.csv"

// progressFunc shows progress until wait returns
type progressFunc func(ctx context.Context, title string, wait func(context.Context) error) error

func showSpinner(ctx context.Context, title string, wait func(context.Context) error) error {
	return spinner.New().Title(title).Context(ctx).ActionWithErr(wait).Run()
}

// ConvertPlaylist cleans the playlist CSV named by the single positional argument.
// Wrong argument counts, a missing file and a missing column are reported on
// stdout and are not errors; anything else is returned.
func ConvertPlaylist(c *cli.Context) error {
	w := c.App.Writer
	if c.Args().Len() != 1 {
		fmt.Fprintln(w, UsageLine)
		return nil
	}
	csvPath := c.Args().First()

	cfg, err := config.FromContext(c)
	if err != nil {
		return err
	}
	log, err := logging.New(w, c.App.ErrWriter, &cfg)
	if err != nil {
		return fmt.Errorf("failed to open log file: %v", err)
	}
	defer log.Close()

	var progress progressFunc
	if cfg.Spinner && logging.IsTerminal(w) {
		progress = showSpinner
	}

	p := porter.NewPorter(log)
	res, err := convertWithProgress(c.Context, progress, log, func() (porter.Result, error) {
		return p.ConvertCSVToCleanJSON(csvPath)
	})

	switch {
	case errors.Is(err, porter.ErrFileNotFound):
		log.Debug("%v", err)
		fmt.Fprintf(w, "Error: File '%s' not found.\n", csvPath)
		return nil
	case errors.Is(err, porter.ErrMissingColumns):
		log.Debug("%v", err)
		fmt.Fprintf(w, "Error: CSV must contain '%s' and '%s' columns.\n", playlist.TrackNameColumn, playlist.ArtistNameColumn)
		return nil
	case err != nil:
		log.Error("failed to convert %s: %v", csvPath, err)
		return err
	}

	log.Debug("cleaned %d tracks from %s, %s written", res.Playlist.TrackCount(), res.Playlist.Source, humanize.Bytes(uint64(res.Bytes)))
	fmt.Fprintf(w, "Cleaned JSON saved to: %s\n", res.OutputPath)
	return nil
}

// convertWithProgress runs convert, showing progress when progress is set.
// It always waits for convert to finish, even if progress returns early.
func convertWithProgress(ctx context.Context, progress progressFunc, log porter.Logger, convert func() (porter.Result, error)) (porter.Result, error) {
	if progress == nil {
		return convert()
	}

	var (
		res porter.Result
		err error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		res, err = convert()
	}()

	wait := func(ctx context.Context) error {
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if perr := progress(ctx, "Cleaning playlist...", wait); perr != nil {
		log.Debug("progress display stopped: %v", perr)
	}

	<-done
	return res, err
}
