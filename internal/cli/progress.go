package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"

	"github.com/srharri3/pumsflow/internal/service"
)

// NewFetchProgress creates a progress bar sized to the number of years a
// multi-year query will fetch.
func NewFetchProgress(writer io.Writer, totalYears int) *progressbar.ProgressBar {
	return progressbar.NewOptions(totalYears,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Fetching PUMS years...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

// ProgressCallback adapts a progress bar to the engine's progress hook.
// The done count is authoritative, so out-of-order completions from
// concurrent fetches still render correctly.
func ProgressCallback(bar *progressbar.ProgressBar) service.ProgressFunc {
	return func(_, done, _ int) {
		if err := bar.Set(done); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
	}
}
