package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/idelchi/dirtree/internal/dirstat"
)

// DefaultProgressInterval is the minimum time between progress updates.
const DefaultProgressInterval = 100 * time.Millisecond

func logic(options dirstat.Options, stdout, stderr io.Writer) error {
	log := newLogger(stderr, options.Debug)
	options.Logger = &log

	if err := PrintHeader(stdout, options); err != nil {
		return err
	}

	// Only report progress when the tree itself is redirected away from the terminal
	enableProgress := !options.Debug && isTerminal(stderr) && !isTerminal(stdout)

	var progressHook func(dirs int64, path string)

	if enableProgress {
		var stop func()

		progressHook, stop = startProgress(stderr, DefaultProgressInterval)
		defer stop()
	}

	return dirstat.Run(options, stdout, progressHook)
}

// startProgress hides the cursor on w and returns the progress hook together
// with a function that clears the status line and restores the cursor.
func startProgress(w io.Writer, interval time.Duration) (func(dirs int64, path string), func()) {
	// Hide cursor for in-place updates; restore on exit.
	fmt.Fprint(w, "\033[?25l")

	stop := func() {
		// Clear the status line
		fmt.Fprint(w, "\r\033[2K\r")
		fmt.Fprint(w, "\033[?25h")
	}

	return newProgressHook(w, interval), stop
}

// newProgressHook returns a hook that overwrites a single status line on w,
// at most once per interval.
func newProgressHook(w io.Writer, interval time.Duration) func(dirs int64, path string) {
	var last time.Time

	return func(dirs int64, path string) {
		if !last.IsZero() && time.Since(last) < interval {
			return
		}

		last = time.Now()

		fmt.Fprintf(w, "\r\033[2KAnalyzing… %s directories: %s\r", humanize.Comma(dirs), path)
	}
}

// newLogger returns a console logger on w, silent unless debug is set.
func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.Disabled
	if debug {
		level = zerolog.DebugLevel
	}

	console := zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.TimeFormat = time.Kitchen
		cw.NoColor = !isTerminal(w)
	})

	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
