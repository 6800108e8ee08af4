package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"minipress/internal/config"
	"minipress/internal/minifier"
	"minipress/internal/session"
	"minipress/internal/ui"
)

const watchDebounce = 100 * time.Millisecond

func newWatchCmd() *cobra.Command {
	var (
		flags       minifyFlags
		interval    time.Duration
		printOutput bool
	)

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-minify a file whenever it changes",
		Long: `Watch a file and minify it again each time it is saved, printing the size
summary. A change that arrives while the previous run is still busy cancels it.
Press Ctrl+C to stop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := currentSettings()
			opts, err := flags.options(cmd, s)
			if err != nil {
				return err
			}
			engine, err := newEngine(s)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("interval") {
				if d, err := time.ParseDuration(viper.GetString(config.WatchIntervalKey)); err == nil {
					interval = d
				}
			}

			sess := session.New(engine, opts, logger())
			defer sess.Close()

			printer := newPrinter(cmd.ErrOrStderr())
			printer.PrintHeader(Version)

			w := &watcher{
				path:     args[0],
				interval: interval,
				debounce: watchDebounce,
				session:  sess,
				printer:  printer,
				print:    printOutput,
				stdout:   cmd.OutOrStdout(),
			}
			return w.run(cmd.Context())
		},
	}

	flags.register(cmd)
	cmd.Flags().DurationVarP(&interval, "interval", "i", 500*time.Millisecond, "poll interval (config watch.interval)")
	cmd.Flags().BoolVarP(&printOutput, "print", "p", false, "also print the minified output after each run")

	return cmd
}

// watcher polls a file's modification time and feeds changes to a Session.
type watcher struct {
	path     string
	interval time.Duration
	debounce time.Duration
	session  *session.Session
	printer  *ui.Printer
	print    bool
	stdout   io.Writer

	mu sync.Mutex // serialises output
	wg sync.WaitGroup
}

func (w *watcher) run(ctx context.Context) error {
	info, err := os.Stat(w.path)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}
	lastMod := info.ModTime()

	w.printer.Info("Watching %s for changes...", w.path)
	w.printer.Info("Press Ctrl+C to stop")
	w.trigger(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.wg.Wait()
			return nil
		case <-ticker.C:
		}

		changed, newMod := hasChanges(w.path, lastMod)
		if !changed {
			continue
		}
		// Wait for the writer to finish before reading
		if time.Since(newMod) < w.debounce {
			continue
		}
		lastMod = newMod

		logger().Debug("watch.changed", "path", w.path, "mtime", newMod)
		w.trigger(ctx)
	}
}

// trigger starts a minification in the background. A newer trigger cancels
// the one before it through the Session.
func (w *watcher) trigger(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		res, err := w.session.Load(ctx, w.path)
		w.report(res, err)
	}()
}

func (w *watcher) report(res *minifier.Result, err error) {
	if errors.Is(err, session.ErrSuperseded) || errors.Is(err, context.Canceled) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	stamp := time.Now().Format("15:04:05")
	switch {
	case errors.Is(err, minifier.ErrEmptyInput):
		w.printer.Warning("[%s] %s is empty", stamp, w.path)
	case err != nil:
		w.printer.Error("[%s] %s", stamp, minifier.UserMessage(err))
	default:
		w.printer.Success("[%s] %s (%s)", stamp, w.path, res.Type)
		w.printer.Stats(res.Summary())
		if w.print {
			fmt.Fprintln(w.stdout, res.Output)
		}
	}
}

// hasChanges reports whether path was modified after since.
func hasChanges(path string, since time.Time) (bool, time.Time) {
	info, err := os.Stat(path)
	if err != nil {
		return false, since
	}
	return info.ModTime().After(since), info.ModTime()
}
