package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Joe-Costa/ClusterPopulator/internal/config"
	"github.com/Joe-Costa/ClusterPopulator/internal/naming"
	"github.com/Joe-Costa/ClusterPopulator/internal/plan"
	"github.com/Joe-Costa/ClusterPopulator/internal/populate"
	"github.com/Joe-Costa/ClusterPopulator/internal/rng"
	"github.com/Joe-Costa/ClusterPopulator/internal/tui"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the file share layout",
	Long:  `Plan and create the department/subfolder tree with sample files.`,
	RunE:  runGenerate,
}

var (
	genOut          string
	genCount        int
	genDepth        int
	genSeed         int64
	genConcurrency  int
	genPreview      bool
	genWindows      bool
	genNoTimestamps bool
	genQuiet        bool
)

func init() {
	generateCmd.Flags().StringVarP(&genOut, "out", "o", config.DefaultOut, "Output directory for generated files")
	generateCmd.Flags().IntVarP(&genCount, "count", "n", config.DefaultCount, "Number of files to generate (1-10000)")
	generateCmd.Flags().IntVarP(&genDepth, "depth", "d", config.DefaultDepth, "Directory depth (1=flat, 2=with subdirs, 3=with years)")
	generateCmd.Flags().Int64VarP(&genSeed, "seed", "s", 0, "Random seed for reproducible output")
	generateCmd.Flags().IntVarP(&genConcurrency, "concurrency", "c", config.DefaultConcurrency, "Maximum concurrent file writes")
	generateCmd.Flags().BoolVarP(&genPreview, "preview", "p", false, "Preview structure without creating files")
	generateCmd.Flags().BoolVarP(&genWindows, "windows", "w", false, "Force Windows-compatible names (auto-detected on Windows)")
	generateCmd.Flags().BoolVar(&genNoTimestamps, "no-timestamps", false, "Disable realistic file timestamps (enabled by default)")
	generateCmd.Flags().BoolVarP(&genQuiet, "quiet", "q", false, "Suppress progress output")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Config file and POPULATOR_* env fill in flags the user didn't set.
	v := config.Load()
	if !cmd.Flags().Changed("out") {
		genOut = v.GetString("out")
	}
	if !cmd.Flags().Changed("count") {
		genCount = v.GetInt("count")
	}
	if !cmd.Flags().Changed("depth") {
		genDepth = v.GetInt("depth")
	}
	if !cmd.Flags().Changed("concurrency") {
		genConcurrency = v.GetInt("concurrency")
	}
	if !cmd.Flags().Changed("windows") {
		genWindows = v.GetBool("windows")
	}
	if !cmd.Flags().Changed("no-timestamps") {
		genNoTimestamps = !v.GetBool("timestamps")
	}
	if !cmd.Flags().Changed("quiet") {
		genQuiet = v.GetBool("quiet")
	}
	// Seed has no default: it counts as set whether it came from the flag or
	// from the defaults store.
	seedSet := cmd.Flags().Changed("seed")
	if !seedSet && v.IsSet("seed") {
		genSeed = v.GetInt64("seed")
		seedSet = true
	}

	out, err := filepath.Abs(genOut)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	params := config.Params{
		OutputPath:   out,
		Count:        genCount,
		Depth:        genDepth,
		Seed:         genSeed,
		SeedSet:      seedSet,
		Concurrency:  genConcurrency,
		Preview:      genPreview,
		Windows:      genWindows,
		NoTimestamps: genNoTimestamps,
		Quiet:        genQuiet,
	}
	if err := params.Validate(); err != nil {
		return err
	}

	logger := newLogger(params.Quiet)

	var src *rng.Source
	if params.SeedSet {
		src = rng.New(params.Seed)
	} else {
		src = rng.NewRandom()
		logger.Info().Int64("seed", src.Seed()).Msg("seed chosen; pass --seed to replay this run")
	}

	profile := naming.ForPlatform(params.Windows)
	logger.Debug().
		Str("profile", profile.String()).
		Int("count", params.Count).
		Int("depth", params.Depth).
		Msg("planning")

	pl, err := plan.NewPlanner(src, profile).Build(params.Count, params.Depth)
	if err != nil {
		return err
	}

	if params.Preview {
		return runPreview(out, pl, params, src)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := runWithProgress(ctx, src, out, pl, params, logger)
	if err != nil {
		return err
	}

	printSummary(res, logger, params.Quiet)
	// Partial per-file failures still exit 0; only rejected arguments and an
	// unusable output root are process-level errors.
	return nil
}

func runPreview(out string, pl *plan.Plan, params config.Params, src *rng.Source) error {
	pop := populate.New(src, populate.Options{Root: out, Preview: true})
	res, err := pop.Run(context.Background(), pl)
	if err != nil {
		return err
	}
	if !params.Quiet {
		fmt.Printf("Preview of structure for %d files in %s:\n\n", res.Planned, out)
	}
	fmt.Println(tui.PreviewReport(out, pl))
	fmt.Println("Planned files:")
	for _, p := range pop.Paths(pl) {
		fmt.Println("  " + p)
	}
	return nil
}

func runWithProgress(ctx context.Context, src *rng.Source, out string, pl *plan.Plan, params config.Params, logger zerolog.Logger) (*populate.Result, error) {
	opts := populate.Options{
		Root:         out,
		Concurrency:  params.Concurrency,
		NoTimestamps: params.NoTimestamps,
	}

	if !params.Quiet && isTerminal() {
		prog := tea.NewProgram(tui.NewProgress(len(pl.Files)))
		opts.Progress = func(done, total int) {
			prog.Send(tui.ProgressMsg{Done: done, Total: total})
		}
		pop := populate.New(src, opts)

		type outcome struct {
			res *populate.Result
			err error
		}
		resCh := make(chan outcome, 1)
		go func() {
			res, err := pop.Run(ctx, pl)
			prog.Send(tui.FinishedMsg{})
			resCh <- outcome{res, err}
		}()
		if _, err := prog.Run(); err != nil {
			// Rendering failure must not kill the run; fall through and wait.
			logger.Warn().Err(err).Msg("progress display failed")
		}
		o := <-resCh
		return o.res, o.err
	}

	// Quiet or non-TTY: coarse log lines every 10%.
	var lastDecile int64 = -1
	if !params.Quiet {
		opts.Progress = func(done, total int) {
			decile := int64(done * 10 / total)
			if atomic.SwapInt64(&lastDecile, decile) != decile {
				logger.Info().Int("done", done).Int("total", total).Msg("progress")
			}
		}
	}
	return populate.New(src, opts).Run(ctx, pl)
}

func printSummary(res *populate.Result, logger zerolog.Logger, quiet bool) {
	if quiet {
		if res.Failed > 0 {
			logger.Warn().Int("failed", res.Failed).Msg("generation finished with failures")
		}
		return
	}

	rate := float64(res.Created) / res.Elapsed.Seconds()
	fmt.Printf("\nGeneration complete!\n")
	fmt.Printf("  Total files:   %d\n", res.Planned)
	fmt.Printf("  Created:       %d\n", res.Created)
	fmt.Printf("  Failed:        %d\n", res.Failed)
	fmt.Printf("  Directories:   %d\n", res.DirsCreated)
	fmt.Printf("  Bytes written: %s\n", humanize.Bytes(uint64(res.BytesWritten)))
	fmt.Printf("  Elapsed:       %s\n", res.Elapsed.Round(time.Millisecond))
	fmt.Printf("  Rate:          %.1f files/sec\n", rate)

	if len(res.Failures) > 0 {
		fmt.Printf("\nFailures:\n")
		shown := res.Failures
		if len(shown) > 10 {
			shown = shown[:10]
		}
		for _, f := range shown {
			fmt.Printf("  [%s] %s: %s\n", f.Kind, f.Path, f.Message)
		}
		if extra := len(res.Failures) - len(shown); extra > 0 {
			fmt.Printf("  ... and %d more\n", extra)
		}
	}
}

func newLogger(quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if quiet {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
