package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	printdoc "github.com/alnah/go-printdoc"
	"github.com/alnah/go-printdoc/internal/config"
	"github.com/alnah/go-printdoc/internal/fileutil"
	"github.com/alnah/go-printdoc/internal/hints"
)

// dirPermissions is rwxr-x---: owner full, group read+execute.
const dirPermissions = 0o750

// Sentinel errors for CLI operations.
var (
	ErrUsage           = errors.New("invalid arguments")
	ErrReadStyleSheet  = errors.New("failed to read stylesheet")
	ErrWriteHTML       = errors.New("failed to write HTML file")
	ErrCreateOutputDir = errors.New("failed to create output directory")
)

// DocumentGenerator is the interface for the rendering service.
type DocumentGenerator interface {
	GenerateDocument(ctx context.Context, lines []*printdoc.Line, opts printdoc.DocumentOptions) (string, error)
}

// Compile-time interface implementation check.
var _ DocumentGenerator = (*printdoc.Renderer)(nil)

// RenderResult holds the outcome of a single document.
type RenderResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// batchError reports failed documents. Unwrap exposes the first failure so
// the exit code reflects its cause.
type batchError struct {
	failed int
	total  int
	first  error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d of %d document(s) failed", e.failed, e.total)
}

func (e *batchError) Unwrap() error {
	return e.first
}

// run orchestrates a CLI invocation.
func run(ctx context.Context, args []string, env *Environment) error {
	flags, inputs, err := parseFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if flags.help {
		printUsage(env.Stdout)
		return nil
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "printdoc %s\n", Version)
		return nil
	}

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.config, env)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)

	logger := newLogger(logLevel(cfg.Logging.Level, flags.quiet, flags.verbose), env.Stderr)
	defer func() { _ = logger.Sync() }()

	files, err := discoverFiles(inputs, cfg.Output.DefaultDir)
	if err != nil {
		if errors.Is(err, ErrNoInput) {
			printUsage(env.Stderr)
		}
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no document files found in %s", ErrNoInput, strings.Join(inputs, ", "))
	}

	styleSheet, err := readStyleSheet(cfg.Document.StyleSheet)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cfg, logger)
	if err != nil {
		return err
	}

	base := baseOptions(cfg.Document, flags, styleSheet)
	workers := resolveWorkers(flags.workers, cfg.Workers)
	logger.Debug("rendering batch", zap.Int("documents", len(files)), zap.Int("workers", workers))

	start := env.Now()
	results := renderBatch(ctx, renderer, files, workers, func(doc *documentFile) printdoc.DocumentOptions {
		return documentOptions(base, doc, flags)
	}, logger)
	logger.Debug("batch finished", zap.Duration("duration", env.Now().Sub(start)))

	failed := printResults(results, flags.quiet, flags.verbose, env)
	if failed > 0 {
		return &batchError{failed: failed, total: len(results), first: firstError(results)}
	}
	return nil
}

// loadConfig loads the named config, or returns the environment default.
func loadConfig(nameOrPath string, env *Environment) (*config.Config, error) {
	if nameOrPath == "" {
		if env.Config != nil {
			cfg := *env.Config
			return &cfg, nil
		}
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(nameOrPath) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(nameOrPath)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
	if flags.style != "" {
		cfg.Document.Style = flags.style
	}
	if flags.styleSheet != "" {
		cfg.Document.StyleSheet = flags.styleSheet
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
}

// newRenderer builds the renderer shared by all workers.
func newRenderer(cfg *config.Config, logger *zap.Logger) (*printdoc.Renderer, error) {
	opts := []printdoc.Option{printdoc.WithLogger(logger)}
	if cfg.Document.Style != "" {
		opts = append(opts, printdoc.WithStyle(cfg.Document.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, printdoc.WithAssetPath(cfg.Assets.BasePath))
	}

	renderer, err := printdoc.NewRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing renderer: %w", err)
	}
	return renderer, nil
}

// renderBatch renders files concurrently with a bounded number of workers.
// Results keep the order of files.
func renderBatch(
	ctx context.Context,
	gen DocumentGenerator,
	files []FileToRender,
	workers int,
	optionsFor func(*documentFile) printdoc.DocumentOptions,
	logger *zap.Logger,
) []RenderResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := workers
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]RenderResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = RenderResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = renderFile(ctx, gen, files[idx], optionsFor, logger)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// renderFile processes a single document and returns the result.
func renderFile(
	ctx context.Context,
	gen DocumentGenerator,
	f FileToRender,
	optionsFor func(*documentFile) printdoc.DocumentOptions,
	logger *zap.Logger,
) RenderResult {
	start := time.Now()
	result := RenderResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) RenderResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	doc, err := loadDocument(f.InputPath)
	if err != nil {
		return fail(err)
	}

	html, err := gen.GenerateDocument(ctx, doc.Lines, optionsFor(doc))
	if err != nil {
		return fail(err)
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrCreateOutputDir, err))
	}

	if err := fileutil.WriteFileAtomic(f.OutputPath, html); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrWriteHTML, err))
	}

	result.Duration = time.Since(start)
	logger.Debug("wrote document",
		zap.String("input", f.InputPath),
		zap.String("output", f.OutputPath),
		zap.Int("lines", len(doc.Lines)),
		zap.Duration("duration", result.Duration))
	return result
}

// ResultSummary holds the count of succeeded and failed documents.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed documents.
func countResults(results []RenderResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// firstError returns the first failure in input order.
func firstError(results []RenderResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// printResults outputs render results and returns the failure count.
func printResults(results []RenderResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %s\n", r.InputPath, withHint(r.Err))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
