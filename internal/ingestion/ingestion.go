package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/cryptopulse/internal/logger"
	"github.com/guttosm/cryptopulse/internal/storage"
)

const (
	filePattern      = "*_values.csv"
	defaultBatchSize = 5000
	maxParallelCap   = 8
)

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.PricesRepository {
	return storage.NewPricesRepository(db)
}

// ProcessDirectory ingests every "SYMBOL_values.csv" file found in dir.
//
// Parameters:
//   - dir: directory containing the .csv input files.
//   - db:  open *sql.DB (PostgreSQL).
//
// Behavior:
//   - Discovers files matching "*_values.csv"; no files is an error.
//   - Uses a concurrency limit based on CPU count (min(8, NumCPU)),
//     overridable via parallel.
//   - For each file, parses & upserts observations in batches via the
//     repository; files already present in the ingestion log are skipped
//     unless force is set (the upsert makes reprocessing safe).
//   - If any file returns error, cancels the rest and returns that error.
//
// Returns:
//   - error: first error encountered (if any).
func ProcessDirectory(ctx context.Context, dir string, db *sql.DB, parallel int, force bool) error {
	// use indirection to allow tests to swap repository constructor
	repo := repoCtor(db)

	files, err := filepath.Glob(filepath.Join(dir, filePattern))
	if err != nil {
		return fmt.Errorf("glob %s: %w", dir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found in %s", filePattern, dir)
	}
	sort.Strings(files)

	logger.L().Info().Int("files", len(files)).Str("dir", dir).Msg("ingestion start")

	// Concurrency: default to min(8, NumCPU), or use provided clamp(1..8)
	maxParallel := maxParallelCap
	if parallel > 0 {
		if parallel > maxParallelCap {
			parallel = maxParallelCap
		}
		maxParallel = parallel
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().Int("max_parallel", maxParallel).Msg("ingestion configured")

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, file := range files {
		idx := i
		f := file
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()
			base := filepath.Base(f)
			logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Msg("file start")

			// Idempotency: skip if already ingested, unless force
			exists, err := repo.HasIngestionForFile(base)
			if err != nil {
				logger.L().Error().Str("file", base).Err(err).Msg("check ingestion log failed")
				return fmt.Errorf("file %s: check ingestion log: %w", f, err)
			}
			if exists && !force {
				logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Bool("skipped", true).Msg("already ingested")
				return nil
			}

			// Process each file; this function:
			// - validates header/order/columns strictly
			// - rejects malformed rows
			// - upserts in batches (defaultBatchSize)
			total, err := parseAndPersistFile(gctx, f, repo, defaultBatchSize)
			if err != nil {
				logger.L().Error().Str("file", base).Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				return fmt.Errorf("file %s: %w", f, err)
			}
			if err := repo.UpsertIngestionLog(base, total); err != nil {
				logger.L().Error().Str("file", base).Err(err).Msg("update ingestion log failed")
				return fmt.Errorf("file %s: upsert ingestion log: %w", f, err)
			}
			logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Int("rows", total).Dur("elapsed", time.Since(start)).Bool("force", force).Msg("file done")
			return nil
		})
	}

	return g.Wait()
}
