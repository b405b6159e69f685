package ingestion

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guttosm/cryptopulse/internal/domain/models"
	"github.com/guttosm/cryptopulse/internal/storage"
)

// expectedHeaders enforces strict column ordering for the price files.
// If the header doesn't match EXACTLY (order + count), ingestion must fail.
var expectedHeaders = []string{
	"timestamp",
	"symbol",
	"price",
}

// parseAndPersistFile opens, validates, parses, and persists one file in batches.
// It fails on:
//   - header not matching expected order/length
//   - any malformed row (timestamps, symbols, prices are all required)
//   - unrecoverable I/O errors
//
// Parameters:
//   - ctx:    context for cancellation/timeouts.
//   - path:   file path.
//   - repo:   repository for DB upserts.
//   - batch:  batch size for upserts (e.g., 5000).
func parseAndPersistFile(ctx context.Context, path string, repo storage.PricesRepository, batch int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // allow variable but we'll check explicitly

	// Validate headers strictly.
	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return 0, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(h) != expectedHeaders[i] {
			return 0, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	// Parse rows streaming; flush batches to DB.
	buf := make([]models.PriceObservation, 0, batch)
	lineNumber := 1 // header already read

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := repo.UpsertPricesBatch(buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	total := 0

	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return 0, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		// Enforce structure: exactly 3 columns. If not, fail entire ingestion.
		if len(rec) != len(expectedHeaders) {
			return 0, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(expectedHeaders), len(rec))
		}

		obs, err := recordToObservation(rec)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		buf = append(buf, obs)
		total++
		if len(buf) >= batch {
			if err := flush(); err != nil {
				return 0, fmt.Errorf("flush batch ending line %d: %w", lineNumber, err)
			}
		}
	}

	// Final flush
	if err := flush(); err != nil {
		return 0, fmt.Errorf("final flush: %w", err)
	}

	return total, nil
}

// recordToObservation converts a single CSV record (already validated
// length==3) into a models.PriceObservation. All three cells are required.
//
// Column order:
//
//	0 timestamp → Timestamp (int64, epoch millis UTC)
//	1 symbol    → Symbol (string, kept as-is)
//	2 price     → Price (decimal, must be >= 0)
func recordToObservation(rec []string) (models.PriceObservation, error) {
	var o models.PriceObservation

	// timestamp (0)
	ts, err := strconv.ParseInt(strings.TrimSpace(rec[0]), 10, 64)
	if err != nil {
		return o, fmt.Errorf("invalid timestamp: %v", err)
	}
	o.Timestamp = ts

	// symbol (1)
	o.Symbol = strings.TrimSpace(rec[1])
	if o.Symbol == "" {
		return o, fmt.Errorf("empty symbol")
	}

	// price (2)
	p, err := decimal.NewFromString(strings.TrimSpace(rec[2]))
	if err != nil {
		return o, fmt.Errorf("invalid price: %v", err)
	}
	if p.IsNegative() {
		return o, fmt.Errorf("negative price: %s", p)
	}
	o.Price = p

	return o, nil
}
