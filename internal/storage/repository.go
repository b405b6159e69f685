package storage

import (
	"database/sql"

	"github.com/guttosm/cryptopulse/internal/domain/models"
)

// PricesRepository defines the contract for DB operations on price
// observations.
type PricesRepository interface {
	UpsertPricesBatch(obs []models.PriceObservation) error
	FindBySymbol(symbol string) ([]models.PriceObservation, error)
	FindAll() ([]models.PriceObservation, error)
	FindByTimestampRange(startMillis, endMillis int64) ([]models.PriceObservation, error)
	HasIngestionForFile(filename string) (bool, error)
	UpsertIngestionLog(filename string, rowCount int) error
}

type pricesRepository struct {
	db *sql.DB
}

func NewPricesRepository(db *sql.DB) PricesRepository {
	return &pricesRepository{db: db}
}

// UpsertPricesBatch writes a batch of observations in a single transaction.
// A row that already exists for (symbol, ts) gets its price replaced, which
// makes re-ingestion of the same file safe.
func (r *pricesRepository) UpsertPricesBatch(obs []models.PriceObservation) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	// Small optimization for bulk load
	if _, err := tx.Exec(`SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO prices (symbol, ts, price)
		VALUES ($1, $2, $3)
		ON CONFLICT (symbol, ts)
		DO UPDATE SET price = EXCLUDED.price
	`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, o := range obs {
		if _, err := stmt.Exec(o.Symbol, o.Timestamp, o.Price); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// FindBySymbol returns all observations for a symbol ordered by timestamp.
func (r *pricesRepository) FindBySymbol(symbol string) ([]models.PriceObservation, error) {
	return r.queryObservations(`
		SELECT symbol, ts, price FROM prices
		WHERE symbol = $1
		ORDER BY ts
	`, symbol)
}

// FindAll returns every stored observation ordered by symbol and timestamp.
func (r *pricesRepository) FindAll() ([]models.PriceObservation, error) {
	return r.queryObservations(`
		SELECT symbol, ts, price FROM prices
		ORDER BY symbol, ts
	`)
}

// FindByTimestampRange returns observations with ts in [startMillis, endMillis],
// both bounds inclusive.
func (r *pricesRepository) FindByTimestampRange(startMillis, endMillis int64) ([]models.PriceObservation, error) {
	return r.queryObservations(`
		SELECT symbol, ts, price FROM prices
		WHERE ts >= $1 AND ts <= $2
		ORDER BY symbol, ts
	`, startMillis, endMillis)
}

func (r *pricesRepository) queryObservations(query string, args ...interface{}) ([]models.PriceObservation, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.PriceObservation
	for rows.Next() {
		var o models.PriceObservation
		if err := rows.Scan(&o.Symbol, &o.Timestamp, &o.Price); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// HasIngestionForFile checks if an ingestion was already recorded for a given input file.
func (r *pricesRepository) HasIngestionForFile(filename string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM ingestion_log WHERE filename = $1)`, filename).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertIngestionLog records (or updates) an ingestion entry for a given input file.
func (r *pricesRepository) UpsertIngestionLog(filename string, rowCount int) error {
	_, err := r.db.Exec(`
		INSERT INTO ingestion_log (filename, row_count)
		VALUES ($1, $2)
		ON CONFLICT (filename)
		DO UPDATE SET row_count = EXCLUDED.row_count,
					  ingested_at = NOW()
	`, filename, rowCount)
	return err
}
