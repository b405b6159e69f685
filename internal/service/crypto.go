package service

import (
	"context"

	"github.com/guttosm/cryptopulse/internal/analytics"
	"github.com/guttosm/cryptopulse/internal/domain/models"
	"github.com/guttosm/cryptopulse/internal/storage"
)

// CryptoService defines business logic for the crypto statistics endpoints.
// This decouples HTTP handlers from data access.
//
// Not-found outcomes are (nil, nil) for the pointer-returning methods, never
// errors; a malformed date surfaces analytics.ErrInvalidDate so callers can
// distinguish bad input from a day without data.
type CryptoService interface {
	StatsFor(ctx context.Context, symbol string) (*models.CryptoStats, error)
	RankedBySymbol(ctx context.Context) ([]models.NormalizedRange, error)
	HighestRange(ctx context.Context) (*models.NormalizedRange, error)
	HighestRangeForDay(ctx context.Context, date string) (*models.NormalizedRange, error)
}

type cryptoService struct {
	repo storage.PricesRepository
}

func NewCryptoService(repo storage.PricesRepository) CryptoService {
	return &cryptoService{repo: repo}
}

// StatsFor returns the oldest/newest/min/max prices for a symbol, or
// (nil, nil) when the symbol has no observations.
func (s *cryptoService) StatsFor(_ context.Context, symbol string) (*models.CryptoStats, error) {
	obs, err := s.repo.FindBySymbol(symbol)
	if err != nil {
		return nil, err
	}
	if len(obs) == 0 {
		return nil, nil
	}

	oldest := analytics.Oldest(obs)
	newest := analytics.Newest(obs)

	return &models.CryptoStats{
		Symbol:      symbol,
		OldestPrice: oldest.Price,
		NewestPrice: newest.Price,
		MinPrice:    analytics.MinPrice(obs),
		MaxPrice:    analytics.MaxPrice(obs),
	}, nil
}

// RankedBySymbol returns every stored symbol with its normalized range,
// sorted descending. An empty dataset yields an empty slice.
func (s *cryptoService) RankedBySymbol(_ context.Context) ([]models.NormalizedRange, error) {
	obs, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	return analytics.RankBySymbol(obs), nil
}

// HighestRange returns the top entry of the global ranking, or (nil, nil)
// when no observations are stored.
func (s *cryptoService) HighestRange(ctx context.Context) (*models.NormalizedRange, error) {
	ranking, err := s.RankedBySymbol(ctx)
	if err != nil {
		return nil, err
	}
	if len(ranking) == 0 {
		return nil, nil
	}
	return &ranking[0], nil
}

// HighestRangeForDay returns the symbol with the highest normalized range
// among the observations of one UTC calendar day.
//
// Outcomes:
//   - (entry, nil): the day's winner.
//   - (nil, nil): the day has no observations.
//   - (nil, err) wrapping analytics.ErrInvalidDate: malformed date string.
func (s *cryptoService) HighestRangeForDay(_ context.Context, date string) (*models.NormalizedRange, error) {
	start, end, err := analytics.DayBounds(date)
	if err != nil {
		return nil, err
	}

	obs, err := s.repo.FindByTimestampRange(start, end)
	if err != nil {
		return nil, err
	}
	if len(obs) == 0 {
		return nil, nil
	}

	ranking := analytics.RankBySymbol(obs)
	return &ranking[0], nil
}
