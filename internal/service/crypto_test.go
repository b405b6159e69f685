package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/guttosm/cryptopulse/internal/analytics"
	"github.com/guttosm/cryptopulse/internal/domain/models"
)

type stubRepo struct {
	bySymbol []models.PriceObservation
	all      []models.PriceObservation
	byRange  []models.PriceObservation
	err      error
}

func (s *stubRepo) UpsertPricesBatch([]models.PriceObservation) error { return nil }
func (s *stubRepo) FindBySymbol(string) ([]models.PriceObservation, error) {
	return s.bySymbol, s.err
}
func (s *stubRepo) FindAll() ([]models.PriceObservation, error) { return s.all, s.err }
func (s *stubRepo) FindByTimestampRange(int64, int64) ([]models.PriceObservation, error) {
	return s.byRange, s.err
}
func (s *stubRepo) HasIngestionForFile(string) (bool, error)  { return false, nil }
func (s *stubRepo) UpsertIngestionLog(string, int) error      { return nil }

func mkObs(symbol string, ts int64, price string) models.PriceObservation {
	return models.PriceObservation{Symbol: symbol, Timestamp: ts, Price: decimal.RequireFromString(price)}
}

func TestStatsFor_TableDriven(t *testing.T) {
	cases := []struct {
		name       string
		repo       *stubRepo
		wantNil    bool
		wantErr    bool
		wantOldest string
		wantNewest string
		wantMin    string
		wantMax    string
	}{
		{
			name: "btc series",
			repo: &stubRepo{bySymbol: []models.PriceObservation{
				mkObs("BTC", 1, "46813.21"),
				mkObs("BTC", 2, "46797.61"),
				mkObs("BTC", 3, "41743.58"),
			}},
			wantOldest: "46813.21",
			wantNewest: "41743.58",
			wantMin:    "41743.58",
			wantMax:    "46813.21",
		},
		{name: "symbol not found", repo: &stubRepo{}, wantNil: true},
		{name: "repo error", repo: &stubRepo{err: errors.New("db down")}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewCryptoService(tc.repo)
			stats, err := svc.StatsFor(context.Background(), "BTC")
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if tc.wantNil {
				if stats != nil {
					t.Fatalf("expected nil stats, got %+v", stats)
				}
				return
			}
			if stats.OldestPrice.String() != tc.wantOldest ||
				stats.NewestPrice.String() != tc.wantNewest ||
				stats.MinPrice.String() != tc.wantMin ||
				stats.MaxPrice.String() != tc.wantMax {
				t.Fatalf("unexpected stats: %+v", stats)
			}
		})
	}
}

func TestRankedBySymbol_EmptyAndOrder(t *testing.T) {
	svc := NewCryptoService(&stubRepo{})
	ranking, err := svc.RankedBySymbol(context.Background())
	if err != nil || len(ranking) != 0 {
		t.Fatalf("empty dataset: ranking=%v err=%v", ranking, err)
	}

	svc = NewCryptoService(&stubRepo{all: []models.PriceObservation{
		mkObs("BTC", 1, "34875.00"), mkObs("BTC", 2, "47222.66"),
		mkObs("ETH", 1, "2336.52"), mkObs("ETH", 2, "3823.82"),
	}})
	ranking, err = svc.RankedBySymbol(context.Background())
	if err != nil || len(ranking) != 2 {
		t.Fatalf("ranking=%v err=%v", ranking, err)
	}
	if ranking[0].Symbol != "ETH" {
		t.Fatalf("want ETH first, got %s", ranking[0].Symbol)
	}
}

func TestHighestRange(t *testing.T) {
	svc := NewCryptoService(&stubRepo{})
	top, err := svc.HighestRange(context.Background())
	if err != nil || top != nil {
		t.Fatalf("empty dataset: top=%+v err=%v", top, err)
	}

	svc = NewCryptoService(&stubRepo{all: []models.PriceObservation{
		mkObs("BTC", 1, "34875.00"), mkObs("BTC", 2, "47222.66"),
		mkObs("ETH", 1, "2336.52"), mkObs("ETH", 2, "3823.82"),
	}})
	top, err = svc.HighestRange(context.Background())
	if err != nil || top == nil || top.Symbol != "ETH" {
		t.Fatalf("top=%+v err=%v", top, err)
	}
}

func TestHighestRangeForDay_TableDriven(t *testing.T) {
	dayData := []models.PriceObservation{
		mkObs("BTC", 1641009600000, "46813.21"), mkObs("BTC", 1641063600000, "47143.98"),
		mkObs("DOGE", 1641009600000, "0.1702"), mkObs("DOGE", 1641063600000, "0.1722"),
		mkObs("ETH", 1641009600000, "3715.32"), mkObs("ETH", 1641063600000, "3800.00"),
		mkObs("LTC", 1641009600000, "145.44"), mkObs("LTC", 1641063600000, "146.60"),
		mkObs("XRP", 1641009600000, "0.8298"), mkObs("XRP", 1641063600000, "0.8458"),
	}

	cases := []struct {
		name        string
		date        string
		repo        *stubRepo
		wantSymbol  string
		wantNil     bool
		wantBadDate bool
	}{
		{name: "winner for populated day", date: "2022-01-01", repo: &stubRepo{byRange: dayData}, wantSymbol: "ETH"},
		{name: "empty day is sentinel not error", date: "2022-01-02", repo: &stubRepo{}, wantNil: true},
		{name: "invalid date", date: "01-01-2022", repo: &stubRepo{}, wantBadDate: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewCryptoService(tc.repo)
			winner, err := svc.HighestRangeForDay(context.Background(), tc.date)
			if tc.wantBadDate {
				if !errors.Is(err, analytics.ErrInvalidDate) {
					t.Fatalf("want ErrInvalidDate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if tc.wantNil {
				if winner != nil {
					t.Fatalf("expected nil winner, got %+v", winner)
				}
				return
			}
			if winner == nil || winner.Symbol != tc.wantSymbol {
				t.Fatalf("winner=%+v want symbol %s", winner, tc.wantSymbol)
			}
		})
	}
}

// The day-window winner must equal the top of a ranking computed over the
// same day's observations alone.
func TestHighestRangeForDay_MatchesDayRanking(t *testing.T) {
	dayData := []models.PriceObservation{
		mkObs("BTC", 1641009600000, "46813.21"), mkObs("BTC", 1641063600000, "47143.98"),
		mkObs("ETH", 1641009600000, "3715.32"), mkObs("ETH", 1641063600000, "3800.00"),
	}

	svc := NewCryptoService(&stubRepo{byRange: dayData})
	winner, err := svc.HighestRangeForDay(context.Background(), "2022-01-01")
	if err != nil || winner == nil {
		t.Fatalf("winner=%+v err=%v", winner, err)
	}

	ranking := analytics.RankBySymbol(dayData)
	if winner.Symbol != ranking[0].Symbol || !winner.NormalizedValue.Equal(ranking[0].NormalizedValue) {
		t.Fatalf("winner %+v does not match top of day ranking %+v", winner, ranking[0])
	}
}
