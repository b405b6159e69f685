package analytics

import (
	"errors"
	"testing"
	"time"
)

func TestDayBounds_TableDriven(t *testing.T) {
	cases := []struct {
		name      string
		date      string
		wantStart int64
		wantEnd   int64
		wantErr   bool
	}{
		{
			name:      "first of january 2022",
			date:      "2022-01-01",
			wantStart: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
			wantEnd:   time.Date(2022, 1, 1, 23, 59, 59, 0, time.UTC).UnixMilli(),
		},
		{
			name:      "leap day",
			date:      "2024-02-29",
			wantStart: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC).UnixMilli(),
			wantEnd:   time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC).UnixMilli(),
		},
		{name: "legacy day-first format rejected", date: "01-02-2022", wantErr: true},
		{name: "slashes rejected", date: "2022/01/01", wantErr: true},
		{name: "garbage rejected", date: "not-a-date", wantErr: true},
		{name: "empty rejected", date: "", wantErr: true},
		{name: "month out of range", date: "2022-13-01", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, err := DayBounds(tc.date)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Fatalf("want ErrInvalidDate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if start != tc.wantStart || end != tc.wantEnd {
				t.Fatalf("bounds: want [%d, %d] got [%d, %d]", tc.wantStart, tc.wantEnd, start, end)
			}
		})
	}
}

func TestDayBounds_WindowSpansWholeDay(t *testing.T) {
	start, end, err := DayBounds("2022-01-15")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if end-start != (24*time.Hour - time.Second).Milliseconds() {
		t.Fatalf("window width: got %d ms", end-start)
	}
}
