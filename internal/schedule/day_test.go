package schedule

import (
	"testing"
	"time"
)

func TestDayOfIgnoresTimeOfDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatal(err)
	}

	base := time.Date(2025, 4, 25, 0, 5, 0, 0, loc)
	offsets := []time.Duration{
		0,
		time.Millisecond,
		time.Minute,
		3 * time.Hour,
		23*time.Hour + 54*time.Minute,
	}
	want := Day{2025, time.April, 25}

	for _, off := range offsets {
		got := DayOf(base.Add(off), loc)
		if got != want {
			t.Errorf("DayOf(base+%v) = %v, want %v", off, got, want)
		}
	}
}

func TestDayOfNearMidnightWestOfUTC(t *testing.T) {
	// 23:50 local in New York is already the next day in UTC. Epoch-truncate
	// approaches got this wrong; local field extraction must not.
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		in   time.Time
		want Day
	}{
		{
			name: "ten to midnight local",
			in:   time.Date(2025, 4, 24, 23, 50, 0, 0, ny),
			want: Day{2025, time.April, 24},
		},
		{
			name: "same instant expressed in UTC",
			in:   time.Date(2025, 4, 25, 3, 50, 0, 0, time.UTC),
			want: Day{2025, time.April, 24},
		},
		{
			name: "ten past midnight local",
			in:   time.Date(2025, 4, 25, 0, 10, 0, 0, ny),
			want: Day{2025, time.April, 25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayOf(tt.in, ny); got != tt.want {
				t.Errorf("DayOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Structural equality and the formatted YYYY-MM-DD representation are two
// comparison paths; they have to agree on every fixture.
func TestDayStructuralAndStringEqualityAgree(t *testing.T) {
	ny, _ := time.LoadLocation("America/New_York")
	tokyo, _ := time.LoadLocation("Asia/Tokyo")

	fixtures := []time.Time{
		time.Date(2025, 4, 24, 23, 50, 0, 0, ny),
		time.Date(2025, 4, 25, 0, 10, 0, 0, ny),
		time.Date(2025, 4, 25, 3, 50, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 23, 59, 59, 999_000_000, ny),
		time.Date(2026, 1, 1, 0, 0, 0, 0, tokyo),
		time.Date(2025, 3, 9, 2, 30, 0, 0, time.UTC), // DST gap day in NY
	}

	for i, a := range fixtures {
		for j, b := range fixtures {
			da, db := DayOf(a, ny), DayOf(b, ny)
			if (da == db) != (da.String() == db.String()) {
				t.Errorf("fixtures %d,%d: struct equality %v but string equality %v (%v vs %v)",
					i, j, da == db, da.String() == db.String(), da, db)
			}
		}
	}
}

func TestDayString(t *testing.T) {
	d := Day{2025, time.January, 8}
	if got := d.String(); got != "2025-01-08" {
		t.Errorf("String() = %q, want 2025-01-08", got)
	}
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		in      string
		want    Day
		wantErr bool
	}{
		{in: "2025-01-08", want: Day{2025, time.January, 8}},
		{in: "2025-12-31", want: Day{2025, time.December, 31}},
		{in: "2025-1-8", wantErr: true},
		{in: "08/01/2025", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDay(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDay(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseDay(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAddDaysAcrossBoundaries(t *testing.T) {
	tests := []struct {
		name string
		in   Day
		n    int
		want Day
	}{
		{"within month", Day{2025, time.January, 1}, 7, Day{2025, time.January, 8}},
		{"month rollover", Day{2025, time.January, 28}, 7, Day{2025, time.February, 4}},
		{"leap february", Day{2024, time.February, 26}, 5, Day{2024, time.March, 2}},
		{"year rollover", Day{2025, time.December, 30}, 3, Day{2026, time.January, 2}},
		{"across DST start", Day{2025, time.March, 8}, 2, Day{2025, time.March, 10}},
		{"negative", Day{2025, time.March, 1}, -1, Day{2025, time.February, 28}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.AddDays(tt.n); got != tt.want {
				t.Errorf("AddDays(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestDayTimeMidnightInLocation(t *testing.T) {
	ny, _ := time.LoadLocation("America/New_York")
	d := Day{2025, time.April, 25}
	got := d.Time(ny)
	if got.Hour() != 0 || got.Minute() != 0 || got.Location() != ny {
		t.Errorf("Time() = %v, want midnight in %v", got, ny)
	}
	if DayOf(got, ny) != d {
		t.Errorf("DayOf(Time()) = %v, want %v", DayOf(got, ny), d)
	}
}
