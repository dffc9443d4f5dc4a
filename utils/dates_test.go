package utils

import (
	"reflect"
	"testing"
)

func TestEachDate(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{
			name:  "single day",
			start: "2025-03-10",
			end:   "2025-03-10",
			want:  []string{"2025-03-10"},
		},
		{
			name:  "crosses month boundary",
			start: "2025-01-30",
			end:   "2025-02-02",
			want:  []string{"2025-01-30", "2025-01-31", "2025-02-01", "2025-02-02"},
		},
		{
			name:  "leap february",
			start: "2024-02-28",
			end:   "2024-03-01",
			want:  []string{"2024-02-28", "2024-02-29", "2024-03-01"},
		},
		{
			name:  "inverted range is empty",
			start: "2025-03-10",
			end:   "2025-03-09",
			want:  nil,
		},
		{
			name:  "garbage input is empty",
			start: "not-a-date",
			end:   "2025-03-10",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EachDate(tt.start, tt.end)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EachDate(%q, %q) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		month string
		want  int
	}{
		{"2025-01", 31},
		{"2025-02", 28},
		{"2024-02", 29},
		{"2025-04", 30},
		{"bogus", 0},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%q) = %d, want %d", tt.month, got, tt.want)
		}
	}
}

func TestMonthOf(t *testing.T) {
	if got := MonthOf("2025-07-15"); got != "2025-07" {
		t.Errorf("MonthOf = %q, want 2025-07", got)
	}
	if got := MonthOf("short"); got != "short" {
		t.Errorf("MonthOf on short input = %q, want it unchanged", got)
	}
}

func TestDayOfMonth(t *testing.T) {
	if got := DayOfMonth("2025-07-15"); got != 15 {
		t.Errorf("DayOfMonth = %d, want 15", got)
	}
	if got := DayOfMonth("nope"); got != 0 {
		t.Errorf("DayOfMonth on bad input = %d, want 0", got)
	}
}

func TestISOWeekday(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2025-03-10", 1}, // Monday
		{"2025-03-14", 5}, // Friday
		{"2025-03-16", 7}, // Sunday
	}
	for _, tt := range tests {
		got, err := ISOWeekday(tt.date)
		if err != nil {
			t.Fatalf("ISOWeekday(%q): %v", tt.date, err)
		}
		if got != tt.want {
			t.Errorf("ISOWeekday(%q) = %d, want %d", tt.date, got, tt.want)
		}
	}

	if _, err := ISOWeekday("bad"); err == nil {
		t.Error("ISOWeekday on bad input: expected error")
	}
}
