package timezone_test

import (
	"paradise/shared/timezone"
	"regexp"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	if timezone.Now().IsZero() {
		t.Error("Now() returned zero time")
	}

	if timezone.GetLocation() == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestToday(t *testing.T) {
	if !regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`).MatchString(timezone.Today()) {
		t.Errorf("Today() = %q, want YYYY-MM-DD", timezone.Today())
	}
}

func TestParseAndFormatDate(t *testing.T) {
	parsed, err := timezone.ParseDate("2025-06-01")
	if err != nil {
		t.Fatalf("ParseDate() failed: %v", err)
	}

	if parsed.Hour() != 0 || parsed.Minute() != 0 {
		t.Errorf("expected midnight, got %s", parsed.Format(time.RFC3339))
	}

	if got := timezone.FormatDate(parsed); got != "2025-06-01" {
		t.Errorf("FormatDate() = %q, want 2025-06-01", got)
	}

	if _, err := timezone.ParseDate("2025-13-01"); err == nil {
		t.Error("expected an error for month 13")
	}
}

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkin  string
		checkout string
		want     int
	}{
		{name: "two nights", checkin: "2025-06-01", checkout: "2025-06-03", want: 2},
		{name: "across month", checkin: "2025-01-31", checkout: "2025-02-01", want: 1},
		{name: "same day", checkin: "2025-06-01", checkout: "2025-06-01", want: 0},
		{name: "invalid", checkin: "tomorrow", checkout: "2025-06-01", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timezone.NightsBetween(tt.checkin, tt.checkout); got != tt.want {
				t.Errorf("NightsBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}
