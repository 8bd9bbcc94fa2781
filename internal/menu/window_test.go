package menu

import (
	"testing"
	"time"
)

func at(hour int) time.Time {
	return time.Date(2026, 8, 31, hour, 30, 0, 0, time.Local)
}

func TestWindowContains(t *testing.T) {
	tests := []struct {
		name string
		w    Window
		hour int
		want bool
	}{
		{"open at start", Window{StartHour: 9, EndHour: 17}, 9, true},
		{"open mid-window", Window{StartHour: 9, EndHour: 17}, 12, true},
		{"closed at end", Window{StartHour: 9, EndHour: 17}, 17, false},
		{"closed before start", Window{StartHour: 9, EndHour: 17}, 8, false},
		{"closed late evening", Window{StartHour: 9, EndHour: 17}, 22, false},
		{"wrap open late", Window{StartHour: 22, EndHour: 6}, 23, true},
		{"wrap open early", Window{StartHour: 22, EndHour: 6}, 2, true},
		{"wrap closed at end", Window{StartHour: 22, EndHour: 6}, 6, false},
		{"wrap closed midday", Window{StartHour: 22, EndHour: 6}, 12, false},
	}
	for _, tt := range tests {
		if got := tt.w.Contains(at(tt.hour)); got != tt.want {
			t.Errorf("%s: Contains(hour=%d) = %v, want %v", tt.name, tt.hour, got, tt.want)
		}
	}
}

func TestWindowAfterEnd(t *testing.T) {
	tests := []struct {
		name string
		w    Window
		hour int
		want bool
	}{
		{"at end", Window{StartHour: 9, EndHour: 17}, 17, true},
		{"late evening", Window{StartHour: 9, EndHour: 17}, 23, true},
		{"mid-window", Window{StartHour: 9, EndHour: 17}, 12, false},
		{"before start", Window{StartHour: 9, EndHour: 17}, 8, false},
		{"wrap gap", Window{StartHour: 22, EndHour: 6}, 12, true},
		{"wrap at end", Window{StartHour: 22, EndHour: 6}, 6, true},
		{"wrap inside late", Window{StartHour: 22, EndHour: 6}, 23, false},
		{"wrap inside early", Window{StartHour: 22, EndHour: 6}, 2, false},
	}
	for _, tt := range tests {
		if got := tt.w.AfterEnd(at(tt.hour)); got != tt.want {
			t.Errorf("%s: AfterEnd(hour=%d) = %v, want %v", tt.name, tt.hour, got, tt.want)
		}
	}
}

func TestWindowActiveDate(t *testing.T) {
	today := at(12).Format(dateFormat)
	tomorrow := at(12).Add(24 * time.Hour).Format(dateFormat)

	tests := []struct {
		name         string
		w            Window
		hour         int
		wantDate     string
		wantTomorrow bool
	}{
		{"inside window", Window{StartHour: 9, EndHour: 17, ShowTomorrow: true}, 12, today, false},
		{"after end, roll on", Window{StartHour: 9, EndHour: 17, ShowTomorrow: true}, 20, tomorrow, true},
		{"after end, roll off", Window{StartHour: 9, EndHour: 17}, 20, today, false},
		{"before start", Window{StartHour: 9, EndHour: 17, ShowTomorrow: true}, 7, today, false},
	}
	for _, tt := range tests {
		date, tom := tt.w.ActiveDate(at(tt.hour))
		if date != tt.wantDate || tom != tt.wantTomorrow {
			t.Errorf("%s: ActiveDate(hour=%d) = (%q, %v), want (%q, %v)",
				tt.name, tt.hour, date, tom, tt.wantDate, tt.wantTomorrow)
		}
	}
}

func TestWindowDisplayable(t *testing.T) {
	tests := []struct {
		name         string
		w            Window
		hour         int
		wantOK       bool
		wantTomorrow bool
	}{
		{"inside", Window{StartHour: 9, EndHour: 17}, 12, true, false},
		{"after end, no roll", Window{StartHour: 9, EndHour: 17}, 18, false, false},
		{"after end, roll", Window{StartHour: 9, EndHour: 17, ShowTomorrow: true}, 20, true, true},
		{"before start, roll", Window{StartHour: 9, EndHour: 17, ShowTomorrow: true}, 7, false, false},
	}
	for _, tt := range tests {
		ok, tom := tt.w.Displayable(at(tt.hour))
		if ok != tt.wantOK || tom != tt.wantTomorrow {
			t.Errorf("%s: Displayable(hour=%d) = (%v, %v), want (%v, %v)",
				tt.name, tt.hour, ok, tom, tt.wantOK, tt.wantTomorrow)
		}
	}
}
