package menu

import "time"

const dateFormat = "2006-01-02"

// Window is the daily display window [StartHour, EndHour) in local hours,
// possibly wrapping midnight, plus the roll-to-tomorrow option.
type Window struct {
	StartHour    int
	EndHour      int
	ShowTomorrow bool
}

// Contains reports whether now falls inside the display window.
func (w Window) Contains(now time.Time) bool {
	h := now.Hour()
	if w.StartHour < w.EndHour {
		return h >= w.StartHour && h < w.EndHour
	}
	// window wraps midnight
	return h >= w.StartHour || h < w.EndHour
}

// AfterEnd reports whether now is past the window's end, i.e. in the stretch
// between closing and the next opening.
func (w Window) AfterEnd(now time.Time) bool {
	h := now.Hour()
	if w.StartHour < w.EndHour {
		return h >= w.EndHour
	}
	return h >= w.EndHour && h < w.StartHour
}

// ActiveDate returns the calendar date whose menu should currently be
// fetched and shown, and whether that date is tomorrow. The date only rolls
// forward once the window has closed and the tomorrow option is on.
func (w Window) ActiveDate(now time.Time) (date string, tomorrow bool) {
	if w.AfterEnd(now) && w.ShowTomorrow {
		return now.Add(24 * time.Hour).Format(dateFormat), true
	}
	return now.Format(dateFormat), false
}

// Displayable reports whether a menu line may be shown at all right now, and
// whether it would carry the tomorrow label.
func (w Window) Displayable(now time.Time) (ok, tomorrow bool) {
	if w.Contains(now) {
		return true, false
	}
	if w.AfterEnd(now) && w.ShowTomorrow {
		return true, true
	}
	return false, false
}
