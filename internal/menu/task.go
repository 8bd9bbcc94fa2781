package menu

import (
	"context"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/example/menusign/internal/settings"
	"github.com/example/menusign/internal/textnorm"
)

// Source fetches the raw lunch titles for one salepoint and date.
type Source interface {
	LunchTitles(ctx context.Context, salepoint, date string) ([]string, error)
}

// DefaultInterval is the controller's sleep between ticks.
const DefaultInterval = 900 * time.Second

const timestampFormat = "2006-01-02 15:04:05"

// Task is the periodic menu controller. Each tick it reloads settings,
// decides which date's menu is active and refetches on date or hour
// boundaries. The cache holds at most one day's distilled line; readers
// (display and status page) see it through MenuString and Status.
type Task struct {
	store     settings.Store
	source    Source
	table     Table
	normalize textnorm.Normalizer

	interval time.Duration
	now      func() time.Time

	// refresh marks, touched only inside Tick
	lastFetchedMenuDate string
	lastFetchHour       int

	// cache state, read concurrently by the web server and display
	mu                  sync.RWMutex
	restaurantCode      int
	restaurantID        string
	window              Window
	cachedMenuDate      string
	cachedMenuLine      string
	lastStatusTimestamp string
}

func NewTask(store settings.Store, source Source, table Table) *Task {
	return &Task{
		store:          store,
		source:         source,
		table:          table,
		normalize:      textnorm.FoldFrench,
		interval:       DefaultInterval,
		now:            time.Now,
		lastFetchHour:  -1,
		restaurantCode: table.entries[0].Code,
		restaurantID:   table.entries[0].ID,
	}
}

// SetInterval overrides the tick period. Call before Run.
func (t *Task) SetInterval(d time.Duration) { t.interval = d }

// Run drives the controller until ctx is cancelled. Errors never escape a
// tick; the task runs indefinitely.
func (t *Task) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	// kick immediately
	t.Tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			t.Tick(ctx)
		}
	}
}

// Tick runs one controller pass: reload settings, compute the active date
// and refetch if the date or the hour moved.
func (t *Task) Tick(ctx context.Context) {
	rt := settings.Load(ctx, t.store)

	code := t.table.Sanitize(rt.Restaurant)
	w := Window{StartHour: rt.MenuStartHour, EndHour: rt.MenuEndHour, ShowTomorrow: rt.MenuShowTomorrow}

	t.mu.Lock()
	t.restaurantCode = code
	t.restaurantID = t.table.ID(code)
	t.window = w
	salepoint := t.restaurantID
	t.mu.Unlock()

	now := t.now()
	activeDate, _ := w.ActiveDate(now)

	dateBoundary := activeDate != t.lastFetchedMenuDate
	hourBoundary := now.Hour() != t.lastFetchHour
	if !dateBoundary && !hourBoundary {
		return
	}

	// advance the marks first so a failing fetch is not retried until the
	// next boundary
	t.lastFetchedMenuDate = activeDate
	t.lastFetchHour = now.Hour()

	t.fetchMenu(ctx, salepoint, activeDate)
}

// fetchMenu pulls the lunch titles for one date and rebuilds the cached
// line. Failures are logged and leave the prior cache intact; a successful
// fetch with zero dishes blanks the line but keeps the cached date.
func (t *Task) fetchMenu(ctx context.Context, salepoint, date string) {
	titles, err := t.source.LunchTitles(ctx, salepoint, date)
	if err != nil {
		log.Printf("menu: fetch %s for %s failed: %v", date, salepoint, err)
		return
	}

	dishes := Distill(titles, t.normalize)

	t.mu.Lock()
	if len(dishes) == 0 {
		t.cachedMenuLine = ""
	} else {
		t.cachedMenuLine = strings.Join(dishes, " | ")
		t.cachedMenuDate = date
	}
	t.lastStatusTimestamp = t.now().Format(timestampFormat)
	t.mu.Unlock()

	log.Printf("menu: fetched %s for %s, %d dishes", date, salepoint, len(dishes))
}

// Distill runs raw titles through normalization and key-phrase extraction
// and drops duplicates case-insensitively; the first spelling survives.
func Distill(titles []string, normalize textnorm.Normalizer) []string {
	seen := make(map[string]struct{})
	var dishes []string
	for _, title := range titles {
		phrase := textnorm.KeyPhrase(normalize(title), textnorm.DefaultMaxWords)
		if phrase == "" {
			continue
		}
		key := strings.ToLower(phrase)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		dishes = append(dishes, phrase)
	}
	return dishes
}

// MenuString returns the line the display should show right now, or "" when
// the window is closed or the cache does not match the wanted date.
func (t *Task) MenuString() string {
	now := t.now()

	t.mu.RLock()
	defer t.mu.RUnlock()

	ok, tomorrow := t.window.Displayable(now)
	if !ok {
		return ""
	}
	wantedDate, _ := t.window.ActiveDate(now)
	if t.cachedMenuDate != wantedDate || t.cachedMenuLine == "" {
		return ""
	}

	label := "Today's "
	if tomorrow {
		label = "Tomorrow's "
	}
	return label + "R" + strconv.Itoa(t.restaurantCode) + " menu: " + t.cachedMenuLine
}

// Status is the snapshot rendered by the status page.
type Status struct {
	Timestamp      string
	RestaurantID   string
	RestaurantCode int
	StartHour      int
	EndHour        int
	ShowTomorrow   bool
	MenuDate       string
	MenuLine       string
}

func (t *Task) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return Status{
		Timestamp:      t.lastStatusTimestamp,
		RestaurantID:   t.restaurantID,
		RestaurantCode: t.restaurantCode,
		StartHour:      t.window.StartHour,
		EndHour:        t.window.EndHour,
		ShowTomorrow:   t.window.ShowTomorrow,
		MenuDate:       t.cachedMenuDate,
		MenuLine:       t.cachedMenuLine,
	}
}
