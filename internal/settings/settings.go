package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// Store is the external key/value store the controller re-reads on every
// tick, so operator changes take effect within one period.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

var ErrNotFound = errors.New("setting not found")

// Setting keys understood by the controller.
const (
	KeyRestaurant       = "restaurant"
	KeyMenuStartHour    = "menuStartHour"
	KeyMenuEndHour      = "menuEndHour"
	KeyMenuShowTomorrow = "menuShowTomorrow"
)

// Keys lists every known setting key, for the CLI.
var Keys = []string{KeyRestaurant, KeyMenuStartHour, KeyMenuEndHour, KeyMenuShowTomorrow}

const (
	defaultRestaurant    = 3
	defaultMenuStartHour = 9
	defaultMenuEndHour   = 17
)

// Runtime is the sanitized view of one tick's settings. Hours are always in
// [0,23]; the restaurant code is still raw here and gets table-sanitized by
// the menu package.
type Runtime struct {
	Restaurant       int
	MenuStartHour    int
	MenuEndHour      int
	MenuShowTomorrow bool
}

// Load reads the runtime settings from the store. Missing or out-of-range
// values silently fall back to defaults; Load never fails.
func Load(ctx context.Context, s Store) Runtime {
	return Runtime{
		Restaurant:       loadInt(ctx, s, KeyRestaurant, defaultRestaurant, func(int) bool { return true }),
		MenuStartHour:    loadInt(ctx, s, KeyMenuStartHour, defaultMenuStartHour, validHour),
		MenuEndHour:      loadInt(ctx, s, KeyMenuEndHour, defaultMenuEndHour, validHour),
		MenuShowTomorrow: loadBool(ctx, s, KeyMenuShowTomorrow),
	}
}

func validHour(h int) bool { return h >= 0 && h <= 23 }

func loadInt(ctx context.Context, s Store, key string, def int, valid func(int) bool) int {
	v, err := s.Get(ctx, key)
	if err != nil {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || !valid(n) {
		return def
	}
	return n
}

func loadBool(ctx context.Context, s Store, key string) bool {
	v, err := s.Get(ctx, key)
	if err != nil {
		return false
	}
	return v == "1"
}

// Open builds a store for the configured backend.
func Open(ctx context.Context, backend, dsn string) (Store, error) {
	switch backend {
	case "memory":
		return NewMemory(), nil
	case "sqlite":
		return OpenSQLite(dsn)
	case "postgres":
		return OpenPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown settings backend %q", backend)
	}
}
