package novae

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLunchTitles(t *testing.T) {
	var gotPath string
	var gotHeaders http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotHeaders = r.Header
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"title":{"en":"Chicken curry","fr":"Poulet au curry"},"model":{"service":"midi"}},
			{"title":{"fr":"Croissant"},"model":{"service":"matin"}},
			{"title":{"fr":"Gratin de courge"},"model":{"service":"MIDI"}},
			{"title":{},"model":{"service":"midi"}},
			{"title":{"en":"Steak frites"},"model":{"service":"soir"}}
		]`))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Key: "CER103", Lang: "en"})
	titles, err := c.LunchTitles(context.Background(), "13-restaurant-r1", "2026-08-31")
	if err != nil {
		t.Fatalf("LunchTitles: %v", err)
	}

	want := []string{"Chicken curry", "Gratin de courge"}
	if len(titles) != len(want) {
		t.Fatalf("titles = %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("titles[%d] = %q, want %q", i, titles[i], want[i])
		}
	}

	if gotPath != "/en/api/v2/salepoints/13-restaurant-r1/menus/2026-08-31" {
		t.Errorf("path = %q", gotPath)
	}
	if gotHeaders.Get("Novae-Codes") != "CER103" {
		t.Errorf("Novae-Codes = %q", gotHeaders.Get("Novae-Codes"))
	}
	if gotHeaders.Get("Accept") != "application/json" {
		t.Errorf("Accept = %q", gotHeaders.Get("Accept"))
	}
	if gotHeaders.Get("X-Requested-With") != "xmlhttprequest" {
		t.Errorf("X-Requested-With = %q", gotHeaders.Get("X-Requested-With"))
	}
}

func TestLunchTitlesNon200EndsRetries(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Key: "k"})
	if _, err := c.LunchTitles(context.Background(), "13-restaurant-r1", "2026-08-31"); err == nil {
		t.Fatal("want error on 404")
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1 (non-200 must end retries)", hits)
	}
}

func TestLunchTitlesGarbledItemDoesNotPoisonRest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"title":{"en":"Good"},"model":{"service":"midi"}},
			{"title":{"en":"Bad"},,"model":{"service":"midi"}},
			{"title":{"en":"Also good"},"model":{"service":"midi"}}
		]`))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Key: "k"})
	titles, err := c.LunchTitles(context.Background(), "13-restaurant-r1", "2026-08-31")
	if err != nil {
		t.Fatalf("LunchTitles: %v", err)
	}
	if len(titles) != 2 || titles[0] != "Good" || titles[1] != "Also good" {
		t.Errorf("titles = %v", titles)
	}
}
