package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/example/menusign/internal/display"
	"github.com/example/menusign/internal/menu"
	"github.com/example/menusign/internal/settings"
)

type staticSource []string

func (s staticSource) LunchTitles(context.Context, string, string) ([]string, error) {
	return s, nil
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	store := settings.NewMemory()
	if err := store.Set(context.Background(), settings.KeyRestaurant, "2"); err != nil {
		t.Fatal(err)
	}

	task := menu.NewTask(store, staticSource{"Poêlée de légumes", "Soupe du jour"}, menu.DefaultTable())
	task.Tick(context.Background())

	reg := display.NewRegistry()
	reg.Add(display.Message{Name: "menu", Priority: 1, Repeatable: true, Fn: func() string {
		return "Today's R2 menu: Poelee legumes | Soupe jour"
	}})

	s := &Server{Menu: task, Display: reg}
	srv := httptest.NewServer(s.Routes())
	t.Cleanup(srv.Close)
	return s, srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(b)
}

func TestStatusPage(t *testing.T) {
	_, srv := newTestServer(t)
	resp, body := get(t, srv.URL+"/menu")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}

	for _, want := range []string{
		"<title>Restaurant menu</title>",
		"21-restaurant-r2",
		"Poelee legumes | Soupe jour",
		"<td>9</td>",
		"<td>17</td>",
		"<td>0</td>",
		"window.location.reload(1);}, 15000",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("status page missing %q\n%s", want, body)
		}
	}
	if strings.Contains(body, "$") {
		t.Errorf("unsubstituted marker left in page:\n%s", body)
	}
}

func TestDisplayText(t *testing.T) {
	_, srv := newTestServer(t)
	resp, body := get(t, srv.URL+"/display.txt")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body != "Today's R2 menu: Poelee legumes | Soupe jour" {
		t.Errorf("body = %q", body)
	}
}

func TestHealthz(t *testing.T) {
	_, srv := newTestServer(t)
	resp, body := get(t, srv.URL+"/healthz")
	if resp.StatusCode != http.StatusOK || body != "ok\n" {
		t.Errorf("healthz = %d %q", resp.StatusCode, body)
	}
}
