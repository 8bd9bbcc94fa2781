package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/example/menusign/internal/display"
	"github.com/example/menusign/internal/menu"
)

const pageHeader = `<!DOCTYPE html>
<html>
<head>
<title>$title$</title>
<style>
table { border-collapse: collapse; }
td, th { border: 1px solid #999; padding: 4px 8px; }
td.l { font-weight: bold; }
</style>
</head>
<body>
`

const menuStatusPage = `<table>
<tr><th colspan="2">Restaurant Menu</th></tr>
<tr><td class="l">Last refresh:</td><td>$timestamp$</td></tr>
<tr><td class="l">Restaurant:</td><td>$restaurant$</td></tr>
<tr><td class="l">Start hour:</td><td>$menustarthour$</td></tr>
<tr><td class="l">End hour:</td><td>$menuendhour$</td></tr>
<tr><td class="l">Show tomorrow:</td><td>$menushowtomorrow$</td></tr>
<tr><td class="l">Menu date:</td><td>$menudate$</td></tr>
<tr><td class="l">Menu:</td><td>$menu$</td></tr>
</table>
</body>
<script>setTimeout(function(){window.location.reload(1);}, 15000);</script>
</html>
`

// Server exposes the status page and the raw display line.
type Server struct {
	Menu    *menu.Task
	Display *display.Registry
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	mux.HandleFunc("/menu", s.handleStatusPage)
	mux.HandleFunc("/display.txt", s.handleDisplayText)

	return mux
}

// handleStatusPage renders the fixed status table; the page reloads itself
// client-side every 15 s.
func (s *Server) handleStatusPage(w http.ResponseWriter, r *http.Request) {
	st := s.Menu.Status()

	showTomorrow := "0"
	if st.ShowTomorrow {
		showTomorrow = "1"
	}
	vars := map[string]string{
		"timestamp":        st.Timestamp,
		"restaurant":       st.RestaurantID,
		"menustarthour":    fmt.Sprintf("%d", st.StartHour),
		"menuendhour":      fmt.Sprintf("%d", st.EndHour),
		"menushowtomorrow": showTomorrow,
		"menudate":         st.MenuDate,
		"menu":             st.MenuLine,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprint(w, macroReplace(pageHeader, map[string]string{"title": "Restaurant menu"}))
	_, _ = fmt.Fprint(w, macroReplace(menuStatusPage, vars))
}

// handleDisplayText serves the line an external sign polls at high
// frequency; an empty body means nothing to show.
func (s *Server) handleDisplayText(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprint(w, s.Display.Current())
}

// Start serves h on addr until ctx is cancelled, then shuts down gracefully.
func Start(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	fmt.Printf("listening on %s\n", addr)
	return srv.ListenAndServe()
}
