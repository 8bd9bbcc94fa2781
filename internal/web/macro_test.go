package web

import "testing"

func TestMacroReplace(t *testing.T) {
	vars := map[string]string{
		"menu":     "Soup | Salad",
		"menudate": "2026-08-31",
		"empty":    "",
	}
	tests := []struct {
		tmpl, want string
	}{
		{"Menu: $menu$", "Menu: Soup | Salad"},
		{"$menudate$: $menu$", "2026-08-31: Soup | Salad"},
		{"no markers", "no markers"},
		{"$unknown$ stays", "$unknown$ stays"},
		{"$empty$!", "!"},
		{"unterminated $menu", "unterminated $menu"},
		{"", ""},
		{"$menu$$menudate$", "Soup | Salad2026-08-31"},
	}
	for _, tt := range tests {
		if got := macroReplace(tt.tmpl, vars); got != tt.want {
			t.Errorf("macroReplace(%q) = %q, want %q", tt.tmpl, got, tt.want)
		}
	}
}
