package menu

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Restaurant maps a short config code to the upstream salepoint ID.
type Restaurant struct {
	Code int    `yaml:"code"`
	ID   string `yaml:"id"`
}

// Table is the ordered restaurant list. The first entry is the fallback for
// unknown codes.
type Table struct {
	entries []Restaurant
}

func DefaultTable() Table {
	return Table{entries: []Restaurant{
		{Code: 1, ID: "13-restaurant-r1"},
		{Code: 2, ID: "21-restaurant-r2"},
		{Code: 3, ID: "33-restaurant-r3"},
	}}
}

// LoadTable reads a replacement table from a YAML file:
//
//	- code: 1
//	  id: 13-restaurant-r1
//
// The same fallback rule applies to the loaded list.
func LoadTable(path string) (Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Table{}, err
	}
	var entries []Restaurant
	if err := yaml.Unmarshal(b, &entries); err != nil {
		return Table{}, fmt.Errorf("parse restaurants file: %w", err)
	}
	if len(entries) == 0 {
		return Table{}, fmt.Errorf("restaurants file %s lists no restaurants", path)
	}
	for _, e := range entries {
		if e.ID == "" {
			return Table{}, fmt.Errorf("restaurants file %s: code %d has no id", path, e.Code)
		}
	}
	return Table{entries: entries}, nil
}

// Sanitize returns code if the table knows it, else the fallback code.
func (t Table) Sanitize(code int) int {
	for _, e := range t.entries {
		if e.Code == code {
			return code
		}
	}
	return t.entries[0].Code
}

// ID returns the salepoint ID for a code, falling back like Sanitize.
func (t Table) ID(code int) string {
	for _, e := range t.entries {
		if e.Code == code {
			return e.ID
		}
	}
	return t.entries[0].ID
}
