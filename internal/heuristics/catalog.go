// Package heuristics holds the catalog of entrepreneurial decision-making
// principles and the completion-backed selector that picks the ones relevant
// to a given decision.
package heuristics

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/vheikkine/franchiselab/internal/errors"
)

// Category is a coarse classification of what a heuristic is about. It is
// assigned once at load time from the heuristic's name so that downstream
// narration can switch on it instead of re-matching name substrings.
type Category int

const (
	CategoryGeneral Category = iota
	CategoryRisk
	CategoryGrowth
	CategoryCustomer
	CategoryFinancial
)

func (c Category) String() string {
	switch c {
	case CategoryRisk:
		return "risk"
	case CategoryGrowth:
		return "growth"
	case CategoryCustomer:
		return "customer"
	case CategoryFinancial:
		return "financial"
	default:
		return "general"
	}
}

func classify(name string) Category {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "risk"):
		return CategoryRisk
	case strings.Contains(lower, "growth"):
		return CategoryGrowth
	case strings.Contains(lower, "customer"):
		return CategoryCustomer
	case strings.Contains(lower, "financial"), strings.Contains(lower, "cash"):
		return CategoryFinancial
	default:
		return CategoryGeneral
	}
}

// Heuristic is a named decision-making principle. Immutable after load.
type Heuristic struct {
	ID            string   `json:"-"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Applicability string   `json:"applicability"`
	Limitations   string   `json:"limitations"`
	Category      Category `json:"-"`
}

// Catalog is the immutable set of heuristics loaded at startup.
type Catalog struct {
	byID map[string]Heuristic
	ids  []string
}

//go:embed catalog.json
var defaultCatalogJSON []byte

// Default loads the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalogJSON)
}

// LoadFile loads a catalog from a JSON document on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog file")
	}
	return Parse(data)
}

// Parse decodes a catalog document. The document has a top-level "heuristics"
// key mapping id to the heuristic fields. Entry fields are not validated
// beyond JSON well-formedness.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Heuristics map[string]Heuristic `json:"heuristics"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}
	if len(doc.Heuristics) == 0 {
		return nil, errors.New("catalog has no heuristics")
	}

	catalog := Catalog{
		byID: make(map[string]Heuristic, len(doc.Heuristics)),
		ids:  make([]string, 0, len(doc.Heuristics)),
	}
	for id, h := range doc.Heuristics {
		h.ID = id
		h.Category = classify(h.Name)
		catalog.byID[id] = h
		catalog.ids = append(catalog.ids, id)
	}
	sort.Strings(catalog.ids)
	return &catalog, nil
}

// Len returns the number of heuristics in the catalog.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Get looks up a heuristic by id.
func (c *Catalog) Get(id string) (Heuristic, bool) {
	h, ok := c.byID[id]
	return h, ok
}

// All returns every heuristic ordered by id.
func (c *Catalog) All() []Heuristic {
	all := make([]Heuristic, 0, len(c.ids))
	for _, id := range c.ids {
		all = append(all, c.byID[id])
	}
	return all
}

// PromptList formats the whole catalog for a selection prompt, one block per
// heuristic ordered by id.
func (c *Catalog) PromptList() string {
	blocks := make([]string, 0, len(c.ids))
	for _, h := range c.All() {
		blocks = append(blocks, fmt.Sprintf("ID: %s\nName: %s\nDescription: %s\nApplicability: %s",
			h.ID, h.Name, h.Description, h.Applicability))
	}
	return strings.Join(blocks, "\n\n")
}

// FormatForPrompt formats a set of selected heuristics for impact and
// analysis prompts.
func FormatForPrompt(selected []Heuristic) string {
	blocks := make([]string, 0, len(selected))
	for _, h := range selected {
		blocks = append(blocks, fmt.Sprintf("Heuristic: %s\nDescription: %s\nApplicability: %s\nLimitations: %s",
			h.Name, h.Description, h.Applicability, h.Limitations))
	}
	return strings.Join(blocks, "\n\n")
}
