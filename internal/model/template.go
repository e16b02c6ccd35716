package model

import (
	"time"

	"github.com/google/uuid"
)

// LayoutTemplate represents a reusable divider-line arrangement in the
// 0-100 percentage space. Applying a template replaces a page's line set,
// so the same layout works at any page size.
type LayoutTemplate struct {
	ID          string        `json:"id,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CreatedAt   string        `json:"created_at,omitempty"`
	UpdatedAt   string        `json:"updated_at,omitempty"`
	Lines       []DividerLine `json:"lines"`
}

// NewLayoutTemplate creates a template from the given line set with a
// generated ID and timestamps. The lines are copied so later edits to the
// source page do not mutate the template.
func NewLayoutTemplate(name, description string, lines []DividerLine) LayoutTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return LayoutTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Lines:       copyLines(lines),
	}
}

// Apply replaces the project's line set with fresh-ID copies of the
// template's lines, renumbered in template order. Missing presentation
// attributes fall back to the defaults.
func (t LayoutTemplate) Apply(p *PageProject) {
	lines := make([]DividerLine, len(t.Lines))
	for i, l := range t.Lines {
		nl := l
		nl.ID = uuid.New().String()[:8]
		nl.Order = i
		if nl.Thickness == 0 {
			nl.Thickness = DefaultLineThickness
		}
		if nl.Color == "" {
			nl.Color = DefaultLineColor
		}
		if l.Control1 != nil {
			c := *l.Control1
			nl.Control1 = &c
		}
		if l.Control2 != nil {
			c := *l.Control2
			nl.Control2 = &c
		}
		lines[i] = nl
	}
	p.Lines = lines
}

// Built-in layout templates. These carry no IDs or timestamps; Apply assigns
// fresh line IDs each time.
var LayoutTemplates = []LayoutTemplate{
	{
		Name:        "Full Page",
		Description: "Single splash panel covering the whole page",
		Lines:       []DividerLine{},
	},
	{
		Name:        "Two Row",
		Description: "Two full-width rows",
		Lines: []DividerLine{
			{Type: LineStraight, Start: Point{X: 0, Y: 50}, End: Point{X: 100, Y: 50}},
		},
	},
	{
		Name:        "Three Row",
		Description: "Three full-width rows",
		Lines: []DividerLine{
			{Type: LineStraight, Start: Point{X: 0, Y: 33.33}, End: Point{X: 100, Y: 33.33}},
			{Type: LineStraight, Start: Point{X: 0, Y: 66.66}, End: Point{X: 100, Y: 66.66}},
		},
	},
	{
		Name:        "2x2 Grid",
		Description: "Four equal panels",
		Lines: []DividerLine{
			{Type: LineStraight, Start: Point{X: 0, Y: 50}, End: Point{X: 100, Y: 50}},
			{Type: LineStraight, Start: Point{X: 50, Y: 0}, End: Point{X: 50, Y: 100}},
		},
	},
	{
		Name:        "2x3 Grid",
		Description: "Six equal panels in three rows",
		Lines: []DividerLine{
			{Type: LineStraight, Start: Point{X: 0, Y: 33.33}, End: Point{X: 100, Y: 33.33}},
			{Type: LineStraight, Start: Point{X: 0, Y: 66.66}, End: Point{X: 100, Y: 66.66}},
			{Type: LineStraight, Start: Point{X: 50, Y: 0}, End: Point{X: 50, Y: 100}},
		},
	},
	{
		Name:        "Splash Top",
		Description: "Large splash panel above two bottom panels",
		Lines: []DividerLine{
			{Type: LineStraight, Start: Point{X: 0, Y: 60}, End: Point{X: 100, Y: 60}},
			{Type: LineStraight, Start: Point{X: 50, Y: 60}, End: Point{X: 50, Y: 100}},
		},
	},
}

// GetTemplate returns a built-in template by name, or Full Page if not found.
func GetTemplate(name string) LayoutTemplate {
	for _, t := range LayoutTemplates {
		if t.Name == name {
			return t
		}
	}
	return LayoutTemplates[0]
}

// TemplateNames returns the names of all built-in templates.
func TemplateNames() []string {
	var names []string
	for _, t := range LayoutTemplates {
		names = append(names, t.Name)
	}
	return names
}

// TemplateStore holds user-saved layout templates.
type TemplateStore struct {
	Templates []LayoutTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []LayoutTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t LayoutTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *LayoutTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name,
// or nil.
func (ts *TemplateStore) FindByName(name string) *LayoutTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of stored template names for UI dropdowns.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// copyLines creates a deep copy of a line slice, including control points.
func copyLines(lines []DividerLine) []DividerLine {
	if lines == nil {
		return []DividerLine{}
	}
	cp := make([]DividerLine, len(lines))
	for i, l := range lines {
		cp[i] = l
		if l.Control1 != nil {
			c := *l.Control1
			cp[i].Control1 = &c
		}
		if l.Control2 != nil {
			c := *l.Control2
			cp[i].Control2 = &c
		}
	}
	return cp
}
