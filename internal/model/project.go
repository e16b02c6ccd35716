package model

// PageProject ties a page's dimensions, divider lines, solver settings, and
// the most recent computed result together for save/load.
type PageProject struct {
	Name       string         `json:"name"`
	PageWidth  float64        `json:"page_width"`
	PageHeight float64        `json:"page_height"`
	Lines      []DividerLine  `json:"lines"`
	Settings   SolverSettings `json:"settings"`
	Result     *RegionResult  `json:"result,omitempty"`
}

// NewPageProject creates an empty project in the standard 100x100
// percentage space.
func NewPageProject() PageProject {
	return PageProject{
		Name:       "Untitled",
		PageWidth:  100,
		PageHeight: 100,
		Lines:      []DividerLine{},
		Settings:   DefaultSettings(),
	}
}

// NextOrder returns the stacking order for the next added line.
func (p *PageProject) NextOrder() int {
	maxOrder := -1
	for _, l := range p.Lines {
		if l.Order > maxOrder {
			maxOrder = l.Order
		}
	}
	return maxOrder + 1
}

// AddLine appends a line to the page, assigning the next stacking order.
func (p *PageProject) AddLine(line DividerLine) {
	line.Order = p.NextOrder()
	p.Lines = append(p.Lines, line)
}

// RemoveLine deletes a line by ID. Returns true if found and removed.
func (p *PageProject) RemoveLine(id string) bool {
	for i, l := range p.Lines {
		if l.ID == id {
			p.Lines = append(p.Lines[:i], p.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// FindLine returns a pointer to the line with the given ID, or nil.
func (p *PageProject) FindLine(id string) *DividerLine {
	for i := range p.Lines {
		if p.Lines[i].ID == id {
			return &p.Lines[i]
		}
	}
	return nil
}

// SetLines replaces the whole line set, renumbering stacking order 0..n-1.
// Used when applying a layout template or a bulk import.
func (p *PageProject) SetLines(lines []DividerLine) {
	p.Lines = make([]DividerLine, len(lines))
	copy(p.Lines, lines)
	for i := range p.Lines {
		p.Lines[i].Order = i
	}
}
