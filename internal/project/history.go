package project

import "github.com/DSongManage/PanelCut/internal/model"

const defaultMaxDepth = 50

// Snapshot captures the page's line set at a point in time.
type Snapshot struct {
	Lines []model.DividerLine
	Label string // Human-readable description (e.g. "Add Line")
}

// History manages undo/redo stacks of line-set snapshots.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int
}

// NewHistory creates a History with the default max depth of 50.
func NewHistory() *History {
	return &History{
		maxDepth: defaultMaxDepth,
	}
}

// Push saves a snapshot onto the undo stack and clears the redo stack.
// This should be called before the modification is applied.
func (h *History) Push(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxDepth:]
	}
	h.redoStack = nil
}

// Undo pops the most recent snapshot from the undo stack and pushes
// the current state onto the redo stack. Returns the snapshot to restore
// and true, or an empty snapshot and false if nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	// Pop from undo
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	// Push current state onto redo
	h.redoStack = append(h.redoStack, current)
	return last, true
}

// Redo pops the most recent snapshot from the redo stack and pushes
// the current state onto the undo stack. Returns the snapshot to restore
// and true, or an empty snapshot and false if nothing to redo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	// Pop from redo
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	// Push current state onto undo
	h.undoStack = append(h.undoStack, current)
	return last, true
}

// CanUndo returns true if there is at least one snapshot to undo.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if there is at least one snapshot to redo.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Clear removes all undo and redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// copyLines returns a deep copy of a line slice. Bezier control points are
// held behind pointers, so they need their own copies or a later edit would
// reach back into the snapshot.
func copyLines(lines []model.DividerLine) []model.DividerLine {
	if lines == nil {
		return nil
	}
	cp := make([]model.DividerLine, len(lines))
	for i, l := range lines {
		cp[i] = l
		if l.Control1 != nil {
			c1 := *l.Control1
			cp[i].Control1 = &c1
		}
		if l.Control2 != nil {
			c2 := *l.Control2
			cp[i].Control2 = &c2
		}
	}
	return cp
}

// MakeSnapshot creates a snapshot from the current line set with a label.
func MakeSnapshot(lines []model.DividerLine, label string) Snapshot {
	return Snapshot{
		Lines: copyLines(lines),
		Label: label,
	}
}
