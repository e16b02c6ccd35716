package project

import (
	"testing"

	"github.com/DSongManage/PanelCut/internal/model"
)

func oneLine() []model.DividerLine {
	return []model.DividerLine{
		model.NewStraightLine(model.Point{X: 0, Y: 50}, model.Point{X: 100, Y: 50}),
	}
}

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if h.maxDepth != defaultMaxDepth {
		t.Errorf("expected maxDepth %d, got %d", defaultMaxDepth, h.maxDepth)
	}
	if h.CanUndo() {
		t.Error("new history should not be undoable")
	}
	if h.CanRedo() {
		t.Error("new history should not be redoable")
	}
}

func TestPushAndUndo(t *testing.T) {
	h := NewHistory()

	// Push initial state (before drawing a line)
	h.Push(MakeSnapshot(nil, "initial"))

	if !h.CanUndo() {
		t.Fatal("should be able to undo after push")
	}

	current := MakeSnapshot(oneLine(), "current")
	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("undo should succeed")
	}
	if len(restored.Lines) != 0 {
		t.Errorf("expected 0 lines after undo, got %d", len(restored.Lines))
	}
	if restored.Label != "initial" {
		t.Errorf("expected label 'initial', got %q", restored.Label)
	}
}

func TestUndoRedo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(nil, "empty"))
	h.Push(MakeSnapshot(oneLine(), "one line"))

	two := append(oneLine(), model.NewStraightLine(model.Point{X: 50, Y: 0}, model.Point{X: 50, Y: 100}))
	current := MakeSnapshot(two, "two lines")

	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("first undo should succeed")
	}
	if len(restored.Lines) != 1 {
		t.Errorf("expected 1 line, got %d", len(restored.Lines))
	}

	if !h.CanRedo() {
		t.Fatal("should be able to redo")
	}
	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("redo should succeed")
	}
	if len(redone.Lines) != 2 {
		t.Errorf("expected 2 lines after redo, got %d", len(redone.Lines))
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(nil, "empty"))

	current := MakeSnapshot(oneLine(), "one line")
	if _, ok := h.Undo(current); !ok {
		t.Fatal("undo should succeed")
	}
	if !h.CanRedo() {
		t.Fatal("should be able to redo after undo")
	}

	// Push new state - should clear redo
	h.Push(MakeSnapshot(nil, "new action"))
	if h.CanRedo() {
		t.Error("redo stack should be cleared after push")
	}
}

func TestMaxDepth(t *testing.T) {
	h := &History{maxDepth: 3}

	for i := 0; i < 5; i++ {
		h.Push(MakeSnapshot(nil, ""))
	}

	if len(h.undoStack) != 3 {
		t.Errorf("expected undo stack length 3, got %d", len(h.undoStack))
	}
}

func TestUndoEmpty(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Undo(MakeSnapshot(nil, "current")); ok {
		t.Error("undo on empty history should return false")
	}
}

func TestRedoEmpty(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Redo(MakeSnapshot(nil, "current")); ok {
		t.Error("redo on empty history should return false")
	}
}

func TestClear(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(nil, "a"))
	h.Push(MakeSnapshot(nil, "b"))

	// Create a redo entry
	h.Undo(MakeSnapshot(nil, "current"))

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("after clear, should not be able to undo or redo")
	}
}

func TestSnapshotDeepCopiesLines(t *testing.T) {
	original := oneLine()
	snap := MakeSnapshot(original, "test")

	// Mutate original
	original[0].Color = "#ff0000"

	if snap.Lines[0].Color != model.DefaultLineColor {
		t.Error("snapshot should be independent of original slice")
	}
}

func TestSnapshotDeepCopiesControlPoints(t *testing.T) {
	original := []model.DividerLine{
		model.NewBezierLine(
			model.Point{X: 0, Y: 50},
			model.Point{X: 25, Y: 20},
			model.Point{X: 75, Y: 80},
			model.Point{X: 100, Y: 50},
		),
	}
	snap := MakeSnapshot(original, "test")

	// Mutate the original's control point through its pointer
	original[0].Control1.X = 999

	if snap.Lines[0].Control1.X != 25 {
		t.Error("snapshot control points should be independent of original")
	}
}

func TestCopyNilLines(t *testing.T) {
	snap := MakeSnapshot(nil, "nil test")
	if snap.Lines != nil {
		t.Error("nil lines should stay nil")
	}
}
