//go:build debug

package board

import "testing"

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: no panic", name)
		}
	}()
	fn()
}

func TestDebugAssertPanics(t *testing.T) {
	if !debugAsserts {
		t.Fatalf("debugAsserts is off in a debug build")
	}
	expectPanic(t, "assert(false)", func() { assert(false, "failed") })
}

func TestDebugClearRequiresInit(t *testing.T) {
	Init()
	tablesReady = false
	defer func() { tablesReady = true }()
	b := &Board{plates: make([]Plate, 0, 4)}
	expectPanic(t, "Clear before Init", b.Clear)
}

func TestDebugMakeMoveValidates(t *testing.T) {
	b := New(nil)
	m := mustMove(t, b, "e2e4")
	// A piece in the mailbox that no list knows about.
	b.squares[NewSquare(3, 3)] = MakePiece(White, Knight)
	expectPanic(t, "MakeMove on corrupt board", func() { b.MakeMove(m) })
}
