package ttt

import (
	"errors"
	"testing"
)

func TestPlaceAndClear(t *testing.T) {
	b := NewBoard()

	if !b.Place(4, Cross) {
		t.Fatal("Place on an empty cell should succeed")
	}
	if b.Place(4, Circle) {
		t.Fatal("Place on an occupied cell should fail")
	}
	if b.Cell(4) != Cross {
		t.Fatalf("Failed Place modified the board, cell=%s", b.Cell(4))
	}
	if b.Place(9, Cross) || b.Place(MoveIllegal, Circle) {
		t.Fatal("Place out of range should fail")
	}
	if b.Place(0, Empty) {
		t.Fatal("Place with Empty mark should fail")
	}

	b.Clear(4)
	if b.Cell(4) != Empty {
		t.Fatalf("Clear didn't reset the cell, got %s", b.Cell(4))
	}
	if *b != (Board{}) {
		t.Fatalf("Board after place+clear should equal an empty board, got %q", b.Notation())
	}
}

func TestMakeLegalMove(t *testing.T) {
	b := NewBoard()

	if err := b.MakeLegalMove(0, Cross); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := b.MakeLegalMove(0, Circle); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("occupied cell: want ErrInvalidMove, got %v", err)
	}
	if err := b.MakeLegalMove(12, Circle); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("out of range: want ErrOutOfRange, got %v", err)
	}
}

func TestEmptyPositions(t *testing.T) {
	tests := []struct {
		notation string
		want     []Move
	}{
		{EmptyBoardNotation, []Move{0, 1, 2, 3, 4, 5, 6, 7, 8}},
		{"xx1/oo1/3", []Move{2, 5, 6, 7, 8}},
		{"1x1/o1o/x1x", []Move{0, 2, 4, 7}},
		{"xox/xoo/oxx", []Move{}},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			b, err := ParseBoard(tt.notation)
			if err != nil {
				t.Fatal(err)
			}

			moves := b.EmptyPositions()
			got := moves.Slice()
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}

			// restartable, no side effects
			again := b.EmptyPositions()
			if again != moves {
				t.Fatalf("second call returned %v, first %v", again, moves)
			}
		})
	}
}

func TestCountAndSideToMove(t *testing.T) {
	b, err := ParseBoard("x2/1o1/3")
	if err != nil {
		t.Fatal(err)
	}

	if c := b.Count(Cross); c != 1 {
		t.Errorf("Count(Cross)=%d, want 1", c)
	}
	if c := b.Count(Empty); c != 7 {
		t.Errorf("Count(Empty)=%d, want 7", c)
	}
	if side := b.SideToMove(Cross); side != Cross {
		t.Errorf("SideToMove(Cross)=%s, want X", side)
	}

	b.Place(8, Cross)
	if side := b.SideToMove(Cross); side != Circle {
		t.Errorf("SideToMove(Cross)=%s, want O", side)
	}
}

func TestParseMove(t *testing.T) {
	if m, err := ParseMove(" 7\n"); err != nil || m != 7 {
		t.Errorf("ParseMove(7)=%v,%v", m, err)
	}
	if _, err := ParseMove("nine"); !errors.Is(err, ErrNotNumeric) {
		t.Errorf("want ErrNotNumeric, got %v", err)
	}
	for _, s := range []string{"-1", "9", "100"} {
		if _, err := ParseMove(s); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("ParseMove(%q): want ErrOutOfRange, got %v", s, err)
		}
	}
}

func TestBoardString(t *testing.T) {
	b, _ := ParseBoard("xo1/3/2x")
	want := "X | O |  \n---------\n  |   |  \n---------\n  |   | X\n"
	if got := b.String(); got != want {
		t.Errorf("got\n%q\nwant\n%q", got, want)
	}
}
