package ttt

import (
	"errors"
	"testing"
)

func TestNotation(t *testing.T) {
	tests := []string{
		EmptyBoardNotation,
		"xx1/oo1/3",
		"x2/1o1/2x",
		"xox/xoo/oxx",
		"1x1/3/o2",
	}

	for _, notation := range tests {
		t.Run(notation, func(t *testing.T) {
			b, err := ParseBoard(notation)
			if err != nil {
				t.Fatal(err)
			}
			if got := b.Notation(); got != notation {
				t.Errorf("Notation()=%q, want %q", got, notation)
			}
		})
	}
}

func TestNotationCells(t *testing.T) {
	b, err := ParseBoard("XX1/oo1/3")
	if err != nil {
		t.Fatal(err)
	}

	want := [9]Mark{Cross, Cross, Empty, Circle, Circle, Empty, Empty, Empty, Empty}
	if b.Cells() != want {
		t.Fatalf("Cells()=%v, want %v", b.Cells(), want)
	}
}

func TestInvalidNotation(t *testing.T) {
	tests := []string{
		"",
		"3/3",
		"3/3/3/3",
		"xxxx/3/3",
		"4/3/3",
		"2/3/3",
		"22/3/3",
		"xa1/3/3",
	}

	for _, notation := range tests {
		t.Run(notation, func(t *testing.T) {
			b := NewBoard()
			b.Place(4, Cross)
			if err := b.FromNotation(notation); !errors.Is(err, ErrInvalidNotation) {
				t.Fatalf("want ErrInvalidNotation, got %v", err)
			}
			if b.Cell(4) != Cross || b.Count(Empty) != 8 {
				t.Fatalf("board changed after a failed FromNotation: %q", b.Notation())
			}
		})
	}
}
