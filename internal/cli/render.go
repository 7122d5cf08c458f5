package cli

import (
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Draws the board, colors the marks when the output supports it
type Renderer struct {
	output *termenv.Output
}

// Colors are detected from 'w', unless disabled
func NewRenderer(w io.Writer, color bool) *Renderer {
	if !color {
		return newProfileRenderer(w, termenv.Ascii)
	}
	return &Renderer{output: termenv.NewOutput(w)}
}

func newProfileRenderer(w io.Writer, profile termenv.Profile) *Renderer {
	return &Renderer{output: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

func (r *Renderer) mark(m ttt.Mark) string {
	style := r.output.String(m.String())
	switch m {
	case ttt.Cross:
		style = style.Foreground(r.output.Color("1")).Bold()
	case ttt.Circle:
		style = style.Foreground(r.output.Color("4")).Bold()
	}
	return style.String()
}

// Same layout as ttt.Board.String
func (r *Renderer) Board(b *ttt.Board) string {
	builder := strings.Builder{}
	for i := ttt.Move(0); i < 9; i += 3 {
		builder.WriteString(r.mark(b.Cell(i)))
		builder.WriteString(" | ")
		builder.WriteString(r.mark(b.Cell(i + 1)))
		builder.WriteString(" | ")
		builder.WriteString(r.mark(b.Cell(i + 2)))
		builder.WriteByte('\n')
		if i < 6 {
			builder.WriteString("---------\n")
		}
	}
	return builder.String()
}

// Highlight the outcome line
func (r *Renderer) Bold(s string) string {
	return r.output.String(s).Bold().String()
}
