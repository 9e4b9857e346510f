package main

import (
	"strings"

	"github.com/fatih/color"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

var (
	tileCorrect = color.New(color.BgGreen, color.FgHiWhite, color.Bold)
	tilePresent = color.New(color.BgYellow, color.FgBlack, color.Bold)
	tileAbsent  = color.New(color.BgHiBlack, color.FgHiWhite)
)

// tiles renders an attempt as colored letter tiles.
func tiles(a solver.Attempt) string {
	var b strings.Builder
	for i, m := range a.Pattern {
		c := tileAbsent
		switch m {
		case solver.MarkCorrect:
			c = tileCorrect
		case solver.MarkPresent:
			c = tilePresent
		}
		b.WriteString(c.Sprintf(" %c ", a.Guess[i]-'a'+'A'))
	}
	return b.String()
}

// wordList joins words for display, wrapping every perLine entries.
func wordList(ws []solver.Word, perLine int) string {
	var b strings.Builder
	for i, w := range ws {
		switch {
		case i == 0:
		case i%perLine == 0:
			b.WriteByte('\n')
		default:
			b.WriteByte(' ')
		}
		b.WriteString(w.String())
	}
	return b.String()
}
