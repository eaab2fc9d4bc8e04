package components

import (
	"strings"

	"github.com/abhisek/notequiz/internal/clef"
	"github.com/abhisek/notequiz/internal/ui/theme"
)

// RowKind classifies one rendered staff row.
type RowKind int

const (
	RowSpace RowKind = iota
	RowLine
	RowLedger
)

// StaffRow is one text row of the staff, one staff step tall.
type StaffRow struct {
	Step int
	Kind RowKind
	Note bool
}

// StaffRows lays out the rows needed to show pos, top row first. It always
// includes one space above and below the staff and extends far enough to
// reach the note with its ledger lines.
func StaffRows(pos clef.StaffPosition) []StaffRow {
	lo, hi := -1, clef.TopLineStep+1
	if pos.StaffStep-1 < lo {
		lo = pos.StaffStep - 1
	}
	if pos.StaffStep+1 > hi {
		hi = pos.StaffStep + 1
	}

	rows := make([]StaffRow, 0, hi-lo+1)
	for s := hi; s >= lo; s-- {
		row := StaffRow{Step: s, Note: s == pos.StaffStep}
		switch {
		case s%2 != 0:
			row.Kind = RowSpace
		case s >= 0 && s <= clef.TopLineStep:
			row.Kind = RowLine
		case s < 0 && s >= pos.StaffStep:
			row.Kind = RowLedger
		case s > clef.TopLineStep && s <= pos.StaffStep:
			row.Kind = RowLedger
		}
		rows = append(rows, row)
	}
	return rows
}

const (
	staffMaxWidth = 44
	clefColumns   = 3
	ledgerHalf    = 2
	notehead      = "●"
)

// RenderStaff draws the five-line staff for c with a notehead at pos.
func RenderStaff(pos clef.StaffPosition, c clef.Clef, width int) string {
	w := width - clefColumns - 2
	if w > staffMaxWidth {
		w = staffMaxWidth
	}
	if w < 2*ledgerHalf+3 {
		w = 2*ledgerHalf + 3
	}
	noteCol := w * 3 / 5

	clefStep := c.Reference().Diatonic() - c.BottomLine().Diatonic()

	rows := StaffRows(pos)
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, renderClefCell(c, r.Step, clefStep)+renderStaffRow(r, w, noteCol))
	}
	return strings.Join(out, "\n")
}

// renderClefCell marks the clef's reference line: "G" for treble on the
// second line, "F:" for bass on the fourth.
func renderClefCell(c clef.Clef, step, clefStep int) string {
	cell := strings.Repeat(" ", clefColumns)
	if step == clefStep {
		switch c {
		case clef.Treble:
			cell = " G "
		case clef.Bass:
			cell = " F:"
		}
		return theme.ClefGlyph.Render(cell)
	}
	return cell
}

func renderStaffRow(r StaffRow, width, noteCol int) string {
	fill := " "
	if r.Kind == RowLine {
		fill = "─"
	}
	seg := fill
	segStyle := theme.Staff
	if r.Kind == RowLedger {
		seg = "─"
		segStyle = theme.Ledger
	}

	leftLen := noteCol - ledgerHalf
	rightLen := width - noteCol - ledgerHalf - 1

	left := theme.Staff.Render(strings.Repeat(fill, leftLen))
	right := theme.Staff.Render(strings.Repeat(fill, rightLen))

	side := segStyle.Render(strings.Repeat(seg, ledgerHalf))
	center := segStyle.Render(seg)
	if r.Note {
		center = theme.Notehead.Render(notehead)
	}

	return left + side + center + side + right
}
