package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/zitype/internal/typing"
)

// linesPerRow is a source line, a spelling line, and a gap.
const linesPerRow = 3

// rowsPerScroll is how many rows advance at once when scrolling.
const rowsPerScroll = 3

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	sourceStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	cursorStyle      = currentWordStyle.Underline(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// block is the rendering of one unit: the source character above its spelling.
type block struct {
	top     string
	bottom  string
	width   int
	isSpace bool
	unit    int
}

// buildBlocks projects unit classification into styled blocks.
func buildBlocks(units []typing.Unit) []block {
	out := make([]block, 0, len(units))
	for i, u := range units {
		if u.Kind == typing.PhoneticGroup {
			out = append(out, phoneticBlock(i, u))
			continue
		}
		out = append(out, literalBlock(i, u))
	}
	return out
}

func phoneticBlock(idx int, u typing.Unit) block {
	width := runewidth.RuneWidth(u.Source)
	if len(u.Cells) > width {
		width = len(u.Cells)
	}
	top := sourceStyle
	if u.Active {
		top = currentWordStyle
	}
	var b strings.Builder
	cellsWidth := 0
	for _, c := range u.Cells {
		b.WriteString(cellStyle(c, u.Active).Render(string(c.Char)))
		cellsWidth += runewidth.RuneWidth(c.Char)
	}
	b.WriteString(strings.Repeat(" ", max(0, width-cellsWidth)))
	return block{
		top:    top.Render(string(u.Source)) + strings.Repeat(" ", max(0, width-runewidth.RuneWidth(u.Source))),
		bottom: b.String(),
		width:  width,
		unit:   idx,
	}
}

func literalBlock(idx int, u typing.Unit) block {
	c := u.Cells[0]
	displayed := c.Char
	if c.Char == ' ' && c.Status == typing.Incorrect {
		displayed = '•'
	}
	width := runewidth.RuneWidth(c.Char)
	return block{
		top:     strings.Repeat(" ", width),
		bottom:  cellStyle(c, u.Active).Render(string(displayed)) + strings.Repeat(" ", max(0, width-runewidth.RuneWidth(displayed))),
		width:   width,
		isSpace: c.Char == ' ',
		unit:    idx,
	}
}

func cellStyle(c typing.Cell, unitActive bool) lipgloss.Style {
	switch c.Status {
	case typing.Correct:
		return correctStyle
	case typing.Incorrect:
		return incorrectStyle
	case typing.Active:
		return cursorStyle
	default:
		if unitActive {
			return currentWordStyle
		}
		return pendingStyle
	}
}

// wrapBlocks splits blocks into rows no wider than width, breaking after the
// last space when possible.
func wrapBlocks(blocks []block, width int) [][]block {
	if width <= 0 {
		return [][]block{blocks}
	}
	var rows [][]block
	line := make([]block, 0, len(blocks))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(blocks); {
		item := blocks[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 && lastSpaceIdx < len(line)-1 {
				rows = append(rows, line[:lastSpaceIdx+1])
				line = append([]block{}, line[lastSpaceIdx+1:]...)
			} else {
				rows = append(rows, line)
				line = []block{}
			}
			lineWidth = blocksWidth(line)
			lastSpaceIdx = lastSpaceIndex(line)
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	if len(line) > 0 {
		rows = append(rows, line)
	}
	return rows
}

func renderRows(rows [][]block) string {
	var out strings.Builder
	for i, row := range rows {
		if i > 0 {
			out.WriteString("\n\n")
		}
		var top, bottom strings.Builder
		for _, b := range row {
			top.WriteString(b.top)
			bottom.WriteString(b.bottom)
		}
		out.WriteString(top.String())
		out.WriteRune('\n')
		out.WriteString(bottom.String())
	}
	return out.String()
}

// rowOf returns the row holding unit, or -1.
func rowOf(rows [][]block, unit int) int {
	for i, row := range rows {
		for _, b := range row {
			if b.unit == unit {
				return i
			}
		}
	}
	return -1
}

// scrollOffset returns the viewport offset that keeps row visible, moving in
// sets of rowsPerScroll rows. lastRow is the row of the previous scroll, -1
// before the first one.
func scrollOffset(row, lastRow int) (offset, newLast int, changed bool) {
	if row < 0 {
		return 0, lastRow, false
	}
	targetSet := row / rowsPerScroll
	if lastRow == -1 || targetSet != lastRow/rowsPerScroll {
		return targetSet * rowsPerScroll * linesPerRow, row, true
	}
	return 0, lastRow, false
}

func blocksWidth(line []block) int {
	total := 0
	for _, b := range line {
		total += b.width
	}
	return total
}

func lastSpaceIndex(line []block) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
