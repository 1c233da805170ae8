package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ComposePopup draws popup on top of base at the given anchor row and
// column, clamping the box into the viewport. The base is normalized to
// width x height first so the splice never tears styled lines.
func ComposePopup(base, popup string, width, height, top, left int) string {
	if popup == "" || width <= 0 || height <= 0 {
		return base
	}

	popupLines := strings.Split(popup, "\n")
	for len(popupLines) > 0 && popupLines[len(popupLines)-1] == "" {
		popupLines = popupLines[:len(popupLines)-1]
	}
	boxH := len(popupLines)
	boxW := 0
	for _, line := range popupLines {
		if w := lipgloss.Width(line); w > boxW {
			boxW = w
		}
	}
	if boxW == 0 || boxH == 0 {
		return base
	}
	if boxW > width {
		boxW = width
	}
	if boxH > height {
		popupLines = popupLines[:height]
		boxH = height
	}

	if left+boxW > width {
		left = width - boxW
	}
	if top+boxH > height {
		top = height - boxH
	}
	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}

	baseLines := normalizeLines(base, width, height)

	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < top || row >= top+boxH {
			lines = append(lines, baseLines[row])
			continue
		}

		popupLine := popupLines[row-top]
		lineWidth := lipgloss.Width(popupLine)
		if lineWidth > boxW {
			popupLine = ansi.Cut(popupLine, 0, boxW)
			lineWidth = boxW
		}
		if lineWidth < boxW {
			popupLine += strings.Repeat(" ", boxW-lineWidth)
		}

		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+boxW, width)
		lines = append(lines, leftSlice+popupLine+rightSlice)
	}

	return strings.Join(lines, "\n")
}

// normalizeLines pads or trims base content to exactly width x height.
func normalizeLines(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}

	return lines
}
