package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gameparam/preset"
)

const helpLine = "up/down param  left/right modifier  +/- value  space toggle  [/] priority  f notify  m mute  q quit"

var (
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleNormal   = tcell.StyleDefault
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleDetached = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHelp     = tcell.StyleDefault.Foreground(tcell.ColorTeal)
)

// drawText writes s from (x, y), clipped to width; returns the next column
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	width, height := screen.Size()
	if y < 0 || y >= height {
		return x
	}
	for _, r := range s {
		if x >= width {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// Draw renders the sandbox state
func (s *Sandbox) Draw(screen tcell.Screen) {
	screen.Clear()
	_, height := screen.Size()

	audioState := "audio off"
	if s.feedback != nil && !s.feedback.IsMuted() {
		audioState = "audio on"
	}
	drawText(screen, 0, 0, "param-sandbox  "+audioState, styleTitle)

	y := 2
	for i, e := range s.bundle.Entries() {
		style := styleNormal
		if i == s.selParam {
			style = styleSelected
		}
		drawText(screen, 0, y, s.paramLine(e), style)
		y++

		if i != s.selParam {
			continue
		}
		for j, m := range e.Modifiers {
			mstyle := styleNormal
			if !m.Mod.Attached() {
				mstyle = styleDetached
			}
			if j == s.selMod {
				mstyle = mstyle.Reverse(true)
			}
			drawText(screen, 4, y, modifierLine(m), mstyle)
			y++
		}
	}

	if s.message != "" {
		drawText(screen, 0, height-2, s.message, styleNormal)
	}
	drawText(screen, 0, height-1, helpLine, styleHelp)
	screen.Show()
}

func (s *Sandbox) paramLine(e *preset.Entry) string {
	line := fmt.Sprintf("%-12s raw %-10g value %-10g", e.Spec.Name, e.Param.RawValue(), e.Param.Value())
	if sample, ok := s.tracker.Sample(e.Spec.Name); ok {
		line += fmt.Sprintf(" changes %d", sample.Changes)
	}
	return line
}

func modifierLine(m *preset.Modifier) string {
	dir := "get"
	if !m.Mod.IsGet() {
		dir = "set"
	}
	state := "on"
	if !m.Mod.Attached() {
		state = "off"
	}
	return fmt.Sprintf("%-12s %s %-8s %-14s prio %-11d true %-18.6f %s",
		m.Spec.Name, dir, m.Spec.Op, operand(m.Spec), m.Mod.Priority(), m.Mod.TruePriority(), state)
}

func operand(ms preset.ModifierSpec) string {
	switch {
	case ms.Op == preset.OpClamp && ms.Min != nil && ms.Max != nil:
		return fmt.Sprintf("[%g, %g]", *ms.Min, *ms.Max)
	case ms.Value != nil:
		return fmt.Sprintf("%g", *ms.Value)
	}
	return ""
}
