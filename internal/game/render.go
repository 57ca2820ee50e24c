package game

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/neontype/internal/core"
)

// Minimum screen size for the board.
const (
	MinScreenW = 40
	MinScreenH = 14
)

// Board layout rows.
const (
	hudRow   = 0
	slotRow  = 1
	boardTop = 3
)

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	g.mu.Lock()
	s := g.snapshot()
	g.mu.Unlock()

	RenderSnapshot(dst, s)
}

// RenderSnapshot draws a snapshot into dst.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	switch s.Status {
	case StatusReady:
		renderTitle(dst)
		return
	case StatusTransitioningToGame:
		dst.DrawTextCentered(dst.Height()/2, "L O A D I N G", core.ColorElectricBlue)
		return
	case StatusStarting:
		renderHUD(dst, s)
		renderLanes(dst, s)
		dst.DrawTextCentered(dst.Height()/2, "GET READY", core.ColorBrightYellow)
		return
	}

	renderHUD(dst, s)
	renderLanes(dst, s)
	renderParticles(dst, s)
	renderWords(dst, s)
	renderPopups(dst, s)
	renderNotifications(dst, s)
	renderInput(dst, s)

	switch s.Status {
	case StatusGameOver:
		renderGameOver(dst, s)
	case StatusReturningToMenu, StatusReturningToMenuFromPlaying:
		dst.DrawTextCentered(dst.Height()/2, " Returning to menu... ", core.ColorGray)
	case StatusRestarting:
		dst.DrawTextCentered(dst.Height()/2, " Restarting... ", core.ColorGray)
	}
}

func renderTitle(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-4, "N E O N   T Y P E", core.ColorNeonPink)
	dst.DrawTextCentered(mid-3, strings.Repeat("─", 17), core.ColorElectricBlue)
	dst.DrawTextCentered(mid-1, "Type the falling words before they hit the line.", core.ColorWhite)
	dst.DrawTextCentered(mid, "Power-ups drop at random: type their word or press 1/2/3.", core.ColorGray)
	dst.DrawTextCentered(mid+2, "Press ENTER to start", core.ColorBrightCyan)
}

// dangerRow is the row of the danger line.
func dangerRow(dst *core.Screen) int {
	return dst.Height() - 2
}

// wordRow maps a board height in percent to a screen row above the danger line.
func wordRow(dst *core.Screen, y float64) int {
	rows := dangerRow(dst) - boardTop
	row := boardTop + int(y/BoardHeight*float64(rows))
	return core.Clamp(row, boardTop, dangerRow(dst)-1)
}

// column maps a board x in percent to a screen column.
func column(dst *core.Screen, x float64) int {
	return core.Clamp(int(x/100*float64(dst.Width())), 0, dst.Width()-1)
}

func renderHUD(dst *core.Screen, s Snapshot) {
	dst.DrawText(1, hudRow, fmt.Sprintf("SCORE %d", s.Score), core.ColorBrightWhite)

	lives := fmt.Sprintf("LIVES %d", s.Lives)
	if s.InitialLives <= 10 {
		lives = "LIVES " + strings.Repeat("♥", s.Lives) + strings.Repeat("♡", core.Max(0, s.InitialLives-s.Lives))
	}
	dst.DrawTextCentered(hudRow, lives, core.ColorNeonPink)

	speed := fmt.Sprintf("SPEED %.1fx", s.Speed)
	if s.Pack != "" {
		speed = s.Pack + "  " + speed
	}
	dst.DrawText(dst.Width()-utf8.RuneCountInString(speed)-1, hudRow, speed, core.ColorElectricBlue)

	x := 1
	for i, slot := range s.Slots {
		c := core.ColorDimGray
		if slot.Count > 0 {
			c = core.ColorBrightYellow
		}
		text := fmt.Sprintf("[%d] %s x%d", i+1, slot.Word, slot.Count)
		dst.DrawText(x, slotRow, text, c)
		x += utf8.RuneCountInString(text) + 2
	}

	if len(s.Effects) > 0 {
		parts := make([]string, 0, len(s.Effects))
		for _, e := range s.Effects {
			parts = append(parts, fmt.Sprintf("%s %ds %s", strings.ToUpper(e.Name), secondsLeft(e.Remaining), bar(e.Fraction, 5)))
		}
		text := strings.Join(parts, "  ")
		dst.DrawText(dst.Width()-utf8.RuneCountInString(text)-1, slotRow, text, core.ColorBrightGreen)
	}

	dst.DrawHLine(0, boardTop-1, dst.Width(), '─', core.ColorDimGray)
}

func secondsLeft(d time.Duration) int {
	return int((d + time.Second - 1) / time.Second)
}

// bar renders a fill gauge of the given width.
func bar(fraction float64, width int) string {
	filled := int(core.ClampF(fraction, 0, 1)*float64(width) + 0.5)
	return strings.Repeat("▮", filled) + strings.Repeat("▯", width-filled)
}

func renderLanes(dst *core.Screen, s Snapshot) {
	if s.Lanes > 1 {
		for lane := 1; lane < s.Lanes; lane++ {
			x := lane * dst.Width() / s.Lanes
			dst.DrawVLine(x, boardTop, dangerRow(dst)-boardTop, '│', core.ColorDimGray)
		}
	}
	dst.DrawHLine(0, dangerRow(dst), dst.Width(), '═', core.ColorBrightRed)
}

func renderParticles(dst *core.Screen, s Snapshot) {
	for _, p := range s.Particles {
		r := '·'
		if p.Size > 4 {
			r = '✦'
		}
		c := p.Color
		if p.Opacity < 0.5 {
			c = c.Dim()
		}
		dst.SetColored(column(dst, p.X), wordRow(dst, p.Y), r, c)
	}
}

func wordColor(w Word) core.Color {
	switch {
	case w.Y >= 80:
		return core.ColorBrightRed
	case w.Y >= 55:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightCyan
	}
}

func renderWords(dst *core.Screen, s Snapshot) {
	for _, w := range s.Words {
		laneWidth := 100.0 / float64(core.Max(1, s.Lanes))
		cx := column(dst, float64(w.Lane)*laneWidth+laneWidth/2)
		n := utf8.RuneCountInString(w.Text)
		x := core.Clamp(cx-n/2, 0, core.Max(0, dst.Width()-n))
		y := wordRow(dst, w.Y)

		switch {
		case w.Status == WordCompleted:
			dst.DrawText(x, y, w.Text, core.ColorGreen)
		case w.ID == s.ActiveID:
			typed := len(s.Buffer)
			if !strings.HasPrefix(w.Text, s.Buffer) {
				typed = 0
			}
			dst.DrawText(x, y, w.Text[:typed], core.ColorBrightGreen)
			dst.DrawText(x+typed, y, w.Text[typed:], core.ColorNeonPink)
		default:
			dst.DrawText(x, y, w.Text, wordColor(w))
		}
	}
}

func renderPopups(dst *core.Screen, s Snapshot) {
	for _, p := range s.Popups {
		n := utf8.RuneCountInString(p.Text)
		x := core.Clamp(column(dst, p.X)-n/2, 0, core.Max(0, dst.Width()-n))
		y := core.Max(boardTop, wordRow(dst, p.Y)-1)
		dst.DrawText(x, y, p.Text, p.Color)
	}
}

func renderNotifications(dst *core.Screen, s Snapshot) {
	for i, n := range s.Notifications {
		text := "+ " + n.Text
		dst.DrawText(dst.Width()-utf8.RuneCountInString(text)-1, boardTop+i, text, core.ColorBrightYellow)
	}
}

func renderInput(dst *core.Screen, s Snapshot) {
	y := dst.Height() - 1
	dst.DrawText(1, y, "> ", core.ColorElectricBlue)
	c := core.ColorBrightWhite
	if w, ok := s.ActiveWord(); ok && !strings.HasPrefix(w.Text, s.Buffer) {
		c = core.ColorBrightRed
	}
	dst.DrawText(3, y, s.Buffer, c)
	if s.Status == StatusPlaying {
		dst.SetColored(3+utf8.RuneCountInString(s.Buffer), y, '▏', core.ColorBrightCyan)
	}
}

func renderGameOver(dst *core.Screen, s Snapshot) {
	w, h := 34, 7
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorNeonPink)
	dst.DrawTextCentered(box.Y+2, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(box.Y+3, fmt.Sprintf("Final score: %d", s.Score), core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+4, "enter/r restart  esc menu", core.ColorGray)
}
