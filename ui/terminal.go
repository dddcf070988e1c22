package ui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snek/game"
	"snek/game/manager"
	"snek/game/types"
	"snek/runner"
)

// Each board cell is two terminal columns wide so the board looks square.
const cellWidth = 2

var (
	styleDefault = tcell.StyleDefault
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBody    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHead    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleCrash   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleFood    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

var headGlyphs = map[types.Direction]rune{
	types.NONE:  '■',
	types.UP:    '▲',
	types.RIGHT: '▶',
	types.DOWN:  '▼',
	types.LEFT:  '◀',
}

// TerminalRenderer draws frames with tcell. q, Esc or Ctrl-C quits.
type TerminalRenderer struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
}

// NewTerminalRenderer takes over screen, or the controlling terminal when
// screen is nil.
func NewTerminalRenderer(screen tcell.Screen) (*TerminalRenderer, error) {
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, fmt.Errorf("create terminal screen: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	t := &TerminalRenderer{
		screen: screen,
		events: make(chan tcell.Event, 32),
		done:   make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

// pump forwards screen events until the screen is finalized.
func (t *TerminalRenderer) pump() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *TerminalRenderer) Draw(snap game.Snapshot, stats manager.Summary) error {
	t.screen.Clear()

	size := types.GridSize * cellWidth
	drawBox(t.screen, 0, 0, size+1, types.GridSize+1)

	bodyStyle := styleBody
	if snap.Outcome == types.Crashed {
		bodyStyle = styleCrash
	}
	head := snap.Head()
	for _, c := range snap.Body {
		if c == head {
			continue
		}
		t.setCell(c, '█', bodyStyle)
	}
	if head != types.NoCell {
		hs := styleHead
		if snap.Outcome == types.Crashed {
			hs = styleCrash
		}
		t.setCell(head, headGlyphs[snap.Heading()], hs)
	}
	if snap.Food != types.NoCell {
		t.setCell(snap.Food, '●', styleFood)
	}

	row := types.GridSize + 3
	drawText(t.screen, 0, row, styleStatus, fmt.Sprintf("score %d  moves %d", snap.Score, snap.Moves))
	drawText(t.screen, 0, row+1, styleStatus, fmt.Sprintf("games %d  completed %d  crashed %d  best %d  avg %.1f",
		stats.GamesPlayed, stats.Completed, stats.Crashed, stats.HighScore, stats.AverageScore))
	switch snap.Outcome {
	case types.Completed:
		drawText(t.screen, 0, row+2, styleBody, "board complete")
	case types.Crashed:
		drawText(t.screen, 0, row+2, styleCrash, "crashed")
	}
	drawText(t.screen, 0, row+4, styleBorder, "q to quit")

	t.screen.Show()
	return nil
}

// Events returns runner.ErrQuit on q, Esc or Ctrl-C and nil when ctx is done.
func (t *TerminalRenderer) Events(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-t.events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					return runner.ErrQuit
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		}
	}
}

func (t *TerminalRenderer) Close() error {
	close(t.done)
	t.screen.Fini()
	return nil
}

// setCell paints the two columns of a board cell. Blocks fill both columns;
// other glyphs take the first and leave the second blank.
func (t *TerminalRenderer) setCell(c types.Cell, r rune, style tcell.Style) {
	x := 1 + c.Col()*cellWidth
	y := 1 + c.Row()
	t.screen.SetContent(x, y, r, nil, style)
	if r == '█' {
		t.screen.SetContent(x+1, y, r, nil, style)
	} else {
		t.screen.SetContent(x+1, y, ' ', nil, styleDefault)
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func drawBox(s tcell.Screen, x1, y1, x2, y2 int) {
	for x := x1 + 1; x < x2; x++ {
		s.SetContent(x, y1, tcell.RuneHLine, nil, styleBorder)
		s.SetContent(x, y2, tcell.RuneHLine, nil, styleBorder)
	}
	for y := y1 + 1; y < y2; y++ {
		s.SetContent(x1, y, tcell.RuneVLine, nil, styleBorder)
		s.SetContent(x2, y, tcell.RuneVLine, nil, styleBorder)
	}
	s.SetContent(x1, y1, tcell.RuneULCorner, nil, styleBorder)
	s.SetContent(x2, y1, tcell.RuneURCorner, nil, styleBorder)
	s.SetContent(x1, y2, tcell.RuneLLCorner, nil, styleBorder)
	s.SetContent(x2, y2, tcell.RuneLRCorner, nil, styleBorder)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
