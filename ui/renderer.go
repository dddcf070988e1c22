package ui

import (
	"context"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snek/game"
	"snek/game/manager"
	"snek/game/types"
	"snek/runner"
)

const borderPadding = 10 // Padding around game area

// boardLayout maps board cells to window pixels. The stroke is 6/11 of a cell,
// which leaves a visible gap between neighboring body segments.
type boardLayout struct {
	cellSize  int32
	thickness int32
	offsetX   int32
	offsetY   int32
}

func newBoardLayout(width, height int32) boardLayout {
	available := min(width, height) - borderPadding*2
	cell := available / types.GridSize
	if cell < 1 {
		cell = 1
	}
	board := cell * types.GridSize
	return boardLayout{
		cellSize:  cell,
		thickness: max(cell*6/11, 1),
		offsetX:   borderPadding,
		offsetY:   (height - board) / 2,
	}
}

// center returns the pixel center of a cell.
func (l boardLayout) center(c types.Cell) (int32, int32) {
	x := l.offsetX + int32(c.Col())*l.cellSize + l.cellSize/2
	y := l.offsetY + int32(c.Row())*l.cellSize + l.cellSize/2
	return x, y
}

func (l boardLayout) size() int32 { return l.cellSize * types.GridSize }

// WindowRenderer draws frames into a raylib window. All of its methods must be
// called from the goroutine that created it, which must be locked to the main
// OS thread.
type WindowRenderer struct {
	screenWidth  int32
	screenHeight int32
	statsPanel   int32
	layout       boardLayout
}

func NewWindowRenderer(width, height int) *WindowRenderer {
	rl.InitWindow(int32(width), int32(height), "Snek - Hamiltonian autopilot")
	rl.SetWindowState(rl.FlagWindowResizable)
	r := &WindowRenderer{}
	r.UpdateDimensions()
	return r
}

func (r *WindowRenderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Stats panel takes whatever the square board leaves on the right.
	r.layout = newBoardLayout(r.screenWidth, r.screenHeight)
	r.statsPanel = r.screenWidth - r.layout.size() - borderPadding*2
}

// Draw renders one frame; it returns runner.ErrQuit once the window is closed.
func (r *WindowRenderer) Draw(snap game.Snapshot, stats manager.Summary) error {
	if rl.WindowShouldClose() {
		return runner.ErrQuit
	}
	r.UpdateDimensions()

	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	l := r.layout
	fontSize := max(r.screenHeight/45, 10)
	lineHeight := fontSize + fontSize/3

	rl.DrawRectangleLines(l.offsetX-1, l.offsetY-1, l.size()+2, l.size()+2, rl.DarkGray)

	r.drawSnake(snap)

	if snap.Food != types.NoCell {
		x, y := l.center(snap.Food)
		rl.DrawRectangle(x-l.thickness/2, y-l.thickness/2, l.thickness, l.thickness, rl.Red)
	}

	if snap.Outcome != types.Playing {
		text := "Board complete!"
		color := rl.Green
		if snap.Outcome == types.Crashed {
			text = "Crashed! (Restarting...)"
			color = rl.Red
		}
		textWidth := rl.MeasureText(text, fontSize)
		rl.DrawText(text, l.offsetX+(l.size()-textWidth)/2, l.offsetY+l.size()/2, fontSize, color)
	}

	if r.statsPanel > 0 {
		r.drawStatsPanel(snap, stats, fontSize, lineHeight)
	}
	return nil
}

func (r *WindowRenderer) drawSnake(snap game.Snapshot) {
	l := r.layout
	half := l.thickness / 2

	// Joints and the single-cell case are filled squares; segments are thick lines.
	for i, c := range snap.Body {
		x, y := l.center(c)
		rl.DrawRectangle(x-half, y-half, l.thickness, l.thickness, rl.White)
		if i == 0 {
			continue
		}
		px, py := l.center(snap.Body[i-1])
		rl.DrawLineEx(
			rl.Vector2{X: float32(px), Y: float32(py)},
			rl.Vector2{X: float32(x), Y: float32(y)},
			float32(l.thickness), rl.White)
	}

	// Direction indicator on the head
	head := snap.Head()
	if head == types.NoCell {
		return
	}
	hx, hy := l.center(head)
	dx, dy := snap.Heading().ToPoint()
	if dx == 0 && dy == 0 {
		return
	}
	tip := rl.Vector2{X: float32(hx + int32(dx)*half), Y: float32(hy + int32(dy)*half)}
	// Base corners are the heading rotated a quarter turn each way, listed so
	// the winding is counter-clockwise on screen whatever the heading.
	a := rl.Vector2{X: float32(hx + int32(dy)*half), Y: float32(hy - int32(dx)*half)}
	b := rl.Vector2{X: float32(hx - int32(dy)*half), Y: float32(hy + int32(dx)*half)}
	rl.DrawTriangle(tip, a, b, rl.Yellow)
}

func (r *WindowRenderer) drawStatsPanel(snap game.Snapshot, stats manager.Summary, fontSize, lineHeight int32) {
	statsX := r.screenWidth - r.statsPanel
	statsY := int32(borderPadding)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	lines := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Moves: %d", snap.Moves),
		"",
		fmt.Sprintf("Games: %d", stats.GamesPlayed),
		fmt.Sprintf("Completed: %d", stats.Completed),
		fmt.Sprintf("Crashed: %d", stats.Crashed),
		fmt.Sprintf("High: %d", stats.HighScore),
		fmt.Sprintf("Avg: %.2f", stats.AverageScore),
		fmt.Sprintf("Avg moves: %.0f", stats.AverageMoves),
	}
	for _, line := range lines {
		if line != "" {
			rl.DrawText(line, statsX+5, statsY, fontSize, rl.White)
		}
		statsY += lineHeight
	}

	r.drawPerformanceGraph(stats.ScoreHistory, statsX, fontSize)
}

func (r *WindowRenderer) drawPerformanceGraph(scores []int, graphX, fontSize int32) {
	graphWidth := r.statsPanel - 20
	graphHeight := r.screenHeight / 5
	graphY := r.screenHeight - graphHeight - fontSize*2
	if graphWidth <= 0 || graphHeight <= 0 {
		return
	}

	rl.DrawRectangleLines(graphX, graphY, graphWidth, graphHeight, rl.White)
	rl.DrawText("Scores", graphX, graphY-fontSize-5, fontSize, rl.White)

	for j := 1; j < len(scores); j++ {
		x1 := graphX + int32(float32(graphWidth)*float32(j-1)/float32(manager.MaxHistory))
		y1 := graphY + graphHeight - int32(float32(graphHeight)*float32(scores[j-1])/float32(types.NumCells))
		x2 := graphX + int32(float32(graphWidth)*float32(j)/float32(manager.MaxHistory))
		y2 := graphY + graphHeight - int32(float32(graphHeight)*float32(scores[j])/float32(types.NumCells))
		rl.DrawLine(x1, y1, x2, y2, rl.Green)
	}
}

// Events has nothing to pump: raylib input is polled in Draw.
func (r *WindowRenderer) Events(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func (r *WindowRenderer) Close() error {
	rl.CloseWindow()
	return nil
}
