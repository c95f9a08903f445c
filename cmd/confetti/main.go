// Package main provides a confetti viewer for tuning and debugging bursts
// outside the landing page.
//
// Usage:
//
//	go run ./cmd/confetti [flags]
//
// Flags:
//
//	--count <n>         Particles per burst (default 150)
//	--palette <hexes>   Comma separated palette, e.g. "#ff0000,#00ff00"
//	--verbose           Enable verbose logging
//
// Controls:
//
//	Mouse Click  - Burst at cursor position
//	Space        - Burst at screen center
//	Up/Down      - Increase/decrease particle count by 25
//	R            - Stop the running burst
//	Q/Escape     - Quit
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/webaddicted/pkg/confetti"
	"github.com/gonewx/webaddicted/pkg/systems"
)

const (
	screenWidth  = 1024
	screenHeight = 768
	countStep    = 25
)

var (
	countFlag   = flag.Int("count", confetti.DefaultCount, "Particles per burst")
	paletteFlag = flag.String("palette", "", "Comma separated hex palette (default built-in 20 colors)")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

// ViewerGame implements ebiten.Game for the confetti viewer
type ViewerGame struct {
	canvas   *systems.CanvasSurface
	frames   *confetti.FrameQueue
	animator *confetti.Animator

	width, height int
	count         int
	bursts        int
}

// NewViewerGame creates the viewer with the given burst size and palette
func NewViewerGame(count int, palette []color.RGBA) (*ViewerGame, error) {
	g := &ViewerGame{
		canvas: systems.NewCanvasSurface(),
		frames: confetti.NewFrameQueue(),
		width:  screenWidth,
		height: screenHeight,
		count:  count,
	}

	animator, err := confetti.New(g.canvas, confetti.ViewportFunc(func() (int, int) { return g.width, g.height }), g.frames,
		confetti.WithPalette(palette))
	if err != nil {
		return nil, err
	}
	g.animator = animator
	return g, nil
}

func (g *ViewerGame) burst(x, y float64) {
	if g.animator.Active() {
		return
	}
	g.bursts++
	g.animator.Start(x, y, g.count)
}

// Update handles input and advances one confetti frame
func (g *ViewerGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.burst(float64(x), float64(y))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.burst(float64(g.width)/2, float64(g.height)/2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.count += countStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && g.count > countStep {
		g.count -= countStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.animator.Stop()
	}

	g.frames.Tick()
	return nil
}

// Draw renders the canvas and a status line
func (g *ViewerGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 15, G: 23, B: 42, A: 255})
	g.canvas.Draw(screen)

	status := fmt.Sprintf("Count: %d  Bursts: %d  Live: %d  Active: %v  TPS: %.0f",
		g.count, g.bursts, len(g.animator.Particles()), g.animator.Active(), ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, status, 10, 10)
	ebitenutil.DebugPrintAt(screen, "Click/Space: burst  Up/Down: count  R: stop  Q: quit", 10, 30)
}

// Layout follows the window size so the canvas always covers the viewport
func (g *ViewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.animator.Resize()
	}
	return outsideWidth, outsideHeight
}

func parsePaletteFlag(value string) ([]color.RGBA, error) {
	if value == "" {
		return nil, nil
	}
	hexes := strings.Split(value, ",")
	for i := range hexes {
		hexes[i] = strings.TrimSpace(hexes[i])
	}
	return confetti.ParsePalette(hexes)
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	palette, err := parsePaletteFlag(*paletteFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --palette: %v\n", err)
		os.Exit(1)
	}

	viewer, err := NewViewerGame(*countFlag, palette)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create viewer: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Confetti Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
