package gui

import (
	"fmt"
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/cplane/internal/engine"
	"github.com/san-kum/cplane/internal/surface"
)

var (
	ColHUD    = rl.NewColor(180, 180, 180, 255)
	ColHUDDim = rl.NewColor(60, 60, 60, 200)
)

// App shows an engine context in a raylib window. The context must draw on
// Surface; each frame is uploaded into a texture of the same size.
type App struct {
	Ctx     *engine.Context
	Surface *surface.RGBA
	Title   string
	FPS     int
	ShowHUD bool

	tex    rl.Texture2D
	pixels []color.RGBA
}

func NewApp(ctx *engine.Context, s *surface.RGBA, title string, fps int) *App {
	return &App{
		Ctx:     ctx,
		Surface: s,
		Title:   title,
		FPS:     fps,
		ShowHUD: true,
		pixels:  make([]color.RGBA, s.Width()*s.Height()),
	}
}

func (a *App) initWindow() {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(a.Surface.Width()), int32(a.Surface.Height()), a.Title)
	rl.SetTargetFPS(int32(a.FPS))

	img := rl.NewImageFromImage(a.Surface.Image())
	a.tex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
}

// Run opens the window and renders one frame per display frame until the
// window is closed.
func (a *App) Run() {
	a.initWindow()
	defer rl.CloseWindow()
	defer rl.UnloadTexture(a.tex)

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyR) {
			a.Ctx.Restart()
		}
		if _, ok := a.Ctx.Frame(); ok {
			copyPixels(a.pixels, a.Surface.Image())
			rl.UpdateTexture(a.tex, a.pixels)
		}
		a.Draw()
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.DrawTexture(a.tex, 0, 0, rl.White)
	if a.ShowHUD {
		a.DrawHUD()
	}
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	rl.DrawRectangle(6, 6, 190, 44, ColHUDDim)
	rl.DrawText(hud(a.Ctx), 12, 12, 10, ColHUD)
	rl.DrawFPS(12, 34)
}

func hud(ctx *engine.Context) string {
	f := ctx.Last()
	frames, _ := ctx.Stats()
	return fmt.Sprintf("t %+.2f  blend %.2f  #%d", f.Time, f.Blend, frames)
}

func copyPixels(dst []color.RGBA, img *image.RGBA) {
	for i := range dst {
		o := i * 4
		if o+3 >= len(img.Pix) {
			return
		}
		dst[i] = color.RGBA{img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3]}
	}
}
