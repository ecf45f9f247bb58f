package viz

import (
	"errors"
	"image"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/cplane/internal/config"
	"github.com/san-kum/cplane/internal/engine"
	"github.com/san-kum/cplane/internal/transform"
)

func newLive(t *testing.T, opts ...ModelOption) (Model, *Canvas) {
	t.Helper()
	canvas := NewCanvas(40, 20)
	cfg := config.GetPreset("exp")
	if cfg == nil {
		t.Fatal("missing exp preset")
	}
	ctx, err := engine.Build(cfg, canvas, transform.NewRegistry())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return NewModel(ctx, canvas, "exp", opts...), canvas
}

func TestModelTickRendersFrame(t *testing.T) {
	m, canvas := newLive(t)

	next, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick did not schedule the next tick")
	}
	m = next.(Model)
	if frames, _ := m.ctx.Stats(); frames != 1 {
		t.Fatalf("frames = %d, want 1", frames)
	}
	if len(m.times) != 1 || m.times[0] != -1 {
		t.Errorf("time history = %v, want [-1]", m.times)
	}

	lit := false
	for y := 0; y < canvas.Height() && !lit; y++ {
		for x := 0; x < canvas.Width(); x++ {
			if canvas.IsSet(x, y) {
				lit = true
				break
			}
		}
	}
	if !lit {
		t.Error("frame drew nothing")
	}
}

func TestModelSkipsWhenCanvasNotReady(t *testing.T) {
	m, canvas := newLive(t)
	canvas.SetReady(false)

	next, _ := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	frames, skipped := m.ctx.Stats()
	if frames != 0 || skipped != 1 {
		t.Errorf("frames, skipped = %d, %d; want 0, 1", frames, skipped)
	}
	if m.ctx.Driver.Time != -1 {
		t.Errorf("time advanced to %v on a skipped tick", m.ctx.Driver.Time)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newLive(t)
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("%s: no command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s did not quit", key)
		}
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd != nil {
		t.Error("other keys should be ignored")
	}
}

func TestModelRestart(t *testing.T) {
	m, _ := newLive(t)
	for i := 0; i < 3; i++ {
		next, _ := m.Update(TickMsg(time.Now()))
		m = next.(Model)
	}
	if m.ctx.Driver.Time == -1 {
		t.Fatal("time did not advance")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = next.(Model)
	if cmd != nil {
		t.Error("restart should not schedule a command")
	}
	if m.ctx.Driver.Time != -1 || m.ctx.Driver.Sign != 1 {
		t.Errorf("driver = %v, %v after restart; want -1, 1", m.ctx.Driver.Time, m.ctx.Driver.Sign)
	}
	if len(m.times) != 0 || len(m.blends) != 0 {
		t.Error("history not cleared")
	}
	if frames, _ := m.ctx.Stats(); frames != 3 {
		t.Errorf("frames = %d, want 3", frames)
	}
}

func TestModelCapture(t *testing.T) {
	var got []*image.RGBA
	m, _ := newLive(t, WithCapture(func(img *image.RGBA) error {
		got = append(got, img)
		return nil
	}))
	for i := 0; i < 3; i++ {
		next, _ := m.Update(TickMsg(time.Now()))
		m = next.(Model)
	}
	if len(got) != 3 {
		t.Fatalf("captured %d frames, want 3", len(got))
	}
	if !strings.Contains(m.View(), "RECORDING (3)") {
		t.Error("view does not show the recording status")
	}

	boom := errors.New("disk full")
	m, _ = newLive(t, WithCapture(func(*image.RGBA) error { return boom }))
	next, cmd := m.Update(TickMsg(time.Now()))
	if !errors.Is(next.(Model).Err(), boom) {
		t.Errorf("err = %v, want %v", next.(Model).Err(), boom)
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("capture error did not quit")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newLive(t, WithTheme("ocean"))
	for i := 0; i < 5; i++ {
		next, _ := m.Update(TickMsg(time.Now()))
		m = next.(Model)
	}
	v := m.View()
	for _, want := range []string{"EXP", "RUNNING", "Blend", "ocean", "time / blend"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
