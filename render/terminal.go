// Package render implements the terminal front-end: it drives the core in
// real time, maps keyboard events to joypad button state, and paints each
// completed frame as a grid of shaded block characters.
package render

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/corrinlakeland/dmgcore"
	"github.com/corrinlakeland/dmgcore/memory"
	"github.com/corrinlakeland/dmgcore/video"
)

const frameTime = time.Second / 60

// shadeChars maps a 2-bit palette index (0 = lightest) to a terminal glyph.
var shadeChars = []rune{'░', '▒', '▓', '█'}

// Terminal renders an Emulator's framebuffer to a tcell screen and feeds
// keyboard events back into its joypad.
type Terminal struct {
	screen tcell.Screen
	emu    *dmgcore.Emulator
	running bool
}

// New initializes a tcell screen bound to emu.
func New(emu *dmgcore.Emulator) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	return &Terminal{screen: screen, emu: emu, running: true}, nil
}

// Run drives the emulator at 60Hz until Ctrl-C/Esc or a signal is
// received, rendering one frame per tick.
func (t *Terminal) Run() error {
	defer t.screen.Fini()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go t.pollInput()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	for t.running {
		select {
		case <-ticker.C:
			t.runUntilFrame()
			t.draw()
			t.screen.Show()
		case <-signals:
			slog.Info("received signal, stopping terminal front-end")
			return nil
		}
	}
	return nil
}

func (t *Terminal) runUntilFrame() {
	for !t.emu.HasFrame() {
		t.emu.Step()
	}
	t.emu.ConsumeFrame()
}

func (t *Terminal) draw() {
	fb := t.emu.Framebuffer()
	for y := 0; y < video.Height; y++ {
		row := fb.Row(y)
		for x, index := range row {
			t.screen.SetContent(x, y, shadeChars[index&0x03], nil, tcell.StyleDefault)
		}
	}
}

func (t *Terminal) pollInput() {
	for t.running {
		ev := t.screen.PollEvent()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}

		switch key.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			t.running = false
			return
		case tcell.KeyEnter:
			t.emu.SetButton(memory.ButtonStart, true)
		case tcell.KeyRight:
			t.emu.SetButton(memory.ButtonRight, true)
		case tcell.KeyLeft:
			t.emu.SetButton(memory.ButtonLeft, true)
		case tcell.KeyUp:
			t.emu.SetButton(memory.ButtonUp, true)
		case tcell.KeyDown:
			t.emu.SetButton(memory.ButtonDown, true)
		case tcell.KeyRune:
			switch key.Rune() {
			case 'a':
				t.emu.SetButton(memory.ButtonA, true)
			case 's':
				t.emu.SetButton(memory.ButtonB, true)
			case 'q':
				t.emu.SetButton(memory.ButtonSelect, true)
			}
		}
	}
}
