// Interactive exercise of the whole stack: tcell events flow through the
// terminal source into a Manager; arrows or WASD steer an [X] with a
// normalized axis, with audio blips on press and release.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lodygan/framewise/audio"
	"github.com/lodygan/framewise/engine"
	"github.com/lodygan/framewise/event"
	"github.com/lodygan/framewise/input"
	"github.com/lodygan/framewise/terminal"
)

const defaultKeymap = `{
	"bindings": {
		"quit":  ["key:q", "key:escape"],
		"mute":  ["key:m"],
		"up":    ["key:w", "key:up"],
		"down":  ["key:s", "key:down"],
		"left":  ["key:a", "key:left"],
		"right": ["key:d", "key:right"],
		"fire":  ["mouse:left", "key:space"]
	}
}`

const maxLog = 12

const moveSpeed = 25.0 // cells per second

type demo struct {
	screen tcell.Screen
	sound  *audio.Feedback

	width, height int
	x, y          float64
	muted         bool
	eventLog      []string
}

func (d *demo) addLog(s string) {
	if len(d.eventLog) >= maxLog {
		copy(d.eventLog, d.eventLog[1:])
		d.eventLog = d.eventLog[:maxLog-1]
	}
	d.eventLog = append(d.eventLog, s)
}

func (d *demo) Update(m *input.Manager[string]) bool {
	raw := m.Raw()

	if raw.CloseRequested() || m.Pressed("quit") {
		return false
	}
	if size, ok := raw.Resized(); ok {
		d.width, d.height = size.Width, size.Height
		d.addLog(fmt.Sprintf("resized to %dx%d", size.Width, size.Height))
	}
	if m.Pressed("mute") {
		d.muted = !d.muted
		d.sound.SetMuted(d.muted)
	}

	for _, action := range []string{"up", "down", "left", "right", "fire"} {
		if m.Pressed(action) {
			d.sound.PressBlip()
			d.addLog("pressed  " + action)
		}
		if m.Released(action) {
			d.sound.ReleaseBlip()
			d.addLog("released " + action)
		}
	}

	v := m.Axis2Norm(
		input.AxisBind[string]{Pos: "right", Neg: "left"},
		input.AxisBind[string]{Pos: "down", Neg: "up"},
	)
	d.x += v.X * moveSpeed * m.DeltaSeconds()
	d.y += v.Y * moveSpeed * m.DeltaSeconds()
	d.x = clamp(d.x, 0, float64(d.width-3))
	d.y = clamp(d.y, 1, float64(d.height-2))

	if m.Every(5 * time.Second) {
		d.addLog(fmt.Sprintf("game time %s", raw.GameTime().Truncate(time.Second)))
	}
	return true
}

func (d *demo) Draw(m *input.Manager[string]) {
	d.screen.Clear()

	plain := tcell.StyleDefault
	dim := plain.Foreground(tcell.ColorGray)

	drawText(d.screen, 1, 0, plain.Bold(true),
		"framewise demo - WASD/arrows move, M mutes, Q quits")

	for i, entry := range d.eventLog {
		drawText(d.screen, 1, 2+i, dim, entry)
	}

	style := plain.Foreground(tcell.ColorGreen).Bold(true)
	if m.Held("fire") {
		style = plain.Foreground(tcell.ColorYellow).Bold(true)
	}
	drawText(d.screen, int(d.x), int(d.y), style, "[X]")

	mx, my := m.Raw().MousePosition()
	status := fmt.Sprintf("fps %5.1f | mouse %3.0f,%3.0f | muted %v",
		m.SmoothFrameRate, mx, my, d.muted)
	drawText(d.screen, 1, d.height-1, dim, status)

	d.screen.Show()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()

	binds, err := input.LoadBindings([]byte(defaultKeymap))
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "keymap: %v\n", err)
		os.Exit(1)
	}

	mgr := input.NewManager[string](engine.NewMonotonicTimeProvider())
	mgr.Bindings = binds

	sound := audio.NewFeedback()
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Close()

	queue := event.NewQueue()
	source := terminal.NewSource(screen, queue)
	source.Start()
	defer source.Stop()

	w, h := screen.Size()
	d := &demo{
		screen: screen,
		sound:  sound,
		width:  w,
		height: h,
		x:      float64(w / 2),
		y:      float64(h / 2),
	}

	loop := engine.NewLoop(mgr, queue, d, 16*time.Millisecond)
	loop.Run()
}
