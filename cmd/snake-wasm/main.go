//go:build js && wasm

// snake-wasm is the browser host. It expects the page from the web package:
// #gameCanvas, #startButton, #scoreValue and #scoreStats.
package main

import (
	"os"
	"syscall/js"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-pwa/internal/config"
	"github.com/vovakirdan/snake-pwa/internal/core"
	"github.com/vovakirdan/snake-pwa/internal/scores"
	"github.com/vovakirdan/snake-pwa/internal/snake"
)

// canvasPadding is the container padding left around the canvas.
const canvasPadding = 40

var doc = js.Global().Get("document")

// page holds the DOM elements the host talks to.
type page struct {
	canvas js.Value
	start  js.Value
	score  js.Value
	stats  js.Value
}

func findPage() page {
	return page{
		canvas: doc.Call("getElementById", "gameCanvas"),
		start:  doc.Call("getElementById", "startButton"),
		score:  doc.Call("getElementById", "scoreValue"),
		stats:  doc.Call("getElementById", "scoreStats"),
	}
}

// canvasSide returns the canvas side for the current container width.
func (p page) canvasSide(maxSide int) int {
	width := p.canvas.Get("parentElement").Get("clientWidth").Int() - canvasPadding
	if maxSide > 0 {
		return core.Clamp(width, 1, maxSide)
	}
	return max(width, 1)
}

// renderStats replaces the stats list with one item per line.
func (p page) renderStats(history []int) {
	p.stats.Set("innerHTML", "")
	for _, line := range scores.Lines(history) {
		li := doc.Call("createElement", "li")
		li.Set("textContent", line)
		p.stats.Call("appendChild", li)
	}
}

// events are the DOM inputs forwarded to the game loop.
type events struct {
	start  chan struct{}
	keys   chan string
	swipes chan snake.Swipe
	resize chan struct{}
}

// steeringKeys are keys whose default scrolling is suppressed.
var steeringKeys = map[string]bool{
	"ArrowUp": true, "ArrowDown": true, "ArrowLeft": true, "ArrowRight": true,
}

func listen(p page) *events {
	ev := &events{
		start:  make(chan struct{}, 1),
		keys:   make(chan string, 10),
		swipes: make(chan snake.Swipe, 4),
		resize: make(chan struct{}, 1),
	}

	p.start.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
		notify(ev.start)
		return nil
	}))

	doc.Call("addEventListener", "keydown", js.FuncOf(func(this js.Value, args []js.Value) any {
		e := args[0]
		key := e.Get("key").String()
		if steeringKeys[key] {
			e.Call("preventDefault")
		}
		select {
		case ev.keys <- key:
		default:
		}
		return nil
	}))

	var startX, startY int
	touchOpts := map[string]any{"passive": false}
	p.canvas.Call("addEventListener", "touchstart", js.FuncOf(func(this js.Value, args []js.Value) any {
		e := args[0]
		e.Call("preventDefault")
		t := e.Get("touches").Index(0)
		startX, startY = t.Get("clientX").Int(), t.Get("clientY").Int()
		return nil
	}), touchOpts)
	p.canvas.Call("addEventListener", "touchmove", js.FuncOf(func(this js.Value, args []js.Value) any {
		args[0].Call("preventDefault")
		return nil
	}), touchOpts)
	p.canvas.Call("addEventListener", "touchend", js.FuncOf(func(this js.Value, args []js.Value) any {
		e := args[0]
		e.Call("preventDefault")
		t := e.Get("changedTouches").Index(0)
		sw := snake.Swipe{
			StartX: startX, StartY: startY,
			EndX: t.Get("clientX").Int(), EndY: t.Get("clientY").Int(),
		}
		select {
		case ev.swipes <- sw:
		default:
		}
		return nil
	}), touchOpts)

	js.Global().Call("addEventListener", "resize", js.FuncOf(func(this js.Value, args []js.Value) any {
		notify(ev.resize)
		return nil
	}))

	return ev
}

// notify sends on a one-slot channel without blocking.
func notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "snake-wasm"})
	cfg := config.Default()

	p := findPage()
	if p.canvas.IsNull() {
		logger.Error("page has no #gameCanvas")
		return
	}

	var kv scores.KV
	if ls, err := newLocalStorage(); err != nil {
		logger.Warn("scores will not persist", "error", err)
		kv = scores.NewMemoryKV()
	} else {
		kv = ls
	}
	history := scores.Load(kv, cfg.History.Key, cfg.History.Size, logger)
	history.OnChange(p.renderStats)
	p.renderStats(history.Scores())

	rules := cfg.Rules()
	clock := snake.NewTickerClock()
	view := newCanvasView(p.canvas, p.score, max(rules.Width, rules.Height), cfg.Render.MaxSide)
	session := snake.NewSession(rules, 0,
		snake.WithClock(clock),
		snake.WithView(view),
		snake.WithRecorder(history),
		snake.WithLogger(logger),
	)

	side := p.canvasSide(cfg.Render.MaxSide)
	session.Resize(side, side)

	ev := listen(p)
	for {
		select {
		case <-ev.start:
			session.Start()
		case key := <-ev.keys:
			session.HandleKey(key)
		case sw := <-ev.swipes:
			session.HandleSwipe(sw)
		case <-ev.resize:
			side := p.canvasSide(cfg.Render.MaxSide)
			session.Resize(side, side)
		case <-clock.C():
			session.Tick()
		}
	}
}
