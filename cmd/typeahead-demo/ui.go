package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/typeahead/internal/completion"
	"github.com/dshills/typeahead/internal/config"
	"github.com/dshills/typeahead/internal/editor"
	"github.com/dshills/typeahead/internal/engine/buffer"
	"github.com/dshills/typeahead/internal/event"
	"github.com/dshills/typeahead/internal/textinput"
)

// ui owns the tcell screen and the single event-processing loop. All
// engine and editor access happens on that loop; provider results and
// config reloads re-enter through channels. Mode and content changes
// reach the engine through the bus, not direct calls.
type ui struct {
	screen tcell.Screen
	ed     *editor.Editor
	eng    *completion.Engine
	bus    *event.Bus
	sink   *textinput.Sink
	quit   bool
}

func newUI(ed *editor.Editor, eng *completion.Engine, bus *event.Bus) (*ui, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &ui{
		screen: screen,
		ed:     ed,
		eng:    eng,
		bus:    bus,
		sink:   textinput.NewSink(ed),
	}, nil
}

// Close restores the terminal.
func (u *ui) Close() {
	u.screen.Fini()
}

// Run drives the event loop until quit.
func (u *ui) Run(reloads <-chan config.Config) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	u.draw()
	for !u.quit {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			u.handleEvent(ev)

		case a := <-u.eng.Arrivals():
			u.eng.HandleArrival(a)

		case cfg := <-reloads:
			u.eng.SetConfig(cfg.Completion)
		}
		u.draw()
	}
	return nil
}

func (u *ui) handleEvent(ev tcell.Event) {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		u.handleKey(tev)
	case *tcell.EventResize:
		u.screen.Sync()
	}
}

func (u *ui) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		u.quit = true
		return
	}

	if u.ed.Mode() == editor.ModeInsert {
		u.handleInsertKey(ev)
		return
	}
	u.handleNormalKey(ev)
}

func (u *ui) handleNormalKey(ev *tcell.EventKey) {
	if ev.Key() != tcell.KeyRune {
		return
	}
	switch ev.Rune() {
	case 'q':
		u.quit = true
	case 'i':
		u.setMode(editor.ModeInsert)
	case 'h', 'l', 'j', 'k':
		u.moveCursor(ev.Rune())
	}
}

func (u *ui) setMode(m editor.Mode) {
	prev := u.ed.SetMode(m)
	u.bus.Publish(event.ModeChanged{
		Meta:     event.NewMetadata("demo"),
		Previous: prev,
		Current:  m,
	})
}

func (u *ui) contentChanged() {
	id, ok := u.ed.Active()
	if !ok {
		return
	}
	u.bus.Publish(event.ContentChanged{
		Meta:     event.NewMetadata("demo"),
		BufferID: id,
		Revision: u.ed.Buffer(id).Revision(),
		Mode:     u.ed.Mode(),
	})
}

func (u *ui) handleInsertKey(ev *tcell.EventKey) {
	session := u.eng.Session()

	switch ev.Key() {
	case tcell.KeyEscape:
		u.setMode(editor.ModeNormal)

	case tcell.KeyTab, tcell.KeyCtrlN:
		if session.State() == completion.StatePopulated {
			u.eng.SelectNext()
			return
		}
		u.insertText("\t")

	case tcell.KeyCtrlP:
		u.eng.SelectPrev()

	case tcell.KeyEnter:
		if _, focused := session.Focused(); focused {
			// Failure just dismisses the popup; the buffer is untouched.
			_ = u.eng.Accept()
			return
		}
		u.insertText("\n")

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		u.sink.Repeat(1, textinput.KeyBackspace)
		u.contentChanged()

	case tcell.KeyRune:
		u.insertText(string(ev.Rune()))
	}
}

func (u *ui) insertText(text string) {
	u.sink.InsertString(text)
	u.contentChanged()
}

func (u *ui) moveCursor(r rune) {
	id, ok := u.ed.Active()
	if !ok {
		return
	}
	p := u.ed.PrimaryCursor(id)
	switch r {
	case 'h':
		p.Column--
	case 'l':
		p.Column++
	case 'j':
		p.Line++
	case 'k':
		p.Line--
	}
	u.ed.SetPrimaryCursor(id, p)
}

func (u *ui) draw() {
	u.screen.Clear()

	id, ok := u.ed.Active()
	if !ok {
		u.screen.Show()
		return
	}

	_, height := u.screen.Size()
	buf := u.ed.Buffer(id)
	textRows := height - 1

	style := tcell.StyleDefault
	for line := 0; line < buf.LineCount() && line < textRows; line++ {
		drawString(u.screen, 0, line, style, buf.LineText(line))
	}

	u.drawStatus(height - 1)
	u.drawPopup(u.ed.PrimaryCursor(id))

	cursor := u.ed.PrimaryCursor(id)
	u.screen.ShowCursor(cursor.Column, cursor.Line)
	u.screen.Show()
}

func (u *ui) drawStatus(row int) {
	style := tcell.StyleDefault.Reverse(true)
	status := "-- " + string(u.ed.Mode()) + " --"
	if s := u.eng.Session(); s.State() != completion.StateIdle {
		status += "  [" + s.State().String() + "]"
	}
	drawString(u.screen, 0, row, style, status)
}

// drawPopup renders the visible candidates below the cursor, the
// focused one highlighted.
func (u *ui) drawPopup(cursor buffer.Point) {
	session := u.eng.Session()
	if session.State() != completion.StatePopulated {
		return
	}
	visible := session.Visible()
	if len(visible) == 0 {
		return
	}

	const maxRows = 8
	items := session.Items()
	focused := session.FocusedIndex()

	row := cursor.Line + 1
	for n, idx := range visible {
		if n == maxRows {
			break
		}
		style := tcell.StyleDefault.Background(tcell.ColorGray)
		if idx == focused {
			style = style.Reverse(true)
		}
		label := " " + items[idx].Label + " "
		drawString(u.screen, cursor.Column, row+n, style, label)
	}
}

func drawString(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}
