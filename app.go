package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/quill/cellmetrics"
	"github.com/odvcencio/quill/editor"
	"github.com/odvcencio/quill/notebook"
)

const doubleClickWindow = 500 * time.Millisecond

// App is the terminal host. It shows the active cell of the active pane
// full screen with that cell's results below, and routes keys and mouse
// events to the cell's editor.
type App struct {
	screen   tcell.Screen
	nb       *notebook.Notebook
	mapper   *editor.Mapper
	tabWidth int

	scroll editor.Point
	clip   string
	status string
	quit   bool

	lastClick  time.Time
	lastClickX int
	lastClickY int
	clickCount int
	dragFrom   int
	dragging   bool
}

// NewApp initializes the terminal screen for the given notebook.
func NewApp(nb *notebook.Notebook, tabWidth int) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	if tabWidth <= 0 {
		tabWidth = editor.DefaultTabWidth
	}
	return &App{
		screen:   screen,
		nb:       nb,
		mapper:   &editor.Mapper{Metrics: cellmetrics.Provider{}, TabWidth: tabWidth},
		tabWidth: tabWidth,
	}, nil
}

// Run drives the event loop until the user quits or ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	defer a.screen.Fini()

	go func() {
		<-ctx.Done()
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	a.jumpToActive()
	for !a.quit {
		a.draw()
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			return ctx.Err()
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			a.handleKey(ev)
		case *tcell.EventMouse:
			a.handleMouse(ev)
		}
	}
	return nil
}

func (a *App) draw() {
	a.screen.Clear()
	w, h := a.screen.Size()

	pane := a.nb.ActivePane()
	if pane == nil {
		a.screen.HideCursor()
		a.drawStatus(w, h, "no panes | Ctrl+T new pane | Ctrl+Q quit")
		a.screen.Show()
		return
	}
	a.drawHeader(w, pane)

	cell := pane.ActiveCell()
	if cell == nil {
		a.screen.HideCursor()
		a.drawStatus(w, h, "no cells | Ctrl+N new cell | Ctrl+Q quit")
		a.screen.Show()
		return
	}

	strip := a.resultStrip(cell, h)
	th := a.textHeight(h, len(strip))
	a.drawCell(cell, 1, w, th)
	for i, row := range strip {
		a.drawText(0, 1+th+i, row.text, resultStyle(row.kind))
	}

	buf := cell.Buffer()
	end := cell.Cursor().End(buf)
	line := buf.ByteToLine(end)
	col := int(a.mapper.OffsetXOfIndex(buf, end))
	info := fmt.Sprintf(" cell %d/%d | ln %d, col %d", pane.Active()+1, pane.Count(), line+1, col+1)
	if a.status != "" {
		info += " | " + a.status
	}
	a.drawStatus(w, h, info)

	p := a.mapper.OffsetOfIndex(buf, end)
	curRow := int(p.Y - a.scroll.Y)
	curCol := int(p.X - a.scroll.X)
	if curRow >= 0 && curRow < th && curCol >= 0 && curCol < w {
		a.screen.ShowCursor(curCol, 1+curRow)
	} else {
		a.screen.HideCursor()
	}
	a.screen.Show()
}

// drawCell renders the visible window of the cell's buffer starting at
// screen row top.
func (a *App) drawCell(cell *notebook.Cell, top, width, height int) {
	buf := cell.Buffer()
	selLo, selHi, hasSel := cell.Cursor().Selection(buf)
	selStyle := tcell.StyleDefault.Reverse(true)

	firstLine := int(a.scroll.Y)
	for row := 0; row < height; row++ {
		line := firstLine + row
		if line >= buf.LineCount() {
			break
		}
		text := buf.Line(line)
		if t, ok := strings.CutSuffix(text, "\n"); ok {
			text = strings.TrimSuffix(t, "\r")
		}

		at := buf.LineToByte(line)
		col := -int(a.scroll.X)
		for _, cl := range cellmetrics.Clusters(text) {
			style := tcell.StyleDefault
			if hasSel && at >= selLo && at < selHi {
				style = selStyle
			}
			wd := cl.Width
			if cl.Text == "\t" {
				wd = a.tabWidth
			}
			if col+wd > width {
				break
			}
			if col >= 0 && wd > 0 {
				if cl.Text == "\t" {
					for i := 0; i < wd; i++ {
						a.screen.SetContent(col+i, top+row, ' ', nil, style)
					}
				} else {
					runes := []rune(cl.Text)
					a.screen.SetContent(col, top+row, runes[0], runes[1:], style)
				}
			}
			at += len(cl.Text)
			col += wd
		}
	}
}

func (a *App) drawHeader(w int, pane *notebook.Pane) {
	barStyle := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		a.screen.SetContent(x, 0, ' ', nil, barStyle)
	}
	col := 0
	for i, p := range a.nb.Panes() {
		style := barStyle
		if i == a.nb.Active() {
			style = tcell.StyleDefault.Bold(true)
		}
		col = a.drawText(col, 0, fmt.Sprintf(" %s ", p.Title()), style)
	}
}

func (a *App) drawStatus(w, h int, text string) {
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		a.screen.SetContent(x, h-1, ' ', nil, style)
	}
	a.drawText(0, h-1, text, style)
}

// drawText renders text at (x, y) and returns the column after it.
func (a *App) drawText(x, y int, text string, style tcell.Style) int {
	for _, cl := range cellmetrics.Clusters(text) {
		runes := []rune(cl.Text)
		if len(runes) > 0 && cl.Width > 0 {
			a.screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += cl.Width
	}
	return x
}

type resultRow struct {
	kind notebook.ResultKind
	text string
}

// resultStrip flattens the cell's results into screen rows, capped at a
// third of the screen. When over the cap the newest rows win.
func (a *App) resultStrip(cell *notebook.Cell, h int) []resultRow {
	var rows []resultRow
	for _, r := range cell.Results() {
		for _, line := range strings.Split(r.Text, "\n") {
			rows = append(rows, resultRow{kind: r.Kind, text: line})
		}
	}
	max := h / 3
	if len(rows) > max {
		rows = rows[len(rows)-max:]
	}
	return rows
}

func (a *App) textHeight(h, resultRows int) int {
	th := h - 2 - resultRows
	if th < 1 {
		th = 1
	}
	return th
}

func resultStyle(kind notebook.ResultKind) tcell.Style {
	switch kind {
	case notebook.ResultError:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case notebook.ResultWarning:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
}

// follow scrolls so the cursor stays visible in the text area.
func (a *App) follow(cell *notebook.Cell) {
	w, h := a.screen.Size()
	strip := a.resultStrip(cell, h)
	th := a.textHeight(h, len(strip))
	buf := cell.Buffer()
	a.scroll = a.mapper.FollowCursor(buf, cell.Cursor().End(buf), a.scroll, float64(w-1), float64(th))
}

// jumpToActive resets the viewport for a newly activated cell.
func (a *App) jumpToActive() {
	a.scroll = editor.Point{}
	if pane := a.nb.ActivePane(); pane != nil {
		if cell := pane.ActiveCell(); cell != nil {
			a.follow(cell)
		}
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	a.status = ""

	switch ev.Key() {
	case tcell.KeyCtrlQ:
		a.quit = true
		return
	case tcell.KeyCtrlT:
		a.nb.NewPane(fmt.Sprintf("pane %d", a.nb.Count()+1))
		a.jumpToActive()
		return
	case tcell.KeyCtrlB:
		if a.nb.Count() > 1 {
			a.nb.SetActive((a.nb.Active() + 1) % a.nb.Count())
			a.jumpToActive()
		}
		return
	}

	pane := a.nb.ActivePane()
	if pane == nil {
		return
	}
	switch ev.Key() {
	case tcell.KeyCtrlN:
		pane.NewCell()
		a.jumpToActive()
		return
	case tcell.KeyCtrlW:
		pane.CloseCell(pane.Active())
		a.jumpToActive()
		return
	case tcell.KeyPgUp:
		pane.SetActive(pane.Active() - 1)
		a.jumpToActive()
		return
	case tcell.KeyPgDn:
		pane.SetActive(pane.Active() + 1)
		a.jumpToActive()
		return
	}

	cell := pane.ActiveCell()
	if cell == nil {
		return
	}
	buf, cur, ed := cell.Buffer(), cell.Cursor(), cell.Editor()
	shift := ev.Modifiers()&tcell.ModShift != 0
	byWord := ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0

	switch ev.Key() {
	case tcell.KeyLeft:
		switch {
		case shift && byWord:
			cur.SelectLeftByWords(buf)
		case shift:
			cur.SelectLeft(buf)
		case byWord:
			cur.MoveLeftByWords(buf)
		default:
			cur.MoveLeft(buf)
		}
	case tcell.KeyRight:
		switch {
		case shift && byWord:
			cur.SelectRightByWords(buf)
		case shift:
			cur.SelectRight(buf)
		case byWord:
			cur.MoveRightByWords(buf)
		default:
			cur.MoveRight(buf)
		}
	case tcell.KeyUp:
		if shift {
			cur.SelectUp(buf, a.mapper)
		} else {
			cur.MoveUp(buf, a.mapper)
		}
	case tcell.KeyDown:
		if shift {
			cur.SelectDown(buf, a.mapper)
		} else {
			cur.MoveDown(buf, a.mapper)
		}
	case tcell.KeyHome:
		if shift {
			cur.SelectLeftByLine(buf)
		} else {
			cur.MoveLeftByLine(buf)
		}
	case tcell.KeyEnd:
		if shift {
			cur.SelectRightByLine(buf)
		} else {
			cur.MoveRightByLine(buf)
		}
	case tcell.KeyCtrlA:
		cur.SelectAll(buf)
	case tcell.KeyCtrlZ:
		if !cell.Undo() {
			a.status = "nothing to undo"
		}
	case tcell.KeyCtrlY:
		if !cell.Redo() {
			a.status = "nothing to redo"
		}
	case tcell.KeyCtrlC:
		if text, ok := ed.SelectedText(); ok {
			a.clip = text
			a.status = "copied"
		}
	case tcell.KeyCtrlX:
		if text, ok := ed.SelectedText(); ok {
			a.clip = text
			ed.Backspace()
			a.status = "cut"
		}
	case tcell.KeyCtrlV:
		if a.clip != "" {
			ed.Paste(a.clip)
		}
	case tcell.KeyEnter:
		ed.Insert('\n')
	case tcell.KeyTab:
		ed.Insert('\t')
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ed.Backspace()
	case tcell.KeyDelete:
		ed.Delete()
	case tcell.KeyEscape:
		cur.MoveTo(buf, cur.End(buf))
	case tcell.KeyRune:
		ed.Insert(ev.Rune())
	default:
		return
	}
	a.follow(cell)
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	pane := a.nb.ActivePane()
	if pane == nil {
		return
	}
	cell := pane.ActiveCell()
	if cell == nil {
		return
	}
	buf, cur := cell.Buffer(), cell.Cursor()

	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		a.scroll.Y -= 3 * a.mapper.LineHeight()
		if a.scroll.Y < 0 {
			a.scroll.Y = 0
		}
	case ev.Buttons()&tcell.WheelDown != 0:
		maxY := float64(buf.LineCount()-1) * a.mapper.LineHeight()
		a.scroll.Y += 3 * a.mapper.LineHeight()
		if a.scroll.Y > maxY {
			a.scroll.Y = maxY
		}
	case ev.Buttons()&tcell.Button1 != 0:
		x, y := ev.Position()
		p := editor.Point{
			X: float64(x) + a.scroll.X,
			Y: float64(y-1) + a.scroll.Y,
		}
		i, ok := a.mapper.IndexAtPoint(buf, p)
		if !ok {
			return
		}
		if !a.dragging {
			now := time.Now()
			if now.Sub(a.lastClick) < doubleClickWindow && x == a.lastClickX && y == a.lastClickY {
				a.clickCount++
			} else {
				a.clickCount = 1
			}
			a.lastClick, a.lastClickX, a.lastClickY = now, x, y
			a.dragging = true
			a.dragFrom = i
			switch a.clickCount {
			case 2:
				cur.SelectWordAt(buf, i)
			case 3:
				cur.SelectAll(buf)
			default:
				cur.MoveTo(buf, i)
			}
		} else if i != a.dragFrom {
			cur.SelectRange(buf, a.dragFrom, i)
		}
		a.follow(cell)
	default:
		a.dragging = false
	}
}
