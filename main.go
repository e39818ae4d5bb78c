package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"

	"github.com/odvcencio/quill/notebook"
	"github.com/odvcencio/quill/web"
)

func main() {
	webAddr := flag.String("web", "", "web notebook address (e.g. :8080); replaces the terminal UI")
	title := flag.String("title", "scratch", "title of the initial pane")
	tabWidth := flag.Int("tab-width", 4, "columns per tab")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	nb := notebook.NewNotebook(notebook.WithPane(notebook.NewPane(*title)))

	if *webAddr != "" {
		if err := runWeb(ctx, nb, *webAddr); err != nil {
			fmt.Fprintf(os.Stderr, "quill: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTerminal(ctx, nb, *tabWidth); err != nil {
		fmt.Fprintf(os.Stderr, "quill: %v\n", err)
		os.Exit(1)
	}
}

func runTerminal(ctx context.Context, nb *notebook.Notebook, tabWidth int) error {
	app, err := NewApp(nb, tabWidth)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}

func runWeb(ctx context.Context, nb *notebook.Notebook, addr string) error {
	srv := web.NewServer(&notebookState{nb: nb})
	server := &http.Server{Addr: addr, Handler: srv}

	go func() {
		<-ctx.Done()
		server.Close()
	}()

	fmt.Printf("Quill web UI: http://localhost%s\n", addr)
	return server.ListenAndServe()
}

// notebookState adapts a Notebook for the web frontend. RPC handlers run
// on per-connection goroutines, so access is serialized here.
type notebookState struct {
	mu sync.Mutex
	nb *notebook.Notebook
}

var _ web.NotebookState = (*notebookState)(nil)

func (s *notebookState) cellAt(pane, cell int) (*notebook.Cell, error) {
	p := s.nb.Pane(pane)
	if p == nil {
		return nil, fmt.Errorf("no such pane: %d", pane)
	}
	c := p.Cell(cell)
	if c == nil {
		return nil, fmt.Errorf("no such cell: %d", cell)
	}
	return c, nil
}

func (s *notebookState) ListPanes() []web.PaneInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	infos := make([]web.PaneInfo, 0, s.nb.Count())
	for _, p := range s.nb.Panes() {
		infos = append(infos, web.PaneInfo{Title: p.Title(), Cells: p.Count(), Active: p.Active()})
	}
	return infos
}

func (s *notebookState) ReadCell(pane, cell int) (web.CellInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.cellAt(pane, cell)
	if err != nil {
		return web.CellInfo{}, err
	}
	info := web.CellInfo{Contents: c.Contents()}
	for _, r := range c.Results() {
		info.Results = append(info.Results, web.Result{Kind: r.Kind.String(), Text: r.Text})
	}
	return info, nil
}

func (s *notebookState) WriteCell(pane, cell int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.cellAt(pane, cell)
	if err != nil {
		return err
	}
	c.SetContents(text)
	return nil
}

func (s *notebookState) InsertText(pane, cell int, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.cellAt(pane, cell)
	if err != nil {
		return "", err
	}
	return c.Editor().Paste(text), nil
}

func (s *notebookState) NewCell(pane int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.nb.Pane(pane)
	if p == nil {
		return 0, fmt.Errorf("no such pane: %d", pane)
	}
	return p.NewCell(), nil
}

func (s *notebookState) CloseCell(pane, cell int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.nb.Pane(pane)
	if p == nil {
		return fmt.Errorf("no such pane: %d", pane)
	}
	if p.Cell(cell) == nil {
		return fmt.Errorf("no such cell: %d", cell)
	}
	p.CloseCell(cell)
	return nil
}

func (s *notebookState) NewPane(title string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nb.NewPane(title)
}

func (s *notebookState) ClosePane(pane int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nb.Pane(pane) == nil {
		return fmt.Errorf("no such pane: %d", pane)
	}
	s.nb.ClosePane(pane)
	return nil
}

func (s *notebookState) SetResults(pane, cell int, results []web.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.cellAt(pane, cell)
	if err != nil {
		return err
	}
	rs := make([]notebook.Result, 0, len(results))
	for _, r := range results {
		kind, ok := notebook.ParseResultKind(r.Kind)
		if !ok {
			return fmt.Errorf("unknown result kind: %q", r.Kind)
		}
		rs = append(rs, notebook.Result{Kind: kind, Text: r.Text})
	}
	c.SetResults(rs)
	return nil
}
