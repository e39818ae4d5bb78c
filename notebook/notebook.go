package notebook

// Pane is an ordered list of cells with one active, like a page of the
// notebook.
type Pane struct {
	title  string
	cells  []*Cell
	active int // index of the active cell, or -1 if none
}

// NewPane creates a pane holding a single empty active cell.
func NewPane(title string) *Pane {
	return &Pane{
		title:  title,
		cells:  []*Cell{NewCell("")},
		active: 0,
	}
}

// Title returns the pane's display title.
func (p *Pane) Title() string { return p.title }

// SetTitle renames the pane.
func (p *Pane) SetTitle(title string) { p.title = title }

// Count returns the number of cells.
func (p *Pane) Count() int {
	return len(p.cells)
}

// Active returns the index of the active cell, or -1 if the pane has no
// cells.
func (p *Pane) Active() int {
	return p.active
}

// ActiveCell returns the active cell, or nil if the pane has no cells.
func (p *Pane) ActiveCell() *Cell {
	if p.active < 0 || p.active >= len(p.cells) {
		return nil
	}
	return p.cells[p.active]
}

// Cell returns the cell at index, or nil if index is out of range.
func (p *Pane) Cell(index int) *Cell {
	if index < 0 || index >= len(p.cells) {
		return nil
	}
	return p.cells[index]
}

// Cells returns all cells in order.
func (p *Pane) Cells() []*Cell {
	return p.cells
}

// NewCell appends an empty cell, makes it active, and returns its index.
func (p *Pane) NewCell() int {
	p.cells = append(p.cells, NewCell(""))
	p.active = len(p.cells) - 1
	return p.active
}

// SetActive switches the active cell. Out-of-range indices are a no-op.
func (p *Pane) SetActive(index int) {
	if index < 0 || index >= len(p.cells) {
		return
	}
	p.active = index
}

// CloseCell removes the cell at index. Out-of-range indices are a no-op.
// After removal the active index is adjusted:
//   - If the closed cell was before the active one, active shifts down
//     by one.
//   - If the closed cell was the active one, active is clamped to the
//     last valid index.
//   - If no cells remain, active becomes -1.
func (p *Pane) CloseCell(index int) {
	if index < 0 || index >= len(p.cells) {
		return
	}

	p.cells = append(p.cells[:index], p.cells[index+1:]...)

	if len(p.cells) == 0 {
		p.active = -1
		return
	}

	if index < p.active {
		p.active--
	} else if index == p.active {
		if p.active >= len(p.cells) {
			p.active = len(p.cells) - 1
		}
	}
}

// Notebook tracks the open panes and which one is active. Like the
// cells, it is pure data management.
type Notebook struct {
	panes  []*Pane
	active int // index of the active pane, or -1 if none
}

// Option configures a Notebook at construction.
type Option func(*Notebook)

// WithPane appends a pane during construction and makes it active.
func WithPane(p *Pane) Option {
	return func(n *Notebook) {
		n.panes = append(n.panes, p)
		n.active = len(n.panes) - 1
	}
}

// NewNotebook creates a notebook with the given options. Without
// options it holds no panes.
func NewNotebook(opts ...Option) *Notebook {
	n := &Notebook{active: -1}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Count returns the number of open panes.
func (n *Notebook) Count() int {
	return len(n.panes)
}

// Active returns the index of the active pane, or -1 if there are none.
func (n *Notebook) Active() int {
	return n.active
}

// ActivePane returns the active pane, or nil if there are no panes.
func (n *Notebook) ActivePane() *Pane {
	if n.active < 0 || n.active >= len(n.panes) {
		return nil
	}
	return n.panes[n.active]
}

// Pane returns the pane at index, or nil if index is out of range.
func (n *Notebook) Pane(index int) *Pane {
	if index < 0 || index >= len(n.panes) {
		return nil
	}
	return n.panes[index]
}

// Panes returns all open panes in order.
func (n *Notebook) Panes() []*Pane {
	return n.panes
}

// NewPane appends a pane with the given title holding one empty cell,
// makes it active, and returns its index.
func (n *Notebook) NewPane(title string) int {
	n.panes = append(n.panes, NewPane(title))
	n.active = len(n.panes) - 1
	return n.active
}

// SetActive switches the active pane. Out-of-range indices are a no-op.
func (n *Notebook) SetActive(index int) {
	if index < 0 || index >= len(n.panes) {
		return
	}
	n.active = index
}

// ClosePane removes the pane at index with the same active-index
// adjustment as CloseCell. Out-of-range indices are a no-op.
func (n *Notebook) ClosePane(index int) {
	if index < 0 || index >= len(n.panes) {
		return
	}

	n.panes = append(n.panes[:index], n.panes[index+1:]...)

	if len(n.panes) == 0 {
		n.active = -1
		return
	}

	if index < n.active {
		n.active--
	} else if index == n.active {
		if n.active >= len(n.panes) {
			n.active = len(n.panes) - 1
		}
	}
}
