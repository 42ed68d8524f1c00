package views

// Paginator tracks a cursor over a list shown one page at a time. The page
// always contains the cursor.
type Paginator struct {
	size   int
	cursor int
	total  int
}

// NewPaginator creates a paginator showing pageSize items per page
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Paginator{size: pageSize}
}

// SetTotal sets the list length, clamping the cursor into it
func (p *Paginator) SetTotal(total int) {
	p.total = max(total, 0)
	p.cursor = min(p.cursor, max(p.total-1, 0))
}

// Cursor returns the absolute cursor position
func (p *Paginator) Cursor() int {
	return p.cursor
}

// CursorUp moves the cursor up by one
func (p *Paginator) CursorUp() bool {
	return p.move(p.cursor - 1)
}

// CursorDown moves the cursor down by one
func (p *Paginator) CursorDown() bool {
	return p.move(p.cursor + 1)
}

// NextPage moves the cursor to the top of the next page
func (p *Paginator) NextPage() bool {
	return p.move((p.CurrentPage()) * p.size)
}

// PrevPage moves the cursor to the top of the previous page
func (p *Paginator) PrevPage() bool {
	if p.CurrentPage() == 1 {
		return false
	}
	return p.move((p.CurrentPage() - 2) * p.size)
}

func (p *Paginator) move(to int) bool {
	if to < 0 || to >= p.total {
		return false
	}
	p.cursor = to
	return true
}

// VisibleRange returns the [start, end) indices of the cursor's page
func (p *Paginator) VisibleRange() (start, end int) {
	start = (p.CurrentPage() - 1) * p.size
	return start, min(start+p.size, p.total)
}

// CurrentPage returns the 1-based page holding the cursor
func (p *Paginator) CurrentPage() int {
	return p.cursor/p.size + 1
}

// TotalPages returns the number of pages, at least 1
func (p *Paginator) TotalPages() int {
	return max((p.total+p.size-1)/p.size, 1)
}

// Reset empties the paginator
func (p *Paginator) Reset() {
	p.cursor = 0
	p.total = 0
}
