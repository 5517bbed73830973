// Package layout holds the page arithmetic shared by the PDF renderers: a vertical
// cursor with page-break decisions, greedy word wrap and font metrics.
package layout

// BreakFunc flushes the current page, starts a new one, reprints the running header and
// returns the Y at which content resumes.
type BreakFunc func() float64

// Cursor tracks the vertical write position on a fixed-size page whose Y grows downwards.
type Cursor struct {
	y       float64
	top     float64
	bottom  float64
	onBreak BreakFunc
	pages   int
}

// NewCursor starts at top on page 1. bottom is the lowest Y content may reach.
// A nil onBreak makes the cursor single-page: Reserve never breaks.
func NewCursor(top, bottom float64, onBreak BreakFunc) *Cursor {
	return &Cursor{y: top, top: top, bottom: bottom, onBreak: onBreak, pages: 1}
}

// Y is the current write position.
func (c *Cursor) Y() float64 { return c.y }

// Pages is the number of pages started so far.
func (c *Cursor) Pages() int { return c.pages }

// Remaining is the space left above the bottom margin.
func (c *Cursor) Remaining() float64 { return c.bottom - c.y }

// Reserve makes room for a block of the given height and returns the Y where it starts.
// When the block does not fit, the page is broken first. A block taller than a whole
// page is placed at the top of a fresh page and allowed to overflow rather than
// breaking forever.
func (c *Cursor) Reserve(height float64) float64 {
	if c.y+height > c.bottom && c.onBreak != nil && c.y > c.top {
		c.y = c.onBreak()
		c.pages++
	}
	return c.y
}

// Advance moves the cursor down by h.
func (c *Cursor) Advance(h float64) {
	c.y += h
}

// Fits reports whether a block of height fits on the current page without a break.
func (c *Cursor) Fits(height float64) bool {
	return c.y+height <= c.bottom
}
