package main

// Cursor position and viewport scrolling. The cursor tracks two columns: x is
// the column the user last aimed for and survives vertical moves, renderX is
// the column actually used, clamped to the current line's length.

// Direction is one of the four arrow-key movements.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Cursor holds the logical edit position and the scroll offsets that keep it
// inside the viewport.
type Cursor struct {
	x       int // Desired column, kept across vertical moves.
	renderX int // Column in use, clamped per line.
	y       int // Line index.
	xOffset int // Horizontal scroll.
	yOffset int // Vertical scroll.
	width   int // Viewport width in columns.
	height  int // Viewport height in rows.
}

func NewCursor(width, height int) *Cursor {
	return &Cursor{width: width, height: height}
}

// Move applies one arrow-key movement, bounded by the buffer. Horizontal
// moves wrap across line ends; vertical moves restore the remembered column
// as far as the target line allows.
func (c *Cursor) Move(b *Buffer, dir Direction) {
	switch dir {
	case DirUp:
		if c.y > 0 {
			c.y--
			c.renderX = min(c.x, b.LineLen(c.y))
		}
	case DirDown:
		if c.y < b.Len()-1 {
			c.y++
			c.renderX = min(c.x, b.LineLen(c.y))
		}
	case DirRight:
		c.x = c.renderX
		if c.x < b.LineLen(c.y) {
			c.x++
		} else if c.y < b.Len()-1 {
			c.y++
			c.x = 0
		}
		c.renderX = c.x
	case DirLeft:
		c.x = c.renderX
		if c.x > 0 {
			c.x--
		} else if c.y > 0 {
			c.y--
			c.x = b.LineLen(c.y)
		}
		c.renderX = c.x
	}
}

// ChangeOffset scrolls each axis by exactly the amount the cursor sits
// outside the viewport, so that after the call the viewport contains it.
func (c *Cursor) ChangeOffset() {
	if c.y < c.yOffset { // Up
		c.yOffset -= c.yOffset - c.y
	}
	if c.renderX > c.width+c.xOffset-1 { // Right
		c.xOffset += c.renderX - (c.width + c.xOffset - 1)
	}
	if c.y > c.height+c.yOffset-1 { // Down
		c.yOffset += c.y - (c.height + c.yOffset - 1)
	}
	if c.renderX < c.xOffset { // Left
		c.xOffset -= c.xOffset - c.renderX
	}
}

// Position returns the column actually in use and the line index.
func (c *Cursor) Position() (int, int) {
	return c.renderX, c.y
}

// SetPosition places the cursor, making x the new desired column.
func (c *Cursor) SetPosition(x, y int) {
	c.x = x
	c.renderX = x
	c.y = y
}

func (c *Cursor) Offset() (int, int) {
	return c.xOffset, c.yOffset
}

// ScreenPosition returns the viewport-relative coordinate; the renderer adds
// the gutter margin.
func (c *Cursor) ScreenPosition() (int, int) {
	return c.renderX - c.xOffset, c.y - c.yOffset
}

func (c *Cursor) LineIndex() int {
	return c.y
}

func (c *Cursor) Resize(width, height int) {
	c.width = width
	c.height = height
}

// Reset puts the cursor back at the document start and clears the scroll.
func (c *Cursor) Reset() {
	c.x = 0
	c.renderX = 0
	c.y = 0
	c.xOffset = 0
	c.yOffset = 0
}

// Clamp pulls the cursor back inside the buffer after the content shrank
// underneath it, e.g. on a reload from disk.
func (c *Cursor) Clamp(b *Buffer) {
	if c.y > b.Len()-1 {
		c.y = b.Len() - 1
	}
	if c.renderX > b.LineLen(c.y) {
		c.renderX = b.LineLen(c.y)
		c.x = c.renderX
	}
}
