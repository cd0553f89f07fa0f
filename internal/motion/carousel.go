package motion

// Carousel is a cyclic index over a bounded image collection
type Carousel struct {
	index int
	n     int
}

// NewCarousel creates a carousel over n images starting at 0
func NewCarousel(n int) *Carousel {
	c := &Carousel{}
	c.Bind(n)
	return c
}

// Bind attaches the carousel to a new collection and resets to the first image
func (c *Carousel) Bind(n int) {
	if n < 0 {
		n = 0
	}
	c.n = n
	c.index = 0
}

// Index returns the current image index
func (c *Carousel) Index() int { return c.index }

// Len returns the size of the bound collection
func (c *Carousel) Len() int { return c.n }

// Navigable reports whether next/prev can move
func (c *Carousel) Navigable() bool { return c.n > 1 }

// Next advances one image, wrapping to the first
func (c *Carousel) Next() {
	if !c.Navigable() {
		return
	}
	c.index = (c.index + 1) % c.n
}

// Prev steps back one image, wrapping to the last
func (c *Carousel) Prev() {
	if !c.Navigable() {
		return
	}
	c.index = (c.index - 1 + c.n) % c.n
}

// GoTo jumps to i, clamped into range
func (c *Carousel) GoTo(i int) {
	if c.n == 0 {
		c.index = 0
		return
	}
	c.index = max(0, min(i, c.n-1))
}
