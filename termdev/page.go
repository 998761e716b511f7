package termdev

import "math"

// Page counts output lines against a page length. It implements
// linefill.PageBudget: Remaining is the number of lines left on the
// current page, including the line about to be output.
type Page struct {
	length int
	line   int
	number int
}

// NewPage creates a page model of length lines. A length <= 0 means pages
// never end.
func NewPage(length int) *Page {
	return &Page{length: length, number: 1}
}

// Remaining returns the lines left on the current page.
func (p *Page) Remaining() int {
	if p.length <= 0 {
		return math.MaxInt
	}
	return p.length - p.line
}

// Advance moves down n lines. It reports whether a new page was started.
func (p *Page) Advance(n int) bool {
	if p.length <= 0 {
		p.line += n
		return false
	}
	p.line += n
	if p.line < p.length {
		return false
	}
	p.number += p.line / p.length
	p.line %= p.length
	return true
}

// Number is the number of the current page, starting with 1.
func (p *Page) Number() int { return p.number }

// Line is the line position on the current page, starting with 0.
func (p *Page) Line() int { return p.line }
