package book

import (
	"bytes"
	"fmt"
	"html"
	"strings"
)

// US letter in points.
const (
	pageWidth  = 612.0
	pageHeight = 792.0
)

const introFontFamily = `'Helvetica Neue', Helvetica, Arial, sans-serif`

// IntroPages renders the book's front matter as one SVG page each: a blank
// flyleaf, the title page, a how-to-solve page, and an about page built from
// the book description. Pages precede the first puzzle in the assembled book.
func IntroPages(b *Book) [][]byte {
	return [][]byte{
		blankPage(),
		titlePage(b),
		instructionsPage(),
		aboutPage(b),
	}
}

// SolutionIntroPage renders the divider page before the solution grids.
func SolutionIntroPage() []byte {
	p := newIntroPage()
	p.centered(pageHeight*0.5, 36, "bold", "SOLUTIONS")
	return p.close()
}

func blankPage() []byte {
	return newIntroPage().close()
}

func titlePage(b *Book) []byte {
	p := newIntroPage()
	title := strings.ToUpper(b.Title)

	p.centered(pageHeight*0.25, 32, "bold", title)
	p.centered(pageHeight*0.35, 32, "bold", "WORD SEARCH PUZZLES")
	p.centered(pageHeight*0.50, 22, "bold",
		fmt.Sprintf("%d Large-Print Themed Puzzles", len(b.Puzzles)))
	p.centered(pageHeight*0.60, 12, "normal", "Easy-to-Read • Perfect for All Ages")
	if b.Catchphrase != "" {
		p.centered(pageHeight*0.70, 14, "italic", b.Catchphrase)
	}
	p.centered(pageHeight*0.90, 12, "normal", "Puzzle Book Series")
	return p.close()
}

func instructionsPage() []byte {
	p := newIntroPage()
	left := pageWidth * 0.18

	p.at(left, pageHeight*0.15, 20, "bold", "HOW TO SOLVE")

	y := pageHeight * 0.25
	for _, line := range []string{
		"1. Read the themed word list below the grid",
		"2. Scan the grid for each word; words may run in any direction",
		"3. Circle each word as you find it",
		"4. Check solutions at the back if needed",
	} {
		p.at(left, y, 14, "normal", line)
		y += 28
	}

	y += 14
	p.at(left, y, 14, "bold", "Large print design for comfortable solving!")
	return p.close()
}

func aboutPage(b *Book) []byte {
	p := newIntroPage()
	left := pageWidth * 0.18

	p.at(left, pageHeight*0.15, 20, "bold", "ABOUT THIS BOOK")

	y := pageHeight * 0.25
	if len(b.Description) > 0 {
		for _, line := range b.Description {
			p.at(left, y, 14, "normal", line)
			y += 25
		}
	} else {
		p.at(left, y, 14, "normal",
			fmt.Sprintf("Discover %d themed word search puzzles.", len(b.Puzzles)))
		y += 25
	}

	// Themes grouped three per line, like a blurb.
	if len(b.Puzzles) > 0 {
		y += 14
		p.at(left, y, 14, "bold", "Featuring:")
		y += 25
		themes := make([]string, 0, len(b.Puzzles))
		for _, def := range b.Puzzles {
			themes = append(themes, def.Title)
		}
		for i := 0; i < len(themes); i += 3 {
			end := min(i+3, len(themes))
			p.at(left, y, 12, "normal", "• "+strings.Join(themes[i:end], "  • "))
			y += 22
		}
	}
	return p.close()
}

// introPage accumulates SVG text elements on a letter-sized white page.
type introPage struct {
	buf bytes.Buffer
}

func newIntroPage() *introPage {
	p := &introPage{}
	fmt.Fprintf(&p.buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		pageWidth, pageHeight, pageWidth, pageHeight)
	fmt.Fprintf(&p.buf, `<rect width="100%%" height="100%%" fill="white"/>`+"\n")
	return p
}

func (p *introPage) centered(y, size float64, style, text string) {
	p.text(pageWidth/2, y, size, style, "middle", text)
}

func (p *introPage) at(x, y, size float64, style, text string) {
	p.text(x, y, size, style, "start", text)
}

func (p *introPage) text(x, y, size float64, style, anchor, text string) {
	weight, fontStyle := "normal", "normal"
	switch style {
	case "bold":
		weight = "bold"
	case "italic":
		fontStyle = "italic"
	}
	fmt.Fprintf(&p.buf,
		`<text x="%.1f" y="%.1f" text-anchor="%s" font-family="%s" font-size="%.0f" font-weight="%s" font-style="%s">%s</text>`+"\n",
		x, y, anchor, introFontFamily, size, weight, fontStyle, html.EscapeString(text))
}

func (p *introPage) close() []byte {
	p.buf.WriteString("</svg>\n")
	return p.buf.Bytes()
}
