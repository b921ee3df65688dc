package book

import "github.com/wordgrid/wordgrid/pkg/render"

// DescriptionHTML renders the storefront description page for the book.
// templatePath may be empty to use the built-in template.
func (b *Book) DescriptionHTML(templatePath string) ([]byte, error) {
	d := render.Description{
		Title:       b.Title,
		Paragraphs:  b.Description,
		Catchphrase: b.Catchphrase,
	}
	for _, def := range b.Puzzles {
		d.Categories = append(d.Categories, render.Category{
			Title: def.Title,
			Words: def.Words,
		})
	}
	return render.RenderDescription(d, templatePath)
}
