package render

import (
	"bytes"
	"html/template"
	"os"
	"strings"

	"github.com/wordgrid/wordgrid/pkg/errors"
)

// Description holds the data for a book description page, typically shown on
// a storefront listing next to the cover image.
type Description struct {
	Title       string
	Paragraphs  []string
	Catchphrase string
	Categories  []Category
}

// Category previews one puzzle's theme with a few sample words.
type Category struct {
	Title string
	Words []string
}

// maxPreviewWords caps how many sample words a category preview shows.
const maxPreviewWords = 4

// defaultDescriptionTemplate is used when no template file is supplied.
const defaultDescriptionTemplate = `<b>{{.TitleUpper}}</b>
<p>{{range .Paragraphs}}{{.}} {{end}}</p>
{{if .Catchphrase}}<p><i>{{.Catchphrase}}</i></p>{{end}}
{{if .Categories}}<ul>
{{range .Categories}}	<li><b>{{.Title}}</b>: {{.WordsPreview}}</li>
{{end}}</ul>{{end}}`

type descriptionData struct {
	TitleUpper  string
	Paragraphs  []string
	Catchphrase string
	Categories  []categoryData
}

type categoryData struct {
	Title        string
	WordsPreview string
}

// RenderDescription renders the description page as HTML. templatePath may
// be empty, in which case the built-in template is used.
func RenderDescription(d Description, templatePath string) ([]byte, error) {
	text := defaultDescriptionTemplate
	if templatePath != "" {
		data, err := os.ReadFile(templatePath)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read template %s", templatePath)
		}
		text = string(data)
	}

	tmpl, err := template.New("description").Parse(text)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse description template")
	}

	data := descriptionData{
		TitleUpper:  strings.ToUpper(d.Title),
		Paragraphs:  d.Paragraphs,
		Catchphrase: d.Catchphrase,
	}
	for _, c := range d.Categories {
		words := c.Words
		if len(words) > maxPreviewWords {
			words = words[:maxPreviewWords]
		}
		preview := make([]string, len(words))
		for i, w := range words {
			preview[i] = titleCase(w)
		}
		data.Categories = append(data.Categories, categoryData{
			Title:        titleCase(c.Title),
			WordsPreview: strings.Join(preview, ", "),
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "execute description template")
	}
	return buf.Bytes(), nil
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	parts := strings.Fields(strings.ToLower(s))
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
