package render

import (
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"

	"github.com/wordgrid/wordgrid/pkg/errors"
)

// fontCandidates are tried in order when rasterizing. All are metrically
// plain sans faces commonly present on Linux and macOS.
var fontCandidates = []string{
	"DejaVuSans-Bold.ttf",
	"DejaVuSans.ttf",
	"Arial Bold.ttf",
	"Arial.ttf",
	"Helvetica.ttc",
	"LiberationSans-Bold.ttf",
	"LiberationSans-Regular.ttf",
}

var (
	fontOnce   sync.Once
	cachedFont *truetype.Font
	fontErr    error
)

// loadFont locates a usable system TTF via findfont and parses it once.
func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		for _, name := range fontCandidates {
			path, err := findfont.Find(name)
			if err != nil {
				continue
			}
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			f, err := truetype.Parse(data)
			if err != nil {
				continue
			}
			cachedFont = f
			return
		}
		fontErr = errors.New(errors.ErrCodeInternal,
			"no usable TTF font found (looked for %v)", fontCandidates)
	})
	return cachedFont, fontErr
}

// fontFace builds a face at the given point size from the cached font.
func fontFace(points float64) (*truetype.Font, *truetype.Options, error) {
	f, err := loadFont()
	if err != nil {
		return nil, nil, err
	}
	return f, &truetype.Options{Size: points}, nil
}
