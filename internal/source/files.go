package source

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Files resolves references against a base directory. A plain reference
// names an image file (PNG or JPEG); a reference like "catalog.pdf#3" names
// a 1-based page of a PDF document rendered through MuPDF. Absolute paths
// bypass the base directory.
type Files struct {
	base string
}

// NewFiles returns a provider rooted at dir.
func NewFiles(dir string) *Files {
	return &Files{base: dir}
}

func (f *Files) Thumbnail(ref string, maxWidth, maxHeight int) (image.Image, error) {
	path, page, isPDF, err := parseRef(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, ref, err)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(f.base, path)
	}

	var img image.Image
	if isPDF {
		img, err = renderPage(path, page)
	} else {
		img, err = decodeFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, ref, err)
	}
	return fitTo(img, maxWidth, maxHeight), nil
}

func (f *Files) Close() error { return nil }

// parseRef splits "doc.pdf#3" into its path and page parts. References
// without a page suffix, or whose path part is not a PDF, are plain image
// paths; a bare PDF reference means its first page.
func parseRef(ref string) (path string, page int, isPDF bool, err error) {
	if strings.EqualFold(filepath.Ext(ref), ".pdf") {
		return ref, 1, true, nil
	}
	i := strings.LastIndex(ref, "#")
	if i < 0 || !strings.EqualFold(filepath.Ext(ref[:i]), ".pdf") {
		return ref, 0, false, nil
	}
	page, aerr := strconv.Atoi(ref[i+1:])
	if aerr != nil || page < 1 {
		return "", 0, false, fmt.Errorf("bad page %q", ref[i+1:])
	}
	return ref[:i], page, true, nil
}

// renderPage rasterizes one PDF page. The document is opened per call so
// concurrent renders never share MuPDF state.
func renderPage(path string, page int) (image.Image, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()
	return doc.ImageDPI(page-1, 150)
}

func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return img, nil
}
