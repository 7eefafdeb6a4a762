package deck

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// parsePDF reads one slide per PDF page.
func parsePDF(path string) ([]SlideData, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	slides := make([]SlideData, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extract text from page %d: %w", i, err)
		}

		text = strings.TrimSpace(text)
		if text == "" {
			slides = append(slides, SlideData{Title: fmt.Sprintf("Slide %d", i)})
			continue
		}
		slides = append(slides, splitTitle(text))
	}

	if len(slides) == 0 {
		return nil, fmt.Errorf("pdf contains no pages")
	}
	return slides, nil
}
