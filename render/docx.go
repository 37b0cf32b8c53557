package render

import (
	"bytes"
	"fmt"

	docx "github.com/fumiama/go-docx"
)

const headingColor = "2F5496"

// Docx renders the section tree as a Word document and returns its bytes.
func Docx(doc Document) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	title := w.AddParagraph().Justification("center")
	title.AddText(doc.Title).Size("32").Color(headingColor)

	w.AddParagraph().AddText("Дата формирования: " + doc.GeneratedAt)
	w.AddParagraph()

	for _, s := range doc.Sections {
		if s.Title != "" {
			h := w.AddParagraph()
			h.AddText(s.Title).Size("28").Color(headingColor)
		}
		for _, line := range s.Lines {
			text := line.Value
			if line.Label != "" {
				text = line.Label + ": " + line.Value
			}
			if line.Indent {
				text = "   " + text
			}
			w.AddParagraph().AddText(text)
		}
		w.AddParagraph()
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("error writing docx: %w", err)
	}
	return buf.Bytes(), nil
}
