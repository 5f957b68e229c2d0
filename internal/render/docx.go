package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/cordobarg/note-portal/internal/content"
)

// DocxSerializer renders the content tree as a Word document via go-docx.
// The library owns the OOXML encoding; this type only maps blocks onto it.
// Header/footer text is emitted as leading and trailing paragraphs and list
// items carry literal bullet markers; finer page furniture is the library's
// concern, not the tree's.
type DocxSerializer struct{}

// NewDocxSerializer creates the default document serializer.
func NewDocxSerializer() *DocxSerializer {
	return &DocxSerializer{}
}

// ContentType returns the MIME type for .docx downloads.
func (s *DocxSerializer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

// Serialize maps the tree onto a docx file and returns its bytes.
func (s *DocxSerializer) Serialize(tree *content.Tree) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	writeMetaLine(w, tree.Meta.HeaderLine())

	for _, b := range tree.Blocks {
		if err := writeBlock(w, b); err != nil {
			return nil, err
		}
	}

	writeMetaLine(w, tree.Meta.FooterText)

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("docx serialization failed: %w", err)
	}
	return buf.Bytes(), nil
}

func writeMetaLine(w *docx.Docx, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	p := w.AddParagraph()
	p.AddText(text).Size("16")
	w.AddParagraph()
}

func writeBlock(w *docx.Docx, b content.Block) error {
	switch b.Kind {
	case content.KindDivider:
		w.AddParagraph()
		return nil

	case content.KindImage:
		p := w.AddParagraph()
		applyAlignment(p, b.Align)
		if _, err := p.AddInlineDrawing(b.Image); err != nil {
			return fmt.Errorf("embedding image: %w", err)
		}
		return nil

	case content.KindTable:
		for _, row := range b.Rows {
			p := w.AddParagraph()
			p.AddText(strings.Join(row, ": "))
		}
		return nil

	case content.KindBullet:
		p := w.AddParagraph()
		p.AddText("• " + b.Text)
		return nil

	default: // headings and paragraphs
		p := w.AddParagraph()
		applyAlignment(p, b.Align)
		run := p.AddText(b.Text)
		if b.Bold {
			run.Bold()
		}
		if b.Italic {
			run.Italic()
		}
		if b.Size > 0 {
			run.Size(strconv.Itoa(b.Size))
		}
		return nil
	}
}

func applyAlignment(p *docx.Paragraph, align content.Alignment) {
	switch align {
	case content.AlignCenter:
		p.Justification("center")
	case content.AlignRight:
		p.Justification("right")
	}
}
