package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cordobarg/note-portal/internal/content"
)

func sampleTree() *content.Tree {
	return &content.Tree{
		Meta: content.DocumentMeta{
			Organization: "Cordoba Research Group",
			NoteType:     "General",
			Title:        "Rates Update",
			GeneratedAt:  "March 9, 2026 3:04 PM",
			FooterText:   "Cordoba Research Group Internal Information",
			BodyFont:     "Book Antiqua",
			BodySize:     20,
		},
		Blocks: []content.Block{
			{Kind: content.KindParagraph, Text: "Rates Update", Bold: true, Size: 28},
			{Kind: content.KindDivider},
			{Kind: content.KindHeading, Text: "Key Takeaways", Bold: true, Size: 24},
			{Kind: content.KindBullet, Text: "Cuts priced out"},
			{Kind: content.KindParagraph, Text: "SMITH, JANE (N/A)", Align: content.AlignRight},
			{Kind: content.KindParagraph, Text: ""},
			{Kind: content.KindTable, Rows: [][]string{
				{"Current Price", "$101.50"},
				{"Range Return", "unavailable"},
			}},
		},
	}
}

func TestDocxSerialize(t *testing.T) {
	data, err := NewDocxSerializer().Serialize(sampleTree())
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty document")
	}
	// docx files are zip archives
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Errorf("output does not look like a zip archive: % x", data[:4])
	}
}

func TestDocxContentType(t *testing.T) {
	want := "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	if got := NewDocxSerializer().ContentType(); got != want {
		t.Errorf("ContentType = %q", got)
	}
}

func TestHTMLSerialize(t *testing.T) {
	tree := sampleTree()
	tree.Blocks = append(tree.Blocks, content.Block{
		Kind:        content.KindImage,
		Image:       []byte{1, 2, 3},
		ImageWidth:  500,
		ImageHeight: 375,
		Align:       content.AlignCenter,
	})

	data, err := NewHTMLSerializer().Serialize(tree)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	page := string(data)

	for _, want := range []string{
		"Cordoba Research Group | General | March 9, 2026 3:04 PM",
		"<h2>Key Takeaways</h2>",
		"<li>Cuts priced out</li>",
		"text-align:right",
		"<td>Current Price</td><td>$101.50</td>",
		"data:image/png;base64,",
		"width='500' height='375'",
		"<footer>Cordoba Research Group Internal Information</footer>",
		"Book Antiqua",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestHTMLSerialize_EscapesText(t *testing.T) {
	tree := sampleTree()
	tree.Blocks = []content.Block{
		{Kind: content.KindParagraph, Text: "<script>alert(1)</script>"},
	}

	data, err := NewHTMLSerializer().Serialize(tree)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if strings.Contains(string(data), "<script>alert") {
		t.Error("block text must be HTML-escaped")
	}
}

func TestHTMLSerialize_BlankParagraph(t *testing.T) {
	tree := sampleTree()
	data, err := NewHTMLSerializer().Serialize(tree)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(string(data), "<p>&nbsp;</p>") {
		t.Error("empty paragraphs should preserve vertical whitespace")
	}
}
