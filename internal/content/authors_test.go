package content

import (
	"testing"

	"github.com/cordobarg/note-portal/internal/models"
)

func TestAuthorLine(t *testing.T) {
	tests := []struct {
		author models.Author
		want   string
	}{
		{models.Author{LastName: "Smith", FirstName: "Jane", Phone: "1-5558675309"}, "SMITH, JANE (1-5558675309)"},
		{models.Author{LastName: "Smith", FirstName: "Jane"}, "SMITH, JANE (N/A)"},
		{models.Author{LastName: " smith ", FirstName: " jane ", Phone: "  "}, "SMITH, JANE (N/A)"},
		{models.Author{LastName: "Doe", FirstName: "John", Phone: "(44-7398344190)"}, "DOE, JOHN (44-7398344190)"},
	}
	for _, tt := range tests {
		if got := AuthorLine(tt.author); got != tt.want {
			t.Errorf("AuthorLine(%+v) = %q, want %q", tt.author, got, tt.want)
		}
	}
}

func TestAuthorBlocks_Order(t *testing.T) {
	primary := models.Author{LastName: "Smith", FirstName: "Jane", Phone: "1-5550001111"}
	coAuthors := []models.Author{
		{LastName: "Doe", FirstName: "John"},
		{LastName: "Roe", FirstName: "Rachel", Phone: "44-7398344190"},
	}

	blocks := authorBlocks(primary, coAuthors)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 author lines, got %d", len(blocks))
	}

	want := []string{
		"SMITH, JANE (1-5550001111)",
		"DOE, JOHN (N/A)",
		"ROE, RACHEL (44-7398344190)",
	}
	for i, w := range want {
		if blocks[i].Text != w {
			t.Errorf("author line %d = %q, want %q", i, blocks[i].Text, w)
		}
		if blocks[i].Align != AlignRight {
			t.Errorf("author line %d should be right-aligned", i)
		}
	}
}
