package content

import (
	"fmt"
	"strings"

	"github.com/cordobarg/note-portal/internal/models"
)

// authorBlocks renders the primary author followed by each co-author in
// insertion order, one right-aligned line per author.
func authorBlocks(primary models.Author, coAuthors []models.Author) []Block {
	blocks := make([]Block, 0, 1+len(coAuthors))
	blocks = append(blocks, authorLineBlock(primary))
	for _, ca := range coAuthors {
		blocks = append(blocks, authorLineBlock(ca))
	}
	return blocks
}

func authorLineBlock(a models.Author) Block {
	return Block{
		Kind:         KindParagraph,
		Text:         AuthorLine(a),
		Align:        AlignRight,
		SpacingAfter: 100,
	}
}

// AuthorLine renders "LAST, FIRST (phone)". Names are upper-cased. A blank
// phone becomes the literal "N/A" before wrapping, and a value that already
// arrives bracketed is not wrapped again.
func AuthorLine(a models.Author) string {
	phone := strings.TrimSpace(a.Phone)
	if phone == "" {
		phone = "N/A"
	}
	if !strings.HasPrefix(phone, "(") || !strings.HasSuffix(phone, ")") {
		phone = "(" + phone + ")"
	}
	return fmt.Sprintf("%s, %s %s",
		strings.ToUpper(strings.TrimSpace(a.LastName)),
		strings.ToUpper(strings.TrimSpace(a.FirstName)),
		phone,
	)
}
