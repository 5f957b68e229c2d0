// Package content assembles raw form input into an ordered, styled block
// tree. The tree is an intermediate representation independent of any output
// format; serializers consume it and never mutate it.
package content

// BlockKind identifies the kind of a content block.
type BlockKind int

const (
	KindHeading BlockKind = iota
	KindParagraph
	KindBullet
	KindImage
	KindTable
	KindDivider
)

// Alignment is a paragraph alignment attribute.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignRight  Alignment = "right"
	AlignCenter Alignment = "center"
)

// Block is one atomic content unit with its style attributes.
// Sizes are in half-points (docx convention); zero means document default.
type Block struct {
	Kind BlockKind

	Text   string
	Bold   bool
	Italic bool
	Size   int
	Align  Alignment

	SpacingBefore int
	SpacingAfter  int

	// Image payload (KindImage only).
	Image       []byte
	ImageWidth  int
	ImageHeight int

	// Table rows (KindTable only).
	Rows [][]string
}

// DocumentMeta carries the page-level definitions passed alongside the blocks:
// header/footer text, fonts, and the formatted generation timestamp.
type DocumentMeta struct {
	Organization string
	NoteType     string
	Title        string
	GeneratedAt  string // formatted once at submission time
	FooterText   string
	BodyFont     string
	BodySize     int // half-points
}

// HeaderLine is the single header line shown on every page.
func (m DocumentMeta) HeaderLine() string {
	return m.Organization + " | " + m.NoteType + " | " + m.GeneratedAt
}

// Tree is the assembled document: ordered blocks plus page-level metadata.
type Tree struct {
	Meta   DocumentMeta
	Blocks []Block
}

func heading(text string) Block {
	return Block{Kind: KindHeading, Text: text, Bold: true, Size: 24, SpacingAfter: 200}
}

func divider() Block {
	return Block{Kind: KindDivider, SpacingAfter: 200}
}
