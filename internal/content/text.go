package content

import "strings"

// Per-field spacing-after values, in twentieths of a point.
const (
	spacingProse       = 150 // analysis, content, cordoba view
	spacingEquityProse = 120 // valuation summary, scenario notes
	spacingBullet      = 100
)

// splitLines splits on line breaks, tolerating CRLF input from browsers.
func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// paragraphBlocks converts free-form text into one paragraph block per line.
// Lines are kept verbatim, including blank ones: an empty line becomes an
// empty paragraph so the author's vertical whitespace survives.
func paragraphBlocks(text string, spacingAfter int) []Block {
	if text == "" {
		return nil
	}
	lines := splitLines(text)
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, Block{
			Kind:         KindParagraph,
			Text:         line,
			SpacingAfter: spacingAfter,
		})
	}
	return blocks
}

// StripBulletMarker removes a single leading bullet marker ("-", "*" or "•"
// plus optional whitespace) and trims the remainder. Applying it to an
// already-stripped line is a no-op.
func StripBulletMarker(line string) string {
	trimmed := strings.TrimSpace(line)
	for _, marker := range []string{"-", "*", "•"} {
		if strings.HasPrefix(trimmed, marker) {
			return strings.TrimSpace(trimmed[len(marker):])
		}
	}
	return trimmed
}

// bulletBlocks converts bullet text into bullet-item blocks. Non-blank lines
// have their leading marker stripped. Blank lines either become empty
// non-bulleted paragraphs (key takeaways) or are dropped entirely
// (key assumptions), controlled by dropBlank.
func bulletBlocks(text string, dropBlank bool) []Block {
	if text == "" {
		return nil
	}
	var blocks []Block
	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			if dropBlank {
				continue
			}
			blocks = append(blocks, Block{Kind: KindParagraph, SpacingAfter: spacingBullet})
			continue
		}
		blocks = append(blocks, Block{
			Kind:         KindBullet,
			Text:         StripBulletMarker(line),
			SpacingAfter: spacingBullet,
		})
	}
	return blocks
}
