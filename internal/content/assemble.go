package content

import (
	"fmt"
	"strings"

	"github.com/cordobarg/note-portal/internal/common"
	"github.com/cordobarg/note-portal/internal/models"
)

// Options carries the document-level settings the assembler stamps into the
// tree metadata.
type Options struct {
	Organization string
	FooterText   string
	BodyFont     string
	BodySize     int // half-points
}

// Assemble converts a form submission plus its derived market state into a
// content tree. It is a pure pipeline over its inputs apart from the
// sequential image reads; whatever triggered it (HTTP handler, test harness)
// is not its concern. Missing scalar fields are not validated here: the
// assembler emits blocks for whatever it is given.
func Assemble(sub *models.FormSubmission, images []ReadableBinary, stats models.MarketStats, chartPNG []byte, opts Options, logger *common.Logger) *Tree {
	tree := &Tree{
		Meta: DocumentMeta{
			Organization: opts.Organization,
			NoteType:     sub.Type.String(),
			Title:        sub.Title,
			GeneratedAt:  common.FormatDateTime(sub.GeneratedAt),
			FooterText:   opts.FooterText,
			BodyFont:     opts.BodyFont,
			BodySize:     opts.BodySize,
		},
	}

	// Info block: title, topic, authors.
	tree.Blocks = append(tree.Blocks,
		Block{Kind: KindParagraph, Text: sub.Title, Bold: true, Size: 28, SpacingAfter: 100},
		divider(),
		Block{Kind: KindParagraph, Text: "Topic:", Bold: true, Size: 28, SpacingAfter: 100},
		Block{Kind: KindParagraph, Text: sub.Topic, Size: 20, SpacingAfter: 200},
	)
	tree.Blocks = append(tree.Blocks, authorBlocks(sub.PrimaryAuthor, sub.CoAuthors)...)
	tree.Blocks = append(tree.Blocks, Block{Kind: KindDivider, SpacingBefore: 100, SpacingAfter: 300})

	if sub.Equity != nil {
		tree.Blocks = append(tree.Blocks, equityBlocks(sub.Equity, stats, chartPNG)...)
	}

	tree.Blocks = append(tree.Blocks, heading("Key Takeaways"))
	tree.Blocks = append(tree.Blocks, bulletBlocks(sub.KeyTakeaways, false)...)

	tree.Blocks = append(tree.Blocks, heading("Analysis and Commentary"))
	tree.Blocks = append(tree.Blocks, paragraphBlocks(sub.Analysis, spacingProse)...)

	tree.Blocks = append(tree.Blocks, heading("Content"))
	tree.Blocks = append(tree.Blocks, paragraphBlocks(sub.Content, spacingProse)...)

	if strings.TrimSpace(sub.CordobaView) != "" {
		tree.Blocks = append(tree.Blocks, heading("Cordoba View"))
		tree.Blocks = append(tree.Blocks, paragraphBlocks(sub.CordobaView, spacingEquityProse)...)
	}

	if figures := imageBlocks(images, logger); len(figures) > 0 {
		figHeading := heading("Figures and Charts")
		figHeading.SpacingBefore = 400
		tree.Blocks = append(tree.Blocks, figHeading)
		tree.Blocks = append(tree.Blocks, figures...)
	}

	return tree
}

// equityBlocks renders the Equity Research section: identifiers, the captured
// price chart, derived market statistics, attached model names and the three
// equity prose fields.
func equityBlocks(eq *models.EquityFields, stats models.MarketStats, chartPNG []byte) []Block {
	blocks := []Block{heading("Equity Research")}

	blocks = append(blocks,
		Block{Kind: KindParagraph, Text: "Ticker: " + strings.ToUpper(strings.TrimSpace(eq.Ticker)), SpacingAfter: 100},
		Block{Kind: KindParagraph, Text: "CRG Rating: " + eq.CRGRating, SpacingAfter: 100},
		Block{Kind: KindParagraph, Text: "Target Price: " + eq.TargetPrice, SpacingAfter: 100},
	)
	if strings.TrimSpace(eq.ModelLink) != "" {
		blocks = append(blocks, Block{Kind: KindParagraph, Text: "Model: " + eq.ModelLink, SpacingAfter: 100})
	}

	if len(chartPNG) > 0 {
		blocks = append(blocks,
			Block{
				Kind:          KindImage,
				Image:         chartPNG,
				ImageWidth:    imageWidth,
				ImageHeight:   imageHeight,
				Align:         AlignCenter,
				SpacingBefore: 200,
				SpacingAfter:  100,
			},
			Block{
				Kind:         KindParagraph,
				Text:         "Price chart: " + strings.ToUpper(strings.TrimSpace(eq.Ticker)),
				Italic:       true,
				Size:         18,
				Align:        AlignCenter,
				SpacingAfter: 200,
			},
		)
	}

	blocks = append(blocks, Block{Kind: KindTable, Rows: statsRows(stats), SpacingAfter: 200})

	blocks = append(blocks, heading("Attached Models"))
	blocks = append(blocks, modelFileBlocks(eq.ModelFiles)...)

	blocks = append(blocks, heading("Valuation Summary"))
	blocks = append(blocks, paragraphBlocks(eq.ValuationSummary, spacingEquityProse)...)

	blocks = append(blocks, heading("Key Assumptions"))
	blocks = append(blocks, bulletBlocks(eq.KeyAssumptions, true)...)

	blocks = append(blocks, heading("Scenario Notes"))
	blocks = append(blocks, paragraphBlocks(eq.ScenarioNotes, spacingEquityProse)...)

	return blocks
}

// modelFileBlocks lists attached model file names, one bullet per name in
// upload order, or a single "None uploaded" paragraph.
func modelFileBlocks(names []string) []Block {
	if len(names) == 0 {
		return []Block{{Kind: KindParagraph, Text: "None uploaded", SpacingAfter: 200}}
	}
	blocks := make([]Block, 0, len(names))
	for _, name := range names {
		blocks = append(blocks, Block{Kind: KindBullet, Text: name, SpacingAfter: spacingBullet})
	}
	return blocks
}

// statsRows renders the market statistics as label/value rows. Fields that
// were not computed read "unavailable".
func statsRows(stats models.MarketStats) [][]string {
	value := func(v *float64, format func(float64) string) string {
		if v == nil {
			return "unavailable"
		}
		return format(*v)
	}
	pct := func(v float64) string { return common.FormatSignedPct(v) }
	vol := func(v float64) string { return fmt.Sprintf("%.2f%%", v*100) }
	return [][]string{
		{"Current Price", value(stats.CurrentPrice, common.FormatMoney)},
		{"Range Return", value(stats.RangeReturn, pct)},
		{"Realised Volatility (ann.)", value(stats.RealisedVolAnn, vol)},
		{"Upside to Target", value(stats.UpsideToTarget, pct)},
	}
}
