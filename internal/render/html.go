package render

import (
	"encoding/base64"
	"fmt"
	"html"
	"strings"

	"github.com/cordobarg/note-portal/internal/content"
)

// HTMLSerializer renders the content tree as a standalone HTML page, used for
// the in-browser preview. Images are inlined as data URIs.
type HTMLSerializer struct{}

// NewHTMLSerializer creates the preview serializer.
func NewHTMLSerializer() *HTMLSerializer {
	return &HTMLSerializer{}
}

// ContentType returns the MIME type for preview responses.
func (s *HTMLSerializer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Serialize renders the tree into a single HTML document.
func (s *HTMLSerializer) Serialize(tree *content.Tree) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("<!doctype html><html><head><meta charset='utf-8'><title>")
	sb.WriteString(html.EscapeString(tree.Meta.Title))
	sb.WriteString("</title><style>")
	font := tree.Meta.BodyFont
	if font == "" {
		font = "serif"
	}
	fmt.Fprintf(&sb, "body{font-family:'%s',serif;max-width:52em;margin:2em auto;padding:0 1em}", font)
	sb.WriteString("header,footer{border-bottom:1px solid #000;font-size:0.8em;padding:0.3em 0}")
	sb.WriteString("footer{border-bottom:none;border-top:1px solid #000;text-align:center;margin-top:2em}")
	sb.WriteString("img{max-width:500px}table{border-collapse:collapse}td{border:1px solid #999;padding:0.3em 0.8em}")
	sb.WriteString("</style></head><body>")

	fmt.Fprintf(&sb, "<header>%s</header>", html.EscapeString(tree.Meta.HeaderLine()))

	for _, b := range tree.Blocks {
		writeHTMLBlock(&sb, b)
	}

	fmt.Fprintf(&sb, "<footer>%s</footer>", html.EscapeString(tree.Meta.FooterText))
	sb.WriteString("</body></html>")
	return []byte(sb.String()), nil
}

func writeHTMLBlock(sb *strings.Builder, b content.Block) {
	style := blockStyle(b)
	switch b.Kind {
	case content.KindDivider:
		sb.WriteString("<hr>")
	case content.KindHeading:
		fmt.Fprintf(sb, "<h2%s>%s</h2>", style, html.EscapeString(b.Text))
	case content.KindBullet:
		fmt.Fprintf(sb, "<li%s>%s</li>", style, html.EscapeString(b.Text))
	case content.KindImage:
		fmt.Fprintf(sb, "<div style='text-align:center'><img src='data:image/png;base64,%s' width='%d' height='%d'></div>",
			base64.StdEncoding.EncodeToString(b.Image), b.ImageWidth, b.ImageHeight)
	case content.KindTable:
		sb.WriteString("<table>")
		for _, row := range b.Rows {
			sb.WriteString("<tr>")
			for _, cell := range row {
				fmt.Fprintf(sb, "<td>%s</td>", html.EscapeString(cell))
			}
			sb.WriteString("</tr>")
		}
		sb.WriteString("</table>")
	default:
		if b.Text == "" {
			sb.WriteString("<p>&nbsp;</p>")
			return
		}
		fmt.Fprintf(sb, "<p%s>%s</p>", style, html.EscapeString(b.Text))
	}
}

func blockStyle(b content.Block) string {
	var rules []string
	if b.Align == content.AlignRight || b.Align == content.AlignCenter {
		rules = append(rules, "text-align:"+string(b.Align))
	}
	if b.Bold && b.Kind != content.KindHeading {
		rules = append(rules, "font-weight:bold")
	}
	if b.Italic {
		rules = append(rules, "font-style:italic")
	}
	if len(rules) == 0 {
		return ""
	}
	return " style='" + strings.Join(rules, ";") + "'"
}
