package content

import "testing"

func TestParagraphBlocks(t *testing.T) {
	blocks := paragraphBlocks("first line\n\nthird line", spacingProse)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks (blank line preserved), got %d", len(blocks))
	}
	if blocks[0].Text != "first line" || blocks[1].Text != "" || blocks[2].Text != "third line" {
		t.Errorf("unexpected block texts: %q %q %q", blocks[0].Text, blocks[1].Text, blocks[2].Text)
	}
	for i, b := range blocks {
		if b.Kind != KindParagraph {
			t.Errorf("block %d kind = %v, want paragraph", i, b.Kind)
		}
		if b.SpacingAfter != spacingProse {
			t.Errorf("block %d spacing = %d, want %d", i, b.SpacingAfter, spacingProse)
		}
	}
}

func TestParagraphBlocks_CRLF(t *testing.T) {
	blocks := paragraphBlocks("a\r\nb", spacingProse)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks from CRLF input, got %d", len(blocks))
	}
	if blocks[0].Text != "a" || blocks[1].Text != "b" {
		t.Errorf("CRLF not normalized: %q %q", blocks[0].Text, blocks[1].Text)
	}
}

func TestParagraphBlocks_Empty(t *testing.T) {
	if blocks := paragraphBlocks("", spacingProse); blocks != nil {
		t.Errorf("empty text should produce no blocks, got %d", len(blocks))
	}
}

func TestStripBulletMarker(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"- revenue grows 10%", "revenue grows 10%"},
		{"* margins stable", "margins stable"},
		{"• capex flat", "capex flat"},
		{"  -   spaced out  ", "spaced out"},
		{"no marker here", "no marker here"},
	}
	for _, tt := range tests {
		if got := StripBulletMarker(tt.in); got != tt.want {
			t.Errorf("StripBulletMarker(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripBulletMarker_Idempotent(t *testing.T) {
	for _, in := range []string{"- item", "* item", "• item", "item"} {
		once := StripBulletMarker(in)
		if twice := StripBulletMarker(once); twice != once {
			t.Errorf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestBulletBlocks_KeepBlank(t *testing.T) {
	blocks := bulletBlocks("- one\n\n* two", false)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	if blocks[0].Kind != KindBullet || blocks[0].Text != "one" {
		t.Errorf("first block = %+v", blocks[0])
	}
	if blocks[1].Kind != KindParagraph || blocks[1].Text != "" {
		t.Errorf("blank line should become an empty paragraph, got %+v", blocks[1])
	}
	if blocks[2].Kind != KindBullet || blocks[2].Text != "two" {
		t.Errorf("third block = %+v", blocks[2])
	}
}

func TestBulletBlocks_DropBlank(t *testing.T) {
	blocks := bulletBlocks("- one\n\n\n- two", true)
	if len(blocks) != 2 {
		t.Fatalf("expected blank lines dropped, got %d blocks", len(blocks))
	}
	if blocks[0].Text != "one" || blocks[1].Text != "two" {
		t.Errorf("unexpected bullets: %q %q", blocks[0].Text, blocks[1].Text)
	}
}
