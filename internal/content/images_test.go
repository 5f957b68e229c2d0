package content

import (
	"errors"
	"testing"

	"github.com/cordobarg/note-portal/internal/common"
)

type fakeFile struct {
	name string
	data []byte
	err  error
}

func (f fakeFile) Name() string               { return f.name }
func (f fakeFile) ReadBytes() ([]byte, error) { return f.data, f.err }

func TestImageBlocks(t *testing.T) {
	files := []ReadableBinary{
		fakeFile{name: "chart.png", data: []byte{1, 2, 3}},
		fakeFile{name: "table.jpg", data: []byte{4, 5}},
	}

	blocks := imageBlocks(files, common.NewSilentLogger())
	if len(blocks) != 4 {
		t.Fatalf("expected image+caption per file, got %d blocks", len(blocks))
	}

	if blocks[0].Kind != KindImage || len(blocks[0].Image) != 3 {
		t.Errorf("first image block = %+v", blocks[0])
	}
	if blocks[0].ImageWidth != 500 || blocks[0].ImageHeight != 375 {
		t.Errorf("image dimensions = %dx%d, want 500x375", blocks[0].ImageWidth, blocks[0].ImageHeight)
	}
	if blocks[1].Text != "Figure 1: chart" {
		t.Errorf("first caption = %q", blocks[1].Text)
	}
	if !blocks[1].Italic {
		t.Error("caption should be italic")
	}
	if blocks[3].Text != "Figure 2: table" {
		t.Errorf("second caption = %q", blocks[3].Text)
	}
}

func TestImageBlocks_SkipPreservesNumbering(t *testing.T) {
	files := []ReadableBinary{
		fakeFile{name: "first.png", data: []byte{1}},
		fakeFile{name: "broken.png", err: errors.New("read failed")},
		fakeFile{name: "third.png", data: []byte{3}},
	}

	blocks := imageBlocks(files, common.NewSilentLogger())
	if len(blocks) != 4 {
		t.Fatalf("expected 2 surviving files, got %d blocks", len(blocks))
	}
	if blocks[1].Text != "Figure 1: first" {
		t.Errorf("first caption = %q", blocks[1].Text)
	}
	// the skipped file leaves a numbering gap
	if blocks[3].Text != "Figure 3: third" {
		t.Errorf("caption after skip = %q, want Figure 3", blocks[3].Text)
	}
}

func TestImageBlocks_Empty(t *testing.T) {
	if blocks := imageBlocks(nil, nil); blocks != nil {
		t.Errorf("no files should produce no blocks, got %d", len(blocks))
	}
}
