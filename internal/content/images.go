package content

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cordobarg/note-portal/internal/common"
)

// Display size for every uploaded image, matching the document layout.
const (
	imageWidth  = 500
	imageHeight = 375
)

// ReadableBinary is an uploaded file: a name plus a one-shot byte read.
// Multipart form files and in-memory fixtures both satisfy it.
type ReadableBinary interface {
	Name() string
	ReadBytes() ([]byte, error)
}

// imageBlocks produces an image block plus a caption block for each uploaded
// file, in upload order. Files are read sequentially; a failed read skips
// that file (logged) without aborting the batch. Caption numbers are the
// source index + 1, so a skipped file leaves a gap rather than renumbering
// the survivors.
func imageBlocks(files []ReadableBinary, logger *common.Logger) []Block {
	var blocks []Block
	for i, f := range files {
		data, err := f.ReadBytes()
		if err != nil {
			if logger != nil {
				logger.Warn().
					Str("file", f.Name()).
					Int("index", i).
					Str("error", err.Error()).
					Msg("skipping unreadable image")
			}
			continue
		}
		blocks = append(blocks,
			Block{
				Kind:          KindImage,
				Image:         data,
				ImageWidth:    imageWidth,
				ImageHeight:   imageHeight,
				Align:         AlignCenter,
				SpacingBefore: 200,
				SpacingAfter:  100,
			},
			Block{
				Kind:         KindParagraph,
				Text:         fmt.Sprintf("Figure %d: %s", i+1, baseName(f.Name())),
				Italic:       true,
				Size:         18,
				Align:        AlignCenter,
				SpacingAfter: 300,
			},
		)
	}
	return blocks
}

// baseName strips the file extension from an uploaded file name.
func baseName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
