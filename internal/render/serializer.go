// Package render serializes an assembled content tree into a downloadable
// document. The Serializer interface is the boundary: the content tree is the
// portal's output, the byte-level document format belongs to the serializer.
package render

import "github.com/cordobarg/note-portal/internal/content"

// Serializer turns a content tree into a document blob.
type Serializer interface {
	Serialize(tree *content.Tree) ([]byte, error)
	ContentType() string
}
