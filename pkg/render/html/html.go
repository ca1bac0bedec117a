// Package html renders a test specification as an HTML fragment.
//
// The Markdown outline from the markdown package is converted with goldmark
// and its GitHub Flavored Markdown extension. The result is a fragment, not
// a full document; callers that need a page wrap it themselves.
package html

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	sterrors "github.com/matzehuels/testspec/pkg/errors"
	"github.com/matzehuels/testspec/pkg/render/markdown"
	"github.com/matzehuels/testspec/pkg/testspec"
)

var converter = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Convert turns Markdown source into HTML.
func Convert(md []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := converter.Convert(md, &buf); err != nil {
		return nil, sterrors.Wrap(sterrors.ErrCodeRender, err, "convert markdown")
	}
	return buf.Bytes(), nil
}

// Render emits s as Markdown and converts it to HTML.
func Render(s *testspec.Spec) ([]byte, error) {
	md, err := markdown.Render(s)
	if err != nil {
		return nil, err
	}
	return Convert([]byte(md))
}
