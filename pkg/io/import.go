package io

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	sterrors "github.com/matzehuels/testspec/pkg/errors"
	"github.com/matzehuels/testspec/pkg/testspec"
)

// ReadSpec decodes a YAML test specification from r.
//
// ReadSpec returns an error carrying [sterrors.ErrCodeParse] if:
//   - The input is empty
//   - The YAML is malformed or does not match the schema
//   - A key is not part of the schema
//   - A required key is missing: title at every level, cases at the root
//   - The stream holds more than one document
//
// ReadSpec does not close r.
func ReadSpec(r io.Reader) (*testspec.Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, sterrors.Wrap(sterrors.ErrCodeIO, err, "read input")
	}
	return DecodeSpec(data)
}

// DecodeSpec decodes a YAML test specification held in memory.
// It applies the same rules as [ReadSpec].
func DecodeSpec(data []byte) (*testspec.Spec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var spec testspec.Spec
	if err := dec.Decode(&spec); err != nil {
		// yaml.v3 reports io.EOF when there is no document at all.
		if errors.Is(err, io.EOF) {
			return nil, sterrors.New(sterrors.ErrCodeParse, "empty document")
		}
		return nil, sterrors.Wrap(sterrors.ErrCodeParse, err, "decode")
	}

	var extra any
	if err := dec.Decode(&extra); err == nil {
		return nil, sterrors.New(sterrors.ErrCodeParse, "multiple YAML documents are not supported")
	} else if !errors.Is(err, io.EOF) {
		return nil, sterrors.Wrap(sterrors.ErrCodeParse, err, "after first document")
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, sterrors.Wrap(sterrors.ErrCodeParse, err, "decode")
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if err := checkRequired(root, 0, "spec"); err != nil {
		return nil, err
	}

	return &spec, nil
}

// childKeys names the list below each level; the leaf level has none.
var childKeys = [...]string{"cases", "children", "children"}

// checkRequired walks the node tree and reports the first item without a
// title key, or a root without cases. Explicit empty values are accepted.
func checkRequired(n *yaml.Node, depth int, path string) error {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.MappingNode {
		return sterrors.New(sterrors.ErrCodeParse, "%s: expected a mapping", path)
	}
	if mappingValue(n, "title") == nil {
		return sterrors.New(sterrors.ErrCodeParse, "%s: missing required key \"title\"", path)
	}
	if depth >= len(childKeys) {
		return nil
	}

	key := childKeys[depth]
	list := mappingValue(n, key)
	if list == nil {
		if depth == 0 {
			return sterrors.New(sterrors.ErrCodeParse, "%s: missing required key %q", path, key)
		}
		return nil
	}
	if list.Kind == yaml.AliasNode && list.Alias != nil {
		list = list.Alias
	}
	if list.Kind != yaml.SequenceNode {
		return nil
	}
	for i, item := range list.Content {
		if err := checkRequired(item, depth+1, fmt.Sprintf("%s.%s[%d]", path, key, i)); err != nil {
			return err
		}
	}
	return nil
}

// mappingValue returns the value node for key, or nil if the key is absent.
func mappingValue(n *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

// ImportSpec reads the YAML file at path and returns the decoded specification.
//
// The error wraps the underlying cause with the file path for context. A
// missing file is reported with [sterrors.ErrCodeFileNotFound].
func ImportSpec(path string) (*testspec.Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sterrors.Wrap(sterrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, sterrors.Wrap(sterrors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return ReadSpec(f)
}
