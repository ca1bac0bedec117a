// Package testspec defines the in-memory tree of a test specification.
//
// A specification is a fixed four-level hierarchy:
//
//	Spec
//	 └── PrimaryItem      (cases)
//	      └── SecondaryItem  (children)
//	           └── TertiaryItem (children, leaf)
//
// Each [TertiaryItem] carries three independent ordered lists of free text:
// the operations to perform, the confirmations to check, and remarks.
//
// The types are passive value carriers. Slices keep document order, which is
// also render order, and titles are opaque (they may repeat or be empty).
// Renderers in [github.com/matzehuels/testspec/pkg/render] read the tree and
// never modify it. Decoding from YAML lives in
// [github.com/matzehuels/testspec/pkg/io].
package testspec

// Spec is the root of a test specification document.
type Spec struct {
	Title string        `yaml:"title" json:"title"`
	Cases []PrimaryItem `yaml:"cases,omitempty" json:"cases,omitempty"`
}

// PrimaryItem groups related secondary items (a test category).
type PrimaryItem struct {
	Title    string          `yaml:"title" json:"title"`
	Children []SecondaryItem `yaml:"children,omitempty" json:"children,omitempty"`
}

// SecondaryItem groups tertiary test cases.
type SecondaryItem struct {
	Title    string         `yaml:"title" json:"title"`
	Children []TertiaryItem `yaml:"children,omitempty" json:"children,omitempty"`
}

// TertiaryItem is a single test case.
//
// A nil list and an empty list are equivalent.
type TertiaryItem struct {
	Title         string   `yaml:"title" json:"title"`
	Operations    []string `yaml:"operations,omitempty" json:"operations,omitempty"`
	Confirmations []string `yaml:"confirmations,omitempty" json:"confirmations,omitempty"`
	Remarks       []string `yaml:"remarks,omitempty" json:"remarks,omitempty"`
}
