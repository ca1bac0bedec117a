// Package markdown renders a test specification as a Markdown document.
//
// The document mirrors the tree one heading level per tier:
//
//	# Spec title
//
//	## Primary item
//
//	### Secondary item
//
//	#### Tertiary item
//
//	##### Operations
//
//	1. First step
//	2. Second step
//
//	##### Confirmation
//
//	- [ ] Something to check
//
//	##### Remarks
//
//	- A note
//
// Operations are a numbered procedure, confirmations are unchecked task list
// items and remarks are plain bullets. A subsection heading is written only
// when its list has at least one entry.
package markdown

import (
	"fmt"
	"io"
	"strings"

	sterrors "github.com/matzehuels/testspec/pkg/errors"
	"github.com/matzehuels/testspec/pkg/testspec"
)

// Subsection headings below each tertiary item.
const (
	HeadingOperations    = "Operations"
	HeadingConfirmations = "Confirmation"
	HeadingRemarks       = "Remarks"
)

// Render returns the Markdown document for s.
func Render(s *testspec.Spec) (string, error) {
	var b strings.Builder
	if err := Write(&b, s); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Write writes the Markdown document for s to w.
//
// The only possible failure is a write error from w, returned with
// [sterrors.ErrCodeRender]. Output written before the failure is not
// rolled back; callers that need all-or-nothing output should use [Render].
func Write(w io.Writer, s *testspec.Spec) error {
	mw := &mdWriter{w: w}

	mw.line("# %s", s.Title)
	for _, primary := range s.Cases {
		mw.blank()
		mw.line("## %s", primary.Title)

		for _, secondary := range primary.Children {
			mw.blank()
			mw.line("### %s", secondary.Title)

			for _, tertiary := range secondary.Children {
				mw.blank()
				mw.line("#### %s", tertiary.Title)
				mw.tertiary(tertiary)
			}
		}
	}

	if mw.err != nil {
		return sterrors.Wrap(sterrors.ErrCodeRender, mw.err, "write markdown")
	}
	return nil
}

// mdWriter keeps the first write error and turns later writes into no-ops.
type mdWriter struct {
	w   io.Writer
	err error
}

func (m *mdWriter) line(format string, args ...any) {
	if m.err != nil {
		return
	}
	_, m.err = fmt.Fprintf(m.w, format+"\n", args...)
}

func (m *mdWriter) blank() {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, "\n")
}

func (m *mdWriter) subsection(title string) {
	m.blank()
	m.line("##### %s", title)
	m.blank()
}

func (m *mdWriter) tertiary(t testspec.TertiaryItem) {
	if len(t.Operations) > 0 {
		m.subsection(HeadingOperations)
		for i, op := range t.Operations {
			m.line("%d. %s", i+1, op)
		}
	}
	if len(t.Confirmations) > 0 {
		m.subsection(HeadingConfirmations)
		for _, c := range t.Confirmations {
			m.line("- [ ] %s", c)
		}
	}
	if len(t.Remarks) > 0 {
		m.subsection(HeadingRemarks)
		for _, r := range t.Remarks {
			m.line("- %s", r)
		}
	}
}
