package glyphs

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"

	"seehuhn.de/go/sfnt"

	"github.com/owmods/fontpatch/internal/fonts"
)

// CoverageError indicates a font whose character map lacks required characters
type CoverageError struct {
	// Path is the font file that was audited.
	Path string
	// Missing holds the uncovered characters in code point order.
	Missing []rune
}

// Error returns the string representation of the coverage failure
func (e *CoverageError) Error() string {
	return fmt.Sprintf("%s is missing glyphs for: %s", e.Path, string(e.Missing))
}

// Auditor checks every distributed font against the required character set
type Auditor struct {
	root     string
	expected string
}

// NewAuditor creates an auditor rooted at dir
func NewAuditor(dir string) *Auditor {
	return &Auditor{
		root:     dir,
		expected: fonts.FontSHA256,
	}
}

// Verify audits every target font under the auditor's root. It fails when
// required is empty, when a target is missing or does not hash to the pinned
// digest, and when any font lacks a glyph for a required character.
func (a *Auditor) Verify(required []rune) error {
	// An empty set means collection went wrong, not that there is nothing
	// to check
	if len(required) == 0 {
		return errors.New("did not detect any Cyrillic characters to verify")
	}

	for _, target := range fonts.TargetPaths(a.root) {
		data, err := os.ReadFile(target)
		if err != nil {
			return fmt.Errorf("expected font at %s: %w", target, err)
		}

		if digest := fonts.Digest(data); digest != a.expected {
			return fmt.Errorf("unexpected font hash at %s: %s", target, digest)
		}

		if err := auditFontData(target, data, required); err != nil {
			return err
		}
	}

	return nil
}

// AuditFont checks that the font file at path maps every required character
// to a glyph
func AuditFont(path string, required []rune) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font: %w", err)
	}

	return auditFontData(path, data, required)
}

// auditFontData runs the coverage check against in-memory font data. The
// best available cmap subtable decides which characters the font covers; an
// unmapped character resolves to glyph 0.
func auditFontData(path string, data []byte, required []rune) error {
	font, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse font %s: %w", path, err)
	}

	cmap, err := font.CMapTable.GetBest()
	if err != nil {
		return fmt.Errorf("character map for %s: %w", path, err)
	}

	var missing []rune
	for _, r := range required {
		if cmap.Lookup(r) == 0 {
			missing = append(missing, r)
		}
	}

	if len(missing) > 0 {
		slices.Sort(missing)
		return &CoverageError{Path: path, Missing: missing}
	}

	return nil
}
