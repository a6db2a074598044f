package glyphs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/owmods/fontpatch/internal/fonts"
)

// writeFixtureFont writes the Go Regular test font to path, creating parent
// directories. Go Regular covers the basic Cyrillic block but none of the
// historic letters, which makes it usable as both a passing and a failing
// fixture.
func writeFixtureFont(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, goregular.TTF, 0644); err != nil {
		t.Fatalf("write fixture font: %v", err)
	}
}

func TestAuditFontCovered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.ttf")
	writeFixtureFont(t, path)

	if err := AuditFont(path, []rune("АБВГДЕЁабвгдеёя")); err != nil {
		t.Errorf("AuditFont() error = %v, want nil", err)
	}
}

func TestAuditFontMissingGlyphs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.ttf")
	writeFixtureFont(t, path)

	// U+0466 and U+0468 are historic letters outside the fixture font;
	// the covered characters must not be reported alongside them
	required := []rune{'Ѩ', 'А', 'Ѧ', 'я'}

	err := AuditFont(path, required)

	var coverageErr *CoverageError
	if !errors.As(err, &coverageErr) {
		t.Fatalf("AuditFont() error = %v, want *CoverageError", err)
	}

	if want := "ѦѨ"; string(coverageErr.Missing) != want {
		t.Errorf("Missing = %q, want %q", string(coverageErr.Missing), want)
	}
	if !strings.Contains(err.Error(), "is missing glyphs for: ѦѨ") {
		t.Errorf("unexpected error message: %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error does not name the font file: %v", err)
	}
}

func TestAuditFontUnparseable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.ttf")
	if err := os.WriteFile(path, []byte("this is not a font"), 0644); err != nil {
		t.Fatalf("write junk: %v", err)
	}

	if err := AuditFont(path, []rune{'А'}); err == nil {
		t.Fatal("AuditFont() expected error for an unparseable font")
	}
}

func TestAuditFontMissingFile(t *testing.T) {
	if err := AuditFont(filepath.Join(t.TempDir(), "absent.ttf"), []rune{'А'}); err == nil {
		t.Fatal("AuditFont() expected error for a missing file")
	}
}

func TestVerifyEmptyRequiredSet(t *testing.T) {
	auditor := NewAuditor(t.TempDir())

	err := auditor.Verify(nil)
	if err == nil || !strings.Contains(err.Error(), "did not detect any Cyrillic characters") {
		t.Fatalf("Verify() error = %v, want empty-set failure", err)
	}
}

func TestVerifyMissingTarget(t *testing.T) {
	auditor := NewAuditor(t.TempDir())
	auditor.expected = fonts.Digest(goregular.TTF)

	err := auditor.Verify([]rune{'А'})
	if err == nil || !strings.Contains(err.Error(), "expected font at") {
		t.Fatalf("Verify() error = %v, want missing-target failure", err)
	}
}

func TestVerifyDigestMismatch(t *testing.T) {
	root := t.TempDir()
	for _, target := range fonts.TargetPaths(root) {
		writeFixtureFont(t, target)
	}

	// The production digest never matches the fixture font
	auditor := NewAuditor(root)

	err := auditor.Verify([]rune{'А'})
	if err == nil || !strings.Contains(err.Error(), "unexpected font hash") {
		t.Fatalf("Verify() error = %v, want digest failure", err)
	}
}

func TestVerifyPasses(t *testing.T) {
	root := t.TempDir()
	for _, target := range fonts.TargetPaths(root) {
		writeFixtureFont(t, target)
	}

	auditor := NewAuditor(root)
	auditor.expected = fonts.Digest(goregular.TTF)

	if err := auditor.Verify([]rune("АЁЯаёя")); err != nil {
		t.Errorf("Verify() error = %v, want nil", err)
	}
}

func TestVerifyReportsCoverageGap(t *testing.T) {
	root := t.TempDir()
	for _, target := range fonts.TargetPaths(root) {
		writeFixtureFont(t, target)
	}

	auditor := NewAuditor(root)
	auditor.expected = fonts.Digest(goregular.TTF)

	err := auditor.Verify([]rune{'А', 'Ѩ'})

	var coverageErr *CoverageError
	if !errors.As(err, &coverageErr) {
		t.Fatalf("Verify() error = %v, want *CoverageError", err)
	}
	if want := fonts.TargetPaths(root)[0]; coverageErr.Path != want {
		t.Errorf("CoverageError.Path = %s, want %s", coverageErr.Path, want)
	}
	if string(coverageErr.Missing) != "Ѩ" {
		t.Errorf("Missing = %q, want %q", string(coverageErr.Missing), "Ѩ")
	}
}
