// Package pdftest writes small PDF fixtures for tests.
package pdftest

import (
	"path/filepath"
	"testing"

	"github.com/signintech/gopdf"
)

const (
	// BaseWidth is the width in points of page 1; page i is BaseWidth+i-1 wide.
	BaseWidth = 200
	// Height of every fixture page in points.
	Height = 300
)

// Write creates a PDF with the given number of pages at path. Each page has a
// distinct width so that page identity survives splitting.
func Write(t testing.TB, path string, pages int) {
	t.Helper()

	doc := gopdf.GoPdf{}
	doc.Start(gopdf.Config{PageSize: gopdf.Rect{W: BaseWidth, H: Height}})
	for i := 0; i < pages; i++ {
		doc.AddPageWithOption(gopdf.PageOption{
			PageSize: &gopdf.Rect{W: float64(BaseWidth + i), H: Height},
		})
		doc.Line(10, 10, float64(20+i), 50)
	}

	if err := doc.WritePdf(path); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
}

// File writes a fixture named name into a fresh temp directory and returns its path.
func File(t testing.TB, name string, pages int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	Write(t, path, pages)
	return path
}
