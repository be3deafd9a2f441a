package pdf

import (
	"fmt"

	pdflib "github.com/ledongthuc/pdf"
)

// VerifyPageCount re-opens a written file with an independent PDF reader
// and checks that it holds exactly want pages.
func VerifyPageCount(path string, want int) (err error) {
	defer func() {
		// ledongthuc/pdf panics on some malformed inputs
		if r := recover(); r != nil {
			err = fmt.Errorf("read %q: %v", path, r)
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	if got := reader.NumPage(); got != want {
		return fmt.Errorf("%q has %d pages, expected %d", path, got, want)
	}
	return nil
}
