package pdf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// removePages writes raw to w without the given 1-based pages
func removePages(raw []byte, w io.Writer, pageNumbers []int, conf *model.Configuration) error {
	selection := FormatPageSelection(pageNumbers)
	if err := api.RemovePages(bytes.NewReader(raw), w, selection, conf); err != nil {
		return fmt.Errorf("%w: pdfcpu remove %v: %v", ErrPageRemoval, selection, err)
	}
	return nil
}
