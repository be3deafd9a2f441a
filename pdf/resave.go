package pdf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// resave re-serializes a PDF unchanged apart from pdfcpu's optimization
func resave(raw []byte, w io.Writer, conf *model.Configuration) error {
	if err := api.Optimize(bytes.NewReader(raw), w, conf); err != nil {
		return fmt.Errorf("pdfcpu optimize failed: %w", err)
	}
	return nil
}
