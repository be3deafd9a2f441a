package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var (
	// ErrInvalidDocument is returned when a source cannot be parsed as a PDF.
	ErrInvalidDocument = errors.New("invalid PDF document")

	// ErrPageRange is returned when a deletion request names pages that do not exist
	// or would leave the document empty.
	ErrPageRange = errors.New("page selection out of range")

	// ErrPageRemoval is returned when pdfcpu fails to remove selected pages.
	ErrPageRemoval = errors.New("page removal failed")
)

// Loader parses PDF files into independent in-memory documents.
type Loader struct {
	// Strict enables pdfcpu's strict validation mode. The default is relaxed,
	// which tolerates the minor format violations common in real-world files.
	Strict bool
}

// Load reads and validates the PDF at path. Every call returns a fresh
// Document that shares no state with documents returned earlier.
func (l Loader) Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(raw), l.configuration())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return &Document{
		raw:    raw,
		pages:  ctx.PageCount,
		loader: l,
	}, nil
}

// configuration returns a new pdfcpu configuration. pdfcpu records the running
// command on the configuration, so one is never shared between operations.
func (l Loader) configuration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if l.Strict {
		conf.ValidationMode = model.ValidationStrict
	}
	return conf
}

// Document is a loaded PDF. Deleting pages mutates the document in place;
// the source file on disk is never modified.
type Document struct {
	raw    []byte // current serialized state
	pages  int
	loader Loader
}

// PageCount returns the number of pages currently in the document.
func (d *Document) PageCount() int {
	return d.pages
}

// DeletePages removes the given 1-based page numbers, interpreted against the
// current numbering. Remaining pages are renumbered to stay contiguous.
// On failure the document is left unchanged.
func (d *Document) DeletePages(pageNumbers []int) error {
	if err := ValidatePageNumbers(pageNumbers, d.pages); err != nil {
		return fmt.Errorf("%w: %v", ErrPageRange, err)
	}

	drop := make(map[int]struct{}, len(pageNumbers))
	for _, p := range pageNumbers {
		drop[p] = struct{}{}
	}
	if len(drop) == d.pages {
		return fmt.Errorf("%w: cannot delete all %d pages", ErrPageRange, d.pages)
	}

	var buf bytes.Buffer
	if err := removePages(d.raw, &buf, pageNumbers, d.loader.configuration()); err != nil {
		return err
	}
	d.raw = buf.Bytes()
	d.pages -= len(drop)

	return nil
}

// Save writes the current state of the document to path as a new file.
// A partially written file is removed when serialization fails.
func (d *Document) Save(path string) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, DefaultFilePermissions)
	if err != nil {
		return err
	}

	err = resave(d.raw, out, d.loader.configuration())

	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return err
	}

	return nil
}
