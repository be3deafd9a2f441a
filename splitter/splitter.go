// Package splitter partitions a PDF into sequential, page-bounded parts.
//
// A run moves through Validated, Loaded and Planned before materializing each
// chunk in order. Any failure ends the run; parts written before the failing
// chunk stay on disk.
package splitter

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"pdf_splitter/pdf"
)

// Options describes a single run. It is not modified by Run.
type Options struct {
	Input     string
	OutputDir string
	MaxPages  int
	Prefix    string
	// Verify re-reads every written part and checks its page count.
	Verify bool
}

// Document is a loaded source document. DeletePages takes 1-based page
// numbers and mutates the document in place.
type Document interface {
	PageCount() int
	DeletePages(pageNumbers []int) error
	Save(path string) error
}

// LoadFunc loads a fresh, unmodified Document from path.
type LoadFunc func(path string) (Document, error)

// PDFLoader adapts a pdf.Loader to a LoadFunc.
func PDFLoader(l pdf.Loader) LoadFunc {
	return func(path string) (Document, error) {
		doc, err := l.Load(path)
		if err != nil {
			return nil, err
		}
		return doc, nil
	}
}

// Result summarizes a completed run.
type Result struct {
	TotalPages int
	Chunks     []Chunk
	Files      []string
}

// SplitNeeded reports whether the source exceeded the page limit.
func (r *Result) SplitNeeded() bool {
	return len(r.Chunks) > 0
}

// Splitter runs splits. Progress lines go to out, diagnostics to log.
type Splitter struct {
	load   LoadFunc
	verify func(path string, pages int) error
	out    io.Writer
	log    logrus.FieldLogger
}

// New creates a Splitter. A nil out discards progress output and a nil log
// uses the standard logrus logger.
func New(load LoadFunc, out io.Writer, log logrus.FieldLogger) *Splitter {
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Splitter{
		load:   load,
		verify: pdf.VerifyPageCount,
		out:    out,
		log:    log,
	}
}

// Run splits opts.Input into parts of at most opts.MaxPages pages written to
// opts.OutputDir. When the source does not exceed the limit nothing is written
// and the returned Result has no chunks.
func (s *Splitter) Run(opts Options) (*Result, error) {
	started := time.Now()
	log := s.log.WithField("input", opts.Input)

	res, err := s.run(opts, log)
	if err != nil {
		log.WithFields(logrus.Fields{
			"code":   Code(err),
			"dur_ms": time.Since(started).Milliseconds(),
		}).Warn(err)
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"parts":  len(res.Files),
		"dur_ms": time.Since(started).Milliseconds(),
	}).Info("split finished")
	return res, nil
}

func (s *Splitter) run(opts Options, log logrus.FieldLogger) (*Result, error) {
	if opts.MaxPages < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageLimit, opts.MaxPages)
	}
	if err := resolveInputs(opts); err != nil {
		return nil, err
	}
	log.WithField("output_dir", opts.OutputDir).Debug("inputs validated")

	total, err := s.pageCount(opts.Input)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(s.out, "Loaded PDF: %q (Total pages: %d)\n", opts.Input, total)
	log.WithField("pages", total).Debug("document loaded")

	res := &Result{TotalPages: total}
	if total <= opts.MaxPages {
		fmt.Fprintf(s.out, "File has %d pages, which is not greater than the limit of %d. No split needed.\n", total, opts.MaxPages)
		return res, nil
	}

	chunks, err := Plan(total, opts.MaxPages)
	if err != nil {
		return nil, err
	}
	res.Chunks = chunks
	fmt.Fprintf(s.out, "Splitting into %d part(s) (max %d pages per file)...\n", len(chunks), opts.MaxPages)
	log.WithField("parts", len(chunks)).Debug("chunks planned")

	for i, chunk := range chunks {
		name := PartName(opts.Prefix, i+1)
		path := filepath.Join(opts.OutputDir, name)

		fmt.Fprintf(s.out, "Writing [%s] (%s)... ", name, chunk)
		if err := s.materialize(opts, chunk, total, path); err != nil {
			fmt.Fprintln(s.out, "Failed.")
			return nil, err
		}
		fmt.Fprintln(s.out, "Done.")
		log.WithFields(logrus.Fields{"part": i + 1, "file": path}).Debug("part written")

		res.Files = append(res.Files, path)
	}

	fmt.Fprintf(s.out, "All parts saved successfully to: %q\n", opts.OutputDir)
	return res, nil
}

// Inspect loads the source once and reports how it would be split, without
// writing anything.
func (s *Splitter) Inspect(input string, maxPages int) (*Result, error) {
	if maxPages < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageLimit, maxPages)
	}
	total, err := s.pageCount(input)
	if err != nil {
		return nil, err
	}

	res := &Result{TotalPages: total}
	if total > maxPages {
		if res.Chunks, err = Plan(total, maxPages); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (s *Splitter) pageCount(input string) (int, error) {
	doc, err := s.load(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidDocument, input, err)
	}
	return doc.PageCount(), nil
}

// materialize writes one chunk. The source is reloaded for every chunk
// because page deletion mutates the document in place.
func (s *Splitter) materialize(opts Options, chunk Chunk, total int, path string) error {
	doc, err := s.load(opts.Input)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidDocument, opts.Input, err)
	}

	if drop := chunk.complement(total); len(drop) > 0 {
		if err := doc.DeletePages(drop); err != nil {
			return fmt.Errorf("%w for %s: %w", ErrPageDeletionFailed, chunk, err)
		}
	}

	if err := doc.Save(path); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrOutputWriteFailed, path, err)
	}

	if opts.Verify {
		if err := s.verify(path, chunk.Size()); err != nil {
			return fmt.Errorf("%w: %w", ErrVerifyFailed, err)
		}
	}
	return nil
}

// PartName returns the file name of the n-th part, n starting at 1.
func PartName(prefix string, n int) string {
	return fmt.Sprintf("%s_part%d%s", prefix, n, pdf.Extension)
}
