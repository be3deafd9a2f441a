package api

import (
	"archive/zip"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pdf_splitter/config"
	pdfPkg "pdf_splitter/pdf"
	"pdf_splitter/splitter"
)

var errBadRequest = errors.New("bad request")

// upload is a validated PDF saved under the temp directory
type upload struct {
	id       string
	path     string
	filename string
}

func HandleInfo(c *gin.Context, cfg *config.Config) {
	maxPages, err := formPages(c, cfg.Split.Pages)
	if err != nil {
		respondError(c, err)
		return
	}

	up, err := receiveUpload(c, cfg)
	if err != nil {
		respondError(c, err)
		return
	}
	defer os.Remove(up.path)

	res, err := newSplitter(cfg, up.id).Inspect(up.path, maxPages)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_pages":  res.TotalPages,
		"max_pages":    maxPages,
		"parts":        len(res.Chunks),
		"split_needed": res.SplitNeeded(),
	})
}

func HandleSplit(c *gin.Context, cfg *config.Config) {
	maxPages, err := formPages(c, cfg.Split.Pages)
	if err != nil {
		respondError(c, err)
		return
	}
	prefix := cfg.Split.Prefix
	if p := strings.TrimSpace(c.PostForm("prefix")); p != "" {
		prefix = strings.TrimSuffix(sanitizeFilename(p), pdfPkg.Extension)
	}

	up, err := receiveUpload(c, cfg)
	if err != nil {
		respondError(c, err)
		return
	}
	defer os.Remove(up.path)

	workDir := filepath.Join(cfg.Server.TempDir, "split_"+up.id)
	defer os.RemoveAll(workDir)

	res, err := newSplitter(cfg, up.id).Run(splitter.Options{
		Input:     up.path,
		OutputDir: workDir,
		MaxPages:  maxPages,
		Prefix:    prefix,
		Verify:    cfg.Split.Verify,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if !res.SplitNeeded() {
		c.JSON(http.StatusOK, gin.H{
			"total_pages": res.TotalPages,
			"parts":       0,
			"message":     "no split needed",
		})
		return
	}

	base := strings.TrimSuffix(up.filename, filepath.Ext(up.filename))
	c.Header("Content-Type", "application/zip")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", sanitizeFilename(base+"_parts.zip")))
	c.Status(http.StatusOK)

	if err := writeZip(c.Writer, res.Files); err != nil {
		// headers are already sent, the client sees a truncated archive
		logrus.WithField("request_id", up.id).Errorf("streaming parts failed: %v", err)
	}
}

func newSplitter(cfg *config.Config, requestID string) *splitter.Splitter {
	loader := splitter.PDFLoader(pdfPkg.Loader{Strict: cfg.Split.Strict})
	return splitter.New(loader, io.Discard, logrus.WithField("request_id", requestID))
}

// formPages reads the optional "pages" form field
func formPages(c *gin.Context, defaultPages int) (int, error) {
	raw := strings.TrimSpace(c.PostForm("pages"))
	if raw == "" {
		return defaultPages, nil
	}
	pages, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid pages value %q", errBadRequest, raw)
	}
	return pages, nil
}

// receiveUpload validates the "pdf" form file and stores it in the temp directory
func receiveUpload(c *gin.Context, cfg *config.Config) (*upload, error) {
	file, header, err := c.Request.FormFile("pdf")
	if err != nil {
		return nil, fmt.Errorf("%w: no PDF file provided", errBadRequest)
	}
	defer file.Close()

	if err := validatePDFFile(file, header, cfg.Server.MaxFileSize); err != nil {
		return nil, fmt.Errorf("%w: %v", errBadRequest, err)
	}

	if err := ensureTempDir(cfg.Server.TempDir); err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	up := &upload{
		id:       generateUniqueID(),
		filename: sanitizeFilename(header.Filename),
	}
	up.path = filepath.Join(cfg.Server.TempDir, "input_"+up.id+pdfPkg.Extension)

	out, err := os.Create(up.path)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	_, err = out.ReadFrom(file)
	out.Close()
	if err != nil {
		os.Remove(up.path) // Clean up on error
		return nil, fmt.Errorf("failed to save input file: %w", err)
	}

	return up, nil
}

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, errBadRequest) || splitter.IsInputError(err) {
		status = http.StatusBadRequest
	}

	code := splitter.Code(err)
	if errors.Is(err, errBadRequest) {
		code = "bad_request"
	}

	logrus.WithFields(logrus.Fields{"status": status, "code": code}).Warnf("PDF operation error: %v", err)

	errorMsg := err.Error()
	if len(errorMsg) > MaxErrorMessageLength {
		errorMsg = errorMsg[:MaxErrorMessageLength] + "..."
	}
	c.JSON(status, gin.H{"error": errorMsg, "code": code})
}

// writeZip streams the given files into a zip archive, keeping only base names
func writeZip(w io.Writer, files []string) error {
	zw := zip.NewWriter(w)
	for _, path := range files {
		if err := addZipEntry(zw, path); err != nil {
			zw.Close()
			return err
		}
	}
	return zw.Close()
}

func addZipEntry(zw *zip.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	entry, err := zw.CreateHeader(&zip.FileHeader{
		Name:     filepath.Base(path),
		Method:   zip.Deflate,
		Modified: time.Now(),
	})
	if err != nil {
		return err
	}
	_, err = io.Copy(entry, f)
	return err
}

// ensureTempDir creates the temp directory if it doesn't exist
func ensureTempDir(tempDir string) error {
	return os.MkdirAll(tempDir, DefaultFilePermissions)
}

// sanitizeFilename removes path traversal attempts and dangerous characters
func sanitizeFilename(filename string) string {
	// Remove directory separators and path traversal attempts
	filename = strings.ReplaceAll(filename, "..", "")
	filename = strings.ReplaceAll(filename, "/", "_")
	filename = strings.ReplaceAll(filename, "\\", "_")

	// Get just the base filename to prevent path issues
	filename = filepath.Base(filename)

	filename = strings.TrimSpace(filename)

	// If empty after sanitization, use default
	if filename == "" || filename == "." {
		filename = "document.pdf"
	}

	return filename
}

// generateUniqueID generates a unique identifier for temp files
func generateUniqueID() string {
	// Use timestamp + random bytes for uniqueness
	b := make([]byte, 8)
	rand.Read(b)
	timestamp := time.Now().UnixNano()
	return fmt.Sprintf("%d_%s", timestamp, hex.EncodeToString(b))
}

// validatePDFFile checks if the file is a valid PDF by reading the header
func validatePDFFile(file multipart.File, header *multipart.FileHeader, maxSize int64) error {
	if header.Size > maxSize {
		return fmt.Errorf("file size %d exceeds maximum allowed %d bytes", header.Size, maxSize)
	}

	// Read first 4 bytes to check PDF header
	buffer := make([]byte, 4)
	n, err := io.ReadFull(file, buffer)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return fmt.Errorf("failed to read file header: %v", err)
	}

	if n < 4 || string(buffer) != "%PDF" {
		return fmt.Errorf("invalid PDF file: header does not match")
	}

	// Seek back to beginning for subsequent reads
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to reset file position: %v", err)
	}

	return nil
}
