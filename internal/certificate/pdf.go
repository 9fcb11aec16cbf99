package certificate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
)

// PDFIssuer writes A4 landscape PDF certificates into a directory.
type PDFIssuer struct {
	dir       string
	academy   string
	now       func() time.Time
	newSerial func() string
	logger    *slog.Logger
}

var _ Issuer = (*PDFIssuer)(nil)

// Option configures a PDFIssuer.
type Option func(*PDFIssuer)

// WithClock overrides the issue-date clock.
func WithClock(now func() time.Time) Option {
	return func(p *PDFIssuer) { p.now = now }
}

// WithSerials overrides serial number generation.
func WithSerials(next func() string) Option {
	return func(p *PDFIssuer) { p.newSerial = next }
}

// WithLogger sets the logger used for issue events.
func WithLogger(l *slog.Logger) Option {
	return func(p *PDFIssuer) { p.logger = l }
}

// NewPDFIssuer creates an issuer saving into dir. academy is printed in the
// footer of every certificate.
func NewPDFIssuer(dir, academy string, opts ...Option) *PDFIssuer {
	p := &PDFIssuer{
		dir:       dir,
		academy:   academy,
		now:       time.Now,
		newSerial: func() string { return uuid.New().String() },
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Dir returns the output directory.
func (p *PDFIssuer) Dir() string {
	return p.dir
}

// Issue renders req and saves it. The file is written to a temporary name
// and renamed so a failed render never leaves a partial certificate behind.
func (p *PDFIssuer) Issue(ctx context.Context, req Request) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, fmt.Errorf("%w: %w", ErrRendering, err)
	}

	req, err := normalize(req)
	if err != nil {
		return Artifact{}, err
	}

	serial := p.newSerial()

	var buf bytes.Buffer
	if err := p.render(&buf, req, serial, p.now()); err != nil {
		return Artifact{}, fmt.Errorf("%w: %w", ErrRendering, err)
	}

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return Artifact{}, fmt.Errorf("%w: create output dir: %w", ErrRendering, err)
	}

	path := filepath.Join(p.dir, FileName(req))
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return Artifact{}, fmt.Errorf("%w: %w", ErrRendering, err)
	}

	p.logger.Info("certificate issued",
		"serial", serial,
		"course", req.CourseTitle,
		"percentage", req.Percentage,
		"path", path,
	)
	return Artifact{Serial: serial, Path: path}, nil
}

// render lays out the certificate page.
func (p *PDFIssuer) render(w io.Writer, req Request, serial string, issuedAt time.Time) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Certificate of Completion", true)
	pdf.SetAuthor(p.academy, true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Core fonts are cp1252; translate so accented names survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()

	pdf.SetDrawColor(30, 58, 138)
	pdf.SetLineWidth(2)
	pdf.Rect(10, 10, pageW-20, pageH-20, "D")
	pdf.SetLineWidth(0.5)
	pdf.Rect(15, 15, pageW-30, pageH-30, "D")

	line := func(y float64, style string, size float64, text string) {
		pdf.SetFont("Helvetica", style, size)
		pdf.SetXY(20, y)
		pdf.CellFormat(pageW-40, size*0.6, tr(text), "", 0, "C", false, 0, "")
	}

	pdf.SetTextColor(30, 58, 138)
	line(40, "B", 32, "Certificate of Completion")

	pdf.SetTextColor(31, 41, 55)
	line(70, "", 16, "This certifies that")
	line(85, "B", 24, req.LearnerName)
	line(105, "", 16, "has successfully completed the course")
	line(120, "B", 20, req.CourseTitle)
	line(140, "", 16, fmt.Sprintf("with a score of %d%%", req.Percentage))

	pdf.SetTextColor(30, 58, 138)
	line(165, "B", 14, p.academy)

	pdf.SetTextColor(107, 114, 128)
	line(180, "", 10, fmt.Sprintf("Issued %s  ·  Serial %s", issuedAt.Format("2 January 2006"), serial))

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".certificate-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write certificate: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close certificate: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod certificate: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save certificate: %w", err)
	}
	return nil
}
