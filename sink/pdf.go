package sink

import (
	"context"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/sanodmendis/ShuffleRooster/types"
)

// FormatPDF names the PDF sink.
const FormatPDF = "pdf"

// DefaultPDFTitle is the heading printed above the table.
const DefaultPDFTitle = "Student Groups"

const (
	pdfMargin    = 12.7 // half an inch, in mm
	pdfRowHeight = 7.0
	pdfFontSize  = 10.0
)

type rgb struct{ r, g, b int }

var (
	headerFill = rgb{128, 128, 128}
	headerText = rgb{245, 245, 245}
	bodyFill   = rgb{245, 245, 220}
	gridColor  = rgb{0, 0, 0}
)

// PDF writes a partition as a table on letter-sized pages.
//
// The header row is grey with white bold text, the body is beige, and every
// cell is outlined. The header is repeated on each page.
type PDF struct {
	w     io.Writer
	title string
}

var _ types.RecordSink = (*PDF)(nil)

// PDFOption configures a PDF sink.
type PDFOption func(*PDF)

// WithTitle overrides the heading printed above the table.
func WithTitle(title string) PDFOption {
	return func(p *PDF) {
		if title != "" {
			p.title = title
		}
	}
}

// NewPDF creates a PDF sink writing to w.
func NewPDF(w io.Writer, opts ...PDFOption) *PDF {
	p := &PDF{w: w, title: DefaultPDFTitle}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Format returns the format name.
func (s *PDF) Format() string {
	return FormatPDF
}

// WritePartition renders the table and writes the document.
func (s *PDF) WritePartition(ctx context.Context, p *types.Partition) error {
	if err := checkPartition(ctx, p); err != nil {
		return err
	}

	doc := fpdf.New("P", "mm", "Letter", "")
	doc.SetTitle(s.title, true)
	doc.SetCreator("ShuffleRooster", true)
	doc.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	doc.SetAutoPageBreak(false, pdfMargin)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := doc.GetPageSize()
	columns := p.Columns()
	colW := (pageW - 2*pdfMargin) / float64(len(columns))

	header := func() {
		setFill(doc, headerFill)
		setText(doc, headerText)
		doc.SetFont("Helvetica", "B", pdfFontSize)
		for _, c := range columns {
			doc.CellFormat(colW, pdfRowHeight, fit(doc, tr(c), colW), "1", 0, "C", true, 0, "")
		}
		doc.Ln(-1)
		setFill(doc, bodyFill)
		setText(doc, rgb{0, 0, 0})
		doc.SetFont("Helvetica", "", pdfFontSize)
	}

	doc.AddPage()
	doc.SetDrawColor(gridColor.r, gridColor.g, gridColor.b)
	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 12, tr(s.title), "", 1, "C", false, 0, "")
	doc.Ln(4)
	header()

	for _, row := range p.Rows() {
		if doc.GetY()+pdfRowHeight > pageH-pdfMargin {
			doc.AddPage()
			header()
		}
		for _, v := range row {
			doc.CellFormat(colW, pdfRowHeight, fit(doc, tr(v), colW), "1", 0, "C", true, 0, "")
		}
		doc.Ln(-1)
	}

	if err := doc.Output(s.w); err != nil {
		return unwritable(FormatPDF, err)
	}

	return nil
}

func setFill(doc *fpdf.Fpdf, c rgb) {
	doc.SetFillColor(c.r, c.g, c.b)
}

func setText(doc *fpdf.Fpdf, c rgb) {
	doc.SetTextColor(c.r, c.g, c.b)
}

// fit truncates s so that it fits a cell of width w, marking the cut with "..".
func fit(doc *fpdf.Fpdf, s string, w float64) string {
	limit := w - 2*doc.GetCellMargin()
	if doc.GetStringWidth(s) <= limit {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && doc.GetStringWidth(string(r)+"..") > limit {
		r = r[:len(r)-1]
	}

	return string(r) + ".."
}
