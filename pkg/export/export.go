package export

import (
	"fmt"
	"strings"
)

// Format names a supported output encoding.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ParseFormat normalises a user supplied format, defaulting to CSV.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", raw)
	}
}

// ContentType returns the MIME type served for f.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/csv; charset=utf-8"
}

// Dataset is tabular export content. Rows are keyed by header.
type Dataset struct {
	Title   string
	Headers []string
	Rows    []map[string]string
}

// Document is a rendered export ready to be served.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Renderer dispatches a dataset to the exporter matching the requested format.
type Renderer struct {
	csv *CSVExporter
	pdf *PDFExporter
}

// NewRenderer wires the CSV and PDF exporters.
func NewRenderer() *Renderer {
	return &Renderer{csv: NewCSVExporter(), pdf: NewPDFExporter()}
}

// Render encodes data as format and names the file after base.
func (r *Renderer) Render(format Format, base string, data Dataset) (*Document, error) {
	var (
		body []byte
		err  error
	)
	switch format {
	case FormatCSV:
		body, err = r.csv.Render(data)
	case FormatPDF:
		body, err = r.pdf.Render(data)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return &Document{
		Filename:    fmt.Sprintf("%s.%s", base, format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}
