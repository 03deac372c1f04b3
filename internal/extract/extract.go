package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrNoText              = errors.New("no text could be extracted")
	ErrInvalidPDF          = errors.New("file is not a valid PDF")
)

// Kind identifies a resume document format.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindDOCX Kind = "docx"
	KindHTML Kind = "html"
	KindText Kind = "text"
)

var reWhitespace = regexp.MustCompile(`[ \t\f\r]+`)

// blockElements end a line when markup is flattened to text.
const blockElements = "p, div, li, br, tr, h1, h2, h3, h4, h5, h6"

// KindFromFilename maps a file extension to a Kind.
func KindFromFilename(name string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return KindPDF, nil
	case ".docx":
		return KindDOCX, nil
	case ".html", ".htm":
		return KindHTML, nil
	case ".txt", ".md", ".text":
		return KindText, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, filepath.Ext(name))
}

// Text extracts plain text from a document of the given kind.
// The result is trimmed and never empty on success.
func Text(kind Kind, data []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch kind {
	case KindPDF:
		text, err = pdfText(data)
	case KindDOCX:
		text, err = docxText(data)
	case KindHTML:
		text, err = markupText(bytes.NewReader(data))
	case KindText:
		text = strings.ToValidUTF8(string(data), "")
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, kind)
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

// File reads path and extracts its text, choosing the parser by extension.
func File(path string) (string, error) {
	kind, err := KindFromFilename(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return Text(kind, data)
}

// ── Parsers ──────────────────────────────────────────

func pdfText(data []byte) (string, error) {
	// Header must start with %PDF
	if len(data) < 4 || string(data[:4]) != "%PDF" {
		return "", ErrInvalidPDF
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}

	var sb strings.Builder
	numPages := reader.NumPage()

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Warn().Int("page", i).Err(err).Msg("Failed to extract text from PDF page")
			continue
		}

		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening DOCX: %w", err)
	}
	defer doc.Close()

	// GetContent returns the raw document.xml; break after every paragraph
	// so the markup strip keeps paragraph boundaries.
	xml := strings.ReplaceAll(doc.Editable().GetContent(), "</w:p>", "</w:p>\n")
	return markupText(strings.NewReader(xml))
}

// markupText strips tags and collapses runs of spaces, keeping one line per
// non-blank source line.
func markupText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parsing markup: %w", err)
	}
	doc.Find("script, style").Remove()
	doc.Find(blockElements).Each(func(_ int, sel *goquery.Selection) {
		for _, n := range sel.Nodes {
			if n.Parent != nil {
				n.Parent.InsertBefore(&html.Node{Type: html.TextNode, Data: "\n"}, n.NextSibling)
			}
		}
	})

	lines := strings.Split(doc.Text(), "\n")
	out := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(reWhitespace.ReplaceAllString(line, " ")); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n"), nil
}
