// Package pdfrender converts PDF documents into per-page raster
// images for the identifier scanner and the grading client.
package pdfrender

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/gen2brain/go-fitz"
	"github.com/wailsapp/mimetype"
)

var (
	// ErrNotPDF means the input bytes are not a PDF document.
	ErrNotPDF = errors.New("input is not a PDF document")
	// ErrNoPages means the document opened but contains zero pages.
	ErrNoPages = errors.New("document contains no pages")
)

// Renderer rasterizes PDF pages at a fixed resolution. The default of
// 300 DPI is deliberate: embedded QR codes printed at typical sizes
// stop being decodable much below that.
type Renderer struct {
	dpi float64
}

func New(dpi float64) *Renderer {
	if dpi <= 0 {
		dpi = 300
	}
	return &Renderer{dpi: dpi}
}

// DPI returns the configured render resolution.
func (r *Renderer) DPI() float64 {
	return r.dpi
}

// RenderFile reads the file at path and renders every page.
func (r *Renderer) RenderFile(path string) ([]image.Image, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read '%s': %w", path, err)
	}
	pages, err := r.Render(content)
	if err != nil {
		return nil, fmt.Errorf("failed to render '%s': %w", path, err)
	}
	return pages, nil
}

// Render rasterizes every page of the document in original page
// order. It returns exactly one image per page, or an error if the
// bytes are not a PDF, the document cannot be opened, or it has no
// pages. Callers treat any error as "skip this submission".
func (r *Renderer) Render(content []byte) ([]image.Image, error) {
	mType := mimetype.Detect(content)
	if mType == nil || !mType.Is("application/pdf") {
		return nil, ErrNotPDF
	}

	doc, err := fitz.NewFromMemory(content)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer doc.Close()

	n := doc.NumPage()
	if n == 0 {
		return nil, ErrNoPages
	}

	pages := make([]image.Image, 0, n)
	for i := 0; i < n; i++ {
		img, err := doc.ImageDPI(i, r.dpi)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", i+1, err)
		}
		pages = append(pages, img)
	}

	return pages, nil
}
