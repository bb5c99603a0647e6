package gofpdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"fashionai/go_backend/internal/domain/closet"
)

type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(board closet.Collection) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Outfit board", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, trim(board.Name, 60))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(60, 7, "Brand")
	pdf.Cell(30, 7, "Price")
	pdf.Cell(100, 7, "Link")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, p := range board.Products {
		pdf.Cell(60, 6, trim(p.Brand, 35))
		pdf.Cell(30, 6, trim(p.Price, 15))
		pdf.Cell(100, 6, trim(p.Link, 60))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("%d items", len(board.Products)))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Generated: %s", time.Now().Format(time.RFC3339)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "..."
}
