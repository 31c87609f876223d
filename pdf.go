package main

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth  = 210 // A4 width in mm
	pdfMargin     = 10  // margin in mm
	pdfLineHeight = 5   // line height in mm
	pdfFontSize   = 9
)

// generatePDF writes the count report as a PDF: one row per counted file in
// the same "<count> lines  <path>" form as the terminal output, followed by
// the totals.
func generatePDF(files []FileCount, summary Summary, outputPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	usableWidth := float64(pdfPageWidth - 2*pdfMargin)

	pdf.SetFont("Helvetica", "B", pdfFontSize+3)
	pdf.MultiCell(usableWidth, pdfLineHeight+2, "linebolt report", "", "L", false)
	pdf.Ln(pdfLineHeight / 2)

	pdf.SetFont("Courier", "", pdfFontSize)
	for _, f := range files {
		pdf.MultiCell(usableWidth, pdfLineHeight,
			fmt.Sprintf("%6d lines  %s", f.Lines, f.Path), "", "L", false)
	}

	pdf.Ln(pdfLineHeight)
	pdf.SetFont("Helvetica", "B", pdfFontSize+1)
	pdf.MultiCell(usableWidth, pdfLineHeight,
		fmt.Sprintf("Total lines: %d in %d files", summary.TotalLines, summary.TotalFiles),
		"", "L", false)
	if summary.FailedRoots > 0 {
		pdf.SetFont("Helvetica", "", pdfFontSize)
		pdf.MultiCell(usableWidth, pdfLineHeight,
			fmt.Sprintf("Roots failed to process: %d", summary.FailedRoots), "", "L", false)
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to write PDF %s: %w", outputPath, err)
	}
	return nil
}
