package utils

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PathRow is one schedule line of the learning-path document.
type PathRow struct {
	Day      int
	Phase    string
	Topic    string
	Activity string
}

// GenerateCertificatePDF renders the bordered completion certificate.
func GenerateCertificatePDF(studentName, courseName, dateStr, certCode string) ([]byte, error) {
	pdf := gofpdf.New("L", "pt", "Letter", "")
	pdf.AddPage()
	width, height := pdf.GetPageSize()

	// Double border: indigo outer, gold inner
	pdf.SetDrawColor(75, 0, 130)
	pdf.SetLineWidth(5)
	pdf.Rect(36, 36, width-72, height-72, "D")

	pdf.SetDrawColor(212, 175, 55)
	pdf.SetLineWidth(2)
	pdf.Rect(43, 43, width-86, height-86, "D")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 36)
	centerText(pdf, width, 144, "Certificate of Completion")

	pdf.SetFont("Helvetica", "", 14)
	centerText(pdf, width, 180, "This is to certify that")

	pdf.SetFont("Helvetica", "B", 30)
	pdf.SetTextColor(75, 0, 130)
	centerText(pdf, width, 252, studentName)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 14)
	centerText(pdf, width, 302, "has successfully completed the course")

	pdf.SetFont("Helvetica", "B", 24)
	centerText(pdf, width, 360, courseName)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(144, height-144, fmt.Sprintf("Date: %s", dateStr))
	pdf.Text(width-288, height-144, "LMS Instructor")
	pdf.Line(width-288, height-158, width-144, height-158)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(128, 128, 128)
	centerText(pdf, width, height-72, fmt.Sprintf("Verification Code: %s", certCode))
	centerText(pdf, width, height-58, "LMS Platform")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateLearningPathPDF renders the study schedule as a summary plus table.
func GenerateLearningPathPDF(courseName string, totalDays, hoursPerDay, totalHours int, rows []PathRow) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.AddPage()
	width, _ := pdf.GetPageSize()

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 22)
	centerText(pdf, width, 72, fmt.Sprintf("Learning Path: %s", courseName))

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetXY(56, 96)
	pdf.MultiCell(width-112, 18, fmt.Sprintf(
		"Total Duration: %d Days\nDaily Intensity: %d Hours/Day\nTotal Effort: %d Hours",
		totalDays, hoursPerDay, totalHours), "", "L", false)
	pdf.Ln(12)

	colWidths := []float64{50, 100, 150, 180}
	headers := []string{"Day", "Phase", "Topic", "Activity"}

	pdf.SetX(56)
	pdf.SetFillColor(75, 0, 130)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 22, header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFillColor(245, 245, 220)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.SetX(56)
		pdf.CellFormat(colWidths[0], 20, fmt.Sprintf("Day %d", row.Day), "1", 0, "L", true, 0, "")
		pdf.CellFormat(colWidths[1], 20, row.Phase, "1", 0, "L", true, 0, "")
		pdf.CellFormat(colWidths[2], 20, row.Topic, "1", 0, "L", true, 0, "")
		pdf.CellFormat(colWidths[3], 20, row.Activity, "1", 0, "L", true, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func centerText(pdf *gofpdf.Fpdf, pageWidth, y float64, text string) {
	x := (pageWidth - pdf.GetStringWidth(text)) / 2
	pdf.Text(x, y, text)
}
