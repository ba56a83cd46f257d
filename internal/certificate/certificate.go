// Package certificate renders attendance certificates as PDF documents.
// Certificates are generated fresh per request and never stored.
package certificate

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Data holds the fields printed on a certificate
type Data struct {
	ParticipantName string
	WorkshopTitle   string
	WorkshopDate    time.Time
}

// Render produces the fixed-layout certificate PDF
func Render(data Data) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 20)
	pdf.Text(35, 50, "Certificate of Completion")

	pdf.SetFont("Helvetica", "", 14)
	pdf.Text(35, 70, fmt.Sprintf("This certifies that %s", data.ParticipantName))
	pdf.Text(35, 80, "has attended the workshop:")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(35, 92, data.WorkshopTitle)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(35, 106, fmt.Sprintf("Date: %s", data.WorkshopDate.Format("2006-01-02")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render certificate: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName builds the download name for a certificate
func FileName(workshopTitle string) string {
	return fmt.Sprintf("Certificate_%s.pdf", workshopTitle)
}
