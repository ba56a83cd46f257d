package certificate

import (
	"bytes"
	"testing"
	"time"
)

func TestRender(t *testing.T) {
	pdf, err := Render(Data{
		ParticipantName: "Dana Park",
		WorkshopTitle:   "Intro to Go",
		WorkshopDate:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("Render() output does not start with a PDF header")
	}
	if len(pdf) < 500 {
		t.Errorf("Render() output is %d bytes, suspiciously small", len(pdf))
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("Intro to Go"); got != "Certificate_Intro to Go.pdf" {
		t.Errorf("FileName() = %q, want %q", got, "Certificate_Intro to Go.pdf")
	}
}
