// Package view renders the booking page: the booking form, its status line
// and the table of stored bookings.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

const (
	StatusKindSuccess = "success"
	StatusKindError   = "error"

	StatusFixFields = "Please fix the highlighted fields."
	StatusConfirmed = "✅ Booking confirmed! Reference: %s"
	StatusFailed    = "Something went wrong. Please try again."
)

//go:embed templates/*.html
var templates embed.FS

var page = template.Must(template.ParseFS(templates, "templates/index.html"))

// Form holds the values echoed back into the form inputs.
type Form struct {
	Name     string
	Email    string
	Room     string
	Guests   string
	Checkin  string
	Checkout string
	Terms    bool
}

// Row is one line of the bookings table.
type Row struct {
	Ref      string
	Name     string
	Room     string
	Guests   int
	Checkin  string
	Checkout string
}

type Page struct {
	Title       string
	Today       string
	CheckoutMin string
	Rooms       []string
	Form        Form
	Errors      map[string]string
	Status      string
	StatusKind  string
	Bookings    []Row
}

// Has reports whether the bookings table lists ref.
func (p *Page) Has(ref string) bool {
	for _, row := range p.Bookings {
		if row.Ref == ref {
			return true
		}
	}

	return false
}

// Confirmed sets the success status line for ref.
func (p *Page) Confirmed(ref string) {
	p.Status = fmt.Sprintf(StatusConfirmed, ref)
	p.StatusKind = StatusKindSuccess
}

// Failed sets an error status line that names no field.
func (p *Page) Failed(status string) {
	p.Status = status
	p.StatusKind = StatusKindError
}

// Rejected shows errors beside their fields and the generic status line.
func (p *Page) Rejected(errors map[string]string) {
	p.Errors = errors
	p.Status = StatusFixFields
	p.StatusKind = StatusKindError
}

// Render writes the whole page. Every value is escaped for its HTML context.
func Render(w io.Writer, data Page) error {
	if data.CheckoutMin == "" {
		data.CheckoutMin = data.Today
	}

	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	return nil
}

// RenderBytes renders into memory so a failed render never leaves a partial response.
func RenderBytes(data Page) ([]byte, error) {
	var buf bytes.Buffer

	if err := Render(&buf, data); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
