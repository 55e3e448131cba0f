package book

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Precision is the granularity of a published date.
type Precision string

const (
	PrecisionYear  Precision = "year"
	PrecisionMonth Precision = "month"
	PrecisionDate  Precision = "date"
)

// Precisions lists the date precisions in picker order.
var Precisions = []Precision{PrecisionYear, PrecisionMonth, PrecisionDate}

// Valid reports whether p is one of the three known precisions.
func (p Precision) Valid() bool {
	switch p {
	case PrecisionYear, PrecisionMonth, PrecisionDate:
		return true
	}
	return false
}

// Label is the date picker label for the precision.
func (p Precision) Label() string {
	switch p {
	case PrecisionYear:
		return "Tahun"
	case PrecisionMonth:
		return "Bulan & Tahun"
	}
	return "Tanggal, Bulan & Tahun"
}

// PublishedDate is a calendar date together with the precision it was
// entered at.
type PublishedDate struct {
	Precision Precision `json:"precision" yaml:"precision"`
	Date      time.Time `json:"date" yaml:"date"`
}

// NewPublishedDate returns a normalized published date.
func NewPublishedDate(p Precision, t time.Time) PublishedDate {
	return PublishedDate{Precision: p, Date: t}.Normalize()
}

// Normalize truncates the date to UTC midnight and zeroes the components the
// precision does not carry: month and day for year, day for month.
func (d PublishedDate) Normalize() PublishedDate {
	y, m, day := d.Date.Date()
	switch d.Precision {
	case PrecisionYear:
		m, day = time.January, 1
	case PrecisionMonth:
		day = 1
	}
	d.Date = time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return d
}

// Format renders the date for display at its precision.
func (d PublishedDate) Format() string {
	switch d.Precision {
	case PrecisionYear:
		return d.Date.Format("2006")
	case PrecisionMonth:
		return d.Date.Format("January 2006")
	}
	return ordinal(d.Date.Day()) + d.Date.Format(" January 2006")
}

func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// Category is an entry of the static category registry.
type Category struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Book represents a book record.
type Book struct {
	ID            int           `json:"id" yaml:"id"`
	Title         string        `json:"title" yaml:"title"`
	Author        string        `json:"author" yaml:"author"`
	Description   string        `json:"description" yaml:"description"`
	ImageURL      string        `json:"image_url" yaml:"image_url"`
	CategoryIDs   []int         `json:"category_ids" yaml:"category_ids"`
	PublishedDate PublishedDate `json:"published_date" yaml:"published_date"`
}

// Clone returns a copy that shares no slices with b.
func (b Book) Clone() Book {
	if b.CategoryIDs != nil {
		b.CategoryIDs = append([]int(nil), b.CategoryIDs...)
	}
	return b
}

// View is a book decorated with its resolved categories.
type View struct {
	Book
	Categories     []Category `json:"categories"`
	Published      string     `json:"published"`
	PrecisionLabel string     `json:"precision_label"`
}

// Catalog is a consistent snapshot of the catalog state.
type Catalog struct {
	Books      []Book
	Categories []Category
	Carousel   Carousel
	Version    uint64
}
