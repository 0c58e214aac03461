// Package extract turns a rendered chart page into movie records.
package extract

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"imdb-top100/internal/movie"
)

const (
	containerSelector = `div[class*='cli-parent']`
	titleSelector     = `h3[class='ipc-title__text']`
	metadataSelector  = `span[class*='cli-title-metadata-item']`
	ratingSelector    = `span[class='ipc-rating-star--rating']`
)

// Metadata items are read by position.
const (
	yearIndex = iota
	durationIndex
	contentRatingIndex
)

var rankPrefix = regexp.MustCompile(`^\d+\.\s*`)

// FieldError reports a field that could not be read from a container.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field=%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Parse reads up to limit containers from html. Containers that fail to
// yield every field are logged and dropped; the rest keep page order.
func Parse(html []byte, limit int, logger *zap.Logger) ([]movie.Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return FromDocument(doc, limit, logger), nil
}

func FromDocument(doc *goquery.Document, limit int, logger *zap.Logger) []movie.Record {
	if logger == nil {
		logger = zap.NewNop()
	}

	containers := doc.Find(containerSelector)
	logger.Debug("Found movie containers", zap.Int("count", containers.Length()))

	var movies []movie.Record
	containers.EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= limit {
			return false
		}
		m, err := Record(sel)
		if err != nil {
			logger.Warn("Error extracting movie", zap.Int("index", i), zap.Error(err))
			return true
		}
		movies = append(movies, m)
		return true
	})
	return movies
}

// Record reads one container.
func Record(sel *goquery.Selection) (movie.Record, error) {
	title := sel.Find(titleSelector).First()
	if title.Length() == 0 {
		return movie.Record{}, &FieldError{Field: "title", Err: fmt.Errorf("no element matches %s", titleSelector)}
	}

	metadata := sel.Find(metadataSelector)
	year, err := metadataAt(metadata, yearIndex, "year")
	if err != nil {
		return movie.Record{}, err
	}
	duration, err := metadataAt(metadata, durationIndex, "duration")
	if err != nil {
		return movie.Record{}, err
	}
	contentRating, err := metadataAt(metadata, contentRatingIndex, "content_rating")
	if err != nil {
		return movie.Record{}, err
	}

	// The rating sits next to the container, not inside it.
	rating := sel.Parent().Find(ratingSelector).First()
	if rating.Length() == 0 {
		return movie.Record{}, &FieldError{Field: "audience_rating", Err: fmt.Errorf("no element matches %s", ratingSelector)}
	}

	return movie.Record{
		Title:          StripRank(text(title)),
		Year:           year,
		Duration:       duration,
		ContentRating:  contentRating,
		AudienceRating: text(rating),
	}, nil
}

// StripRank removes a leading "<number>. " rank prefix.
func StripRank(title string) string {
	return rankPrefix.ReplaceAllString(title, "")
}

func metadataAt(items *goquery.Selection, index int, field string) (string, error) {
	if index >= items.Length() {
		return "", &FieldError{
			Field: field,
			Err:   fmt.Errorf("metadata index %d out of range (have %d)", index, items.Length()),
		}
	}
	return text(items.Eq(index)), nil
}

func text(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}
