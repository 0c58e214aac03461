// Package report prints extracted movies for a human reader.
package report

import (
	"fmt"
	"io"
	"strings"

	"imdb-top100/internal/movie"
)

var separator = strings.Repeat("-", 150)

// Print writes each movie as labeled lines followed by a separator.
func Print(w io.Writer, movies []movie.Record) {
	for _, m := range movies {
		fmt.Fprintf(w, "Title: %s\n", m.Title)
		fmt.Fprintf(w, "Year: %s\n", m.Year)
		fmt.Fprintf(w, "Duration: %s\n", m.Duration)
		fmt.Fprintf(w, "Content Rating: %s\n", m.ContentRating)
		fmt.Fprintf(w, "Audience Rating: %s\n", m.AudienceRating)
		fmt.Fprintln(w, separator)
	}
}

func Saved(w io.Writer, excelFile, jsonFile string) {
	fmt.Fprintf(w, "\nSaved movies to '%s' and '%s'\n", excelFile, jsonFile)
}

func NoMovies(w io.Writer) {
	fmt.Fprintln(w, "No movies extracted.")
}
