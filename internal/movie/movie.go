package movie

// Record is one ranked entry of the chart.
type Record struct {
	Title          string `json:"title"`
	Year           string `json:"year"`
	Duration       string `json:"duration"`
	ContentRating  string `json:"content_rating"`
	AudienceRating string `json:"audience_rating"`
}

// Header returns the column names in field order.
func Header() []string {
	return []string{"title", "year", "duration", "content_rating", "audience_rating"}
}

// Values returns the field values in the same order as Header.
func (r Record) Values() []string {
	return []string{r.Title, r.Year, r.Duration, r.ContentRating, r.AudienceRating}
}
