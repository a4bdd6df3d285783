package question

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// PYQTypeAll is the sentinel filter value meaning "no pyqType filter".
const PYQTypeAll = "all"

// ListOptions is the normalized form of the untrusted list query parameters.
type ListOptions struct {
	Subject   string
	PYQType   string
	Shift     string
	Year      *int
	SortBy    string
	SortOrder string
}

// sortColumns whitelists the request-facing field names against real columns.
// Anything else falls back to the default sort.
var sortColumns = map[string]string{
	"createdAt":          "created_at",
	"questionNo":         "question_no",
	"question":           "question_text",
	"subject":            "subject",
	"topic":              "topic",
	"difficulty":         "difficulty",
	"pyqType":            "pyq_type",
	"shift":              "shift",
	"year":               "year",
	"examDate":           "exam_date",
	"correctOptionIndex": "correct_option_index",
}

const defaultSortColumn = "created_at"

// ParseListOptions normalizes the raw query string. "session" is accepted as
// an alias for "shift"; a pyqType of "all" (or empty) means unfiltered.
func ParseListOptions(values url.Values) ListOptions {
	opts := ListOptions{
		Subject:   values.Get("subject"),
		PYQType:   values.Get("pyqType"),
		Shift:     values.Get("shift"),
		SortBy:    values.Get("sortBy"),
		SortOrder: strings.ToLower(values.Get("sortOrder")),
	}

	if opts.Shift == "" {
		opts.Shift = values.Get("session")
	}
	if opts.PYQType == PYQTypeAll {
		opts.PYQType = ""
	}
	if yearStr := values.Get("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			opts.Year = &year
		}
	}
	if opts.SortOrder != "asc" && opts.SortOrder != "desc" {
		opts.SortOrder = "desc"
	}

	return opts
}

// OrderClause builds the ORDER BY expression. Ties are always broken by the
// store-assigned seq so repeated identical requests list rows in the same
// order.
func (o ListOptions) OrderClause() string {
	column, ok := sortColumns[o.SortBy]
	if !ok {
		column = defaultSortColumn
	}
	return fmt.Sprintf("%s %s, seq ASC", column, strings.ToUpper(o.SortOrder))
}
