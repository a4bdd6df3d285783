package question

import (
	"net/url"
	"testing"
)

func TestParseListOptions(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		opts := ParseListOptions(url.Values{})
		if opts.Subject != "" || opts.PYQType != "" || opts.Shift != "" || opts.Year != nil {
			t.Errorf("empty query must leave all filters unset: %+v", opts)
		}
		if got := opts.OrderClause(); got != "created_at DESC, seq ASC" {
			t.Errorf("default order clause. got %q", got)
		}
	})

	t.Run("AllSentinelClearsPYQFilter", func(t *testing.T) {
		opts := ParseListOptions(url.Values{"pyqType": {"all"}})
		if opts.PYQType != "" {
			t.Errorf("pyqType=all must mean no filter, got %q", opts.PYQType)
		}
	})

	t.Run("SessionAliasForShift", func(t *testing.T) {
		opts := ParseListOptions(url.Values{"session": {"Session 2"}})
		if opts.Shift != "Session 2" {
			t.Errorf("session param should populate shift, got %q", opts.Shift)
		}

		// Explicit shift wins over the alias.
		opts = ParseListOptions(url.Values{"shift": {"Session 1"}, "session": {"Session 2"}})
		if opts.Shift != "Session 1" {
			t.Errorf("shift should win over session, got %q", opts.Shift)
		}
	})

	t.Run("YearParsing", func(t *testing.T) {
		opts := ParseListOptions(url.Values{"year": {"2024"}})
		if opts.Year == nil || *opts.Year != 2024 {
			t.Errorf("year filter not parsed: %+v", opts.Year)
		}

		opts = ParseListOptions(url.Values{"year": {"not-a-year"}})
		if opts.Year != nil {
			t.Errorf("malformed year must be ignored, got %v", *opts.Year)
		}
	})

	t.Run("SortWhitelist", func(t *testing.T) {
		opts := ParseListOptions(url.Values{"sortBy": {"subject"}, "sortOrder": {"asc"}})
		if got := opts.OrderClause(); got != "subject ASC, seq ASC" {
			t.Errorf("order clause. got %q", got)
		}

		// Unknown fields fall back to the default column; this also blocks
		// SQL injection through sortBy.
		opts = ParseListOptions(url.Values{"sortBy": {"seq; DROP TABLE questions"}})
		if got := opts.OrderClause(); got != "created_at DESC, seq ASC" {
			t.Errorf("unknown sortBy must fall back, got %q", got)
		}
	})

	t.Run("SortOrderNormalized", func(t *testing.T) {
		opts := ParseListOptions(url.Values{"sortOrder": {"ASC"}})
		if opts.SortOrder != "asc" {
			t.Errorf("sortOrder not lowercased: %q", opts.SortOrder)
		}

		opts = ParseListOptions(url.Values{"sortOrder": {"sideways"}})
		if opts.SortOrder != "desc" {
			t.Errorf("invalid sortOrder must default to desc, got %q", opts.SortOrder)
		}
	})
}
