package refdata

// The built-in reference tables ship with the binary and cannot be deleted
// through the admin API. Stored records are merged over them; on a date
// collision the stored label wins.

var defaultYears = []int{2021, 2022, 2023, 2024, 2025}

// DateEntry is one selectable exam sitting.
type DateEntry struct {
	Date  string `json:"date"`
	Label string `json:"label"`
}

var builtinExamDates = map[int][]DateEntry{
	2024: {
		{Date: "2024-01-27", Label: "JEE Main 2024 Session 1 - Day 1"},
		{Date: "2024-01-29", Label: "JEE Main 2024 Session 1 - Day 2"},
		{Date: "2024-01-30", Label: "JEE Main 2024 Session 1 - Day 3"},
		{Date: "2024-01-31", Label: "JEE Main 2024 Session 1 - Day 4"},
		{Date: "2024-02-01", Label: "JEE Main 2024 Session 1 - Day 5"},
		{Date: "2024-04-04", Label: "JEE Main 2024 Session 2 - Day 1"},
		{Date: "2024-04-05", Label: "JEE Main 2024 Session 2 - Day 2"},
		{Date: "2024-04-06", Label: "JEE Main 2024 Session 2 - Day 3"},
		{Date: "2024-04-08", Label: "JEE Main 2024 Session 2 - Day 4"},
		{Date: "2024-04-09", Label: "JEE Main 2024 Session 2 - Day 5"},
	},
	2025: {
		{Date: "2025-01-22", Label: "JEE Main 2025 Session 1 - Day 1"},
		{Date: "2025-01-23", Label: "JEE Main 2025 Session 1 - Day 2"},
		{Date: "2025-01-24", Label: "JEE Main 2025 Session 1 - Day 3"},
		{Date: "2025-01-28", Label: "JEE Main 2025 Session 1 - Day 4"},
		{Date: "2025-01-29", Label: "JEE Main 2025 Session 1 - Day 5"},
		{Date: "2025-04-02", Label: "JEE Main 2025 Session 2 - Day 1"},
		{Date: "2025-04-03", Label: "JEE Main 2025 Session 2 - Day 2"},
		{Date: "2025-04-04", Label: "JEE Main 2025 Session 2 - Day 3"},
		{Date: "2025-04-07", Label: "JEE Main 2025 Session 2 - Day 4"},
		{Date: "2025-04-08", Label: "JEE Main 2025 Session 2 - Day 5"},
	},
}

func IsDefaultYear(year int) bool {
	for _, y := range defaultYears {
		if y == year {
			return true
		}
	}
	return false
}

func isBuiltinDate(year int, date string) bool {
	for _, entry := range builtinExamDates[year] {
		if entry.Date == date {
			return true
		}
	}
	return false
}
