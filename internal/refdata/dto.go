package refdata

type CreateYearRequest struct {
	Year int `json:"year"`
}

type CreateExamDateRequest struct {
	Year  int    `json:"year"`
	Date  string `json:"date"`
	Label string `json:"label"`
}
