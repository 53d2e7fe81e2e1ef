package utils

import "time"

// ParseDate interpreta uma data no formato YYYY-MM-DD vinda da query string.
// String vazia significa "não informado" e retorna nil sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
