package utils

import "time"

// TrailingWindow devolve o intervalo [hoje - days, hoje] em UTC, truncado para o dia
func TrailingWindow(now time.Time, days int) (start, end time.Time) {
	now = now.UTC()
	end = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start = end.AddDate(0, 0, -days)
	return start, end
}
