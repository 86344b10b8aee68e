package services

import "time"

const dateLayout = "2006-01-02"

// Границы диапазона, когда одна из дат не задана.
var (
	minPostTime = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxPostTime = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
)

// ResolveDateRange переводит startDate/endDate (YYYY-MM-DD, обе опциональны)
// в инклюзивный диапазон [from, to] для фильтра по posttime.
//
// Если обе даты пусты — берётся текущий день целиком (UTC).
// Иначе: startDate — полночь указанного дня (или минимум), endDate — 23:59:59
// указанного дня (или максимум).
func ResolveDateRange(startDate, endDate string, now time.Time) (time.Time, time.Time, error) {
	if startDate == "" && endDate == "" {
		y, m, d := now.UTC().Date()
		from := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		to := from.Add(24*time.Hour - time.Nanosecond)
		return from, to, nil
	}

	from := minPostTime
	if startDate != "" {
		t, err := time.ParseInLocation(dateLayout, startDate, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, NewValidationError("startDate", "ожидается формат YYYY-MM-DD")
		}
		from = t
	}

	to := maxPostTime
	if endDate != "" {
		t, err := time.ParseInLocation(dateLayout, endDate, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, NewValidationError("endDate", "ожидается формат YYYY-MM-DD")
		}
		to = t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	}

	return from, to, nil
}

// ParsePostTime принимает posttime в RFC3339 или без зоны; «наивное» время
// трактуется как UTC.
func ParsePostTime(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, NewValidationError("posttime", "не удалось разобрать дату/время")
}
