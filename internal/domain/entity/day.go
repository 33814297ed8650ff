package entity

import "time"

// DateLayout formato de fecha de calendario usado en la API y en la base de datos.
const DateLayout = "2006-01-02"

// Day normaliza un instante a su día de calendario: medianoche UTC del año/mes/día
// que t tiene en su propia zona horaria. Las columnas DATE de PostgreSQL se leen así.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today devuelve el día de calendario actual en loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return Day(now.In(loc))
}

// ParseDay interpreta una fecha YYYY-MM-DD.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}
