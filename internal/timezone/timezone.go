package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// fuso único configurado para toda a aplicação
var current = DefaultTimezone

func Configure(tz string) {
	if IsValid(tz) {
		current = tz
	}
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location() *time.Location {
	if loc, err := time.LoadLocation(current); err == nil {
		return loc
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today retorna a data de hoje à meia-noite no fuso configurado.
func Today() time.Time {
	now := Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, Location())
}
