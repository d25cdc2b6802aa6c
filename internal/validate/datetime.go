package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthRe   = regexp.MustCompile(`^\d{4}-\d{2}$`)
	timeRe    = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	digitsRe  = regexp.MustCompile(`\D`)
)

// ValidISODate reports whether s looks like YYYY-MM-DD.
func ValidISODate(s string) bool { return isoDateRe.MatchString(s) }

// ValidMonth reports whether s looks like YYYY-MM.
func ValidMonth(s string) bool { return monthRe.MatchString(s) }

// NormalizeTime turns raw user input into HH:mm. Non-digits are stripped, so
// "1430", "14:30" and "14h30" all normalize to "14:30"; three digits get a
// leading zero ("930" -> "09:30"). Inputs that do not land on a valid
// 24-hour time (e.g. "2561") are rejected.
func NormalizeTime(raw string) (string, error) {
	digits := digitsRe.ReplaceAllString(raw, "")
	if len(digits) == 3 {
		digits = "0" + digits
	}
	if len(digits) != 4 {
		return "", &Error{Message: "Horário inválido"}
	}
	formatted := digits[:2] + ":" + digits[2:]
	if !timeRe.MatchString(formatted) {
		return "", &Error{Message: "Horário inválido"}
	}
	return formatted, nil
}

// DayMonth reorders an ISO date into the DD/MM fragment used by the day
// agenda. Inputs that are not ISO dates come back unchanged.
func DayMonth(isoDate string) string {
	if !ValidISODate(isoDate) {
		return isoDate
	}
	parts := strings.Split(isoDate, "-")
	return parts[2] + "/" + parts[1]
}

// FormatDate renders an ISO date as DD/MM/YYYY for display. Unparseable
// input comes back unchanged.
func FormatDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("02/01/2006")
}

// FormatDateTime renders an ISO date plus an HH:mm time as
// "DD/MM/YYYY HH:mm".
func FormatDateTime(isoDate, hhmm string) string {
	return fmt.Sprintf("%s %s", FormatDate(isoDate), hhmm)
}

// ParseBRDate parses DD/MM/YYYY into a time.Time.
func ParseBRDate(s string) (time.Time, error) {
	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		return time.Time{}, &Error{Message: "Data inválida, use o formato DD/MM/AAAA"}
	}
	return t, nil
}

// ToISODate converts DD/MM/YYYY into YYYY-MM-DD for the API.
func ToISODate(brDate string) (string, error) {
	t, err := ParseBRDate(brDate)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}
