package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"1430", "14:30", false},
		{"14:30", "14:30", false},
		{"14h30", "14:30", false},
		{"930", "09:30", false},
		{"0000", "00:00", false},
		{"2359", "23:59", false},
		{"2561", "", true},
		{"2460", "", true},
		{"12", "", true},
		{"", "", true},
		{"abc", "", true},
	}

	for _, tt := range tests {
		got, err := NormalizeTime(tt.in)
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.in)
			require.Equal(t, "Horário inválido", err.Error())
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		require.Equal(t, tt.want, got)
	}
}

func TestValidISODateAndMonth(t *testing.T) {
	require.True(t, ValidISODate("2025-03-08"))
	require.False(t, ValidISODate("08/03/2025"))
	require.False(t, ValidISODate("2025-3-8"))

	require.True(t, ValidMonth("2025-03"))
	require.False(t, ValidMonth("2025-03-08"))
}

func TestDayMonth(t *testing.T) {
	require.Equal(t, "08/03", DayMonth("2025-03-08"))
	require.Equal(t, "not-a-date", DayMonth("not-a-date"))
}

func TestFormatDate(t *testing.T) {
	require.Equal(t, "08/03/2025", FormatDate("2025-03-08"))
	require.Equal(t, "oops", FormatDate("oops"))
}

func TestFormatDateTime(t *testing.T) {
	require.Equal(t, "08/03/2025 14:30", FormatDateTime("2025-03-08", "14:30"))
}

func TestParseBRDateAndToISO(t *testing.T) {
	got, err := ParseBRDate("08/03/2025")
	require.NoError(t, err)
	require.Equal(t, 2025, got.Year())

	iso, err := ToISODate("08/03/2025")
	require.NoError(t, err)
	require.Equal(t, "2025-03-08", iso)

	_, err = ParseBRDate("2025-03-08")
	require.Error(t, err)
}
