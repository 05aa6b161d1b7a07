package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/budget-foyer/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthString(t *testing.T) {
	assert.Equal(t, "2024-01", types.NewMonth(2024, time.January).String())
	assert.Equal(t, "1997-12", types.NewMonth(1997, time.December).String())
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input   string
		want    types.Month
		wantErr bool
	}{
		{"2024-03", types.NewMonth(2024, time.March), false},
		{"2024-03-17", types.NewMonth(2024, time.March), false},
		{"2024-03-17T12:30:00Z", types.NewMonth(2024, time.March), false},
		{"not-a-month", types.Month{}, true},
		{"2024", types.Month{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			month, err := types.ParseMonth(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, month.Equal(tt.want), "parsed %s, want %s", month, tt.want)
		})
	}
}

func TestMonthJSONRoundTrip(t *testing.T) {
	month := types.NewMonth(2024, time.July)

	data, err := json.Marshal(month)
	require.NoError(t, err)
	assert.Equal(t, `"2024-07"`, string(data))

	var parsed types.Month
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(month))
}

func TestMonthUnmarshalLegacyFormats(t *testing.T) {
	var month types.Month

	require.NoError(t, json.Unmarshal([]byte(`"2023-11-05T00:00:00Z"`), &month))
	assert.Equal(t, "2023-11", month.String())

	require.NoError(t, json.Unmarshal([]byte(`null`), &month))
	assert.Equal(t, "2023-11", month.String(), "null must not overwrite the value")
}

func TestMonthOrdering(t *testing.T) {
	january := types.NewMonth(2024, time.January)
	february := types.NewMonth(2024, time.February)

	assert.True(t, january.Before(february))
	assert.True(t, february.After(january))
	assert.False(t, january.Equal(february))
	assert.True(t, february.Previous().Equal(january))
	assert.True(t, january.AddDate(0, 1).Equal(february))
}

func TestMonthOfDecember(t *testing.T) {
	month := types.MonthOf(time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, "2023-12", month.String())
	assert.True(t, month.AddDate(0, 1).Equal(types.NewMonth(2024, time.January)))
}
