package engine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-dialog-calendar/internal/engine"
)

func TestPack_WireFormat(t *testing.T) {
	tests := []struct {
		name string
		data engine.CallbackData
		want string
	}{
		{
			name: "Year selection",
			data: engine.CallbackData{Act: engine.ActionSetYear, Year: 2024, Month: -1, Day: -1},
			want: "dialog_calendar:SET-YEAR:2024:-1:-1",
		},
		{
			name: "Month selection",
			data: engine.CallbackData{Act: engine.ActionSetMonth, Year: 2024, Month: 2, Day: -1},
			want: "dialog_calendar:SET-MONTH:2024:2:-1",
		},
		{
			name: "Day selection",
			data: engine.CallbackData{Act: engine.ActionSetDay, Year: 2024, Month: 2, Day: 29},
			want: "dialog_calendar:SET-DAY:2024:2:29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.data.Pack())
		})
	}
}

func TestIgnoreCallback_IsStable(t *testing.T) {
	assert.Equal(t, "dialog_calendar:IGNORE:-1:-1:-1", engine.IgnoreCallback)

	data, err := engine.Unpack(engine.IgnoreCallback)
	require.NoError(t, err)
	assert.Equal(t, engine.ActionIgnore, data.Act)
	assert.Equal(t, -1, data.Year)
	assert.Equal(t, -1, data.Month)
	assert.Equal(t, -1, data.Day)
}

func TestUnpack_Valid(t *testing.T) {
	data, err := engine.Unpack("dialog_calendar:NEXT-YEARS:1999:-1:-1")
	require.NoError(t, err)
	assert.Equal(t, engine.CallbackData{Act: engine.ActionNextYears, Year: 1999, Month: -1, Day: -1}, data)
}

func TestUnpack_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr error
	}{
		{"Empty", "", engine.ErrMalformedPayload},
		{"Foreign prefix", "simple_calendar:SET-YEAR:2024:-1:-1", engine.ErrMalformedPayload},
		{"Missing field", "dialog_calendar:SET-YEAR:2024:-1", engine.ErrMalformedPayload},
		{"Extra field", "dialog_calendar:SET-YEAR:2024:-1:-1:-1", engine.ErrMalformedPayload},
		{"Non-integer year", "dialog_calendar:SET-YEAR:abcd:-1:-1", engine.ErrMalformedPayload},
		{"Non-integer day", "dialog_calendar:SET-DAY:2024:2:x", engine.ErrMalformedPayload},
		{"Explicit plus sign", "dialog_calendar:SET-YEAR:+2024:-1:-1", engine.ErrMalformedPayload},
		{"Zero padded month", "dialog_calendar:SET-MONTH:2024:02:-1", engine.ErrMalformedPayload},
		{"Negative zero", "dialog_calendar:SET-DAY:2024:2:-0", engine.ErrMalformedPayload},
		{"Too long", "dialog_calendar:SET-DAY:2024:2:" + strings.Repeat("1", 64), engine.ErrMalformedPayload},
		{"Underscore tag", "dialog_calendar:SET_YEAR:2024:-1:-1", engine.ErrUnknownAction},
		{"Unknown tag", "dialog_calendar:DROP-TABLE:2024:-1:-1", engine.ErrUnknownAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Unpack(tt.payload)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAction_Valid(t *testing.T) {
	known := []engine.Action{
		engine.ActionIgnore,
		engine.ActionSetYear,
		engine.ActionPrevYears,
		engine.ActionNextYears,
		engine.ActionStart,
		engine.ActionSetMonth,
		engine.ActionSetDay,
	}
	for _, a := range known {
		assert.True(t, a.Valid(), "%s should be valid", a)
	}
	assert.False(t, engine.Action("").Valid())
	assert.False(t, engine.Action("set-year").Valid())
}

// TestPayloads_FitCallbackLimit checks the longest payloads the renderer emits.
func TestPayloads_FitCallbackLimit(t *testing.T) {
	grids := []engine.Markup{
		engine.YearGrid(9999),
		engine.MonthGrid(9999),
		engine.DayGrid(9999, 12),
	}
	for _, g := range grids {
		for _, b := range g.Buttons() {
			data, err := engine.Unpack(b.CallbackData)
			assert.NoError(t, err, "payload %q must decode", b.CallbackData)
			assert.Equal(t, b.CallbackData, data.Pack())
		}
	}
}
