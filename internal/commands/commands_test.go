package commands_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-dialog-calendar/internal/commands"
	"github.com/tartampluch/go-dialog-calendar/internal/config"
	"github.com/tartampluch/go-dialog-calendar/internal/engine"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	cmd := commands.New(nil)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender_DayView(t *testing.T) {
	out, err := run(t, "render", "--view", "days", "--year", "2024", "--month", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "2024")
	assert.Contains(t, lines[0], "Feb")
	for _, wd := range []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"} {
		assert.Contains(t, lines[1], wd)
	}
	assert.Contains(t, out, "29")
	assert.NotContains(t, out, "30")
}

func TestRender_Payloads(t *testing.T) {
	out, err := run(t, "render", "--view", "months", "--year", "1999", "--payloads")
	require.NoError(t, err)

	assert.Contains(t, out, "dialog_calendar:START:1999:-1:-1")
	assert.Contains(t, out, "dialog_calendar:SET-MONTH:1999:12:-1")
	assert.Contains(t, out, engine.IgnoreCallback)
}

func TestRender_Errors(t *testing.T) {
	_, err := run(t, "render", "--view", "weeks")
	assert.Error(t, err)

	_, err = run(t, "render", "--month", "13")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, config.AppName)
	assert.Contains(t, out, config.Version)
}

func TestPrintGrid_YearView(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer

	commands.PrintGrid(&out, engine.YearGrid(2024), false)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"2022", "2023", "2024", "2025", "2026"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"<<", ">>"}, strings.Fields(lines[1]))
}
