package engine

import (
	"strconv"
	"time"

	"github.com/tartampluch/go-dialog-calendar/internal/config"
)

// clampAnchor keeps the whole year window inside MinYear..MaxYear.
func clampAnchor(anchor int) int {
	return min(max(anchor, config.MinYear+config.YearWindowHalf), config.MaxYear-config.YearWindowHalf)
}

func clampYear(year int) int {
	return min(max(year, config.MinYear), config.MaxYear)
}

// YearGrid renders five years centered on anchor, then the << and >> row.
// Both navigation buttons carry the anchor; the engine applies the shift.
// The anchor is clamped so that every year shown is between 1 and 9999.
func YearGrid(anchor int) Markup {
	var b Builder
	anchor = clampAnchor(anchor)

	first := anchor - config.YearWindowHalf
	years := make([]Button, 0, config.YearWindow)
	for i := 0; i < config.YearWindow; i++ {
		y := first + i
		years = append(years, button(strconv.Itoa(y), yearData(ActionSetYear, y)))
	}
	b.Row(years...)

	b.Row(
		button(config.LabelPrevYears, yearData(ActionPrevYears, anchor)),
		button(config.LabelNextYears, yearData(ActionNextYears, anchor)),
	)
	return b.Markup()
}

// MonthGrid renders the year header (back to the year view) and two rows of
// six months. Years outside 1..9999 are clamped.
func MonthGrid(year int) Markup {
	var b Builder
	year = clampYear(year)

	b.Row(
		blankButton(config.LabelBlank),
		button(strconv.Itoa(year), yearData(ActionStart, year)),
		blankButton(config.LabelBlank),
	)

	for start := 0; start < len(config.MonthLabels); start += config.MonthsPerRow {
		row := make([]Button, 0, config.MonthsPerRow)
		for i := start; i < start+config.MonthsPerRow; i++ {
			row = append(row, button(config.MonthLabels[i], monthData(year, i+1)))
		}
		b.Row(row...)
	}
	return b.Markup()
}

// DayGrid renders the year and month headers, the weekday labels and one row
// per Monday-first week.
//
// The month header carries SET-YEAR, not a month action: tapping it returns to
// the month list of the same year.
//
// Years outside 1..9999 and months outside January..December are clamped.
func DayGrid(year int, month time.Month) Markup {
	var b Builder
	year = clampYear(year)
	month = min(max(month, time.January), time.December)

	b.Row(
		button(strconv.Itoa(year), yearData(ActionStart, year)),
		button(config.MonthLabels[month-1], yearData(ActionSetYear, year)),
	)

	labels := make([]Button, 0, config.DaysPerWeek)
	for _, l := range config.WeekdayLabels {
		labels = append(labels, blankButton(l))
	}
	b.Row(labels...)

	for _, week := range MonthWeeks(year, month) {
		row := make([]Button, 0, config.DaysPerWeek)
		for _, day := range week {
			if day == 0 {
				row = append(row, blankButton(config.LabelBlank))
				continue
			}
			row = append(row, button(strconv.Itoa(day), dayData(year, int(month), day)))
		}
		b.Row(row...)
	}
	return b.Markup()
}
