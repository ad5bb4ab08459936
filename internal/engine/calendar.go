package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tartampluch/go-dialog-calendar/internal/config"
)

// View selects which grid Open renders.
type View int

const (
	ViewYears View = iota
	ViewMonths
	ViewDays
)

// ParseView maps the names used by the CLI and the HTTP transport.
// An empty name selects the year view.
func ParseView(name string) (View, error) {
	switch name {
	case "", config.ViewYears:
		return ViewYears, nil
	case config.ViewMonths:
		return ViewMonths, nil
	case config.ViewDays:
		return ViewDays, nil
	}
	return 0, fmt.Errorf("%s: %q", config.ErrUnknownView, name)
}

// Selection is the outcome of one tap. Date is only meaningful when Selected.
type Selection struct {
	Selected bool
	Date     time.Time
}

// DialogCalendar is a year -> month -> day picker driven by callback payloads.
// Year and Month are defaults for Start and Open only; every transition is
// computed from the payload alone.
type DialogCalendar struct {
	Year  int
	Month int
	Clock Clock
}

// Option configures a DialogCalendar.
type Option func(*DialogCalendar)

// WithClock sets the clock used for defaults.
func WithClock(c Clock) Option {
	return func(d *DialogCalendar) { d.Clock = c }
}

// WithDefaults sets the default year and month. A zero year, or a month
// outside 1..12, falls back to the clock. Other years are clamped to 1..9999.
func WithDefaults(year, month int) Option {
	return func(d *DialogCalendar) {
		d.Year = year
		d.Month = month
	}
}

// New builds a DialogCalendar.
func New(opts ...Option) *DialogCalendar {
	d := &DialogCalendar{Clock: RealClock{}}
	for _, opt := range opts {
		opt(d)
	}

	year, month := d.defaults()
	d.Year = year
	d.Month = int(month)
	return d
}

// Now reads the calendar clock. A zero DialogCalendar uses the system clock.
func (d *DialogCalendar) Now() time.Time {
	if d.Clock == nil {
		return RealClock{}.Now()
	}
	return d.Clock.Now()
}

// defaults resolves the configured year and month against the clock.
func (d *DialogCalendar) defaults() (int, time.Month) {
	now := d.Now()

	year := d.Year
	if year == 0 {
		year = now.Year()
	}
	year = clampYear(year)

	month := time.Month(d.Month)
	if month < time.January || month > time.December {
		month = now.Month()
	}
	return year, month
}

// Start returns the initial year grid centered on the default year.
func (d *DialogCalendar) Start() Markup {
	year, _ := d.defaults()
	return YearGrid(year)
}

// StartAt returns the initial year grid centered on year.
func (d *DialogCalendar) StartAt(year int) Markup {
	return YearGrid(year)
}

// Open renders v from the calendar defaults, letting a widget start below the
// year level.
func (d *DialogCalendar) Open(v View) Markup {
	year, month := d.defaults()
	switch v {
	case ViewMonths:
		return MonthGrid(year)
	case ViewDays:
		return DayGrid(year, month)
	default:
		return YearGrid(year)
	}
}

// ProcessSelection applies one tap. Non-terminal taps replace the grid of
// q.Message and return a zero Selection. SET-DAY removes the grid and returns
// the picked date. IGNORE only acknowledges the tap.
func (d *DialogCalendar) ProcessSelection(ctx context.Context, t Transport, q Query, data CallbackData) (Selection, error) {
	if t == nil {
		return Selection{}, errors.New(config.ErrTransportMissing)
	}

	log := slog.With(
		config.LogKeyComponent, config.CompCalendar,
		config.LogKeyChat, q.Message.ChatID,
		config.LogKeyMessage, q.Message.MessageID,
	)

	switch data.Act {
	case ActionIgnore:
		log.DebugContext(ctx, config.MsgTapIgnored, config.LogKeyQuery, q.ID)
		if err := t.AnswerCallback(ctx, q.ID, config.IgnoreCacheSeconds); err != nil {
			return Selection{}, fmt.Errorf("%s: %w", config.ErrAnswerCallback, err)
		}
		return Selection{}, nil

	case ActionSetDay:
		date, err := NewDate(data.Year, data.Month, data.Day)
		if err != nil {
			return Selection{}, err
		}
		if err := t.DeleteReplyMarkup(ctx, q.Message); err != nil {
			return Selection{}, fmt.Errorf("%s: %w", config.ErrDeleteMarkup, err)
		}
		log.InfoContext(ctx, config.MsgDateResolved, config.LogKeyDate, date.Format(config.DateFormatDisplay))
		return Selection{Selected: true, Date: date}, nil
	}

	markup, err := nextView(data)
	if err != nil {
		log.WarnContext(ctx, config.MsgActionRejected,
			config.LogKeyAction, string(data.Act),
			config.LogKeyError, err)
		return Selection{}, err
	}

	log.DebugContext(ctx, config.MsgTransition,
		config.LogKeyAction, string(data.Act),
		config.LogKeyYear, data.Year,
		config.LogKeyMonth, data.Month)

	if err := t.EditReplyMarkup(ctx, q.Message, markup); err != nil {
		return Selection{}, fmt.Errorf("%s: %w", config.ErrEditMarkup, err)
	}
	return Selection{}, nil
}

// nextView computes the grid that replaces the current one. Every navigation
// payload must name a year in 1..9999.
func nextView(data CallbackData) (Markup, error) {
	if !data.Act.Valid() || data.Act == ActionIgnore || data.Act == ActionSetDay {
		return Markup{}, fmt.Errorf("%w: %q", ErrUnknownAction, string(data.Act))
	}
	if data.Year < config.MinYear || data.Year > config.MaxYear {
		return Markup{}, fmt.Errorf("%w: %s: %d", ErrInvalidDate, config.ErrYearRange, data.Year)
	}

	switch data.Act {
	case ActionSetYear:
		return MonthGrid(data.Year), nil
	case ActionPrevYears:
		return YearGrid(data.Year - config.YearWindow), nil
	case ActionNextYears:
		return YearGrid(data.Year + config.YearWindow), nil
	case ActionStart:
		return YearGrid(data.Year), nil
	case ActionSetMonth:
		if data.Month < 1 || data.Month > 12 {
			return Markup{}, fmt.Errorf("%w: %s: %d", ErrInvalidDate, config.ErrMonthRange, data.Month)
		}
		return DayGrid(data.Year, time.Month(data.Month)), nil
	}
	return Markup{}, fmt.Errorf("%w: %q", ErrUnknownAction, string(data.Act))
}
