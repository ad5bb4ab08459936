package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tartampluch/go-dialog-calendar/internal/config"
)

// Sentinel errors returned by the codec and the transition engine.
var (
	ErrMalformedPayload = errors.New(config.ErrMalformedPayload)
	ErrUnknownAction    = errors.New(config.ErrUnknownAction)
	ErrInvalidDate      = errors.New(config.ErrInvalidDate)
)

// Action is the tag of a button payload. The set is closed: payloads built
// inside this package always carry one of the constants below.
type Action string

const (
	ActionIgnore    Action = "IGNORE"
	ActionSetYear   Action = "SET-YEAR"
	ActionPrevYears Action = "PREV-YEARS"
	ActionNextYears Action = "NEXT-YEARS"
	ActionStart     Action = "START"
	ActionSetMonth  Action = "SET-MONTH"
	ActionSetDay    Action = "SET-DAY"
)

// Valid reports whether a is one of the known tags.
func (a Action) Valid() bool {
	switch a {
	case ActionIgnore, ActionSetYear, ActionPrevYears, ActionNextYears,
		ActionStart, ActionSetMonth, ActionSetDay:
		return true
	}
	return false
}

// CallbackData is the action descriptor attached to every button.
// Fields that do not apply to Act hold config.NotApplicable.
type CallbackData struct {
	Act   Action
	Year  int
	Month int
	Day   int
}

// IgnoreCallback is the payload shared by every blank or label-only cell.
var IgnoreCallback = CallbackData{
	Act:   ActionIgnore,
	Year:  config.NotApplicable,
	Month: config.NotApplicable,
	Day:   config.NotApplicable,
}.Pack()

func yearData(act Action, year int) CallbackData {
	return CallbackData{Act: act, Year: year, Month: config.NotApplicable, Day: config.NotApplicable}
}

func monthData(year, month int) CallbackData {
	return CallbackData{Act: ActionSetMonth, Year: year, Month: month, Day: config.NotApplicable}
}

func dayData(year, month, day int) CallbackData {
	return CallbackData{Act: ActionSetDay, Year: year, Month: month, Day: day}
}

// Pack encodes d as "dialog_calendar:<act>:<year>:<month>:<day>".
func (d CallbackData) Pack() string {
	return strings.Join([]string{
		config.CallbackPrefix,
		string(d.Act),
		strconv.Itoa(d.Year),
		strconv.Itoa(d.Month),
		strconv.Itoa(d.Day),
	}, config.CallbackSeparator)
}

// Unpack decodes a payload produced by Pack. Structural problems are reported
// as ErrMalformedPayload; a well-formed payload with an unknown tag is
// reported as ErrUnknownAction.
func Unpack(payload string) (CallbackData, error) {
	if len(payload) > config.MaxCallbackDataLen {
		return CallbackData{}, fmt.Errorf("%w: %s (%d bytes)", ErrMalformedPayload, config.ErrPayloadTooLong, len(payload))
	}

	parts := strings.Split(payload, config.CallbackSeparator)
	if len(parts) != config.CallbackFieldCount {
		return CallbackData{}, fmt.Errorf("%w: %s: %d", ErrMalformedPayload, config.ErrPayloadFields, len(parts))
	}
	if parts[0] != config.CallbackPrefix {
		return CallbackData{}, fmt.Errorf("%w: %s: %q", ErrMalformedPayload, config.ErrPayloadPrefix, parts[0])
	}

	var ints [3]int
	for i, raw := range parts[2:] {
		// Only the canonical form Pack emits is accepted: no sign, no padding.
		n, err := strconv.Atoi(raw)
		if err != nil || strconv.Itoa(n) != raw {
			return CallbackData{}, fmt.Errorf("%w: %s: %q", ErrMalformedPayload, config.ErrPayloadInt, raw)
		}
		ints[i] = n
	}

	act := Action(parts[1])
	if !act.Valid() {
		return CallbackData{}, fmt.Errorf("%w: %q", ErrUnknownAction, parts[1])
	}

	return CallbackData{Act: act, Year: ints[0], Month: ints[1], Day: ints[2]}, nil
}
