// Package feed exports picked dates as an iCalendar feed.
package feed

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-dialog-calendar/internal/config"
)

// Entry is one date resolved by a widget.
type Entry struct {
	ChatID    int64
	MessageID int
	Date      time.Time
}

// Encode renders entries as a VCALENDAR with one all-day event each.
// An empty list yields the minimal stub calendar so clients never see an
// invalid feed.
func Encode(entries []Entry, now time.Time) ([]byte, error) {
	if len(entries) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(now.UTC())

	for _, e := range entries {
		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, e.ChatID, e.MessageID, config.ICalDomain))
		event.Props.SetText(config.PropSummary, fmt.Sprintf(config.FormatSummary, e.ChatID))

		start := ical.NewProp(config.PropDTStart)
		start.SetDate(e.Date)
		event.Props.Set(start)
		event.Props.Set(dtStamp)

		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompFeed,
		config.LogKeyCount, len(entries),
	)
	return buf.Bytes(), nil
}
