package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Dialog Calendar"
	AppID             = "com.github.tartampluch.go-dialog-calendar"
	CmdName           = "go-dialog-calendar"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Commands, Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	CmdServe   = "serve"
	CmdRender  = "render"
	CmdVersion = "version"

	FlagDebug    = "debug"
	FlagPort     = "port"
	FlagBind     = "bind"
	FlagYear     = "year"
	FlagMonth    = "month"
	FlagView     = "view"
	FlagPayloads = "payloads"

	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescPort     = "TCP port of the HTTP transport"
	FlagDescBind     = "Bind address of the HTTP transport"
	FlagDescYear     = "Year to render (defaults to the current year)"
	FlagDescMonth    = "Month to render, 1-12 (defaults to the current month)"
	FlagDescView     = "View to render: years, months or days"
	FlagDescPayloads = "Print callback payloads instead of labels"

	ShortRoot    = "Stateless inline date picker for chat bots."
	ShortServe   = "Serve date picker widgets over a local HTTP chat transport"
	ShortRender  = "Print a date picker grid to the terminal"
	ShortVersion = "Print the version"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Callback Payload Wire Format
// -----------------------------------------------------------------------------

const (
	// CallbackPrefix identifies this widget's payloads among others on the same bot.
	CallbackPrefix = "dialog_calendar"

	// CallbackSeparator joins the prefix and the ordered fields act, year, month, day.
	CallbackSeparator = ":"

	// CallbackFieldCount is the prefix plus four fields.
	CallbackFieldCount = 5

	// MaxCallbackDataLen is the byte limit chat platforms put on button payloads.
	MaxCallbackDataLen = 64

	// NotApplicable marks a payload field that does not apply to the action.
	NotApplicable = -1
)

// -----------------------------------------------------------------------------
// Calendar Layout & Labels
// -----------------------------------------------------------------------------

const (
	// YearWindow is the number of years shown at once; PREV/NEXT shift by it.
	YearWindow = 5

	// YearWindowHalf is the distance from the anchor year to either edge.
	YearWindowHalf = YearWindow / 2

	MonthsPerRow = 6
	DaysPerWeek  = 7

	// IgnoreCacheSeconds is the client cache hint sent when a blank cell is tapped.
	IgnoreCacheSeconds = 60

	LabelBlank     = " "
	LabelPrevYears = "<<"
	LabelNextYears = ">>"

	MinYear = 1
	MaxYear = 9999
)

// MonthLabels are the month-grid and day-grid header labels, January first.
var MonthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// WeekdayLabels are the day-grid header labels, Monday first.
var WeekdayLabels = [DaysPerWeek]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// View names accepted by the CLI and the HTTP transport.
const (
	ViewYears  = "years"
	ViewMonths = "months"
	ViewDays   = "days"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Dialog Calendar//Feed//EN"
	ICalCalName = "Picked Dates"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "godialogcalendar"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	FormatUID     = "%d-%d@%s"
	FormatSummary = "Picked date (chat %d)"

	// StubVCalendar is the minimal valid iCalendar object used when no date was picked yet.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	DateFormatDisplay = "2006-01-02"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	DefaultPort        = "18080"
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	MaxRequestBodySize = 64 * 1024
	AddrSeparator      = ":"
	MinPort            = 1
	MaxPort            = 65535

	RouteMessages = "POST /messages"
	RouteMessage  = "GET /messages/{id}"
	RouteCallback = "POST /callbacks"
	RouteFeed     = "GET /dates.ics"
	PathParamID   = "id"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeJSON            = "application/json"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrMalformedPayload = "malformed callback payload"
	ErrUnknownAction    = "unknown calendar action"
	ErrInvalidDate      = "invalid calendar date"
	ErrPayloadPrefix    = "unexpected payload prefix"
	ErrPayloadFields    = "unexpected payload field count"
	ErrPayloadTooLong   = "payload exceeds callback size limit"
	ErrPayloadInt       = "payload field is not an integer"
	ErrYearRange        = "year out of range"
	ErrMonthRange       = "month out of range"
	ErrDayRange         = "day out of range for month"
	ErrEditMarkup       = "failed to replace displayed grid"
	ErrDeleteMarkup     = "failed to remove displayed grid"
	ErrAnswerCallback   = "failed to acknowledge tap"
	ErrTransportMissing = "internal error: transport is not initialized"
	ErrMessageNotFound  = "message not found"
	ErrMessageResolved  = "message has no grid to update"
	ErrBadRequest       = "invalid request body"
	ErrUnknownView      = "unknown view"
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrPortNumber       = "server port must be a number"
	ErrPortRange        = "server port must be between 1 and 65535"
	ErrSettings         = "failed to load settings"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrWriteResp        = "failed to write response body"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "No date picked yet, please try again shortly."
	HTTPMsgInternalErr  = "Internal Server Error"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStop        = "Application stopped gracefully"
	MsgAppStarting    = "Starting application"
	MsgServerListen   = "HTTP server listening"
	MsgServerStop     = "Shutting down HTTP server..."
	MsgCacheUpdated   = "Calendar feed updated"
	MsgTransition     = "Calendar transition"
	MsgTapIgnored     = "Blank cell tapped"
	MsgDateResolved   = "Date resolved"
	MsgActionRejected = "Rejected calendar tap"
	MsgPayloadRejects = "Rejected callback payload"
	MsgWidgetCreated  = "Widget created"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyAction    = "action"
	LogKeyYear      = "year"
	LogKeyMonth     = "month"
	LogKeyDay       = "day"
	LogKeyDate      = "date"
	LogKeyChat      = "chat_id"
	LogKeyMessage   = "message_id"
	LogKeyQuery     = "query_id"
	LogKeyView      = "view"
	LogKeyPort      = "port"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyCount     = "count"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompCalendar = "calendar"
	CompServer   = "server"
	CompFeed     = "feed"
	CompCLI      = "cli"
	CompMain     = "main"
)
