package domain

// CalendarEvent is the flagship-event entry offered for calendar export.
type CalendarEvent struct {
	Title       string
	Description string
	Location    string
	Start       string // UTC basic format, e.g. 20260828T090000Z
	End         string
}

// CalendarLinks are deep links to major calendar providers.
// swagger:model CalendarLinks
type CalendarLinks struct {
	Google  string `json:"google"`
	Outlook string `json:"outlook"`
	Yahoo   string `json:"yahoo"`
}

// CalendarService builds the downloadable calendar document and provider links.
type CalendarService interface {
	ICS() (filename string, body []byte)
	Links() *CalendarLinks
}
