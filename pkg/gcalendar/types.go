package gcalendar

import "time"

// CreateEventRequest is the input for creating a calendar event.
// Tasks carry date-only due dates, so events are created all-day.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Date        time.Time
}

// Event is a simplified representation of a calendar event.
// ID is the opaque identifier stored back on the task.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
}
