package gcalendar

import "time"

// PrimaryCalendarID addresses the authenticated user's main calendar.
const PrimaryCalendarID = "primary"

const dateLayout = "2006-01-02"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time // exclusive; for all-day events the day after the last day
	AllDay      bool
	Timezone    string // e.g. "Europe/Berlin"

	AttendeeEmails  []string
	Recurrence      string // RRULE line, e.g. "RRULE:FREQ=WEEKLY"
	ReminderMinutes int    // popup reminder; 0 keeps the calendar default

	// ConferenceRequestID, when set, requests a Google Meet link. It must be
	// unique per event.
	ConferenceRequestID string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	MeetLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Location    string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
