package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"quick-entry/internal/model"
	"quick-entry/internal/quickadd"
	"quick-entry/internal/task/repository"
	"quick-entry/pkg/gcalendar"
	"quick-entry/pkg/quickparse"
)

const clientRefPrefix = "temp-"

// Submit parses the line, stores it in Memos and schedules dated, non-todo
// entries in Google Calendar. Calendar failures only cost the link.
func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope, input quickadd.SubmitInput) (quickadd.SubmitOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return quickadd.SubmitOutput{}, quickadd.ErrEmptyInput
	}
	if err := uc.checkLength(input.Text); err != nil {
		return quickadd.SubmitOutput{}, err
	}

	res := uc.parser.ParseAt(input.Text, uc.cfg.Clock())
	if strings.TrimSpace(res.Title) == "" {
		return quickadd.SubmitOutput{}, quickadd.ErrEmptyTitle
	}

	uc.l.Infof(ctx, "Submit: user=%s source=%s tokens=%d", sc.UserID, sc.Source, len(res.MatchedTokens))

	payload := buildPayload(res)
	loc := uc.parser.Location()

	memoTask, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Content:    buildMemoContent(payload, loc),
		Tags:       memoTags(payload),
		Visibility: "PRIVATE",
	})
	if err != nil {
		uc.l.Errorf(ctx, "Submit: failed to create Memos task %q: %v", payload.Title, err)
		return quickadd.SubmitOutput{}, fmt.Errorf("%w: %v", quickadd.ErrRepositoryUnavailable, err)
	}

	created := quickadd.CreatedTask{
		MemoID:  memoTask.ID,
		MemoURL: memoTask.MemoURL,
		Title:   payload.Title,
	}

	var conflicts []string
	if payload.Due != nil && !payload.IsTodo {
		event, found := uc.tryCreateCalendarEvent(ctx, payload, memoTask)
		conflicts = found
		if event != nil {
			created.CalendarLink = event.HtmlLink
			created.MeetLink = event.MeetLink
		}
	}

	uc.l.Infof(ctx, "Submit: created task %q memoID=%s", payload.Title, memoTask.ID)

	return quickadd.SubmitOutput{
		ClientRef: clientRefPrefix + uuid.NewString(),
		Task:      created,
		Payload:   payload,
		Result:    res,
		Badges:    Badges(res),
		Conflicts: conflicts,
	}, nil
}

func buildPayload(res quickparse.Result) quickadd.TaskPayload {
	return quickadd.TaskPayload{
		Title:           strings.TrimSpace(res.Title),
		Category:        res.Category,
		Priority:        res.Priority,
		Stake:           res.Stake,
		Due:             res.Date,
		HasTime:         res.Time != "",
		AllDay:          res.AllDay,
		Recurrence:      res.Recurrence,
		ReminderMinutes: res.ReminderMinutes,
		Location:        res.Location,
		Attendees:       res.Attendees,
		Tags:            res.Tags,
		CalendarKey:     res.CalendarKey,
		IsTodo:          res.IsTodo,
		VideoCall:       res.VideoCall,
	}
}

// tryCreateCalendarEvent returns the created event, or nil on failure, plus
// the titles of events already occupying the slot.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, p quickadd.TaskPayload, memoTask model.Task) (*gcalendar.Event, []string) {
	if uc.calendar == nil {
		return nil, nil
	}

	loc := uc.parser.Location()
	calendarID := uc.calendarID(ctx, p.CalendarKey)
	start, end, allDay := eventWindow(p, loc, uc.cfg.DefaultEventMinutes)

	conflicts := uc.findConflicts(ctx, calendarID, start, end, allDay)

	emails, names := splitAttendees(p.Attendees)
	req := gcalendar.CreateEventRequest{
		CalendarID:      calendarID,
		Summary:         p.Title,
		Description:     eventDescription(p, names, memoTask.MemoURL),
		Location:        p.Location,
		StartTime:       start,
		EndTime:         end,
		AllDay:          allDay,
		Timezone:        loc.String(),
		AttendeeEmails:  emails,
		Recurrence:      rrule(p.Recurrence),
		ReminderMinutes: p.ReminderMinutes,
	}
	if p.VideoCall == quickparse.VideoCallMeet {
		req.ConferenceRequestID = uuid.NewString()
	}

	event, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "Submit: calendar event creation failed for %q (non-fatal): %v", p.Title, err)
		return nil, conflicts
	}
	return event, conflicts
}

func (uc *implUseCase) calendarID(ctx context.Context, key string) string {
	if key == "" {
		return uc.cfg.DefaultCalendarID
	}
	if id, ok := uc.cfg.Calendars[key]; ok && id != "" {
		return id
	}
	uc.l.Warnf(ctx, "Submit: unknown calendar key %q, using default calendar", key)
	return uc.cfg.DefaultCalendarID
}

func (uc *implUseCase) findConflicts(ctx context.Context, calendarID string, start, end time.Time, allDay bool) []string {
	if allDay {
		return nil
	}
	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    start,
		TimeMax:    end,
		MaxResults: 10,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Submit: conflict check failed (non-fatal): %v", err)
		return nil
	}

	conflicts := make([]string, 0, len(events))
	for _, e := range events {
		if e.AllDay {
			continue
		}
		conflicts = append(conflicts, e.Summary)
	}
	return conflicts
}

// eventWindow decides the event span. Explicit all-day entries and dates
// without a clock (numeric dates resolve to midnight) become all-day events.
func eventWindow(p quickadd.TaskPayload, loc *time.Location, minutes int) (start, end time.Time, allDay bool) {
	due := p.Due.In(loc)
	midnight := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, loc)

	if p.AllDay || (!p.HasTime && due.Equal(midnight)) {
		return midnight, midnight.AddDate(0, 0, 1), true
	}
	return due, due.Add(time.Duration(minutes) * time.Minute), false
}

func rrule(r quickparse.Recurrence) string {
	switch r {
	case quickparse.RecurrenceDaily:
		return "RRULE:FREQ=DAILY"
	case quickparse.RecurrenceWeekly:
		return "RRULE:FREQ=WEEKLY"
	case quickparse.RecurrenceMonthly:
		return "RRULE:FREQ=MONTHLY"
	}
	return ""
}

// splitAttendees separates invitable e-mail addresses from plain names.
func splitAttendees(attendees []string) (emails, names []string) {
	for _, a := range attendees {
		if strings.Contains(a, "@") && !strings.ContainsAny(a, " \t") {
			emails = append(emails, a)
			continue
		}
		names = append(names, a)
	}
	return emails, names
}

func eventDescription(p quickadd.TaskPayload, names []string, memoURL string) string {
	var lines []string
	if len(names) > 0 {
		lines = append(lines, "👥 "+strings.Join(names, ", "))
	}
	switch p.VideoCall {
	case quickparse.VideoCallZoom:
		lines = append(lines, "📹 Zoom")
	case quickparse.VideoCallTeams:
		lines = append(lines, "📹 Microsoft Teams")
	}
	if p.Stake != nil {
		lines = append(lines, "💶 "+p.Stake.StringFixed(2)+" €")
	}
	if memoURL != "" {
		lines = append(lines, "📝 Memos: "+memoURL)
	}
	return strings.Join(lines, "\n")
}
