package usecase

import (
	"fmt"
	"strings"

	"quick-entry/pkg/quickparse"
)

const badgeDateLayout = "Mon 02.01.2006"

// Badges renders the populated fields of res as short preview strings, in a
// fixed order.
func Badges(res quickparse.Result) []string {
	badges := []string{}

	if res.IsTodo {
		badges = append(badges, "✓ todo")
	}
	if res.Date != nil {
		when := res.Date.Format(badgeDateLayout)
		switch {
		case res.AllDay:
			when += " ganztägig"
		case res.Time != "":
			when += " " + res.Time
		}
		badges = append(badges, "📅 "+when)
	} else if res.AllDay {
		badges = append(badges, "📅 ganztägig")
	}
	if res.Recurrence != "" {
		badges = append(badges, "🔁 "+string(res.Recurrence))
	}
	if res.ReminderMinutes > 0 {
		badges = append(badges, fmt.Sprintf("⏰ %d min", res.ReminderMinutes))
	}
	if res.Location != "" {
		badges = append(badges, "📍 "+res.Location)
	}
	if len(res.Attendees) > 0 {
		badges = append(badges, "👥 "+strings.Join(res.Attendees, ", "))
	}
	if res.VideoCall != "" {
		badges = append(badges, "📹 "+string(res.VideoCall))
	}
	if res.Priority != "" {
		badges = append(badges, "❗ "+string(res.Priority))
	}
	if res.Stake != nil {
		badges = append(badges, "💶 "+res.Stake.StringFixed(2)+" €")
	}
	if res.Category != "" {
		badges = append(badges, "🏷 "+string(res.Category))
	}
	if res.CalendarKey != "" {
		badges = append(badges, "🗓 /"+res.CalendarKey)
	}
	for _, tag := range res.Tags {
		badges = append(badges, "#"+tag)
	}
	return badges
}
