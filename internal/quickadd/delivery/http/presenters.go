package http

import (
	"errors"
	"strings"
	"time"

	"quick-entry/internal/quickadd"
	"quick-entry/pkg/quickparse"
)

var errBlankText = errors.New("text must not be blank")

// --- Request DTOs ---

type previewReq struct {
	Text string     `json:"text"`
	Now  *time.Time `json:"now"`
}

func (r previewReq) validate() error { return nil }

func (r previewReq) toInput() quickadd.PreviewInput {
	return quickadd.PreviewInput{Text: r.Text, Now: r.Now}
}

func (r previewReq) toSimpleInput() quickadd.PreviewSimpleInput {
	return quickadd.PreviewSimpleInput{Text: r.Text, Now: r.Now}
}

// ---

type submitReq struct {
	Text string `json:"text" binding:"required"`
}

func (r submitReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errBlankText
	}
	return nil
}

func (r submitReq) toInput() quickadd.SubmitInput {
	return quickadd.SubmitInput{Text: r.Text}
}

// ---

type recentReq struct {
	Limit int  `form:"limit" binding:"omitempty,min=0"`
	Open  bool `form:"open"`
}

func (r recentReq) validate() error { return nil }

func (r recentReq) toInput() quickadd.RecentInput {
	return quickadd.RecentInput{Limit: r.Limit, OpenOnly: r.Open}
}

// --- Response DTOs ---

type resultResp struct {
	Title           string     `json:"title"`
	Date            *time.Time `json:"date"`
	Time            string     `json:"time,omitempty"`
	AllDay          bool       `json:"all_day"`
	Category        string     `json:"category,omitempty"`
	Priority        string     `json:"priority,omitempty"`
	Stake           string     `json:"stake,omitempty"`
	ReminderMinutes int        `json:"reminder_minutes,omitempty"`
	Location        string     `json:"location,omitempty"`
	Attendees       []string   `json:"attendees"`
	Recurrence      string     `json:"recurrence,omitempty"`
	Tags            []string   `json:"tags"`
	CalendarKey     string     `json:"calendar_key,omitempty"`
	IsTodo          bool       `json:"is_todo"`
	VideoCall       string     `json:"video_call,omitempty"`
	MatchedTokens   []string   `json:"matched_tokens"`
}

func newResultResp(r quickparse.Result) resultResp {
	resp := resultResp{
		Title:           r.Title,
		Date:            r.Date,
		Time:            r.Time,
		AllDay:          r.AllDay,
		Category:        string(r.Category),
		Priority:        string(r.Priority),
		ReminderMinutes: r.ReminderMinutes,
		Location:        r.Location,
		Attendees:       nonNil(r.Attendees),
		Recurrence:      string(r.Recurrence),
		Tags:            nonNil(r.Tags),
		CalendarKey:     r.CalendarKey,
		IsTodo:          r.IsTodo,
		VideoCall:       string(r.VideoCall),
		MatchedTokens:   nonNil(r.MatchedTokens),
	}
	if r.Stake != nil {
		resp.Stake = r.Stake.StringFixed(2)
	}
	return resp
}

type previewResp struct {
	Result        resultResp `json:"result"`
	Badges        []string   `json:"badges"`
	ReferenceTime time.Time  `json:"reference_time"`
}

func (h *handler) newPreviewResp(out quickadd.PreviewOutput) previewResp {
	return previewResp{
		Result:        newResultResp(out.Result),
		Badges:        nonNil(out.Badges),
		ReferenceTime: out.ReferenceTime,
	}
}

type simpleResp struct {
	Title       string     `json:"title"`
	Tags        []string   `json:"tags"`
	CalendarKey string     `json:"calendar_key,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	Due         *time.Time `json:"due"`
}

func (h *handler) newSimpleResp(out quickadd.PreviewSimpleOutput) simpleResp {
	return simpleResp{
		Title:       out.Result.Title,
		Tags:        nonNil(out.Result.Tags),
		CalendarKey: out.Result.CalendarKey,
		Priority:    string(out.Result.Priority),
		Due:         out.Result.Due,
	}
}

type submitResp struct {
	ClientRef    string     `json:"client_ref"`
	MemoID       string     `json:"memo_id"`
	MemoURL      string     `json:"memo_url"`
	CalendarLink string     `json:"calendar_link,omitempty"`
	MeetLink     string     `json:"meet_link,omitempty"`
	Title        string     `json:"title"`
	Conflicts    []string   `json:"conflicts"`
	Result       resultResp `json:"result"`
}

func (h *handler) newSubmitResp(out quickadd.SubmitOutput) submitResp {
	return submitResp{
		ClientRef:    out.ClientRef,
		MemoID:       out.Task.MemoID,
		MemoURL:      out.Task.MemoURL,
		CalendarLink: out.Task.CalendarLink,
		MeetLink:     out.Task.MeetLink,
		Title:        out.Task.Title,
		Conflicts:    nonNil(out.Conflicts),
		Result:       newResultResp(out.Result),
	}
}

type entryResp struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	IsTodo     bool          `json:"is_todo"`
	Done       bool          `json:"done"`
	Progress   *progressResp `json:"progress,omitempty"`
	Content    string        `json:"content"`
	Tags       []string      `json:"tags"`
	MemoURL    string        `json:"memo_url"`
	CreateTime string        `json:"create_time"`
}

type progressResp struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

func newEntryResp(e quickadd.RecentEntry) entryResp {
	var progress *progressResp
	if e.IsTodo {
		progress = &progressResp{Total: e.Progress.Total, Completed: e.Progress.Completed}
	}
	return entryResp{
		ID:         e.Task.ID,
		Title:      e.Title,
		IsTodo:     e.IsTodo,
		Done:       e.Done,
		Progress:   progress,
		Content:    e.Task.Content,
		Tags:       nonNil(e.Task.Tags),
		MemoURL:    e.Task.MemoURL,
		CreateTime: e.Task.CreateTime,
	}
}

type recentResp struct {
	Entries []entryResp `json:"entries"`
}

func (h *handler) newRecentResp(out quickadd.RecentOutput) recentResp {
	entries := make([]entryResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = newEntryResp(e)
	}
	return recentResp{Entries: entries}
}

type shortcutsResp struct {
	Lines []string `json:"lines"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
