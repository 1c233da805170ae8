// Package export renders drafts as shareable plain text.
package export

import (
	"fmt"
	"strings"

	"github.com/moimlab/moim/internal/dateutil"
	"github.com/moimlab/moim/internal/listing"
	"github.com/moimlab/moim/internal/session"
)

// Lines renders a draft as plain text lines for terminal output or sharing.
func Lines(d *listing.Draft) []string {
	lines := []string{d.Listing.Title, ""}

	if len(d.Listing.Categories) > 0 {
		lines = append(lines, "카테고리: "+strings.Join(d.Listing.Categories, ", "))
	}
	if d.Listing.ActivityType.Valid() {
		lines = append(lines, "진행 방식: "+d.Listing.ActivityType.Label())
	}
	if cover := d.Listing.Images.Cover(); cover != nil {
		count := 1 + d.Listing.Images.ExtraCount()
		lines = append(lines, fmt.Sprintf("사진: %d장", count))
	}

	if len(d.Sessions) > 0 {
		lines = append(lines, "", "일정:")
		for i, s := range d.Sessions {
			lines = append(lines, sessionLines(i+1, s)...)
		}
	}

	return lines
}

// sessionLines renders one session as a numbered block.
func sessionLines(number int, s *session.Session) []string {
	date := s.Date
	if t, err := dateutil.ParseISO(s.Date); err == nil {
		date = dateutil.FormatDisplay(t)
	} else if s.Date == "" {
		date = "날짜 미정"
	}

	start := session.Clock12{Period: s.StartPeriod, Hour: mustAtoi(s.StartHour), Minute: s.StartMinute}
	end := session.Clock12{Period: s.EndPeriod, Hour: mustAtoi(s.EndHour), Minute: s.EndMinute}

	lines := []string{fmt.Sprintf("  %d. %s %s ~ %s", number, date, start, end)}
	if s.Content != "" {
		for _, l := range strings.Split(s.Content, "\n") {
			lines = append(lines, "     "+l)
		}
	}
	return lines
}

// mustAtoi parses a sanitized numeric field, treating garbage as zero.
func mustAtoi(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// Render joins the draft lines into a single string ending with a newline.
func Render(d *listing.Draft) string {
	return strings.Join(Lines(d), "\n") + "\n"
}
