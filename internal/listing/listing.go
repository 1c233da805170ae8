// Package listing defines the listing form domain: title, categories,
// activity type, image slots, and the draft aggregate.
package listing

import (
	"errors"
	"strings"
	"time"

	"github.com/moimlab/moim/internal/session"
)

// Validation errors.
var (
	ErrTitleEmpty         = errors.New("title is empty")
	ErrTitleTooShort      = errors.New("title is too short")
	ErrNoCategory         = errors.New("no category selected")
	ErrTooManyCategories  = errors.New("too many categories selected")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrNoActivityType     = errors.New("activity type not selected")
	ErrNoCoverImage       = errors.New("cover image not set")
	ErrSessionsIncomplete = errors.New("sessions are incomplete")
)

// Title length bounds in grapheme clusters.
const (
	MinTitleLength = 8
	MaxTitleLength = 80
)

// MaxCategories is how many categories one listing may carry.
const MaxCategories = 2

// Categories is the fixed selectable set, in display order.
var Categories = []string{
	"용돈벌기",
	"디지털",
	"그림",
	"글쓰기/독서",
	"건강/운동",
	"동기부여/성장",
	"취미힐링",
	"외국어",
}

// ActivityType says how the activity meets.
type ActivityType string

const (
	ActivityNone    ActivityType = ""
	ActivityOnline  ActivityType = "online"
	ActivityOffline ActivityType = "offline"
)

// Valid returns true for a selected, known activity type.
func (a ActivityType) Valid() bool {
	return a == ActivityOnline || a == ActivityOffline
}

// Label returns the user-facing name for the activity type.
func (a ActivityType) Label() string {
	switch a {
	case ActivityOnline:
		return "온라인"
	case ActivityOffline:
		return "오프라인"
	default:
		return ""
	}
}

// Listing is the form state of one listing draft.
type Listing struct {
	Title        string
	Categories   []string
	ActivityType ActivityType
	Images       SlotSet
}

// New returns an empty listing.
func New() *Listing {
	return &Listing{}
}

// KnownCategory reports whether name is in the fixed category set.
func KnownCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// HasCategory reports whether the listing already carries the category.
func (l *Listing) HasCategory(name string) bool {
	for _, c := range l.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// ToggleCategory selects or deselects a category.
// Selecting past MaxCategories returns ErrTooManyCategories and leaves the
// selection unchanged.
func (l *Listing) ToggleCategory(name string) error {
	if !KnownCategory(name) {
		return ErrUnknownCategory
	}
	for i, c := range l.Categories {
		if c == name {
			l.Categories = append(l.Categories[:i], l.Categories[i+1:]...)
			return nil
		}
	}
	if len(l.Categories) >= MaxCategories {
		return ErrTooManyCategories
	}
	l.Categories = append(l.Categories, name)
	return nil
}

// SetTitle applies the advisory title rules to raw input: truncate to the
// grapheme limit and reject consecutive whitespace. The returned string is
// what the bound input should display; ok is false when the edit was
// rejected and the previous title kept.
func (l *Listing) SetTitle(raw string) (string, bool) {
	if session.GraphemeLength(raw) > MaxTitleLength {
		raw = session.TruncateGraphemes(raw, MaxTitleLength)
	}
	if session.HasConsecutiveSpaces(raw) {
		return l.Title, false
	}
	l.Title = raw
	return raw, true
}

// TitleOK reports whether the title passes the advisory length check.
func (l *Listing) TitleOK() bool {
	return session.GraphemeLength(l.Title) >= MinTitleLength
}

// Validate applies the submit-time rules for the listing itself,
// excluding sessions (the session list validates separately).
func (l *Listing) Validate() error {
	if strings.TrimSpace(l.Title) == "" {
		return ErrTitleEmpty
	}
	if !l.TitleOK() {
		return ErrTitleTooShort
	}
	if len(l.Categories) == 0 {
		return ErrNoCategory
	}
	if len(l.Categories) > MaxCategories {
		return ErrTooManyCategories
	}
	for _, c := range l.Categories {
		if !KnownCategory(c) {
			return ErrUnknownCategory
		}
	}
	if !l.ActivityType.Valid() {
		return ErrNoActivityType
	}
	if !l.Images.HasCover() {
		return ErrNoCoverImage
	}
	return nil
}

// ReadyToSubmit is the advisory gate for enabling submission: listing
// fields complete and every session complete.
func (l *Listing) ReadyToSubmit(sessions *session.List) bool {
	return l.Images.HasCover() &&
		len(l.Categories) > 0 &&
		l.TitleOK() &&
		l.ActivityType.Valid() &&
		sessions.Complete()
}

// Reset clears the listing back to its initial state after submission.
func (l *Listing) Reset() {
	*l = Listing{}
}

// Draft is a persisted snapshot of the whole form.
type Draft struct {
	ID        int64
	Listing   Listing
	Sessions  []*session.Session
	CreatedAt time.Time
	UpdatedAt time.Time
}
