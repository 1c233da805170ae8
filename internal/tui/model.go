package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/moimlab/moim/internal/config"
	"github.com/moimlab/moim/internal/dateutil"
	"github.com/moimlab/moim/internal/listing"
	"github.com/moimlab/moim/internal/session"
	"github.com/moimlab/moim/internal/tui/theme"
)

// Step is one page of the listing form.
type Step int

const (
	StepBasics Step = iota // title, categories, activity type
	StepPhotos             // cover plus extra image slots
	StepSessions           // session cards with calendar and times
	StepReview             // validation summary and submit
	stepCount
)

func stepString(s Step) string {
	switch s {
	case StepBasics:
		return "Basics"
	case StepPhotos:
		return "Photos"
	case StepSessions:
		return "Sessions"
	case StepReview:
		return "Review"
	default:
		return "Unknown"
	}
}

// Mode represents the current interaction mode.
type Mode int

const (
	ModeForm     Mode = iota
	ModeCalendar      // a calendar popup is open and owns the keys
	ModePrompt        // the path prompt for an image slot is active
)

// cardField is the focus position inside one session card.
type cardField int

const (
	fieldDate cardField = iota
	fieldStartPeriod
	fieldStartHour
	fieldStartMinute
	fieldEndPeriod
	fieldEndHour
	fieldEndMinute
	fieldContent
	cardFieldCount
)

// sessionCard bundles one session's inputs with its calendar and
// reconciler. The calendar is built lazily on first focus of the date
// field and destroyed with the card.
type sessionCard struct {
	sess       *session.Session
	dateField  textinput.Model
	startHour  textinput.Model
	startMin   textinput.Model
	endHour    textinput.Model
	endMin     textinput.Model
	content    textarea.Model
	calendar   *Calendar
	reconciler *TimeReconciler
	field      cardField
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo listing.Repository
	cfg  *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Form state
	lst      listing.Listing
	sessions *session.List
	cards    []*sessionCard
	registry *PopupRegistry
	draftID  int64

	// Focus state
	step       Step
	mode       Mode
	basicFocus int // 0=title, 1=categories, 2=activity
	catCursor  int
	slotCursor int // 0=cover, 1..ExtraImageSlots=extras
	cardCursor int

	// confirmRemove holds the card index a pending ctrl+d would delete,
	// or -1 when no removal is awaiting confirmation.
	confirmRemove int

	// Components
	title      textinput.Model
	pathPrompt textinput.Model
	promptSlot int // slot the prompt is filling, or -1

	// Debouncer id allocator; ids must stay unique per reconciler.
	nextDebounceID int

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string
	statusTime time.Time

	// Error state
	err error

	// Clock override for tests.
	now func() time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClock overrides the model's clock.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// WithDraft preloads an existing draft into the form.
func WithDraft(d *listing.Draft) ModelOption {
	return func(m *Model) {
		m.loadDraft(d)
	}
}

// New creates a new TUI model.
func New(repo listing.Repository, cfg *config.Config, opts ...ModelOption) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("frappe")
	}
	styles := NewStyles(t)

	title := textinput.New()
	title.Placeholder = "모임 제목 (8자 이상)"
	title.CharLimit = 0 // length is grapheme-bounded, not byte-bounded
	title.Width = 42

	pathPrompt := textinput.New()
	pathPrompt.Placeholder = "이미지 파일 경로"
	pathPrompt.Width = 42

	m := &Model{
		repo:          repo,
		cfg:           cfg,
		theme:         t,
		styles:        styles,
		sessions:      session.NewList(),
		registry:      NewPopupRegistry(),
		title:         title,
		pathPrompt:    pathPrompt,
		promptSlot:    -1,
		confirmRemove: -1,
		now:           time.Now,
	}
	m.title.Focus()

	for _, opt := range opts {
		opt(m)
	}

	if len(m.cards) == 0 {
		m.rebuildCards()
	}

	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// debounceDelay returns the configured reconciliation quiet period.
func (m *Model) debounceDelay() time.Duration {
	return time.Duration(m.cfg.Form.DebounceMillis) * time.Millisecond
}

// newCard builds the inputs and reconciler for one session. The calendar
// stays nil until the date field is first opened.
func (m *Model) newCard(sess *session.Session) *sessionCard {
	dateField := textinput.New()
	dateField.Placeholder = "날짜 선택"
	dateField.Width = 16
	if t, err := dateutil.ParseISO(sess.Date); err == nil {
		dateField.SetValue(dateutil.FormatDisplay(t))
	}

	numField := func(value string) textinput.Model {
		f := textinput.New()
		// One spare slot so typing over a full value keeps the most
		// recent two digits instead of swallowing the keystroke.
		f.CharLimit = 3
		f.Width = 3
		f.SetValue(value)
		return f
	}

	content := textarea.New()
	content.Placeholder = "세션 소개 (8자 이상)"
	content.CharLimit = 0
	content.SetWidth(46)
	content.SetHeight(4)
	content.SetValue(sess.Content)

	card := &sessionCard{
		sess:      sess,
		dateField: dateField,
		startHour: numField(sess.StartHour),
		startMin:  numField(sess.StartMinute),
		endHour:   numField(sess.EndHour),
		endMin:    numField(sess.EndMinute),
		content:   content,
	}
	card.reconciler = NewTimeReconciler(sess, m.nextDebounceID, m.nextDebounceID+1, m.debounceDelay())
	m.nextDebounceID += 2
	return card
}

// rebuildCards recreates every card from the session list, destroying the
// calendars of cards that go away. Used on load and after add/remove.
func (m *Model) rebuildCards() {
	for _, card := range m.cards {
		if card.calendar != nil {
			card.calendar.Destroy()
		}
	}
	m.cards = make([]*sessionCard, 0, m.sessions.Len())
	for i := 0; i < m.sessions.Len(); i++ {
		m.cards = append(m.cards, m.newCard(m.sessions.At(i)))
	}
	if m.cardCursor >= len(m.cards) {
		m.cardCursor = len(m.cards) - 1
	}
	if m.cardCursor < 0 {
		m.cardCursor = 0
	}
}

// refreshConstraints pushes a fresh date range into every live calendar.
// One session's date narrows its siblings, so this runs after every
// confirmed selection and after add/remove.
func (m *Model) refreshConstraints() {
	for i, card := range m.cards {
		if card.calendar == nil {
			continue
		}
		r := m.sessions.RangeFor(i, m.now())
		card.calendar.SetConstraints(r.MinDate, r.MaxDate, r.DisabledDates)
	}
}

// openCalendar lazily builds and opens the calendar for card i.
func (m *Model) openCalendar(i int) {
	card := m.cards[i]
	if card.calendar == nil {
		r := m.sessions.RangeFor(i, m.now())
		idx := i
		card.calendar = NewCalendar(m.registry, &card.dateField, CalendarOptions{
			MinDate:       r.MinDate,
			MaxDate:       r.MaxDate,
			DisabledDates: r.DisabledDates,
			Now:           m.now,
			OnSelect: func(t time.Time) {
				m.confirmDate(idx, t)
			},
		})
	} else {
		r := m.sessions.RangeFor(i, m.now())
		card.calendar.SetConstraints(r.MinDate, r.MaxDate, r.DisabledDates)
	}
	card.calendar.Open()
	m.mode = ModeCalendar
	LogPopup(i, "open")
}

// confirmDate records a confirmed calendar pick and re-derives every
// sibling's constraints.
func (m *Model) confirmDate(i int, t time.Time) {
	if err := m.sessions.SetDate(i, t); err != nil {
		m.setStatus(err.Error())
		return
	}
	LogDateSelect(i, dateutil.FormatISO(t))
	m.refreshConstraints()
}

// loadDraft replaces the form state with a stored draft.
func (m *Model) loadDraft(d *listing.Draft) {
	m.lst = d.Listing
	m.draftID = d.ID
	if len(d.Sessions) > 0 {
		m.sessions = session.NewListOf(d.Sessions...)
	} else {
		m.sessions = session.NewList()
	}
	m.title.SetValue(d.Listing.Title)
	m.rebuildCards()
}

// buildDraft snapshots the form into a persistable draft.
func (m *Model) buildDraft() *listing.Draft {
	m.syncCards()
	return &listing.Draft{
		ID:       m.draftID,
		Listing:  m.lst,
		Sessions: m.sessions.Sessions(),
	}
}

// syncCards copies free-text inputs back into the models. Structured
// fields (date, periods, sanitized times) are already pushed on change.
func (m *Model) syncCards() {
	m.lst.Title, _ = m.lst.SetTitle(m.title.Value())
	m.title.SetValue(m.lst.Title)
	for _, card := range m.cards {
		card.sess.Content = card.content.Value()
		card.reconciler.Flush()
		m.syncTimeInputs(card)
	}
}

// syncTimeInputs mirrors the session's canonical time fields back into
// the card's inputs, after a reconciliation pass rewrote them.
func (m *Model) syncTimeInputs(card *sessionCard) {
	card.startHour.SetValue(card.sess.StartHour)
	card.startMin.SetValue(card.sess.StartMinute)
	card.endHour.SetValue(card.sess.EndHour)
	card.endMin.SetValue(card.sess.EndMinute)
}

// setStatus shows a transient toast-style message.
func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusTime = m.now().Add(3 * time.Second)
}

// Run starts the TUI.
func Run(repo listing.Repository, cfg *config.Config, opts ...ModelOption) error {
	return RunWithDebug(repo, cfg, false, opts...)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo listing.Repository, cfg *config.Config, debug bool, opts ...ModelOption) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(repo, cfg, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
