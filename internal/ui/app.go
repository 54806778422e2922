// Package ui provides the Bubble Tea admin console for the media library:
// exercise and music tabs, category filtering, inline editing, and
// multipart uploads driven through the list managers.
package ui

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"mindful/media-admin/internal/client"
	"mindful/media-admin/internal/domain"
	"mindful/media-admin/internal/manager"
)

// Tab identifies the active library tab.
type Tab int

const (
	TabExercises Tab = iota
	TabMusic
)

// Mode identifies the active interaction mode within a tab.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeCreate
	ModeEdit
	ModeConfirmDelete
)

// Options configures the console.
type Options struct {
	Context   context.Context
	Client    *client.Client
	Exercises *manager.Manager[domain.Exercise, domain.ExerciseFields]
	Music     *manager.Manager[domain.Music, domain.MusicFields]
}

// NoticeLog collects manager notices so the Update loop can drain them
// after each command finishes. Register it as the Notifier of both
// managers.
type NoticeLog struct {
	mu      sync.Mutex
	notices []manager.Notice
}

// NewNoticeLog returns an empty notice sink.
func NewNoticeLog() *NoticeLog { return &NoticeLog{} }

// Notify implements manager.Notifier.
func (l *NoticeLog) Notify(n manager.Notice) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notices = append(l.notices, n)
}

func (l *NoticeLog) drain() []manager.Notice {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.notices
	l.notices = nil
	return out
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	client    *client.Client
	exercises *manager.Manager[domain.Exercise, domain.ExerciseFields]
	music     *manager.Manager[domain.Music, domain.MusicFields]
	notices   *NoticeLog

	styles Styles
	width  int
	height int

	tab    Tab
	mode   Mode
	row    int
	form   form
	status manager.Notice
	busy   bool
}

// New creates the console model. Both managers must have been built with
// the same notice sink passed here, or their messages are never shown.
func New(opts Options, notices *NoticeLog) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return Model{
		ctx:       ctx,
		client:    opts.Client,
		exercises: opts.Exercises,
		music:     opts.Music,
		notices:   notices,
		styles:    DefaultStyles(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.reloadCmd(TabExercises),
		m.reloadCmd(TabMusic),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case opDoneMsg:
		m.busy = false
		for _, n := range m.notices.drain() {
			m.status = n
		}
		if msg.resetForm {
			m.mode = ModeBrowse
		}
		m.clampRow()
		return m, nil
	}

	if m.mode == ModeCreate || m.mode == ModeEdit {
		return m, m.form.update(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.mode {
	case ModeCreate, ModeEdit:
		b.WriteString(m.form.view(m.styles))
	case ModeConfirmDelete:
		b.WriteString(m.renderConfirm())
	default:
		b.WriteString(m.renderList())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeCreate || m.mode == ModeEdit {
		return m.handleFormKey(msg)
	}
	if m.mode == ModeConfirmDelete {
		return m.handleConfirmKey(msg)
	}
	return m.handleBrowseKey(msg)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab", "shift+tab":
		if m.tab == TabExercises {
			m.tab = TabMusic
		} else {
			m.tab = TabExercises
		}
		m.row = 0
		return m, nil

	case "j", "down":
		m.row++
		m.clampRow()
		return m, nil

	case "k", "up":
		if m.row > 0 {
			m.row--
		}
		return m, nil

	case "f":
		m.cycleFilter()
		m.row = 0
		return m, nil

	case "r":
		m.busy = true
		return m, m.reloadCmd(m.tab)

	case "n":
		m.form = m.newCreateForm()
		m.mode = ModeCreate
		return m, nil

	case "e", "enter":
		return m.startEdit()

	case "d", "delete":
		if id, ok := m.selectedID(); ok {
			if m.tab == TabExercises {
				m.exercises.RequestDelete(id)
			} else {
				m.music.RequestDelete(id)
			}
			m.mode = ModeConfirmDelete
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.mode == ModeEdit {
			if m.tab == TabExercises {
				m.exercises.CancelEdit()
			} else {
				m.music.CancelEdit()
			}
		}
		m.mode = ModeBrowse
		return m, nil

	case "tab":
		return m, m.form.next()

	case "shift+tab":
		return m, m.form.prev()

	case "ctrl+s":
		return m.submitForm()
	}

	// Enter advances single-line fields; inside the textarea it inserts a
	// newline, which is how multi-step instructions are typed.
	if msg.String() == "enter" {
		if fld := m.form.focused(); fld != nil && fld.area == nil {
			return m, m.form.next()
		}
	}

	return m, m.form.update(msg)
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.mode = ModeBrowse
		m.busy = true
		tab := m.tab
		return m, func() tea.Msg {
			var err error
			if tab == TabExercises {
				err = m.exercises.ConfirmDelete(m.ctx)
			} else {
				err = m.music.ConfirmDelete(m.ctx)
			}
			return opDoneMsg{err: err}
		}

	case "n", "esc", "q":
		if m.tab == TabExercises {
			m.exercises.CancelDelete()
		} else {
			m.music.CancelDelete()
		}
		m.mode = ModeBrowse
		return m, nil
	}
	return m, nil
}

func (m Model) startEdit() (tea.Model, tea.Cmd) {
	id, ok := m.selectedID()
	if !ok {
		return m, nil
	}
	if m.tab == TabExercises {
		if err := m.exercises.StartEdit(id); err != nil {
			m.status = manager.Notice{Severity: manager.SeverityError, Message: err.Error()}
			return m, nil
		}
		staged := m.exercises.Session().Staged()
		m.form = newForm("Edit Exercise",
			newField("Name", "Exercise name", staged.Name),
			newField("Category", "e.g. Focus", staged.Category),
			newField("Duration", "e.g. 10 min", staged.Duration),
			newField("Difficulty", "Beginner / Intermediate / Advanced", staged.Difficulty),
			newField("Description", "", staged.Description),
			newAreaField("Instructions", staged.Instructions),
		)
	} else {
		if err := m.music.StartEdit(id); err != nil {
			m.status = manager.Notice{Severity: manager.SeverityError, Message: err.Error()}
			return m, nil
		}
		staged := m.music.Session().Staged()
		m.form = newForm("Edit Music",
			newField("Name", "Track name", staged.Name),
			newField("Author", "Artist", staged.Author),
			newField("Category", "e.g. Ambient", staged.Category),
		)
	}
	m.mode = ModeEdit
	return m, nil
}

func (m Model) newCreateForm() form {
	if m.tab == TabExercises {
		return newForm("New Exercise",
			newField("Name", "Exercise name", ""),
			newField("Category", "e.g. Focus", ""),
			newField("Duration", "e.g. 10 min", ""),
			newField("Difficulty", "Beginner / Intermediate / Advanced", ""),
			newField("Description", "", ""),
			newAreaField("Instructions", ""),
			newField("Video file", "/path/to/video.mp4", ""),
		)
	}
	return newForm("New Music",
		newField("Name", "Track name", ""),
		newField("Author", "Artist", ""),
		newField("Category", "e.g. Ambient", ""),
		newField("Audio file", "/path/to/track.mp3", ""),
	)
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeCreate:
		return m.submitCreate()
	case ModeEdit:
		return m.submitEdit()
	}
	return m, nil
}

func (m Model) submitCreate() (tea.Model, tea.Cmd) {
	m.busy = true
	tab := m.tab

	if tab == TabExercises {
		fields := domain.ExerciseFields{
			Name:         m.form.fields[0].value(),
			Category:     m.form.fields[1].value(),
			Duration:     m.form.fields[2].value(),
			Difficulty:   m.form.fields[3].value(),
			Description:  m.form.fields[4].value(),
			Instructions: m.form.fields[5].value(),
		}
		path := m.form.fields[6].value()
		return m, func() tea.Msg {
			media, done, err := openMedia(path)
			if err != nil {
				m.notices.Notify(manager.Notice{Severity: manager.SeverityError, Message: err.Error()})
				return opDoneMsg{err: err}
			}
			defer done()
			err = m.exercises.Create(m.ctx, fields, media)
			return opDoneMsg{err: err, resetForm: err == nil}
		}
	}

	fields := domain.MusicFields{
		Name:     m.form.fields[0].value(),
		Author:   m.form.fields[1].value(),
		Category: m.form.fields[2].value(),
	}
	path := m.form.fields[3].value()
	return m, func() tea.Msg {
		media, done, err := openMedia(path)
		if err != nil {
			m.notices.Notify(manager.Notice{Severity: manager.SeverityError, Message: err.Error()})
			return opDoneMsg{err: err}
		}
		defer done()
		err = m.music.Create(m.ctx, fields, media)
		return opDoneMsg{err: err, resetForm: err == nil}
	}
}

func (m Model) submitEdit() (tea.Model, tea.Cmd) {
	m.busy = true
	if m.tab == TabExercises {
		m.exercises.SetStaged(domain.ExerciseFields{
			Name:         m.form.fields[0].value(),
			Category:     m.form.fields[1].value(),
			Duration:     m.form.fields[2].value(),
			Difficulty:   m.form.fields[3].value(),
			Description:  m.form.fields[4].value(),
			Instructions: m.form.fields[5].value(),
		})
		return m, func() tea.Msg {
			err := m.exercises.SaveEdit(m.ctx)
			return opDoneMsg{err: err, resetForm: err == nil}
		}
	}
	m.music.SetStaged(domain.MusicFields{
		Name:     m.form.fields[0].value(),
		Author:   m.form.fields[1].value(),
		Category: m.form.fields[2].value(),
	})
	return m, func() tea.Msg {
		err := m.music.SaveEdit(m.ctx)
		return opDoneMsg{err: err, resetForm: err == nil}
	}
}

func (m *Model) cycleFilter() {
	var categories []string
	var selected string
	if m.tab == TabExercises {
		categories = m.exercises.Categories()
		selected = m.exercises.Selected()
	} else {
		categories = m.music.Categories()
		selected = m.music.Selected()
	}
	next := categories[0]
	for i, c := range categories {
		if strings.EqualFold(c, selected) {
			next = categories[(i+1)%len(categories)]
			break
		}
	}
	if m.tab == TabExercises {
		m.exercises.Select(next)
	} else {
		m.music.Select(next)
	}
}

func (m *Model) clampRow() {
	n := m.visibleCount()
	if n == 0 {
		m.row = 0
		return
	}
	if m.row >= n {
		m.row = n - 1
	}
}

func (m Model) visibleCount() int {
	if m.tab == TabExercises {
		return len(m.exercises.Visible())
	}
	return len(m.music.Visible())
}

func (m Model) selectedID() (string, bool) {
	if m.tab == TabExercises {
		visible := m.exercises.Visible()
		if m.row < len(visible) {
			return visible[m.row].EntityID(), true
		}
		return "", false
	}
	visible := m.music.Visible()
	if m.row < len(visible) {
		return visible[m.row].EntityID(), true
	}
	return "", false
}

// openMedia opens a local media file for upload. The returned closer must
// be called after the upload finishes.
func openMedia(path string) (domain.MediaFile, func(), error) {
	if strings.TrimSpace(path) == "" {
		return domain.MediaFile{}, nil, fmt.Errorf("no media file selected")
	}
	f, err := os.Open(path)
	if err != nil {
		return domain.MediaFile{}, nil, fmt.Errorf("open media file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return domain.MediaFile{}, nil, fmt.Errorf("stat media file: %w", err)
	}
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	media := domain.MediaFile{
		FileName:    filepath.Base(path),
		ContentType: contentType,
		Size:        info.Size(),
		Content:     f,
	}
	return media, func() { f.Close() }, nil
}

// Messages

type opDoneMsg struct {
	err       error
	resetForm bool
}

// Commands

func (m Model) reloadCmd(tab Tab) tea.Cmd {
	return func() tea.Msg {
		var err error
		if tab == TabExercises {
			err = m.exercises.Load(m.ctx)
		} else {
			err = m.music.Load(m.ctx)
		}
		return opDoneMsg{err: err}
	}
}

// Run starts the console.
func Run(opts Options, notices *NoticeLog) error {
	p := tea.NewProgram(New(opts, notices), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
