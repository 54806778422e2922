package manager

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mindful/media-admin/internal/domain"
)

// fakeRepo counts calls so tests can assert that validation failures never
// reach the backend.
type fakeRepo struct {
	items []domain.Exercise

	listCalls   int
	createCalls int
	updateCalls int
	removeCalls int

	listErr   error
	createErr error
	updateErr error
	removeErr error

	lastUpdateID     string
	lastUpdateFields domain.ExerciseFields
}

func (r *fakeRepo) List(ctx context.Context) ([]domain.Exercise, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.items, nil
}

func (r *fakeRepo) Create(ctx context.Context, fields domain.ExerciseFields, media domain.MediaFile) (string, error) {
	r.createCalls++
	if r.createErr != nil {
		return "", r.createErr
	}
	return "Exercise uploaded successfully", nil
}

func (r *fakeRepo) Update(ctx context.Context, id string, fields domain.ExerciseFields) (string, error) {
	r.updateCalls++
	if r.updateErr != nil {
		return "", r.updateErr
	}
	r.lastUpdateID = id
	r.lastUpdateFields = fields
	return "Exercise updated successfully", nil
}

func (r *fakeRepo) Remove(ctx context.Context, id string) (string, error) {
	r.removeCalls++
	if r.removeErr != nil {
		return "", r.removeErr
	}
	return "Exercise deleted successfully", nil
}

type recordedNotices struct {
	all []Notice
}

func (r *recordedNotices) Notify(n Notice) { r.all = append(r.all, n) }

func (r *recordedNotices) lastError() string {
	for i := len(r.all) - 1; i >= 0; i-- {
		if r.all[i].Severity == SeverityError {
			return r.all[i].Message
		}
	}
	return ""
}

func exercise(id, name, category string) domain.Exercise {
	e := domain.Exercise{Name: name, Category: category}
	// A stable fake id: the manager only compares EntityID strings.
	copy(e.ID[:], id)
	return e
}

func validMedia() domain.MediaFile {
	return domain.MediaFile{
		FileName:    "clip.mp4",
		ContentType: "video/mp4",
		Size:        4,
		Content:     strings.NewReader("data"),
	}
}

func newTestManager(repo *fakeRepo) (*Manager[domain.Exercise, domain.ExerciseFields], *recordedNotices) {
	notices := &recordedNotices{}
	m := New[domain.Exercise, domain.ExerciseFields](repo, domain.StageExercise, "exercise", notices, nil)
	return m, notices
}

func TestLoadFailureKeepsList(t *testing.T) {
	repo := &fakeRepo{items: []domain.Exercise{exercise("a", "Breathing", "Focus")}}
	m, notices := newTestManager(repo)

	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("initial load: %v", err)
	}

	repo.listErr = errors.New("connection refused")
	if err := m.Load(context.Background()); err == nil {
		t.Fatalf("expected load error")
	}
	if len(m.Entities()) != 1 {
		t.Fatalf("list changed on failed reload: %v", m.Entities())
	}
	if notices.lastError() == "" {
		t.Fatalf("expected an error notice")
	}
}

func TestSelectSurvivesReload(t *testing.T) {
	repo := &fakeRepo{items: []domain.Exercise{exercise("a", "Breathing", "Focus")}}
	m, _ := newTestManager(repo)

	m.Select("Focus")
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Selected() != "Focus" {
		t.Fatalf("selection reset by reload: %q", m.Selected())
	}
}

func TestCreateValidationFailureMakesNoRequest(t *testing.T) {
	repo := &fakeRepo{}
	m, notices := newTestManager(repo)

	err := m.Create(context.Background(), domain.ExerciseFields{Name: "only a name"}, validMedia())
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if repo.createCalls != 0 {
		t.Fatalf("create reached the repo %d times, want 0", repo.createCalls)
	}
	if repo.listCalls != 0 {
		t.Fatalf("validation failure triggered a reload")
	}
	if notices.lastError() == "" {
		t.Fatalf("expected a user-facing notice")
	}
}

func TestCreateMissingMediaMakesNoRequest(t *testing.T) {
	repo := &fakeRepo{}
	m, _ := newTestManager(repo)

	fields := domain.ExerciseFields{Name: "n", Category: "c", Duration: "5 min"}
	if err := m.Create(context.Background(), fields, domain.MediaFile{}); err == nil {
		t.Fatalf("expected validation error for missing media")
	}
	if repo.createCalls != 0 {
		t.Fatalf("create reached the repo without a media file")
	}
}

func TestCreateSuccessReloads(t *testing.T) {
	repo := &fakeRepo{}
	m, notices := newTestManager(repo)

	fields := domain.ExerciseFields{Name: "n", Category: "c", Duration: "5 min"}
	if err := m.Create(context.Background(), fields, validMedia()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if repo.createCalls != 1 {
		t.Fatalf("createCalls = %d, want 1", repo.createCalls)
	}
	if repo.listCalls != 1 {
		t.Fatalf("listCalls = %d, want a reconciliation refetch", repo.listCalls)
	}
	last := notices.all[len(notices.all)-1]
	if last.Severity != SeverityInfo || last.Message == "" {
		t.Fatalf("expected a success notice, got %+v", last)
	}
}

func TestEditLifecycle(t *testing.T) {
	first := exercise("a", "Breathing", "Focus")
	repo := &fakeRepo{items: []domain.Exercise{first}}
	m, _ := newTestManager(repo)
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := m.StartEdit(first.EntityID()); err != nil {
		t.Fatalf("start edit: %v", err)
	}
	session := m.Session()
	if !session.Active() || session.ID() != first.EntityID() {
		t.Fatalf("unexpected session %+v", session)
	}
	if session.Staged().Name != "Breathing" {
		t.Fatalf("staged fields not copied: %+v", session.Staged())
	}

	// Cancel is pure: no request, no list change.
	m.CancelEdit()
	if m.Session().Active() {
		t.Fatalf("session still active after cancel")
	}
	if repo.updateCalls != 0 {
		t.Fatalf("cancel sent an update")
	}

	// Save submits staged values and closes the session.
	if err := m.StartEdit(first.EntityID()); err != nil {
		t.Fatalf("start edit: %v", err)
	}
	staged := m.Session().Staged()
	staged.Name = "Box Breathing"
	m.SetStaged(staged)
	if err := m.SaveEdit(context.Background()); err != nil {
		t.Fatalf("save edit: %v", err)
	}
	if repo.lastUpdateID != first.EntityID() {
		t.Fatalf("update id = %q", repo.lastUpdateID)
	}
	if repo.lastUpdateFields.Name != "Box Breathing" {
		t.Fatalf("update fields = %+v", repo.lastUpdateFields)
	}
	if m.Session().Active() {
		t.Fatalf("session still active after save")
	}
}

func TestStartEditReplacesActiveSession(t *testing.T) {
	a := exercise("a", "Breathing", "Focus")
	b := exercise("b", "Body Scan", "Relax")
	repo := &fakeRepo{items: []domain.Exercise{a, b}}
	m, _ := newTestManager(repo)
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := m.StartEdit(a.EntityID()); err != nil {
		t.Fatalf("start edit a: %v", err)
	}
	staged := m.Session().Staged()
	staged.Name = "edited but never saved"
	m.SetStaged(staged)

	if err := m.StartEdit(b.EntityID()); err != nil {
		t.Fatalf("start edit b: %v", err)
	}
	session := m.Session()
	if session.ID() != b.EntityID() {
		t.Fatalf("session id = %q, want %q", session.ID(), b.EntityID())
	}
	if session.Staged().Name != "Body Scan" {
		t.Fatalf("stale staged fields survived replacement: %+v", session.Staged())
	}
}

func TestSaveEditFailureKeepsSessionOpen(t *testing.T) {
	a := exercise("a", "Breathing", "Focus")
	repo := &fakeRepo{items: []domain.Exercise{a}}
	m, notices := newTestManager(repo)
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := m.StartEdit(a.EntityID()); err != nil {
		t.Fatalf("start edit: %v", err)
	}

	repo.updateErr = errors.New("update failed")
	if err := m.SaveEdit(context.Background()); err == nil {
		t.Fatalf("expected save error")
	}
	if !m.Session().Active() {
		t.Fatalf("session closed despite failure")
	}
	if notices.lastError() != "update failed" {
		t.Fatalf("notice = %q, want the backend error", notices.lastError())
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	a := exercise("a", "Breathing", "Focus")
	repo := &fakeRepo{items: []domain.Exercise{a}}
	m, _ := newTestManager(repo)
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	m.RequestDelete(a.EntityID())
	if repo.removeCalls != 0 {
		t.Fatalf("request alone reached the repo")
	}

	m.CancelDelete()
	if _, pending := m.PendingDelete(); pending {
		t.Fatalf("pending delete survived cancel")
	}
	if repo.removeCalls != 0 {
		t.Fatalf("cancel reached the repo")
	}

	m.RequestDelete(a.EntityID())
	if err := m.ConfirmDelete(context.Background()); err != nil {
		t.Fatalf("confirm delete: %v", err)
	}
	if repo.removeCalls != 1 {
		t.Fatalf("removeCalls = %d, want 1", repo.removeCalls)
	}
}

func TestDeleteFailureLeavesListUnchanged(t *testing.T) {
	a := exercise("a", "Breathing", "Focus")
	repo := &fakeRepo{items: []domain.Exercise{a}}
	m, notices := newTestManager(repo)
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	repo.removeErr = errors.New("delete failed")
	m.RequestDelete(a.EntityID())
	if err := m.ConfirmDelete(context.Background()); err == nil {
		t.Fatalf("expected delete error")
	}
	if len(m.Entities()) != 1 {
		t.Fatalf("list changed after failed delete")
	}
	if notices.lastError() != "delete failed" {
		t.Fatalf("notice = %q", notices.lastError())
	}
}
