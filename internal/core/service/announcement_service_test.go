package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
	"github.com/campusgrid/timetable-portal/internal/core/ports"
)

type stubAnnouncementRepo struct {
	items  []domain.Announcement
	nextID int
}

func (r *stubAnnouncementRepo) Create(_ context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	r.nextID++
	a.ID = fmt.Sprintf("a-%d", r.nextID)
	r.items = append(r.items, *a)
	return a, nil
}

func (r *stubAnnouncementRepo) List(_ context.Context) ([]domain.Announcement, error) {
	return append([]domain.Announcement(nil), r.items...), nil
}

func (r *stubAnnouncementRepo) ListForLevel(_ context.Context, level string) ([]domain.Announcement, error) {
	var out []domain.Announcement
	for _, a := range r.items {
		if a.Level == "" || a.Level == level {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAnnouncementRepo) Update(_ context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	for i := range r.items {
		if r.items[i].ID == a.ID {
			r.items[i] = *a
			return a, nil
		}
	}
	return nil, domain.ErrAnnouncementNotFound
}

func (r *stubAnnouncementRepo) Delete(_ context.Context, id string) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrAnnouncementNotFound
}

func TestAnnouncementService_CreateStampsPoster(t *testing.T) {
	repo := &stubAnnouncementRepo{}
	pub := &recordPublisher{}
	svc := NewAnnouncementService(repo, pub, discardLogger)

	created, err := svc.Create(context.Background(), testIdentity(), ports.AnnouncementInput{
		Message: "Midterm moved to Friday",
		Level:   "100 ICT",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.PostedBy != "u1" {
		t.Errorf("posted_by = %q, want the poster's id", created.PostedBy)
	}

	events := pub.published()
	if len(events) != 1 || events[0].Table != ports.TableAnnouncements || events[0].Kind != ports.ChangeInsert {
		t.Errorf("unexpected events: %+v", events)
	}
}

func TestAnnouncementService_ListForLevel(t *testing.T) {
	repo := &stubAnnouncementRepo{items: []domain.Announcement{
		{ID: "a1", Message: "broadcast", Level: ""},
		{ID: "a2", Message: "for 100", Level: "100 ICT"},
		{ID: "a3", Message: "for 200", Level: "200 ICT"},
	}}
	svc := NewAnnouncementService(repo, &recordPublisher{}, discardLogger)

	out, err := svc.ListForLevel(context.Background(), "100 ICT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d announcements, want broadcast plus level match", len(out))
	}
	if out[0].ID != "a1" || out[1].ID != "a2" {
		t.Errorf("unexpected result: %+v", out)
	}
}

func TestAnnouncementService_UpdateAndDeletePublish(t *testing.T) {
	repo := &stubAnnouncementRepo{items: []domain.Announcement{{ID: "a-1", Message: "old"}}}
	pub := &recordPublisher{}
	svc := NewAnnouncementService(repo, pub, discardLogger)

	if _, err := svc.Update(context.Background(), "a-1", ports.AnnouncementInput{Message: "new"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := svc.Delete(context.Background(), "a-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	events := pub.published()
	if len(events) != 2 || events[0].Kind != ports.ChangeUpdate || events[1].Kind != ports.ChangeDelete {
		t.Errorf("unexpected events: %+v", events)
	}
}

var _ ports.AnnouncementRepository = (*stubAnnouncementRepo)(nil)
