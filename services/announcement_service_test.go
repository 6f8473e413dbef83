package services

import (
	"context"
	"testing"
	"time"

	"github.com/Dosada05/league-backend/models"
	"github.com/Dosada05/league-backend/repositories/memory"
)

func TestListActive_FiltersExpired(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	ctx := context.Background()
	now := time.Now().UTC()

	past := now.Add(-time.Hour)
	future := now.Add(24 * time.Hour)

	expired := &models.Announcement{Title: "Old news", Content: "gone", ExpiresAt: &past}
	current := &models.Announcement{Title: "Fresh news", Content: "here", ExpiresAt: &future}
	evergreen := &models.Announcement{Title: "Pinned", Content: "stays"}

	for _, a := range []*models.Announcement{expired, current, evergreen} {
		if err := store.Announcements().Create(ctx, a); err != nil {
			t.Fatalf("create announcement: %v", err)
		}
	}

	svc := NewAnnouncementService(store.Announcements())
	active, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}

	if len(active) != 2 {
		t.Fatalf("expected 2 active announcements, got %d", len(active))
	}
	for _, a := range active {
		if a.Title == "Old news" {
			t.Fatal("expired announcement must be filtered out")
		}
	}
}
