package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Dosada05/league-backend/models"
	"github.com/Dosada05/league-backend/repositories"
)

type AnnouncementService interface {
	ListActive(ctx context.Context) ([]models.Announcement, error)
}

type announcementService struct {
	announcementRepo repositories.AnnouncementRepository
	now              func() time.Time
}

func NewAnnouncementService(announcementRepo repositories.AnnouncementRepository) AnnouncementService {
	return &announcementService{
		announcementRepo: announcementRepo,
		now:              time.Now,
	}
}

func (s *announcementService) ListActive(ctx context.Context) ([]models.Announcement, error) {
	announcements, err := s.announcementRepo.ListActive(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return announcements, nil
}
