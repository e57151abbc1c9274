package services

import (
	"context"
	"strings"
	"time"

	"binaa-admin/internal/domain/entity"
	"binaa-admin/internal/domain/event"
	"binaa-admin/internal/domain/repository"
	"binaa-admin/internal/infrastructure/bus"
	"binaa-admin/pkg/errors"
)

// ComplaintService handles admin responses to client complaints
type ComplaintService struct {
	directory repository.Directory
	eventBus  bus.EventBus
}

// NewComplaintService creates a new complaint service
func NewComplaintService(directory repository.Directory, eventBus bus.EventBus) *ComplaintService {
	return &ComplaintService{
		directory: directory,
		eventBus:  eventBus,
	}
}

// Respond records an admin response against a complaint and marks it
// responded.
func (s *ComplaintService) Respond(ctx context.Context, id, responseText string) (*entity.Complaint, error) {
	responseText = strings.TrimSpace(responseText)
	if responseText == "" {
		return nil, errors.NewValidationError("response is required")
	}

	complaint, err := s.directory.RespondToComplaint(ctx, id, responseText)
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, &event.ComplaintResponded{
		ComplaintID: complaint.ID,
		Timestamp:   time.Now().UTC(),
	})

	return complaint, nil
}
