package news

import (
	"context"
	"fmt"
	"strings"
)

// Service wraps repository operations with input validation
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service { return &Service{repo: r} }

// Publish stores a new announcement and returns its id.
func (s *Service) Publish(ctx context.Context, title, body, lang string) (int64, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" {
		return 0, fmt.Errorf("title is required")
	}
	if body == "" {
		return 0, fmt.Errorf("body is required")
	}
	a := &Announcement{Title: title, Body: body, Lang: lang}
	return s.repo.Create(ctx, a)
}

// List returns all announcements, newest first.
func (s *Service) List(ctx context.Context) ([]*Announcement, error) {
	return s.repo.ListAll(ctx)
}
