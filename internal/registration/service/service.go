package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/samara-logia/cadaster-portal/internal/registration"
	"github.com/samara-logia/cadaster-portal/internal/registration/repository"
	"github.com/samara-logia/cadaster-portal/internal/upload"
	"github.com/samara-logia/cadaster-portal/pkg/logger"
)

// ValidationError rejects a submission before any side effect happens.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// SubmitInput carries one submission: the scalar fields plus an optional
// supporting document. Document is nil when nothing was attached.
type SubmitInput struct {
	FullName      string
	PhoneNumber   string
	SubcityKebele string
	HouseNumber   string
	AreaSqm       *float64

	DocumentName string
	Document     io.Reader
}

// Service orchestrates validation, document persistence and the relational
// insert into one submission operation.
type Service struct {
	repo repository.Repository
	docs upload.DocumentStore
}

func NewService(repo repository.Repository, docs upload.DocumentStore) *Service {
	return &Service{repo: repo, docs: docs}
}

// Submit validates the input, stores the attached document (if any) and
// inserts the registration row. Returns the assigned tracking id.
//
// Scalar validation happens before the document store is touched, so a
// rejected submission never leaves a file behind. If the insert fails after
// the document was written, the document is removed best-effort.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (int64, error) {
	fullName := strings.TrimSpace(in.FullName)
	phone := strings.TrimSpace(in.PhoneNumber)
	if fullName == "" {
		return 0, &ValidationError{Field: "fullName"}
	}
	if phone == "" {
		return 0, &ValidationError{Field: "phoneNumber"}
	}

	var docPath string
	if in.Document != nil {
		p, err := s.docs.Save(ctx, in.DocumentName, in.Document)
		if err != nil {
			return 0, err
		}
		docPath = p
	}

	rec := &registration.Record{
		FullName:      fullName,
		PhoneNumber:   phone,
		SubcityKebele: strings.TrimSpace(in.SubcityKebele),
		HouseNumber:   strings.TrimSpace(in.HouseNumber),
		AreaSqm:       in.AreaSqm,
		DocumentPath:  docPath,
	}
	id, err := s.repo.Insert(ctx, rec)
	if err != nil {
		if docPath != "" {
			if rmErr := s.docs.Remove(ctx, docPath); rmErr != nil {
				logger.Warnf("orphaned document %s after failed insert: %v", docPath, rmErr)
			}
		}
		return 0, err
	}
	return id, nil
}

// List returns every stored application, newest first.
func (s *Service) List(ctx context.Context) ([]*registration.Record, error) {
	return s.repo.ListAll(ctx)
}

// TrackingID renders the applicant-facing form of an assigned id.
func TrackingID(id int64) string {
	return fmt.Sprintf("REG-%d", id)
}
