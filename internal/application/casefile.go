package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/haiminh-dev/ihk-case-api/internal/domain/casefile"
	"github.com/haiminh-dev/ihk-case-api/internal/repository"
	"github.com/haiminh-dev/ihk-case-api/internal/storage"
)

var ErrFullNameRequired = errors.New("fullName is required")

type CaseService struct {
	Repos *repository.Repos
	Store storage.ObjectStore
	Docs  *DocumentService
}

func NewCaseService(repos *repository.Repos, store storage.ObjectStore, docs *DocumentService) *CaseService {
	return &CaseService{Repos: repos, Store: store, Docs: docs}
}

func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	if d, err := time.Parse("2006-01-02", *s); err == nil {
		return &d
	}
	if d, err := time.Parse(time.RFC3339, *s); err == nil {
		return &d
	}
	return nil
}

// CreateCase writes the case row and synchronously seeds the full checklist
// and the default custom documents, so the caller can upload against the new
// case as soon as the call returns.
func (s *CaseService) CreateCase(input casefile.CreateCaseInput) (casefile.Case, error) {
	if input.FullName == "" {
		return casefile.Case{}, ErrFullNameRequired
	}

	status := casefile.StatusVanThieuHoSo
	if input.VisaStatus != nil {
		if st, ok := casefile.NormalizeVisaStatus(*input.VisaStatus); ok {
			status = st
		}
	}

	c := casefile.Case{
		FullName:   input.FullName,
		Dob:        parseDate(input.Dob),
		JobTitle:   input.JobTitle,
		Phone:      input.Phone,
		City:       input.City,
		VisaStatus: status,
	}
	if err := s.Repos.Case.Create(&c); err != nil {
		return casefile.Case{}, err
	}

	if err := s.Docs.EnsureChecklist(c.ID); err != nil {
		return casefile.Case{}, err
	}
	if err := s.Docs.EnsureDefaultCustomDocs(c.ID); err != nil {
		return casefile.Case{}, err
	}

	return c, nil
}

func (s *CaseService) ListCases() ([]casefile.Case, error) {
	return s.Repos.Case.List()
}

func (s *CaseService) GetCase(caseID uint) (casefile.Case, error) {
	c, err := s.Repos.Case.GetByID(caseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return casefile.Case{}, fmt.Errorf("%w: case %d", ErrCaseNotFound, caseID)
		}
		return casefile.Case{}, err
	}
	return c, nil
}

// UpdateCase applies a partial payload; absent fields stay untouched and an
// unrecognizable visa-status string is silently ignored.
func (s *CaseService) UpdateCase(caseID uint, input casefile.UpdateCaseInput) (casefile.Case, error) {
	c, err := s.Repos.Case.GetByID(caseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return casefile.Case{}, fmt.Errorf("%w: case %d", ErrCaseNotFound, caseID)
		}
		return casefile.Case{}, err
	}

	if input.FullName != nil {
		c.FullName = *input.FullName
	}
	if d := parseDate(input.Dob); d != nil {
		c.Dob = d
	}
	if input.JobTitle != nil {
		c.JobTitle = input.JobTitle
	}
	if input.Phone != nil {
		c.Phone = input.Phone
	}
	if input.City != nil {
		c.City = input.City
	}
	if input.VisaStatus != nil {
		if st, ok := casefile.NormalizeVisaStatus(*input.VisaStatus); ok {
			c.VisaStatus = st
		}
	}

	if err := s.Repos.Case.Save(&c); err != nil {
		return casefile.Case{}, err
	}
	return c, nil
}

// DeleteCase removes the case and all its document rows, then attempts to
// delete every referenced blob. The row deletions are the durability
// boundary; blob cleanup is best-effort and never fails the operation.
func (s *CaseService) DeleteCase(ctx context.Context, caseID uint) error {
	if _, err := s.Repos.Case.GetByID(caseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: case %d", ErrCaseNotFound, caseID)
		}
		return err
	}

	docs, err := s.Repos.Document.ListByCase(caseID)
	if err != nil {
		return err
	}
	customDocs, err := s.Repos.CustomDoc.ListByCase(caseID)
	if err != nil {
		return err
	}

	var keys []string
	for _, d := range docs {
		if d.StorageKey != nil {
			keys = append(keys, *d.StorageKey)
		}
	}
	for _, d := range customDocs {
		if d.StorageKey != nil {
			keys = append(keys, *d.StorageKey)
		}
	}

	if err := s.Repos.Document.DeleteByCase(caseID); err != nil {
		return err
	}
	if err := s.Repos.CustomDoc.DeleteByCase(caseID); err != nil {
		return err
	}
	if err := s.Repos.Case.Delete(caseID); err != nil {
		return err
	}

	for _, key := range keys {
		if err := s.Store.Delete(ctx, key); err != nil {
			log.Printf("cleanup of blob %s failed: %v", key, err)
		}
	}

	return nil
}
