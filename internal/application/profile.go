package application

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/haiminh-dev/ihk-case-api/internal/domain/profile"
	"github.com/haiminh-dev/ihk-case-api/internal/repository"
)

type ProfileService struct {
	Repos *repository.Repos
}

func NewProfileService(repos *repository.Repos) *ProfileService {
	return &ProfileService{Repos: repos}
}

// GetByCase returns the stored profile, or nil when the questionnaire has
// never been saved for this case.
func (s *ProfileService) GetByCase(caseID uint) (*profile.VisaProfile, error) {
	p, err := s.Repos.Profile.GetByCase(caseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Upsert sanitizes the raw questionnaire payload and replaces the case's
// profile wholesale.
func (s *ProfileService) Upsert(caseID uint, raw map[string]any) (profile.VisaProfile, error) {
	if _, err := s.Repos.Case.GetByID(caseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return profile.VisaProfile{}, fmt.Errorf("%w: case %d", ErrCaseNotFound, caseID)
		}
		return profile.VisaProfile{}, err
	}

	p := profile.SanitizeForStorage(raw)
	p.CaseID = caseID
	if err := s.Repos.Profile.Upsert(&p); err != nil {
		return profile.VisaProfile{}, err
	}
	return p, nil
}
