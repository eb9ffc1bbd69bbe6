package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/haiminh-dev/ihk-case-api/internal/domain/casefile"
	"github.com/haiminh-dev/ihk-case-api/internal/domain/profile"
	"github.com/haiminh-dev/ihk-case-api/internal/repository"
	"github.com/haiminh-dev/ihk-case-api/internal/repository/mock"
)

func setupProfileServiceMocks(t *testing.T) (*ProfileService, *mock.MockCaseRepo, *mock.MockProfileRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockCase := mock.NewMockCaseRepo(ctrl)
	mockProfile := mock.NewMockProfileRepo(ctrl)
	repos := &repository.Repos{
		Case:    mockCase,
		Profile: mockProfile,
	}
	svc := NewProfileService(repos)
	return svc, mockCase, mockProfile
}

func TestProfileGetByCase_NeverSaved(t *testing.T) {
	svc, _, mockProfile := setupProfileServiceMocks(t)

	mockProfile.EXPECT().GetByCase(uint(3)).Return(profile.VisaProfile{}, gorm.ErrRecordNotFound)

	p, err := svc.GetByCase(3)
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestProfileUpsert_SanitizesPayload(t *testing.T) {
	svc, mockCase, mockProfile := setupProfileServiceMocks(t)

	mockCase.EXPECT().GetByID(uint(3)).Return(casefile.Case{ID: 3}, nil)
	mockProfile.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(p *profile.VisaProfile) error {
		assert.Equal(t, uint(3), p.CaseID)
		assert.Equal(t, "0912345678", *p.Phone)
		// empty string collapses to null
		assert.Nil(t, p.Email)
		assert.Equal(t, 170, *p.HeightCm)
		return nil
	})

	saved, err := svc.Upsert(3, map[string]any{
		"phone":    "0912345678",
		"email":    "",
		"heightCm": "170",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(3), saved.CaseID)
}

func TestProfileUpsert_CaseMissing(t *testing.T) {
	svc, mockCase, _ := setupProfileServiceMocks(t)

	mockCase.EXPECT().GetByID(uint(9)).Return(casefile.Case{}, gorm.ErrRecordNotFound)

	_, err := svc.Upsert(9, map[string]any{})
	assert.ErrorIs(t, err, ErrCaseNotFound)
}
