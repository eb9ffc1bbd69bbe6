package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/haiminh-dev/ihk-case-api/internal/domain/casefile"
	"github.com/haiminh-dev/ihk-case-api/internal/domain/document"
	"github.com/haiminh-dev/ihk-case-api/internal/repository"
	"github.com/haiminh-dev/ihk-case-api/internal/repository/mock"
	storagemock "github.com/haiminh-dev/ihk-case-api/internal/storage/mock"
)

type caseServiceMocks struct {
	caseRepo  *mock.MockCaseRepo
	docRepo   *mock.MockCaseDocumentRepo
	customDoc *mock.MockCustomDocumentRepo
	store     *storagemock.MockObjectStore
}

func setupCaseServiceMocks(t *testing.T) (*CaseService, caseServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := caseServiceMocks{
		caseRepo:  mock.NewMockCaseRepo(ctrl),
		docRepo:   mock.NewMockCaseDocumentRepo(ctrl),
		customDoc: mock.NewMockCustomDocumentRepo(ctrl),
		store:     storagemock.NewMockObjectStore(ctrl),
	}
	repos := &repository.Repos{
		Case:      m.caseRepo,
		Document:  m.docRepo,
		CustomDoc: m.customDoc,
	}
	docs := NewDocumentService(repos, m.store)
	svc := NewCaseService(repos, m.store, docs)
	return svc, m
}

// --------------------- CreateCase ---------------------
func TestCreateCase_SeedsChecklistAndCustomDocs(t *testing.T) {
	svc, m := setupCaseServiceMocks(t)

	dob := "1995-04-12"
	status := "da lan tay"

	m.caseRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *casefile.Case) error {
		assert.Equal(t, "Nguyễn Văn A", c.FullName)
		assert.Equal(t, casefile.StatusDaLanTay, c.VisaStatus)
		assert.Equal(t, 1995, c.Dob.Year())
		c.ID = 42
		return nil
	})
	m.docRepo.EXPECT().CountByCase(uint(42)).Return(int64(0), nil)
	m.docRepo.EXPECT().CreateMany(gomock.Len(len(document.IHKChecklistTemplate))).Return(nil)
	m.customDoc.EXPECT().ListTitlesByCase(uint(42)).Return(nil, nil)
	m.customDoc.EXPECT().CreateMany(gomock.Len(len(document.DefaultCustomDocs))).Return(nil)

	created, err := svc.CreateCase(casefile.CreateCaseInput{
		FullName:   "Nguyễn Văn A",
		Dob:        &dob,
		VisaStatus: &status,
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(42), created.ID)
}

func TestCreateCase_MissingName(t *testing.T) {
	svc, _ := setupCaseServiceMocks(t)

	_, err := svc.CreateCase(casefile.CreateCaseInput{})
	assert.ErrorIs(t, err, ErrFullNameRequired)
}

func TestCreateCase_UnknownStatusDefaults(t *testing.T) {
	svc, m := setupCaseServiceMocks(t)

	status := "not a status"
	m.caseRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *casefile.Case) error {
		assert.Equal(t, casefile.StatusVanThieuHoSo, c.VisaStatus)
		c.ID = 1
		return nil
	})
	m.docRepo.EXPECT().CountByCase(uint(1)).Return(int64(0), nil)
	m.docRepo.EXPECT().CreateMany(gomock.Any()).Return(nil)
	m.customDoc.EXPECT().ListTitlesByCase(uint(1)).Return(nil, nil)
	m.customDoc.EXPECT().CreateMany(gomock.Any()).Return(nil)

	_, err := svc.CreateCase(casefile.CreateCaseInput{FullName: "B", VisaStatus: &status})
	assert.NoError(t, err)
}

// --------------------- UpdateCase ---------------------
func TestUpdateCase_PartialFields(t *testing.T) {
	svc, m := setupCaseServiceMocks(t)

	city := "Hà Nội"
	status := "HOAN_TAT"
	m.caseRepo.EXPECT().GetByID(uint(5)).Return(casefile.Case{
		ID: 5, FullName: "C", VisaStatus: casefile.StatusVanThieuHoSo,
	}, nil)
	m.caseRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(c *casefile.Case) error {
		assert.Equal(t, "C", c.FullName)
		assert.Equal(t, "Hà Nội", *c.City)
		assert.Equal(t, casefile.StatusHoanTat, c.VisaStatus)
		return nil
	})

	updated, err := svc.UpdateCase(5, casefile.UpdateCaseInput{City: &city, VisaStatus: &status})
	assert.NoError(t, err)
	assert.Equal(t, casefile.StatusHoanTat, updated.VisaStatus)
}

func TestUpdateCase_UnrecognizedStatusIgnored(t *testing.T) {
	svc, m := setupCaseServiceMocks(t)

	status := "???"
	m.caseRepo.EXPECT().GetByID(uint(5)).Return(casefile.Case{
		ID: 5, FullName: "C", VisaStatus: casefile.StatusDaCoVisum,
	}, nil)
	m.caseRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(c *casefile.Case) error {
		assert.Equal(t, casefile.StatusDaCoVisum, c.VisaStatus)
		return nil
	})

	_, err := svc.UpdateCase(5, casefile.UpdateCaseInput{VisaStatus: &status})
	assert.NoError(t, err)
}

func TestUpdateCase_NotFound(t *testing.T) {
	svc, m := setupCaseServiceMocks(t)

	m.caseRepo.EXPECT().GetByID(uint(99)).Return(casefile.Case{}, gorm.ErrRecordNotFound)

	_, err := svc.UpdateCase(99, casefile.UpdateCaseInput{})
	assert.ErrorIs(t, err, ErrCaseNotFound)
}

// --------------------- DeleteCase ---------------------
// Rows go first, then blobs; a store outage never undoes the row deletes.
func TestDeleteCase_CollectsKeysAndSurvivesStoreFailure(t *testing.T) {
	svc, m := setupCaseServiceMocks(t)

	m.caseRepo.EXPECT().GetByID(uint(6)).Return(casefile.Case{ID: 6}, nil)
	m.docRepo.EXPECT().ListByCase(uint(6)).Return([]document.CaseDocument{
		{Type: document.TypeCV, StorageKey: strPtr("case-6/default/CV/1-cv.pdf")},
		{Type: document.TypeApplicationForm},
	}, nil)
	m.customDoc.EXPECT().ListByCase(uint(6)).Return([]document.CustomDocument{
		{ID: 1, StorageKey: strPtr("case-6/custom/1/1-v.pdf")},
	}, nil)

	gomock.InOrder(
		m.docRepo.EXPECT().DeleteByCase(uint(6)).Return(nil),
		m.customDoc.EXPECT().DeleteByCase(uint(6)).Return(nil),
		m.caseRepo.EXPECT().Delete(uint(6)).Return(nil),
	)

	m.store.EXPECT().Delete(gomock.Any(), "case-6/default/CV/1-cv.pdf").Return(errors.New("unreachable"))
	m.store.EXPECT().Delete(gomock.Any(), "case-6/custom/1/1-v.pdf").Return(nil)

	assert.NoError(t, svc.DeleteCase(context.Background(), 6))
}

func TestDeleteCase_RowDeleteFailureStopsCleanup(t *testing.T) {
	svc, m := setupCaseServiceMocks(t)

	m.caseRepo.EXPECT().GetByID(uint(6)).Return(casefile.Case{ID: 6}, nil)
	m.docRepo.EXPECT().ListByCase(uint(6)).Return(nil, nil)
	m.customDoc.EXPECT().ListByCase(uint(6)).Return(nil, nil)
	m.docRepo.EXPECT().DeleteByCase(uint(6)).Return(errors.New("db error"))

	err := svc.DeleteCase(context.Background(), 6)
	assert.EqualError(t, err, "db error")
}

func TestDeleteCase_NotFound(t *testing.T) {
	svc, m := setupCaseServiceMocks(t)

	m.caseRepo.EXPECT().GetByID(uint(99)).Return(casefile.Case{}, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.DeleteCase(context.Background(), 99), ErrCaseNotFound)
}
