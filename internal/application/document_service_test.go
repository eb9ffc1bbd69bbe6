package application

import (
	"context"
	"errors"
	"strings"
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

// --------------------- Setup ---------------------
type documentServiceMocks struct {
	caseRepo  *mock.MockCaseRepo
	docRepo   *mock.MockCaseDocumentRepo
	customDoc *mock.MockCustomDocumentRepo
	store     *storagemock.MockObjectStore
}

func setupDocumentServiceMocks(t *testing.T) (*DocumentService, documentServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := documentServiceMocks{
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
	svc := NewDocumentService(repos, m.store)
	return svc, m
}

func strPtr(s string) *string { return &s }

// --------------------- EnsureChecklist ---------------------
func TestEnsureChecklist_SeedsFullTemplate(t *testing.T) {
	svc, m := setupDocumentServiceMocks(t)

	m.docRepo.EXPECT().CountByCase(uint(7)).Return(int64(0), nil)
	m.docRepo.EXPECT().CreateMany(gomock.Any()).DoAndReturn(func(docs []document.CaseDocument) error {
		assert.Len(t, docs, len(document.IHKChecklistTemplate))
		assert.Equal(t, document.TypeApplicationForm, docs[0].Type)
		assert.True(t, docs[0].Required)
		// DE_REQUIRED maps onto translationRequired, the special rule does not
		assert.True(t, docs[1].TranslationRequired)
		assert.False(t, docs[7].TranslationRequired)
		for _, d := range docs {
			assert.Equal(t, uint(7), d.CaseID)
			assert.Nil(t, d.StorageKey)
		}
		return nil
	})

	assert.NoError(t, svc.EnsureChecklist(7))
}

func TestEnsureChecklist_ExistingRowsBlockBackfill(t *testing.T) {
	svc, m := setupDocumentServiceMocks(t)

	// one row is enough; missing template entries are not re-added
	m.docRepo.EXPECT().CountByCase(uint(7)).Return(int64(1), nil)

	assert.NoError(t, svc.EnsureChecklist(7))
}

// --------------------- EnsureDefaultCustomDocs ---------------------
func TestEnsureDefaultCustomDocs_SkipsExistingTitles(t *testing.T) {
	svc, m := setupDocumentServiceMocks(t)

	m.customDoc.EXPECT().ListTitlesByCase(uint(3)).Return([]string{"  visum  ", "IHK"}, nil)
	m.customDoc.EXPECT().CreateMany(gomock.Any()).DoAndReturn(func(docs []document.CustomDocument) error {
		assert.Len(t, docs, len(document.DefaultCustomDocs)-2)
		for _, d := range docs {
			assert.NotEqual(t, "visum", strings.ToLower(d.Title))
			assert.NotEqual(t, "ihk", strings.ToLower(d.Title))
		}
		return nil
	})

	assert.NoError(t, svc.EnsureDefaultCustomDocs(3))
}

func TestEnsureDefaultCustomDocs_AllPresent(t *testing.T) {
	svc, m := setupDocumentServiceMocks(t)

	titles := make([]string, 0, len(document.DefaultCustomDocs))
	for _, d := range document.DefaultCustomDocs {
		titles = append(titles, d.Title)
	}
	m.customDoc.EXPECT().ListTitlesByCase(uint(3)).Return(titles, nil)
	m.customDoc.EXPECT().CreateMany(gomock.Len(0)).Return(nil)

	assert.NoError(t, svc.EnsureDefaultCustomDocs(3))
}

// --------------------- GetChecklist ---------------------
func TestGetChecklist_CountsBothDocumentKinds(t *testing.T) {
	svc, m := setupDocumentServiceMocks(t)

	m.caseRepo.EXPECT().GetByID(uint(5)).Return(casefile.Case{ID: 5}, nil)
	m.docRepo.EXPECT().CountByCase(uint(5)).Return(int64(8), nil)
	m.customDoc.EXPECT().ListTitlesByCase(uint(5)).Return([]string{"Visum"}, nil)
	m.customDoc.EXPECT().CreateMany(gomock.Any()).Return(nil)

	m.docRepo.EXPECT().ListByCase(uint(5)).Return([]document.CaseDocument{
		{Type: document.TypeCV, Required: true, StorageKey: strPtr("case-5/default/CV/1-cv.pdf")},
		{Type: document.TypeApplicationForm, Required: true},
		{Type: document.TypeProofWorkExperience, Required: false},
	}, nil)
	m.customDoc.EXPECT().ListByCase(uint(5)).Return([]document.CustomDocument{
		{Title: "Visum", Required: true},
		{Title: "EZB", Required: false},
	}, nil)

	view, err := svc.GetChecklist(5)
	assert.NoError(t, err)
	assert.Equal(t, uint(5), view.CaseID)
	// APPLICATION_FORM and Visum are required with no file
	assert.Equal(t, 2, view.MissingRequired)
	assert.Len(t, view.Documents, 3)
	assert.Len(t, view.CustomDocuments, 2)
}

func TestGetChecklist_CaseNotFound(t *testing.T) {
	svc, m := setupDocumentServiceMocks(t)

	m.caseRepo.EXPECT().GetByID(uint(99)).Return(casefile.Case{}, gorm.ErrRecordNotFound)

	_, err := svc.GetChecklist(99)
	assert.ErrorIs(t, err, ErrCaseNotFound)
}

// --------------------- AttachDefaultDocument ---------------------
func TestAttachDefaultDocument_Success(t *testing.T) {
	svc, m := setupDocumentServiceMocks(t)
	uploader := uint(2)

	m.caseRepo.EXPECT().GetByID(uint(1)).Return(casefile.Case{ID: 1}, nil)
	m.docRepo.EXPECT().CountByCase(uint(1)).Return(int64(8), nil)

	var storedKey string
	m.store.EXPECT().Put(gomock.Any(), gomock.Any(), []byte("pdf-bytes"), "application/pdf").
		DoAndReturn(func(_ context.Context, key string, _ []byte, _ string) error {
			storedKey = key
			assert.True(t, strings.HasPrefix(key, "case-1/default/CV/"))
			assert.True(t, strings.HasSuffix(key, "-cv.pdf"))
			return nil
		})

	m.docRepo.EXPECT().UpsertUpload(gomock.Any()).DoAndReturn(func(doc *document.CaseDocument) (document.CaseDocument, error) {
		assert.Equal(t, document.TypeCV, doc.Type)
		assert.Equal(t, storedKey, *doc.StorageKey)
		assert.Equal(t, "cv.pdf", *doc.FileName)
		assert.Equal(t, uploader, *doc.UploadedBy)
		return *doc, nil
	})

	m.docRepo.EXPECT().ListByCase(uint(1)).Return([]document.CaseDocument{
		{Type: document.TypeCV, Required: true, StorageKey: strPtr("x")},
		{Type: document.TypeApplicationForm, Required: true},
	}, nil)

	res, err := svc.AttachDefaultDocument(context.Background(), 1, "cv", []byte("pdf-bytes"), "cv.pdf", "application/pdf", &uploader)
	assert.NoError(t, err)
	assert.Equal(t, "Upload successful", res.Message)
	assert.Equal(t, 1, res.MissingRequired)
}

func TestAttachDefaultDocument_PassportAlias(t *testing.T) {
	svc, m := setupDocumentServiceMocks(t)

	m.caseRepo.EXPECT().GetByID(uint(1)).Return(casefile.Case{ID: 1}, nil)
	m.docRepo.EXPECT().CountByCase(uint(1)).Return(int64(8), nil)
	m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.docRepo.EXPECT().UpsertUpload(gomock.Any()).DoAndReturn(func(doc *document.CaseDocument) (document.CaseDocument, error) {
		assert.Equal(t, document.TypeIdentityProof, doc.Type)
		return *doc, nil
	})
	m.docRepo.EXPECT().ListByCase(uint(1)).Return(nil, nil)

	_, err := svc.AttachDefaultDocument(context.Background(), 1, "passport", []byte("scan"), "pass.jpg", "image/jpeg", nil)
	assert.NoError(t, err)
}

func TestAttachDefaultDocument_UnknownType(t *testing.T) {
	svc, m := setupDocumentServiceMocks(t)

	m.caseRepo.EXPECT().GetByID(uint(1)).Return(casefile.Case{ID: 1}, nil)
	m.docRepo.EXPECT().CountByCase(uint(1)).Return(int64(8), nil)

	_, err := svc.AttachDefaultDocument(context.Background(), 1, "DRIVING_LICENSE", []byte("x"), "a.pdf", "application/pdf", nil)
	assert.ErrorIs(t, err, document.ErrInvalidDocType)
}

func TestAttachDefaultDocument_EmptyPayload(t *testing.T) {
	svc, m := setupDocumentServiceMocks(t)

	m.caseRepo.EXPECT().GetByID(uint(1)).Return(casefile.Case{ID: 1}, nil)
	m.docRepo.EXPECT().CountByCase(uint(1)).Return(int64(8), nil)

	_, err := svc.AttachDefaultDocument(context.Background(), 1, "CV", nil, "cv.pdf", "application/pdf", nil)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestAttachDefaultDocument_PutFailurePropagates(t *testing.T) {
	svc, m := setupDocumentServiceMocks(t)

	m.caseRepo.EXPECT().GetByID(uint(1)).Return(casefile.Case{ID: 1}, nil)
	m.docRepo.EXPECT().CountByCase(uint(1)).Return(int64(8), nil)
	m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("minio down"))

	_, err := svc.AttachDefaultDocument(context.Background(), 1, "CV", []byte("x"), "cv.pdf", "application/pdf", nil)
	assert.EqualError(t, err, "minio down")
}

// Re-uploading a default document never deletes the previous blob.
func TestAttachDefaultDocument_ReuploadKeepsOldBlob(t *testing.T) {
	svc, m := setupDocumentServiceMocks(t)

	m.caseRepo.EXPECT().GetByID(uint(1)).Return(casefile.Case{ID: 1}, nil)
	m.docRepo.EXPECT().CountByCase(uint(1)).Return(int64(8), nil)
	m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	// no Delete expectation: any Delete call would fail the test
	m.docRepo.EXPECT().UpsertUpload(gomock.Any()).DoAndReturn(func(doc *document.CaseDocument) (document.CaseDocument, error) {
		return *doc, nil
	})
	m.docRepo.EXPECT().ListByCase(uint(1)).Return(nil, nil)

	_, err := svc.AttachDefaultDocument(context.Background(), 1, "CV", []byte("v2"), "cv-v2.pdf", "application/pdf", nil)
	assert.NoError(t, err)
}

// --------------------- GetDocumentFile ---------------------
func TestGetDocumentFile_NoUploadYet(t *testing.T) {
	svc, m := setupDocumentServiceMocks(t)

	m.docRepo.EXPECT().GetByCaseAndType(uint(1), document.TypeCV).
		Return(document.CaseDocument{Type: document.TypeCV}, nil)

	_, err := svc.GetDocumentFile(1, "CV")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

// --------------------- Custom documents ---------------------
func TestAddCustomDocument_TrimsTitle(t *testing.T) {
	svc, m := setupDocumentServiceMocks(t)

	m.caseRepo.EXPECT().GetByID(uint(4)).Return(casefile.Case{ID: 4}, nil)
	m.customDoc.EXPECT().Create(gomock.Any()).DoAndReturn(func(doc *document.CustomDocument) error {
		assert.Equal(t, "Giấy khám sức khỏe", doc.Title)
		assert.True(t, doc.Required)
		doc.ID = 11
		return nil
	})

	doc, err := svc.AddCustomDocument(4, document.AddCustomDocumentInput{Title: "  Giấy khám sức khỏe  ", Required: true})
	assert.NoError(t, err)
	assert.Equal(t, uint(11), doc.ID)
}

func TestAddCustomDocument_BlankTitle(t *testing.T) {
	svc, m := setupDocumentServiceMocks(t)

	m.caseRepo.EXPECT().GetByID(uint(4)).Return(casefile.Case{ID: 4}, nil)

	_, err := svc.AddCustomDocument(4, document.AddCustomDocumentInput{Title: "   "})
	assert.ErrorIs(t, err, ErrTitleRequired)
}

// Uploading over an existing custom file deletes the replaced blob, and a
// failed delete does not fail the upload.
func TestAttachCustomDocumentFile_ReplacesOldBlob(t *testing.T) {
	svc, m := setupDocumentServiceMocks(t)

	m.customDoc.EXPECT().GetByID(uint(9)).Return(document.CustomDocument{
		ID: 9, CaseID: 4, Title: "Visum", StorageKey: strPtr("case-4/custom/9/1-old.pdf"),
	}, nil)
	m.store.EXPECT().Put(gomock.Any(), gomock.Any(), []byte("new"), "application/pdf").Return(nil)
	m.store.EXPECT().Delete(gomock.Any(), "case-4/custom/9/1-old.pdf").Return(errors.New("gone already"))
	m.customDoc.EXPECT().Save(gomock.Any()).DoAndReturn(func(doc *document.CustomDocument) error {
		assert.True(t, strings.HasPrefix(*doc.StorageKey, "case-4/custom/9/"))
		assert.Equal(t, "new.pdf", *doc.FileName)
		return nil
	})

	doc, err := svc.AttachCustomDocumentFile(context.Background(), 4, 9, []byte("new"), "new.pdf", "application/pdf", nil)
	assert.NoError(t, err)
	assert.NotNil(t, doc.UploadedAt)
}

func TestAttachCustomDocumentFile_WrongCase(t *testing.T) {
	svc, m := setupDocumentServiceMocks(t)

	m.customDoc.EXPECT().GetByID(uint(9)).Return(document.CustomDocument{ID: 9, CaseID: 8}, nil)

	_, err := svc.AttachCustomDocumentFile(context.Background(), 4, 9, []byte("x"), "a.pdf", "application/pdf", nil)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestDeleteCustomDocument_BlobCleanupBestEffort(t *testing.T) {
	svc, m := setupDocumentServiceMocks(t)

	m.customDoc.EXPECT().GetByID(uint(9)).Return(document.CustomDocument{
		ID: 9, CaseID: 4, StorageKey: strPtr("case-4/custom/9/1-a.pdf"),
	}, nil)
	m.store.EXPECT().Delete(gomock.Any(), "case-4/custom/9/1-a.pdf").Return(errors.New("unreachable"))
	m.customDoc.EXPECT().Delete(uint(9)).Return(nil)

	assert.NoError(t, svc.DeleteCustomDocument(context.Background(), 4, 9))
}
