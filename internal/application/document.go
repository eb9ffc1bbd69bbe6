package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/haiminh-dev/ihk-case-api/internal/domain/document"
	"github.com/haiminh-dev/ihk-case-api/internal/repository"
	"github.com/haiminh-dev/ihk-case-api/internal/storage"
)

var (
	ErrCaseNotFound     = errors.New("case not found")
	ErrDocumentNotFound = errors.New("document not found")
	ErrFileNotFound     = errors.New("file not found")
	ErrEmptyFile        = errors.New("file buffer missing")
	ErrTitleRequired    = errors.New("title is required")
)

// DocumentService owns the checklist/document lifecycle: template backfill,
// uploads, downloads and blob cleanup.
type DocumentService struct {
	Repos *repository.Repos
	Store storage.ObjectStore
}

func NewDocumentService(repos *repository.Repos, store storage.ObjectStore) *DocumentService {
	return &DocumentService{Repos: repos, Store: store}
}

func defaultStorageKey(caseID uint, docType document.DocType, fileName string) string {
	return fmt.Sprintf("case-%d/default/%s/%d-%s", caseID, docType, time.Now().UnixMilli(), fileName)
}

func customStorageKey(caseID, docID uint, fileName string) string {
	return fmt.Sprintf("case-%d/custom/%d/%d-%s", caseID, docID, time.Now().UnixMilli(), fileName)
}

func (s *DocumentService) caseExists(caseID uint) error {
	if _, err := s.Repos.Case.GetByID(caseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: case %d", ErrCaseNotFound, caseID)
		}
		return err
	}
	return nil
}

// EnsureChecklist backfills the full template for a case that has no
// default-document rows yet. A case with any rows at all is left untouched,
// so template entries added later do not retro-apply to existing cases.
func (s *DocumentService) EnsureChecklist(caseID uint) error {
	count, err := s.Repos.Document.CountByCase(caseID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]document.CaseDocument, 0, len(document.IHKChecklistTemplate))
	for _, entry := range document.IHKChecklistTemplate {
		docs = append(docs, document.CaseDocument{
			CaseID:              caseID,
			Type:                entry.Type,
			Required:            entry.Required,
			TranslationRequired: entry.TranslationRule == document.TranslationDERequired,
		})
	}
	return s.Repos.Document.CreateMany(docs)
}

// EnsureDefaultCustomDocs seeds the default custom-document titles that the
// case does not already have, compared case-insensitively after trimming.
func (s *DocumentService) EnsureDefaultCustomDocs(caseID uint) error {
	titles, err := s.Repos.CustomDoc.ListTitlesByCase(caseID)
	if err != nil {
		return err
	}

	existing := make(map[string]bool, len(titles))
	for _, t := range titles {
		existing[strings.ToLower(strings.TrimSpace(t))] = true
	}

	var toCreate []document.CustomDocument
	for _, d := range document.DefaultCustomDocs {
		if existing[strings.ToLower(strings.TrimSpace(d.Title))] {
			continue
		}
		toCreate = append(toCreate, document.CustomDocument{
			CaseID:   caseID,
			Title:    d.Title,
			Required: d.Required,
		})
	}
	return s.Repos.CustomDoc.CreateMany(toCreate)
}

// GetChecklist returns the combined checklist view. missingRequired is
// recomputed from the live rows on every call.
func (s *DocumentService) GetChecklist(caseID uint) (document.ChecklistView, error) {
	if err := s.caseExists(caseID); err != nil {
		return document.ChecklistView{}, err
	}

	if err := s.EnsureChecklist(caseID); err != nil {
		return document.ChecklistView{}, err
	}
	if err := s.EnsureDefaultCustomDocs(caseID); err != nil {
		return document.ChecklistView{}, err
	}

	docs, err := s.Repos.Document.ListByCase(caseID)
	if err != nil {
		return document.ChecklistView{}, err
	}
	customDocs, err := s.Repos.CustomDoc.ListByCase(caseID)
	if err != nil {
		return document.ChecklistView{}, err
	}

	missing := 0
	for _, d := range docs {
		if d.Required && d.StorageKey == nil {
			missing++
		}
	}
	for _, d := range customDocs {
		if d.Required && d.StorageKey == nil {
			missing++
		}
	}

	return document.ChecklistView{
		CaseID:          caseID,
		MissingRequired: missing,
		Documents:       docs,
		CustomDocuments: customDocs,
	}, nil
}

// AttachDefaultDocument uploads a file into a checklist slot. The blob is
// written to the object store before the row is touched; a previously stored
// blob for the slot is left behind on purpose.
func (s *DocumentService) AttachDefaultDocument(ctx context.Context, caseID uint, typeInput string, data []byte, fileName string, contentType string, uploadedBy *uint) (document.UploadResult, error) {
	if err := s.caseExists(caseID); err != nil {
		return document.UploadResult{}, err
	}
	if err := s.EnsureChecklist(caseID); err != nil {
		return document.UploadResult{}, err
	}

	docType, err := document.ResolveType(typeInput)
	if err != nil {
		return document.UploadResult{}, err
	}

	if len(data) == 0 {
		return document.UploadResult{}, ErrEmptyFile
	}

	key := defaultStorageKey(caseID, docType, fileName)
	if err := s.Store.Put(ctx, key, data, contentType); err != nil {
		return document.UploadResult{}, err
	}

	now := time.Now()
	updated, err := s.Repos.Document.UpsertUpload(&document.CaseDocument{
		CaseID:     caseID,
		Type:       docType,
		Required:   true, // fallback when no template row existed
		FileName:   &fileName,
		StorageKey: &key,
		UploadedBy: uploadedBy,
		UploadedAt: &now,
	})
	if err != nil {
		return document.UploadResult{}, err
	}

	docs, err := s.Repos.Document.ListByCase(caseID)
	if err != nil {
		return document.UploadResult{}, err
	}
	missing := 0
	for _, d := range docs {
		if d.Required && d.StorageKey == nil {
			missing++
		}
	}

	return document.UploadResult{
		Message:         "Upload successful",
		Document:        updated,
		MissingRequired: missing,
	}, nil
}

// GetDocumentFile resolves the stored blob reference for a checklist slot.
func (s *DocumentService) GetDocumentFile(caseID uint, typeInput string) (document.FileRef, error) {
	docType, err := document.ResolveType(typeInput)
	if err != nil {
		return document.FileRef{}, err
	}

	doc, err := s.Repos.Document.GetByCaseAndType(caseID, docType)
	if err != nil || doc.StorageKey == nil {
		return document.FileRef{}, fmt.Errorf("%w for this document type", ErrFileNotFound)
	}

	return document.FileRef{StorageKey: *doc.StorageKey, FileName: doc.FileName}, nil
}

func (s *DocumentService) AddCustomDocument(caseID uint, input document.AddCustomDocumentInput) (document.CustomDocument, error) {
	if err := s.caseExists(caseID); err != nil {
		return document.CustomDocument{}, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return document.CustomDocument{}, ErrTitleRequired
	}

	doc := document.CustomDocument{
		CaseID:   caseID,
		Title:    title,
		Required: input.Required,
	}
	if err := s.Repos.CustomDoc.Create(&doc); err != nil {
		return document.CustomDocument{}, err
	}
	return doc, nil
}

// AttachCustomDocumentFile uploads into a custom slot. Unlike default
// documents, the replaced blob is deleted best-effort afterwards.
func (s *DocumentService) AttachCustomDocumentFile(ctx context.Context, caseID, docID uint, data []byte, fileName string, contentType string, uploadedBy *uint) (document.CustomDocument, error) {
	doc, err := s.Repos.CustomDoc.GetByID(docID)
	if err != nil || doc.CaseID != caseID {
		return document.CustomDocument{}, ErrDocumentNotFound
	}

	if len(data) == 0 {
		return document.CustomDocument{}, ErrEmptyFile
	}

	key := customStorageKey(caseID, docID, fileName)
	if err := s.Store.Put(ctx, key, data, contentType); err != nil {
		return document.CustomDocument{}, err
	}

	if doc.StorageKey != nil {
		if err := s.Store.Delete(ctx, *doc.StorageKey); err != nil {
			log.Printf("cleanup of replaced blob %s failed: %v", *doc.StorageKey, err)
		}
	}

	now := time.Now()
	doc.FileName = &fileName
	doc.StorageKey = &key
	doc.UploadedBy = uploadedBy
	doc.UploadedAt = &now
	if err := s.Repos.CustomDoc.Save(&doc); err != nil {
		return document.CustomDocument{}, err
	}
	return doc, nil
}

func (s *DocumentService) GetCustomDocumentFile(caseID, docID uint) (document.FileRef, error) {
	doc, err := s.Repos.CustomDoc.GetByID(docID)
	if err != nil || doc.CaseID != caseID || doc.StorageKey == nil {
		return document.FileRef{}, ErrFileNotFound
	}
	return document.FileRef{StorageKey: *doc.StorageKey, FileName: doc.FileName}, nil
}

func (s *DocumentService) DeleteCustomDocument(ctx context.Context, caseID, docID uint) error {
	doc, err := s.Repos.CustomDoc.GetByID(docID)
	if err != nil || doc.CaseID != caseID {
		return ErrDocumentNotFound
	}

	if doc.StorageKey != nil {
		if err := s.Store.Delete(ctx, *doc.StorageKey); err != nil {
			log.Printf("cleanup of blob %s failed: %v", *doc.StorageKey, err)
		}
	}

	return s.Repos.CustomDoc.Delete(docID)
}

// FetchObject retrieves blob bytes for a download response.
func (s *DocumentService) FetchObject(ctx context.Context, key string) (*storage.Object, error) {
	obj, err := s.Store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	if len(obj.Data) == 0 {
		return nil, fmt.Errorf("%w: object body empty", ErrFileNotFound)
	}
	return obj, nil
}
