package document

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"mindtrack/internal/config"
	"mindtrack/internal/domain"
	"mindtrack/internal/repository"
)

type Service interface {
	Upload(ctx context.Context, userID, patientID uuid.UUID, category *string, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Document], error)
}

type service struct {
	documentRepo repository.DocumentRepository
	minioClient  *minio.Client
	cfg          *config.Config
}

func NewService(documentRepo repository.DocumentRepository, minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		documentRepo: documentRepo,
		minioClient:  minioClient,
		cfg:          cfg,
	}
}

func (s *service) Upload(ctx context.Context, userID, patientID uuid.UUID, category *string, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.Document, error) {
	docID := uuid.New()
	storagePath := fmt.Sprintf("documents/%s/%s", patientID, docID)

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	doc := &domain.Document{
		ID:          docID,
		PatientID:   patientID,
		UploadedBy:  userID,
		FileName:    fileName,
		FileSize:    fileSize,
		MimeType:    mimeType,
		StoragePath: storagePath,
		Category:    category,
	}

	if err := s.documentRepo.Create(ctx, doc); err != nil {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
		return nil, err
	}

	doc.URL, _ = s.presignedURL(ctx, doc)
	return doc, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrDocumentNotFound
	}

	doc.URL, err = s.presignedURL(ctx, doc)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrDocumentNotFound
	}

	if err := s.documentRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, doc.StoragePath, minio.RemoveObjectOptions{})
	return nil
}

func (s *service) ListByPatient(ctx context.Context, patientID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Document], error) {
	docs, total, err := s.documentRepo.ListByPatient(ctx, patientID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Document]{}, err
	}

	for i := range docs {
		docs[i].URL, _ = s.presignedURL(ctx, &docs[i])
	}

	return domain.NewPaginatedResponse(docs, params.Page, params.PageSize, total), nil
}

// presignedURL returns a short-lived download link; patient documents are
// never publicly readable.
func (s *service) presignedURL(ctx context.Context, doc *domain.Document) (string, error) {
	reqParams := make(url.Values)
	reqParams.Set("response-content-disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.FileName))

	u, err := s.minioClient.PresignedGetObject(ctx, s.cfg.MinIOBucket, doc.StoragePath, 15*time.Minute, reqParams)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
