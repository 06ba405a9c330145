package services

import (
	"context"
	"mime/multipart"

	"gorm.io/gorm"

	"kennel_backend/internal/logger"
	"kennel_backend/internal/photo"
	"kennel_backend/internal/services/dto"
	"kennel_backend/internal/storage"
	"kennel_backend/pkg/apperrors"
)

const photoDomain = "photo"

// PhotoService runs the upload and delete transactions of the photo
// pipeline. Callers load the owning record first (and map a missing
// record to NotFound); the service takes it from there.
type PhotoService interface {
	// UploadPhoto validates the file, writes the blob, attaches its URL
	// to the owning field and persists the record. A failed record write
	// triggers a compensating blob delete so no stored reference ever
	// points at a missing blob.
	UploadPhoto(ctx context.Context, db *gorm.DB, owner photo.Owner, role photo.Role, file *multipart.FileHeader) (*dto.PhotoUploadResult, error)

	// DeletePhoto removes the blob and filters the URL out of the owning
	// field. A failed blob delete is logged and the record update still
	// runs: a dangling blob is preferable to a reference that can never
	// be cleared.
	DeletePhoto(ctx context.Context, db *gorm.DB, owner photo.Owner, role photo.Role, url string) error
}

// RecordStore persists an owning record. Split out so the transaction
// logic can be exercised without a database.
type RecordStore interface {
	Save(ctx context.Context, db *gorm.DB, owner photo.Owner) error
}

type gormRecordStore struct{}

// NewGormRecordStore persists owners through GORM.
func NewGormRecordStore() RecordStore {
	return gormRecordStore{}
}

func (gormRecordStore) Save(ctx context.Context, db *gorm.DB, owner photo.Owner) error {
	return db.WithContext(ctx).Save(owner).Error
}

type photoService struct {
	storage storage.Storage
	records RecordStore
}

func NewPhotoService(store storage.Storage, records RecordStore) PhotoService {
	return &photoService{
		storage: store,
		records: records,
	}
}

func (s *photoService) UploadPhoto(ctx context.Context, db *gorm.DB, owner photo.Owner, role photo.Role, file *multipart.FileHeader) (*dto.PhotoUploadResult, error) {
	kind := owner.OwnerKind()

	// Role must be mapped for this kind before anything else runs.
	if _, err := photo.FieldFor(kind, role); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	binding, err := owner.PhotoBinding(role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Server-side validation is the authority; the client check is
	// advisory UX. Check the declared type first so rejections match
	// what the client saw, then sniff the actual bytes.
	declared := file.Header.Get("Content-Type")
	if err := photo.ValidateFile(photo.FileInfo{
		Name:     file.Filename,
		Size:     file.Size,
		MIMEType: declared,
	}, kind); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.NewBadRequestError("failed to read uploaded file: " + err.Error())
	}
	defer src.Close()

	sniffed, err := photo.DetectMIME(src)
	if err != nil {
		return nil, apperrors.NewBadRequestError("failed to inspect uploaded file: " + err.Error())
	}
	if !photo.IsAllowedMIME(sniffed) {
		return nil, apperrors.NewInvalidFileError(photoDomain, sniffed)
	}

	// The extension comes from the sniffed MIME type, never from the
	// client filename.
	path := photo.BlobPath(owner.OwnerID(), role, sniffed)

	// Storage write failure aborts before any record mutation.
	if err := s.storage.Save(ctx, path, src, sniffed); err != nil {
		return nil, apperrors.NewUploadError(photoDomain, err)
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		s.compensate(ctx, path)
		return nil, apperrors.NewStorageError(photoDomain, err)
	}

	// Singular roles overwrite; the previous blob is orphaned on purpose
	// and only removed by an explicit delete. Plural roles append.
	binding.Attach(url)

	if err := s.records.Save(ctx, db, owner); err != nil {
		s.compensate(ctx, path)
		return nil, apperrors.NewDatabaseError(photoDomain, err)
	}

	logger.CtxInfo(ctx, "photo uploaded",
		"kind", kind, "entity_id", owner.OwnerID(), "role", role, "path", path)

	return &dto.PhotoUploadResult{URL: url, Role: role}, nil
}

// compensate removes a blob written earlier in a failed transaction.
func (s *photoService) compensate(ctx context.Context, path string) {
	if err := s.storage.Delete(ctx, path); err != nil {
		logger.CtxError(ctx, "failed to roll back blob after transaction failure",
			"path", path, "error", err)
	}
}

func (s *photoService) DeletePhoto(ctx context.Context, db *gorm.DB, owner photo.Owner, role photo.Role, url string) error {
	kind := owner.OwnerKind()

	if _, err := photo.FieldFor(kind, role); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}
	binding, err := owner.PhotoBinding(role)
	if err != nil {
		return apperrors.InternalError(err)
	}

	path, err := s.storage.PathFromURL(url)
	if err != nil {
		return apperrors.NewInvalidURLError(photoDomain, url)
	}

	// A storage delete failure is logged but does not stop the record
	// update. Asymmetric with upload on purpose: keeping the reference
	// around forever is worse than leaking the blob.
	if err := s.storage.Delete(ctx, path); err != nil {
		logger.CtxWarn(ctx, "storage delete failed, removing reference anyway",
			"path", path, "error", err)
	}

	binding.Detach(url)

	if err := s.records.Save(ctx, db, owner); err != nil {
		return apperrors.NewDatabaseError(photoDomain, err)
	}

	logger.CtxInfo(ctx, "photo deleted",
		"kind", kind, "entity_id", owner.OwnerID(), "role", role, "path", path)

	return nil
}
