package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrFileNotFound  = errors.New("file not found")
	ErrInvalidFileID = errors.New("invalid file id")
	ErrEmptyFile     = errors.New("empty file")
	ErrFileTooLarge  = errors.New("file too large")
)

// UploadInput describes a file received from a client.
type UploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	Category    string
	EntityType  string
	EntityID    string
	Body        io.Reader
}

// IFileUseCase stores user files in object storage and keeps their metadata.
type IFileUseCase interface {
	Upload(ctx context.Context, actor entities.Actor, in UploadInput) (entities.File, string, error)
	List(ctx context.Context, actor entities.Actor, filter entities.FileFilter) ([]entities.File, error)
	SignedURL(ctx context.Context, actor entities.Actor, id string) (string, error)
	Delete(ctx context.Context, actor entities.Actor, id string) error
}

type FileUseCase struct {
	repo      interfaces.IFileRepository
	storage   interfaces.IObjectStorage
	signedTTL time.Duration
	maxSize   int64
}

var _ IFileUseCase = (*FileUseCase)(nil)

func NewFileUseCase(repo interfaces.IFileRepository, storage interfaces.IObjectStorage, signedTTL time.Duration, maxSize int64) *FileUseCase {
	if signedTTL <= 0 {
		signedTTL = time.Hour
	}
	return &FileUseCase{repo: repo, storage: storage, signedTTL: signedTTL, maxSize: maxSize}
}

// Upload writes the object under <user id>/<category>/<uuid>-<name>, then the
// metadata row. The object is removed again when the row cannot be written.
func (u *FileUseCase) Upload(ctx context.Context, actor entities.Actor, in UploadInput) (entities.File, string, error) {
	if actor.UserID == "" {
		return entities.File{}, "", ErrForbidden
	}
	if in.Body == nil || in.Size <= 0 {
		return entities.File{}, "", ErrEmptyFile
	}
	if u.maxSize > 0 && in.Size > u.maxSize {
		return entities.File{}, "", ErrFileTooLarge
	}

	id := uuid.NewString()
	category := entities.SanitizeCategory(in.Category)
	name := entities.SanitizeFileName(in.FileName)
	objectName := id + "-" + name
	key := entities.StorageKey(actor.UserID, category, objectName)
	contentType := strings.TrimSpace(in.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	log.Printf("[file][usecase] upload start user_id=%s key=%s size=%d", actor.UserID, key, in.Size)
	if err := u.storage.Put(ctx, key, contentType, in.Body, in.Size); err != nil {
		log.Printf("[file][usecase] storage put failed key=%s err=%v", key, err)
		return entities.File{}, "", err
	}

	f := entities.File{
		ID:           id,
		UserID:       actor.UserID,
		Name:         objectName,
		OriginalName: in.FileName,
		Category:     category,
		MimeType:     contentType,
		Size:         in.Size,
		StoragePath:  key,
		EntityType:   strings.TrimSpace(in.EntityType),
		EntityID:     strings.TrimSpace(in.EntityID),
		CreatedAt:    time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, f)
	if err != nil {
		log.Printf("[file][usecase] metadata insert failed key=%s err=%v", key, err)
		if delErr := u.storage.Delete(ctx, key); delErr != nil {
			log.WithError(delErr).Errorf("[file][usecase] orphaned object left in storage key=%s", key)
		}
		return entities.File{}, "", err
	}

	url, err := u.storage.SignedURL(ctx, key, u.signedTTL)
	if err != nil {
		return entities.File{}, "", err
	}
	return created, url, nil
}

// List returns the caller's files. Admins may list any user's files.
func (u *FileUseCase) List(ctx context.Context, actor entities.Actor, filter entities.FileFilter) ([]entities.File, error) {
	if !actor.IsAdmin() || filter.UserID == "" {
		filter.UserID = actor.UserID
	}
	if filter.Category != "" {
		filter.Category = entities.SanitizeCategory(filter.Category)
	}
	return u.repo.List(ctx, filter)
}

func (u *FileUseCase) SignedURL(ctx context.Context, actor entities.Actor, id string) (string, error) {
	f, err := u.get(ctx, actor, id)
	if err != nil {
		return "", err
	}
	return u.storage.SignedURL(ctx, f.StoragePath, u.signedTTL)
}

// Delete removes the stored object first and then the metadata row. A row
// that cannot be removed after its object is gone is reported, not repaired.
func (u *FileUseCase) Delete(ctx context.Context, actor entities.Actor, id string) error {
	f, err := u.get(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := u.storage.Delete(ctx, f.StoragePath); err != nil && !errors.Is(err, interfaces.ErrObjectNotFound) {
		log.Printf("[file][usecase] storage delete failed file_id=%s key=%s err=%v", f.ID, f.StoragePath, err)
		return err
	}

	if _, err := u.repo.Delete(ctx, f.ID); err != nil {
		log.WithError(err).Errorf("[file][usecase] metadata delete failed after storage delete file_id=%s key=%s", f.ID, f.StoragePath)
		return fmt.Errorf("file %s removed from storage but metadata remains: %w", f.ID, err)
	}
	return nil
}

func (u *FileUseCase) get(ctx context.Context, actor entities.Actor, id string) (entities.File, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.File{}, ErrInvalidFileID
	}

	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.File{}, err
	}
	if f.ID == "" || (f.UserID != actor.UserID && !actor.IsAdmin()) {
		return entities.File{}, ErrFileNotFound
	}
	return f, nil
}
