package repository

import (
	"context"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type fileModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	UserID       string `gorm:"size:36;not null;index:idx_files_user_category"`
	Name         string `gorm:"size:255;not null"`
	OriginalName string `gorm:"size:255"`
	Category     string `gorm:"size:64;not null;index:idx_files_user_category"`
	MimeType     string `gorm:"size:128"`
	Size         int64  `gorm:"not null"`
	StoragePath  string `gorm:"size:512;not null;uniqueIndex"`
	EntityType   string `gorm:"size:32;index:idx_files_entity"`
	EntityID     string `gorm:"size:36;index:idx_files_entity"`
	CreatedAt    time.Time
}

func (fileModel) TableName() string { return "files" }

// FileRepository stores file metadata. Object bytes live in IObjectStorage.
type FileRepository struct {
	db *gorm.DB
}

var _ interfaces.IFileRepository = (*FileRepository)(nil)

func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

func (r *FileRepository) Create(ctx context.Context, f entities.File) (entities.File, error) {
	m := toFileModel(f)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.File{}, err
	}
	return fromFileModel(m), nil
}

func (r *FileRepository) GetByID(ctx context.Context, id string) (entities.File, error) {
	var m fileModel
	err := conn(ctx, r.db).Where("id = ?", id).First(&m).Error
	if notFound(err) {
		return entities.File{}, nil
	}
	if err != nil {
		return entities.File{}, err
	}
	return fromFileModel(m), nil
}

func (r *FileRepository) List(ctx context.Context, filter entities.FileFilter) ([]entities.File, error) {
	q := conn(ctx, r.db).Model(&fileModel{})
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.EntityType != "" {
		q = q.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != "" {
		q = q.Where("entity_id = ?", filter.EntityID)
	}

	var rows []fileModel
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.File, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromFileModel(m))
	}
	return out, nil
}

func (r *FileRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := conn(ctx, r.db).Where("id = ?", id).Delete(&fileModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func toFileModel(f entities.File) fileModel {
	return fileModel{
		ID:           f.ID,
		UserID:       f.UserID,
		Name:         f.Name,
		OriginalName: f.OriginalName,
		Category:     f.Category,
		MimeType:     f.MimeType,
		Size:         f.Size,
		StoragePath:  f.StoragePath,
		EntityType:   f.EntityType,
		EntityID:     f.EntityID,
		CreatedAt:    f.CreatedAt,
	}
}

func fromFileModel(m fileModel) entities.File {
	return entities.File{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		OriginalName: m.OriginalName,
		Category:     m.Category,
		MimeType:     m.MimeType,
		Size:         m.Size,
		StoragePath:  m.StoragePath,
		EntityType:   m.EntityType,
		EntityID:     m.EntityID,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}
