package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"
	mock_interfaces "efectivio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestFileUseCase_Upload(t *testing.T) {
	actor := entities.Actor{UserID: "user-1"}

	t.Run("empty body", func(t *testing.T) {
		uc := NewFileUseCase(nil, nil, time.Minute, 0)
		_, _, err := uc.Upload(context.Background(), actor, UploadInput{FileName: "a.pdf"})
		if !errors.Is(err, ErrEmptyFile) {
			t.Fatalf("expected ErrEmptyFile, got %v", err)
		}
	})

	t.Run("too large", func(t *testing.T) {
		uc := NewFileUseCase(nil, nil, time.Minute, 10)
		_, _, err := uc.Upload(context.Background(), actor, UploadInput{FileName: "a.pdf", Size: 11, Body: strings.NewReader("01234567890")})
		if !errors.Is(err, ErrFileTooLarge) {
			t.Fatalf("expected ErrFileTooLarge, got %v", err)
		}
	})

	t.Run("stores under user and category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIFileRepository(ctrl)
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewFileUseCase(repo, storage, time.Minute, 0)

		var storedKey string
		storage.EXPECT().Put(gomock.Any(), gomock.Any(), "application/pdf", gomock.Any(), int64(4)).DoAndReturn(
			func(_ context.Context, key, _ string, _ io.Reader, _ int64) error {
				storedKey = key
				return nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.File) (entities.File, error) {
				if f.StoragePath != storedKey || f.Category != "facturas" || f.UserID != "user-1" || f.OriginalName != "Factura Enero.pdf" {
					t.Fatalf("unexpected metadata: %+v", f)
				}
				return f, nil
			},
		)
		storage.EXPECT().SignedURL(gomock.Any(), gomock.Any(), time.Minute).Return("https://signed", nil)

		f, url, err := uc.Upload(context.Background(), actor, UploadInput{
			FileName:    "Factura Enero.pdf",
			ContentType: "application/pdf",
			Category:    "Facturas",
			Size:        4,
			Body:        strings.NewReader("%PDF"),
		})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !strings.HasPrefix(storedKey, "user-1/facturas/") || !strings.HasSuffix(storedKey, "-Factura_Enero.pdf") {
			t.Fatalf("unexpected key %s", storedKey)
		}
		if url != "https://signed" || f.ID == "" {
			t.Fatalf("unexpected result %+v %s", f, url)
		}
	})

	t.Run("metadata failure removes the object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIFileRepository(ctrl)
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewFileUseCase(repo, storage, time.Minute, 0)

		var storedKey string
		storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, key, _ string, _ io.Reader, _ int64) error {
				storedKey = key
				return nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.File{}, errors.New("db"))
		storage.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, key string) error {
				if key != storedKey {
					t.Fatalf("expected cleanup of %s, got %s", storedKey, key)
				}
				return nil
			},
		)

		_, _, err := uc.Upload(context.Background(), actor, UploadInput{FileName: "a.txt", Size: 1, Body: strings.NewReader("a")})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestFileUseCase_List(t *testing.T) {
	t.Run("non admin only sees own files", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIFileRepository(ctrl)
		uc := NewFileUseCase(repo, nil, time.Minute, 0)

		repo.EXPECT().List(gomock.Any(), entities.FileFilter{UserID: "user-1", Category: "facturas"}).Return(nil, nil)

		_, err := uc.List(context.Background(), entities.Actor{UserID: "user-1"}, entities.FileFilter{UserID: "user-2", Category: " FACTURAS "})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("admin may filter by user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIFileRepository(ctrl)
		uc := NewFileUseCase(repo, nil, time.Minute, 0)

		repo.EXPECT().List(gomock.Any(), entities.FileFilter{UserID: "user-2"}).Return(nil, nil)

		admin := entities.Actor{UserID: "admin-1", Role: entities.RoleAdmin}
		if _, err := uc.List(context.Background(), admin, entities.FileFilter{UserID: "user-2"}); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})
}

func TestFileUseCase_Delete(t *testing.T) {
	owner := entities.Actor{UserID: "user-1"}
	stored := entities.File{ID: "file-1", UserID: "user-1", StoragePath: "user-1/general/x-a.txt"}

	t.Run("removes object before row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIFileRepository(ctrl)
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewFileUseCase(repo, storage, time.Minute, 0)

		repo.EXPECT().GetByID(gomock.Any(), "file-1").Return(stored, nil)
		gomock.InOrder(
			storage.EXPECT().Delete(gomock.Any(), stored.StoragePath).Return(nil),
			repo.EXPECT().Delete(gomock.Any(), "file-1").Return(true, nil),
		)

		if err := uc.Delete(context.Background(), owner, "file-1"); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("missing object still removes row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIFileRepository(ctrl)
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewFileUseCase(repo, storage, time.Minute, 0)

		repo.EXPECT().GetByID(gomock.Any(), "file-1").Return(stored, nil)
		storage.EXPECT().Delete(gomock.Any(), stored.StoragePath).Return(interfaces.ErrObjectNotFound)
		repo.EXPECT().Delete(gomock.Any(), "file-1").Return(true, nil)

		if err := uc.Delete(context.Background(), owner, "file-1"); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("row failure after storage delete is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIFileRepository(ctrl)
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewFileUseCase(repo, storage, time.Minute, 0)

		dbErr := errors.New("db")
		repo.EXPECT().GetByID(gomock.Any(), "file-1").Return(stored, nil)
		storage.EXPECT().Delete(gomock.Any(), stored.StoragePath).Return(nil)
		repo.EXPECT().Delete(gomock.Any(), "file-1").Return(false, dbErr)

		if err := uc.Delete(context.Background(), owner, "file-1"); !errors.Is(err, dbErr) {
			t.Fatalf("expected wrapped db error, got %v", err)
		}
	})

	t.Run("other user's file is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIFileRepository(ctrl)
		uc := NewFileUseCase(repo, nil, time.Minute, 0)

		repo.EXPECT().GetByID(gomock.Any(), "file-1").Return(stored, nil)

		err := uc.Delete(context.Background(), entities.Actor{UserID: "user-2"}, "file-1")
		if !errors.Is(err, ErrFileNotFound) {
			t.Fatalf("expected ErrFileNotFound, got %v", err)
		}
	})
}
