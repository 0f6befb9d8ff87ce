package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"efectivio/internal/domain/entities"
	mock_interfaces "efectivio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSettingsUseCase_Update(t *testing.T) {
	admin := entities.Actor{UserID: "admin-1", Role: entities.RoleAdmin, IPAddress: "10.0.0.1", UserAgent: "test"}

	t.Run("non admin is forbidden", func(t *testing.T) {
		uc := NewSettingsUseCase(nil, nil, nil)
		value := "x"
		_, err := uc.Update(context.Background(), entities.Actor{UserID: "u", Role: entities.RoleUser}, "company_name", SettingPatch{Value: &value})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISystemConfigRepository(ctrl)
		uc := NewSettingsUseCase(repo, nil, nil)

		repo.EXPECT().Get(gomock.Any(), "nope").Return(entities.SystemConfig{}, nil)

		_, err := uc.Update(context.Background(), admin, "nope", SettingPatch{})
		if !errors.Is(err, ErrSettingNotFound) {
			t.Fatalf("expected ErrSettingNotFound, got %v", err)
		}
	})

	t.Run("writes an update audit row with before and after", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISystemConfigRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		cache := mock_interfaces.NewMockICache(ctrl)
		uc := NewSettingsUseCase(repo, audit, cache)

		before := entities.SystemConfig{Key: "company_name", Value: "Old", IsPublic: true}
		repo.EXPECT().Get(gomock.Any(), "company_name").Return(before, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.SystemConfig) (entities.SystemConfig, error) {
				if c.Value != "New" || c.UpdatedBy != "admin-1" || !c.IsPublic {
					t.Fatalf("unexpected upsert: %+v", c)
				}
				return c, nil
			},
		)
		audit.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.AuditLog) (entities.AuditLog, error) {
				if l.Action != entities.AuditActionUpdate || l.EntityType != "system_config" || l.EntityID != "company_name" {
					t.Fatalf("unexpected audit row: %+v", l)
				}
				if l.UserID != "admin-1" || l.IPAddress != "10.0.0.1" || l.UserAgent != "test" {
					t.Fatalf("unexpected actor fields: %+v", l)
				}
				var changes struct {
					Before entities.SystemConfig `json:"before"`
					After  entities.SystemConfig `json:"after"`
				}
				if err := json.Unmarshal(l.Changes, &changes); err != nil {
					t.Fatalf("changes not json: %v", err)
				}
				if changes.Before.Value != "Old" || changes.After.Value != "New" {
					t.Fatalf("unexpected changes: %s", l.Changes)
				}
				return l, nil
			},
		)
		cache.EXPECT().Delete(gomock.Any(), "settings:public").Return(nil)
		cache.EXPECT().Delete(gomock.Any(), "settings:all").Return(nil)

		value := "New"
		updated, err := uc.Update(context.Background(), admin, "company_name", SettingPatch{Value: &value})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if updated.Value != "New" {
			t.Fatalf("unexpected result: %+v", updated)
		}
	})

	t.Run("audit failure does not fail the update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISystemConfigRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		cache := mock_interfaces.NewMockICache(ctrl)
		uc := NewSettingsUseCase(repo, audit, cache)

		repo.EXPECT().Get(gomock.Any(), "k").Return(entities.SystemConfig{Key: "k"}, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.SystemConfig) (entities.SystemConfig, error) { return c, nil },
		)
		audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.AuditLog{}, errors.New("audit down"))
		cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		if _, err := uc.Update(context.Background(), admin, "k", SettingPatch{}); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})
}

func TestSettingsUseCase_List(t *testing.T) {
	t.Run("non admin reads public settings through the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISystemConfigRepository(ctrl)
		cache := mock_interfaces.NewMockICache(ctrl)
		uc := NewSettingsUseCase(repo, nil, cache)

		public := []entities.SystemConfig{{Key: "currency", Value: "EUR", IsPublic: true}}
		cache.EXPECT().Get(gomock.Any(), "settings:public", gomock.Any()).Return(false, nil)
		repo.EXPECT().List(gomock.Any(), true).Return(public, nil)
		cache.EXPECT().Set(gomock.Any(), "settings:public", public, settingsCacheTTL).Return(nil)

		list, err := uc.List(context.Background(), entities.Actor{UserID: "u"})
		if err != nil || len(list) != 1 {
			t.Fatalf("unexpected result %v err=%v", list, err)
		}
	})

	t.Run("cache hit skips storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mock_interfaces.NewMockICache(ctrl)
		uc := NewSettingsUseCase(nil, nil, cache)

		cache.EXPECT().Get(gomock.Any(), "settings:all", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, dst any) (bool, error) {
				*(dst.(*[]entities.SystemConfig)) = []entities.SystemConfig{{Key: "a"}, {Key: "b"}}
				return true, nil
			},
		)

		list, err := uc.List(context.Background(), entities.Actor{UserID: "a", Role: entities.RoleAdmin})
		if err != nil || len(list) != 2 {
			t.Fatalf("unexpected result %v err=%v", list, err)
		}
	})
}

func TestSettingsUseCase_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockISystemConfigRepository(ctrl)
	uc := NewSettingsUseCase(repo, nil, nil)

	repo.EXPECT().Get(gomock.Any(), "smtp_password").Return(entities.SystemConfig{Key: "smtp_password", IsPublic: false}, nil)

	_, err := uc.Get(context.Background(), entities.Actor{UserID: "u"}, "smtp_password")
	if !errors.Is(err, ErrSettingNotFound) {
		t.Fatalf("expected private setting to be hidden, got %v", err)
	}
}
