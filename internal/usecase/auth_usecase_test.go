package usecase

import (
	"context"
	"errors"
	"testing"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"
	mock_interfaces "efectivio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_Authenticate(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil)
		if _, err := uc.Authenticate(context.Background(), " "); !errors.Is(err, interfaces.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("provider rejects token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIIdentityProvider(ctrl)
		uc := NewAuthUseCase(provider, nil, nil)

		provider.EXPECT().VerifyToken(gomock.Any(), "bad").Return(entities.Identity{}, interfaces.ErrInvalidToken)

		if _, err := uc.Authenticate(context.Background(), "bad"); !errors.Is(err, interfaces.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("upserts user and promotes configured admins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIIdentityProvider(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(provider, users, []string{" Boss@Example.com "})

		provider.EXPECT().VerifyToken(gomock.Any(), "tok").Return(entities.Identity{ExternalID: "ext-1", Email: "boss@example.com"}, nil)
		users.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.ExternalID != "ext-1" || u.Role != entities.RoleAdmin || !u.IsActive {
					t.Fatalf("unexpected user: %+v", u)
				}
				return u, nil
			},
		)

		user, err := uc.Authenticate(context.Background(), "tok")
		if err != nil || !user.IsAdmin() {
			t.Fatalf("expected admin user, got %+v err=%v", user, err)
		}
	})

	t.Run("inactive user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIIdentityProvider(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(provider, users, nil)

		provider.EXPECT().VerifyToken(gomock.Any(), "tok").Return(entities.Identity{ExternalID: "ext-1"}, nil)
		users.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.User{ID: "u1", IsActive: false}, nil)

		if _, err := uc.Authenticate(context.Background(), "tok"); !errors.Is(err, ErrUserInactive) {
			t.Fatalf("expected ErrUserInactive, got %v", err)
		}
	})
}

func TestAuthUseCase_SignUp(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil)
		_, _, err := uc.SignUp(context.Background(), entities.SignUpInput{Email: "nope", Password: "short"})
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Fields["email"] == "" || verr.Fields["password"] == "" {
			t.Fatalf("expected email and password errors, got %v", err)
		}
	})

	t.Run("unsupported by provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIIdentityProvider(ctrl)
		uc := NewAuthUseCase(provider, nil, nil)

		provider.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(entities.AuthSession{}, interfaces.ErrUnsupported)

		_, _, err := uc.SignUp(context.Background(), entities.SignUpInput{Email: "a@b.c", Password: "long enough"})
		if !errors.Is(err, interfaces.ErrUnsupported) {
			t.Fatalf("expected ErrUnsupported, got %v", err)
		}
	})
}

func TestUserUseCase_SyncFromProvider(t *testing.T) {
	t.Run("deleted event removes the user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(users, nil)

		users.EXPECT().DeleteByExternalID(gomock.Any(), "ext-1").Return(true, nil)

		err := uc.SyncFromProvider(context.Background(), entities.IdentityEvent{
			Type:     entities.IdentityEventUserDeleted,
			Identity: entities.Identity{ExternalID: "ext-1"},
		})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("updated event upserts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(users, nil)

		users.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Email != "new@example.com" || u.FirstName != "Ana" {
					t.Fatalf("unexpected user: %+v", u)
				}
				return u, nil
			},
		)

		err := uc.SyncFromProvider(context.Background(), entities.IdentityEvent{
			Type:     entities.IdentityEventUserUpdated,
			Identity: entities.Identity{ExternalID: "ext-1", Email: "NEW@example.com", FirstName: "Ana"},
		})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("missing external id", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil)
		err := uc.SyncFromProvider(context.Background(), entities.IdentityEvent{Type: entities.IdentityEventUserCreated})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestUserUseCase_UpdateRole(t *testing.T) {
	admin := entities.Actor{UserID: "admin-1", Role: entities.RoleAdmin}

	t.Run("forbidden for non admins", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil)
		_, err := uc.UpdateRole(context.Background(), entities.Actor{UserID: "u"}, "u2", entities.RoleAdmin)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil)
		if _, err := uc.UpdateRole(context.Background(), admin, "u2", "root"); !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("audited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewUserUseCase(users, audit)

		users.EXPECT().GetByID(gomock.Any(), "u2").Return(entities.User{ID: "u2", Role: entities.RoleUser}, nil)
		users.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) { return u, nil },
		)
		audit.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.AuditLog) (entities.AuditLog, error) {
				if l.EntityType != "user" || l.EntityID != "u2" || l.Action != entities.AuditActionUpdate {
					t.Fatalf("unexpected audit row: %+v", l)
				}
				return l, nil
			},
		)

		u, err := uc.UpdateRole(context.Background(), admin, "u2", entities.RoleAccountant)
		if err != nil || u.Role != entities.RoleAccountant {
			t.Fatalf("unexpected result %+v err=%v", u, err)
		}
	})
}
