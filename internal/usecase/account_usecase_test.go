package usecase

import (
	"context"
	"errors"
	"testing"

	"efectivio/internal/domain/entities"
	mock_interfaces "efectivio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAccountUseCase_Create(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewAccountUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Account{Type: "bogus"})
		var verr *ValidationError
		if !errors.As(err, &verr) || len(verr.Fields) != 3 {
			t.Fatalf("expected code, name and type errors, got %v", err)
		}
	})

	t.Run("duplicate code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewAccountUseCase(repo)

		repo.EXPECT().GetByCode(gomock.Any(), "1000").Return(entities.Account{ID: "acc-1"}, nil)

		_, err := uc.Create(context.Background(), entities.Account{Code: "1000", Name: "Cash", Type: entities.AccountTypeAsset})
		if !errors.Is(err, ErrAccountCodeExists) {
			t.Fatalf("expected ErrAccountCodeExists, got %v", err)
		}
	})

	t.Run("unknown parent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewAccountUseCase(repo)

		repo.EXPECT().GetByCode(gomock.Any(), "1010").Return(entities.Account{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Account{}, nil)

		_, err := uc.Create(context.Background(), entities.Account{Code: "1010", Name: "Petty cash", Type: entities.AccountTypeAsset, ParentID: "missing"})
		if !errors.Is(err, ErrInvalidAccountParent) {
			t.Fatalf("expected ErrInvalidAccountParent, got %v", err)
		}
	})
}

func TestAccountUseCase_Update(t *testing.T) {
	t.Run("parent cycle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewAccountUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "a").Return(entities.Account{ID: "a", Code: "1000"}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "b").Return(entities.Account{ID: "b", Code: "1100", ParentID: "a"}, nil)

		_, err := uc.Update(context.Background(), entities.Account{ID: "a", Code: "1000", Name: "Cash", Type: entities.AccountTypeAsset, ParentID: "b"})
		if !errors.Is(err, ErrInvalidAccountParent) {
			t.Fatalf("expected ErrInvalidAccountParent, got %v", err)
		}
	})
}

func TestAccountUseCase_SeedDefaultChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIAccountRepository(ctrl)
	uc := NewAccountUseCase(repo)

	chart := entities.DefaultChart()
	existing := chart[0].Code
	repo.EXPECT().GetByCode(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, code string) (entities.Account, error) {
			if code == existing {
				return entities.Account{ID: "already"}, nil
			}
			return entities.Account{}, nil
		},
	).AnyTimes()
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a entities.Account) (entities.Account, error) { return a, nil },
	).Times(len(chart) - 1)

	n, err := uc.SeedDefaultChart(context.Background())
	if err != nil || n != len(chart)-1 {
		t.Fatalf("expected %d created, got %d err=%v", len(chart)-1, n, err)
	}
}
