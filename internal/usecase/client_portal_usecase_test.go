package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"
	mock_interfaces "efectivio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type portalMocks struct {
	clients     *mock_interfaces.MockIClientRepository
	invitations *mock_interfaces.MockIClientInvitationRepository
	portalUsers *mock_interfaces.MockIClientPortalUserRepository
	invoices    *mock_interfaces.MockIInvoiceRepository
	quotes      *mock_interfaces.MockIQuoteRepository
	hasher      *mock_interfaces.MockIPasswordHasher
	tokens      *mock_interfaces.MockIPortalTokenIssuer
	mailer      *mock_interfaces.MockIMailer
	tx          *mock_interfaces.MockITransactor
}

func newPortalUseCaseWithMocks(t *testing.T) (*ClientPortalUseCase, portalMocks) {
	ctrl := gomock.NewController(t)
	m := portalMocks{
		clients:     mock_interfaces.NewMockIClientRepository(ctrl),
		invitations: mock_interfaces.NewMockIClientInvitationRepository(ctrl),
		portalUsers: mock_interfaces.NewMockIClientPortalUserRepository(ctrl),
		invoices:    mock_interfaces.NewMockIInvoiceRepository(ctrl),
		quotes:      mock_interfaces.NewMockIQuoteRepository(ctrl),
		hasher:      mock_interfaces.NewMockIPasswordHasher(ctrl),
		tokens:      mock_interfaces.NewMockIPortalTokenIssuer(ctrl),
		mailer:      mock_interfaces.NewMockIMailer(ctrl),
		tx:          mock_interfaces.NewMockITransactor(ctrl),
	}
	uc := NewClientPortalUseCase(ClientPortalDeps{
		Clients:     m.clients,
		Invitations: m.invitations,
		PortalUsers: m.portalUsers,
		Invoices:    m.invoices,
		Quotes:      m.quotes,
		Hasher:      m.hasher,
		Tokens:      m.tokens,
		Mailer:      m.mailer,
		Tx:          m.tx,
		BaseURL:     "https://app.example.com/",
	})
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func TestClientPortalUseCase_Invite(t *testing.T) {
	staff := entities.Actor{UserID: "user-1"}

	t.Run("creates invitation and emails the link", func(t *testing.T) {
		uc, m := newPortalUseCaseWithMocks(t)

		m.clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", Name: "Ana", Email: "Ana@Example.com", IsActive: true}, nil)
		m.invitations.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.ClientInvitation) (entities.ClientInvitation, error) {
				if inv.Email != "ana@example.com" || inv.Token == "" || inv.InvitedBy != "user-1" {
					t.Fatalf("unexpected invitation: %+v", inv)
				}
				if !inv.ExpiresAt.Equal(fixedNow.Add(7 * 24 * time.Hour)) {
					t.Fatalf("expected 7 day expiry, got %s", inv.ExpiresAt)
				}
				return inv, nil
			},
		)
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg entities.EmailMessage) error {
				if msg.To != "ana@example.com" || !strings.Contains(msg.TextBody, "https://app.example.com/client-portal/register?token=") {
					t.Fatalf("unexpected email: %+v", msg)
				}
				return nil
			},
		)

		if _, err := uc.Invite(context.Background(), staff, "client-1", ""); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("html body escapes the client name", func(t *testing.T) {
		uc, m := newPortalUseCaseWithMocks(t)

		m.clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", CompanyName: `Ruiz & <b>Hijos</b>`, IsActive: true}, nil)
		m.invitations.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.ClientInvitation) (entities.ClientInvitation, error) { return inv, nil },
		)
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg entities.EmailMessage) error {
				if !strings.Contains(msg.HTMLBody, "Hello Ruiz &amp; &lt;b&gt;Hijos&lt;/b&gt;,") || strings.Contains(msg.HTMLBody, "<b>") {
					t.Fatalf("html body not escaped: %s", msg.HTMLBody)
				}
				if !strings.Contains(msg.TextBody, "Hello Ruiz & <b>Hijos</b>,") {
					t.Fatalf("unexpected text body: %s", msg.TextBody)
				}
				return nil
			},
		)

		if _, err := uc.Invite(context.Background(), staff, "client-1", "ruiz@example.com"); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("email failure still returns the invitation", func(t *testing.T) {
		uc, m := newPortalUseCaseWithMocks(t)

		m.clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", IsActive: true}, nil)
		m.invitations.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.ClientInvitation) (entities.ClientInvitation, error) { return inv, nil },
		)
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		inv, err := uc.Invite(context.Background(), staff, "client-1", "c@example.com")
		if err != nil || inv.ID == "" {
			t.Fatalf("expected invitation, got %+v err=%v", inv, err)
		}
	})

	t.Run("no usable email", func(t *testing.T) {
		uc, m := newPortalUseCaseWithMocks(t)

		m.clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", IsActive: true}, nil)

		_, err := uc.Invite(context.Background(), staff, "client-1", "")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestClientPortalUseCase_VerifyToken(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		uc, m := newPortalUseCaseWithMocks(t)

		m.invitations.EXPECT().GetByToken(gomock.Any(), "tok").Return(entities.ClientInvitation{ID: "i1", ExpiresAt: fixedNow.Add(-time.Minute)}, nil)

		if _, err := uc.VerifyToken(context.Background(), "tok"); !errors.Is(err, ErrInvitationExpired) {
			t.Fatalf("expected ErrInvitationExpired, got %v", err)
		}
	})

	t.Run("already accepted", func(t *testing.T) {
		uc, m := newPortalUseCaseWithMocks(t)

		accepted := fixedNow.Add(-time.Hour)
		m.invitations.EXPECT().GetByToken(gomock.Any(), "tok").Return(entities.ClientInvitation{ID: "i1", ExpiresAt: fixedNow.Add(time.Hour), AcceptedAt: &accepted}, nil)

		if _, err := uc.VerifyToken(context.Background(), "tok"); !errors.Is(err, ErrInvitationInvalid) {
			t.Fatalf("expected ErrInvitationInvalid, got %v", err)
		}
	})

	t.Run("valid", func(t *testing.T) {
		uc, m := newPortalUseCaseWithMocks(t)

		m.invitations.EXPECT().GetByToken(gomock.Any(), "tok").Return(entities.ClientInvitation{ID: "i1", ClientID: "client-1", ExpiresAt: fixedNow.Add(time.Hour)}, nil)
		m.clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", Name: "Ana"}, nil)

		view, err := uc.VerifyToken(context.Background(), "tok")
		if err != nil || view.Client.Name != "Ana" {
			t.Fatalf("unexpected view %+v err=%v", view, err)
		}
	})
}

func TestClientPortalUseCase_Register(t *testing.T) {
	open := entities.ClientInvitation{ID: "i1", ClientID: "client-1", Email: "ana@example.com", ExpiresAt: fixedNow.Add(time.Hour)}

	t.Run("short password", func(t *testing.T) {
		uc, m := newPortalUseCaseWithMocks(t)
		m.invitations.EXPECT().GetByToken(gomock.Any(), "tok").Return(open, nil)

		if _, err := uc.Register(context.Background(), "tok", "short"); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("creates user, accepts invitation and opens access", func(t *testing.T) {
		uc, m := newPortalUseCaseWithMocks(t)

		m.invitations.EXPECT().GetByToken(gomock.Any(), "tok").Return(open, nil)
		m.portalUsers.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.ClientPortalUser{}, nil)
		m.hasher.EXPECT().Hash("correct horse").Return("hashed", nil)
		passthroughTx(m.tx)
		m.portalUsers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.ClientPortalUser) (entities.ClientPortalUser, error) {
				if u.PasswordHash != "hashed" || u.ClientID != "client-1" || !u.IsActive {
					t.Fatalf("unexpected portal user: %+v", u)
				}
				return u, nil
			},
		)
		m.invitations.EXPECT().MarkAccepted(gomock.Any(), "i1").Return(nil)
		m.clients.EXPECT().SetPortalAccess(gomock.Any(), "client-1", true).Return(nil)
		m.tokens.EXPECT().Issue(gomock.Any()).Return("portal-token", entities.PortalClaims{ExpiresAt: fixedNow.Add(time.Hour)}, nil)

		s, err := uc.Register(context.Background(), "tok", "correct horse")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if s.Token != "portal-token" || s.User.Email != "ana@example.com" {
			t.Fatalf("unexpected session: %+v", s)
		}
	})

	t.Run("existing portal user", func(t *testing.T) {
		uc, m := newPortalUseCaseWithMocks(t)

		m.invitations.EXPECT().GetByToken(gomock.Any(), "tok").Return(open, nil)
		m.portalUsers.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.ClientPortalUser{ID: "pu-1"}, nil)

		if _, err := uc.Register(context.Background(), "tok", "correct horse"); !errors.Is(err, ErrPortalUserExists) {
			t.Fatalf("expected ErrPortalUserExists, got %v", err)
		}
	})
}

func TestClientPortalUseCase_Login(t *testing.T) {
	t.Run("wrong password", func(t *testing.T) {
		uc, m := newPortalUseCaseWithMocks(t)

		m.portalUsers.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.ClientPortalUser{ID: "pu-1", PasswordHash: "h", IsActive: true}, nil)
		m.hasher.EXPECT().Compare("h", "nope").Return(false)

		if _, err := uc.Login(context.Background(), " Ana@example.com ", "nope"); !errors.Is(err, interfaces.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success touches last login", func(t *testing.T) {
		uc, m := newPortalUseCaseWithMocks(t)

		pu := entities.ClientPortalUser{ID: "pu-1", ClientID: "client-1", PasswordHash: "h", IsActive: true}
		m.portalUsers.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(pu, nil)
		m.hasher.EXPECT().Compare("h", "secret-pass").Return(true)
		m.portalUsers.EXPECT().TouchLogin(gomock.Any(), "pu-1").Return(nil)
		m.tokens.EXPECT().Issue(pu).Return("tok", entities.PortalClaims{PortalUserID: "pu-1"}, nil)

		s, err := uc.Login(context.Background(), "ana@example.com", "secret-pass")
		if err != nil || s.Token != "tok" {
			t.Fatalf("unexpected session %+v err=%v", s, err)
		}
	})
}

func TestClientPortalUseCase_MyInvoices(t *testing.T) {
	uc, m := newPortalUseCaseWithMocks(t)

	m.invoices.EXPECT().List(gomock.Any(), entities.InvoiceFilter{ClientID: "client-1"}).Return([]entities.Invoice{
		{ID: "a", Status: entities.InvoiceStatusDraft},
		{ID: "b", Status: entities.InvoiceStatusSent},
		{ID: "c", Status: entities.InvoiceStatusPaid},
	}, nil)

	list, err := uc.MyInvoices(context.Background(), entities.PortalClaims{ClientID: "client-1"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(list) != 2 || list[0].ID != "b" || list[1].ID != "c" {
		t.Fatalf("expected drafts to be hidden, got %+v", list)
	}
}
