package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvitationInvalid = errors.New("invitation is invalid or already used")
	ErrInvitationExpired = errors.New("invitation has expired")
	ErrPortalUserExists  = errors.New("portal user already exists")
)

const (
	InvitationTTL     = 7 * 24 * time.Hour
	minPortalPassword = 8
)

// InvitationView is what an invitee sees before registering.
type InvitationView struct {
	Invitation entities.ClientInvitation
	Client     entities.Client
}

type PortalSession struct {
	Token     string
	ExpiresAt time.Time
	User      entities.ClientPortalUser
}

// IClientPortalUseCase runs the invitation flow and the read-only portal.
type IClientPortalUseCase interface {
	Invite(ctx context.Context, actor entities.Actor, clientID, email string) (entities.ClientInvitation, error)
	VerifyToken(ctx context.Context, token string) (InvitationView, error)
	Register(ctx context.Context, token, password string) (PortalSession, error)
	Login(ctx context.Context, email, password string) (PortalSession, error)
	Authenticate(ctx context.Context, token string) (entities.PortalClaims, error)
	MyInvoices(ctx context.Context, claims entities.PortalClaims) ([]entities.Invoice, error)
	MyQuotes(ctx context.Context, claims entities.PortalClaims) ([]entities.Quote, error)
}

type ClientPortalUseCase struct {
	clients     interfaces.IClientRepository
	invitations interfaces.IClientInvitationRepository
	portalUsers interfaces.IClientPortalUserRepository
	invoices    interfaces.IInvoiceRepository
	quotes      interfaces.IQuoteRepository
	hasher      interfaces.IPasswordHasher
	tokens      interfaces.IPortalTokenIssuer
	mailer      interfaces.IMailer
	tx          interfaces.ITransactor
	baseURL     string
	now         func() time.Time
}

var _ IClientPortalUseCase = (*ClientPortalUseCase)(nil)

// ClientPortalDeps groups the collaborators of NewClientPortalUseCase.
type ClientPortalDeps struct {
	Clients     interfaces.IClientRepository
	Invitations interfaces.IClientInvitationRepository
	PortalUsers interfaces.IClientPortalUserRepository
	Invoices    interfaces.IInvoiceRepository
	Quotes      interfaces.IQuoteRepository
	Hasher      interfaces.IPasswordHasher
	Tokens      interfaces.IPortalTokenIssuer
	Mailer      interfaces.IMailer
	Tx          interfaces.ITransactor
	BaseURL     string
}

func NewClientPortalUseCase(d ClientPortalDeps) *ClientPortalUseCase {
	return &ClientPortalUseCase{
		clients:     d.Clients,
		invitations: d.Invitations,
		portalUsers: d.PortalUsers,
		invoices:    d.Invoices,
		quotes:      d.Quotes,
		hasher:      d.Hasher,
		tokens:      d.Tokens,
		mailer:      d.Mailer,
		tx:          d.Tx,
		baseURL:     strings.TrimRight(d.BaseURL, "/"),
		now:         time.Now,
	}
}

// Invite stores an invitation and emails the registration link. A failed email
// is logged; the invitation is still returned so staff can share the link.
func (u *ClientPortalUseCase) Invite(ctx context.Context, actor entities.Actor, clientID, email string) (entities.ClientInvitation, error) {
	client, err := activeClient(ctx, u.clients, clientID)
	if err != nil {
		return entities.ClientInvitation{}, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		email = strings.ToLower(strings.TrimSpace(client.Email))
	}
	if email == "" || !strings.Contains(email, "@") {
		return entities.ClientInvitation{}, invalidField("email", "must be a valid email")
	}

	now := u.now().UTC()
	inv := entities.ClientInvitation{
		ID:        uuid.NewString(),
		ClientID:  client.ID,
		Email:     email,
		Token:     uuid.NewString(),
		ExpiresAt: now.Add(InvitationTTL),
		InvitedBy: actor.UserID,
		CreatedAt: now,
	}
	created, err := u.invitations.Create(ctx, inv)
	if err != nil {
		return entities.ClientInvitation{}, err
	}
	log.Printf("[portal][usecase] invitation created client_id=%s invitation_id=%s", client.ID, created.ID)

	if u.mailer != nil {
		if err := u.mailer.Send(ctx, u.invitationEmail(client, created)); err != nil {
			log.WithError(err).Warnf("[portal][usecase] invitation email failed invitation_id=%s", created.ID)
		}
	}
	return created, nil
}

func (u *ClientPortalUseCase) VerifyToken(ctx context.Context, token string) (InvitationView, error) {
	inv, err := u.openInvitation(ctx, token)
	if err != nil {
		return InvitationView{}, err
	}

	client, err := u.clients.GetByID(ctx, inv.ClientID)
	if err != nil {
		return InvitationView{}, err
	}
	if client.ID == "" {
		return InvitationView{}, ErrInvitationInvalid
	}
	return InvitationView{Invitation: inv, Client: client}, nil
}

// Register creates the portal login, accepts the invitation and opens portal
// access for the client in one transaction.
func (u *ClientPortalUseCase) Register(ctx context.Context, token, password string) (PortalSession, error) {
	inv, err := u.openInvitation(ctx, token)
	if err != nil {
		return PortalSession{}, err
	}
	if len(password) < minPortalPassword {
		return PortalSession{}, invalidField("password", fmt.Sprintf("must be at least %d characters", minPortalPassword))
	}

	existing, err := u.portalUsers.GetByEmail(ctx, inv.Email)
	if err != nil {
		return PortalSession{}, err
	}
	if existing.ID != "" {
		return PortalSession{}, ErrPortalUserExists
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return PortalSession{}, err
	}

	pu := entities.ClientPortalUser{
		ID:           uuid.NewString(),
		ClientID:     inv.ClientID,
		Email:        inv.Email,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    u.now().UTC(),
	}
	var created entities.ClientPortalUser
	err = u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if created, err = u.portalUsers.Create(ctx, pu); err != nil {
			return err
		}
		if err := u.invitations.MarkAccepted(ctx, inv.ID); err != nil {
			return err
		}
		return u.clients.SetPortalAccess(ctx, inv.ClientID, true)
	})
	if err != nil {
		log.Printf("[portal][usecase] register failed invitation_id=%s err=%v", inv.ID, err)
		return PortalSession{}, err
	}

	log.Printf("[portal][usecase] registered portal_user_id=%s client_id=%s", created.ID, created.ClientID)
	return u.session(created)
}

func (u *ClientPortalUseCase) Login(ctx context.Context, email, password string) (PortalSession, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return PortalSession{}, interfaces.ErrInvalidCredentials
	}

	pu, err := u.portalUsers.GetByEmail(ctx, email)
	if err != nil {
		return PortalSession{}, err
	}
	if pu.ID == "" || !pu.IsActive || !u.hasher.Compare(pu.PasswordHash, password) {
		return PortalSession{}, interfaces.ErrInvalidCredentials
	}

	if err := u.portalUsers.TouchLogin(ctx, pu.ID); err != nil {
		log.WithError(err).Warnf("[portal][usecase] last login update failed portal_user_id=%s", pu.ID)
	}
	return u.session(pu)
}

func (u *ClientPortalUseCase) Authenticate(ctx context.Context, token string) (entities.PortalClaims, error) {
	claims, err := u.tokens.Parse(strings.TrimSpace(token))
	if err != nil {
		return entities.PortalClaims{}, err
	}

	pu, err := u.portalUsers.GetByID(ctx, claims.PortalUserID)
	if err != nil {
		return entities.PortalClaims{}, err
	}
	if pu.ID == "" || !pu.IsActive || pu.ClientID != claims.ClientID {
		return entities.PortalClaims{}, interfaces.ErrInvalidToken
	}
	return claims, nil
}

// MyInvoices lists the portal client's invoices. Drafts are not shown.
func (u *ClientPortalUseCase) MyInvoices(ctx context.Context, claims entities.PortalClaims) ([]entities.Invoice, error) {
	if claims.ClientID == "" {
		return nil, interfaces.ErrInvalidToken
	}
	all, err := u.invoices.List(ctx, entities.InvoiceFilter{ClientID: claims.ClientID})
	if err != nil {
		return nil, err
	}

	out := make([]entities.Invoice, 0, len(all))
	for _, inv := range all {
		if inv.Status != entities.InvoiceStatusDraft {
			out = append(out, inv)
		}
	}
	return out, nil
}

// MyQuotes lists the portal client's quotes. Drafts are not shown.
func (u *ClientPortalUseCase) MyQuotes(ctx context.Context, claims entities.PortalClaims) ([]entities.Quote, error) {
	if claims.ClientID == "" {
		return nil, interfaces.ErrInvalidToken
	}
	all, err := u.quotes.List(ctx, entities.QuoteFilter{ClientID: claims.ClientID})
	if err != nil {
		return nil, err
	}

	out := make([]entities.Quote, 0, len(all))
	for _, q := range all {
		if q.Status != entities.QuoteStatusDraft {
			out = append(out, q)
		}
	}
	return out, nil
}

func (u *ClientPortalUseCase) openInvitation(ctx context.Context, token string) (entities.ClientInvitation, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.ClientInvitation{}, ErrInvitationInvalid
	}

	inv, err := u.invitations.GetByToken(ctx, token)
	if err != nil {
		return entities.ClientInvitation{}, err
	}
	if inv.ID == "" || inv.AcceptedAt != nil {
		return entities.ClientInvitation{}, ErrInvitationInvalid
	}
	if inv.Expired(u.now()) {
		return entities.ClientInvitation{}, ErrInvitationExpired
	}
	return inv, nil
}

func (u *ClientPortalUseCase) session(pu entities.ClientPortalUser) (PortalSession, error) {
	token, claims, err := u.tokens.Issue(pu)
	if err != nil {
		return PortalSession{}, err
	}
	return PortalSession{Token: token, ExpiresAt: claims.ExpiresAt, User: pu}, nil
}

func (u *ClientPortalUseCase) invitationEmail(client entities.Client, inv entities.ClientInvitation) entities.EmailMessage {
	link := fmt.Sprintf("%s/client-portal/register?token=%s", u.baseURL, inv.Token)
	name := client.Name
	if client.CompanyName != "" {
		name = client.CompanyName
	}

	text := fmt.Sprintf("Hello %s,\n\nYou have been invited to the client portal.\nRegister here: %s\n\nThis link expires on %s.\n",
		name, link, inv.ExpiresAt.Format("2006-01-02"))
	htmlBody := fmt.Sprintf(`<p>Hello %s,</p><p>You have been invited to the client portal.</p><p><a href="%s">Register</a></p><p>This link expires on %s.</p>`,
		html.EscapeString(name), html.EscapeString(link), inv.ExpiresAt.Format("2006-01-02"))

	return entities.EmailMessage{
		To:       inv.Email,
		Subject:  "Your client portal invitation",
		TextBody: text,
		HTMLBody: htmlBody,
	}
}
