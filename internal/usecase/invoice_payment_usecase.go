package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrInvoiceAlreadyPaid             = errors.New("invoice already paid")
	ErrInvoiceNotPayable              = errors.New("invoice cannot be paid in its current status")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
	ErrPaymentGatewayFailed           = errors.New("payment gateway failed")
)

// IInvoicePaymentUseCase charges invoices through the payment provider.
type IInvoicePaymentUseCase interface {
	Pay(ctx context.Context, invoiceID string, providerPayload json.RawMessage) (entities.InvoicePayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error)
}

type InvoicePaymentUseCase struct {
	repo        interfaces.IInvoicePaymentRepository
	invoiceRepo interfaces.IInvoiceRepository
	gateway     interfaces.IPaymentGateway
	tx          interfaces.ITransactor
	journal     IJournalUseCase
	now         func() time.Time
}

var _ IInvoicePaymentUseCase = (*InvoicePaymentUseCase)(nil)

func NewInvoicePaymentUseCase(repo interfaces.IInvoicePaymentRepository, invoiceRepo interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway, tx interfaces.ITransactor, journal IJournalUseCase) *InvoicePaymentUseCase {
	return &InvoicePaymentUseCase{repo: repo, invoiceRepo: invoiceRepo, gateway: gateway, tx: tx, journal: journal, now: time.Now}
}

// Pay charges the invoice total. An approved payment is stored and the invoice
// marked paid in one transaction; the ledger posting that follows is best effort.
func (u *InvoicePaymentUseCase) Pay(ctx context.Context, invoiceID string, providerPayload json.RawMessage) (entities.InvoicePayment, error) {
	log.Printf("[payment][usecase] pay start raw_invoice_id=%q payload_len=%d", invoiceID, len(providerPayload))
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.InvoicePayment{}, ErrInvalidInvoiceID
	}
	if len(strings.TrimSpace(string(providerPayload))) == 0 {
		providerPayload = json.RawMessage("{}")
	}

	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil || reqMap == nil {
		log.Printf("[payment][usecase] invalid payload (not-json-object) invoice_id=%s", invoiceID)
		return entities.InvoicePayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured invoice_id=%s", invoiceID)
		return entities.InvoicePayment{}, ErrPaymentGatewayNotConfigured
	}

	inv, err := u.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading invoice invoice_id=%s err=%v", invoiceID, err)
		return entities.InvoicePayment{}, err
	}
	if inv.ID == "" {
		return entities.InvoicePayment{}, ErrInvoiceNotFound
	}
	switch inv.Status {
	case entities.InvoiceStatusPaid:
		return entities.InvoicePayment{}, ErrInvoiceAlreadyPaid
	case entities.InvoiceStatusCancelled:
		return entities.InvoicePayment{}, ErrInvoiceNotPayable
	}

	// The invoice is the source of truth for the amount and the reference.
	reqMap["transaction_amount"] = inv.Total.InexactFloat64()
	reqMap["external_reference"] = inv.ID
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Invoice %s", inv.Number)
	}
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.InvoicePayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed invoice_id=%s err=%v", invoiceID, err)
		return entities.InvoicePayment{}, mapGatewayError(err)
	}
	log.Printf("[payment][usecase] payment gateway success invoice_id=%s provider_payment_id=%s provider_status=%s", invoiceID, providerPaymentID, providerStatus)

	now := u.now().UTC()
	p := entities.InvoicePayment{
		ID:                uuid.NewString(),
		InvoiceID:         inv.ID,
		ProviderPaymentID: providerPaymentID,
		Status:            entities.PaymentStatusFromProvider(providerStatus),
		Amount:            inv.Total,
		ProviderPayload:   providerResp,
		CreatedAt:         now,
	}
	if p.Status == entities.PaymentStatusApproved {
		p.PaidAt = &now
	}

	var created entities.InvoicePayment
	err = u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if created, err = u.repo.Create(ctx, p); err != nil {
			return err
		}
		if p.Status != entities.PaymentStatusApproved {
			return nil
		}
		_, err = u.invoiceRepo.UpdateStatus(ctx, inv.ID, entities.InvoiceStatusPaid)
		return err
	})
	if err != nil {
		log.Printf("[payment][usecase] persist failed invoice_id=%s provider_payment_id=%s err=%v", invoiceID, providerPaymentID, err)
		return entities.InvoicePayment{}, err
	}

	if created.Status == entities.PaymentStatusApproved && u.journal != nil {
		if _, err := u.journal.PostPayment(ctx, inv, created); err != nil {
			log.WithError(err).Warnf("[payment][usecase] ledger posting failed invoice_id=%s payment_id=%s", inv.ID, created.ID)
		}
	}

	log.Printf("[payment][usecase] pay success invoice_id=%s payment_id=%s status=%s", invoiceID, created.ID, created.Status)
	return created, nil
}

func (u *InvoicePaymentUseCase) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}
	return u.repo.ListByInvoiceID(ctx, invoiceID)
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayCustomerNotFound, err)
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	default:
		return fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
	}
}
