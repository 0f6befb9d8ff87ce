package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	appconfig "efectivio/internal/infrastructure/config"
	"efectivio/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	log "github.com/sirupsen/logrus"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	timeout  time.Duration
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg appconfig.PaymentsConfig) (*MercadoPagoGateway, error) {
	if cfg.Mock {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, now: time.Now}, nil
	}

	if cfg.AccessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(sdkCfg), timeout: cfg.Timeout, now: time.Now}, nil
}

// CreatePayment submits a payment request. In mock mode every request is
// approved and echoed back with a generated id.
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockPayment(requestPayload)
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start payload_len=%d", len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.WithError(err).Warnf("[payment][gateway] sdk create failed")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func (g *MercadoPagoGateway) mockPayment(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	log.Printf("[payment][gateway] mock create start payload_len=%d", len(requestPayload))

	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	stamp := now.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = stamp
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = stamp
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return "", "", nil, err
	}

	log.Printf("[payment][gateway] mock create success provider_payment_id=%s provider_status=approved", id)
	return id, "approved", b, nil
}
