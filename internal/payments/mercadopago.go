package payments

import (
	"context"
	"fmt"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

// MercadoPagoProvider cobra via Mercado Pago. Selecionado por configuração
// (PAYMENT_PROVIDER=mercadopago).
type MercadoPagoProvider struct {
	client payment.Client
}

func NewMercadoPagoProvider(accessToken string) (*MercadoPagoProvider, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPagoProvider{
		client: payment.NewClient(cfg),
	}, nil
}

func (p *MercadoPagoProvider) Process(ctx context.Context, charge Charge) (*ChargeResult, error) {
	resource, err := p.client.Create(ctx, payment.Request{
		TransactionAmount: charge.Amount,
		Description:       charge.Description,
		PaymentMethodID:   "pix",
		Payer: &payment.PayerRequest{
			Email: charge.PayerEmail,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("mercadopago create payment: %w", err)
	}

	return &ChargeResult{
		TransactionID: strconv.Itoa(resource.ID),
		Processed:     true,
	}, nil
}
