package payment

import (
	"context"
	"fmt"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"

	"github.com/cleankart/marketplace-api/internal/models"
)

type MercadoPagoGateway struct {
	client mppayment.Client
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &MercadoPagoGateway{client: mppayment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateOrder(ctx context.Context, b *models.Booking) (*Order, error) {
	res, err := g.client.Create(ctx, mppayment.Request{
		TransactionAmount: b.TotalAmount,
		Description:       fmt.Sprintf("CleanKart booking #%d - %s", b.ID, b.Service.Name),
		ExternalReference: strconv.FormatUint(uint64(b.ID), 10),
		Payer: &mppayment.PayerRequest{
			Email: b.User.Email,
		},
	})
	if err != nil {
		return nil, err
	}

	return &Order{
		ProviderOrderID: strconv.Itoa(res.ID),
		Amount:          b.TotalAmount,
		Status:          res.Status,
	}, nil
}

func (g *MercadoPagoGateway) VerifyOrder(ctx context.Context, providerOrderID string) (*Order, error) {
	id, err := strconv.Atoi(providerOrderID)
	if err != nil {
		return nil, fmt.Errorf("invalid provider order id %q", providerOrderID)
	}

	res, err := g.client.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Order{
		ProviderOrderID: providerOrderID,
		Amount:          res.TransactionAmount,
		Status:          res.Status,
	}, nil
}
