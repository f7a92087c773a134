package payments

import "context"

type Charge struct {
	Amount      float64
	Description string
	PayerEmail  string
}

type ChargeResult struct {
	TransactionID string `json:"transaction_id"`
	Processed     bool   `json:"processed"`
}

type Provider interface {
	Process(ctx context.Context, charge Charge) (*ChargeResult, error)
}
