package payments

import (
	"context"

	"github.com/google/uuid"
)

// StubProvider é o processador por omissão enquanto a integração real não
// está ativa: reporta sempre sucesso com um id de transação gerado.
type StubProvider struct{}

func NewStubProvider() *StubProvider {
	return &StubProvider{}
}

func (p *StubProvider) Process(_ context.Context, _ Charge) (*ChargeResult, error) {
	return &ChargeResult{
		TransactionID: "PAY-" + uuid.NewString(),
		Processed:     true,
	}, nil
}
