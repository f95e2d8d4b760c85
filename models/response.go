package models

import "github.com/shopspring/decimal"

// Summary aggregates a user's transactions. Saldo always equals Renda + Despesas
// when the three sums are read from the same snapshot.
type Summary struct {
	Saldo    decimal.Decimal `json:"saldo" swaggertype:"string" example:"70"`
	Renda    decimal.Decimal `json:"renda" swaggertype:"string" example:"110"`
	Despesas decimal.Decimal `json:"despesas" swaggertype:"string" example:"-40"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Transação deletada com sucesso!"`
}

type ErrorResponse struct {
	Message string `json:"message" example:"Erro do servidor interno"`
}
