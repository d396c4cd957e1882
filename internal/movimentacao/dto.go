// internal/movimentacao/dto.go
package movimentacao

// CreateMovimentacaoDTO é o payload de criação manual de lançamentos.
// Lançamentos de frete de trajeto normalmente nascem pela liquidação,
// não por aqui.
type CreateMovimentacaoDTO struct {
	Tipo           string  `json:"tipo"`
	Valor          float64 `json:"valor"`
	Descricao      string  `json:"descricao"`
	Categoria      string  `json:"categoria"`
	DataVencimento string  `json:"dataVencimento"` // RFC3339
	CargaID        uint    `json:"cargaId"`
	NumeroTrajeto  *int    `json:"numeroTrajeto"`
	Observacoes    string  `json:"observacoes"`
}
