// internal/liquidacao/dto.go
package liquidacao

import (
	"time"

	"github.com/RotaNorte/api-cargas/internal/moeda"
)

// LiquidarDTO é o payload de uma tentativa de liquidação. Os campos
// monetários chegam como texto localizado do formulário ("1.234,56") e são
// convertidos com o parser de moeda; datas em RFC3339.
type LiquidarDTO struct {
	NumeroTrajeto int `json:"numeroTrajeto"`

	DividirFrete           bool   `json:"dividirFrete"`
	PercentualAdiantamento int    `json:"percentualAdiantamento"`
	Parcela                string `json:"parcela"`
	AlvoConsolidacao       string `json:"alvoConsolidacao"`

	VencimentoFrete        string `json:"vencimentoFrete"`
	VencimentoAdiantamento string `json:"vencimentoAdiantamento"`
	VencimentoSaldo        string `json:"vencimentoSaldo"`

	TemDespesas           bool    `json:"temDespesas"`
	ValorMoedaEstrangeira string  `json:"valorMoedaEstrangeira"`
	TaxaConversao         float64 `json:"taxaConversao"`
	ValorExtraDireto      string  `json:"valorExtraDireto"`
	DestinoDespesas       string  `json:"destinoDespesas"`
	VencimentoDespesas    string  `json:"vencimentoDespesas"`

	TemDiarias        bool   `json:"temDiarias"`
	ValorDiarias      string `json:"valorDiarias"`
	DestinoDiarias    string `json:"destinoDiarias"`
	VencimentoDiarias string `json:"vencimentoDiarias"`
}

func parseData(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ParaDados converte o payload no objeto de decisão da liquidação.
func (dto LiquidarDTO) ParaDados() DadosIntegracao {
	return DadosIntegracao{
		NumeroTrajeto: dto.NumeroTrajeto,

		DividirFrete:     dto.DividirFrete,
		Percentual:       PercentualAdiantamento(dto.PercentualAdiantamento),
		Parcela:          ParcelaAlvo(dto.Parcela),
		AlvoConsolidacao: AlvoConsolidacao(dto.AlvoConsolidacao),

		VencimentoFrete:        parseData(dto.VencimentoFrete),
		VencimentoAdiantamento: parseData(dto.VencimentoAdiantamento),
		VencimentoSaldo:        parseData(dto.VencimentoSaldo),

		TemDespesas:           dto.TemDespesas,
		ValorMoedaEstrangeira: moeda.ParseValor(dto.ValorMoedaEstrangeira),
		TaxaConversao:         dto.TaxaConversao,
		ValorExtraDireto:      moeda.ParseValor(dto.ValorExtraDireto),
		DestinoDespesas:       DestinoExtra(dto.DestinoDespesas),
		VencimentoDespesas:    parseData(dto.VencimentoDespesas),

		TemDiarias:        dto.TemDiarias,
		ValorDiarias:      moeda.ParseValor(dto.ValorDiarias),
		DestinoDiarias:    DestinoExtra(dto.DestinoDiarias),
		VencimentoDiarias: parseData(dto.VencimentoDiarias),
	}
}
