// internal/liquidacao/handler.go
package liquidacao

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/RotaNorte/api-cargas/internal/carga"
	"github.com/RotaNorte/api-cargas/internal/movimentacao"
	"github.com/RotaNorte/api-cargas/internal/reversao"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler orquestra uma tentativa de liquidação: carga + configuração
// entram, movimentações saem, e o desfazer da tentativa fica registrado.
type Handler struct {
	DB            *gorm.DB
	Cargas        carga.Repository
	Movimentacoes *movimentacao.Repository
	Registro      *reversao.Registro
	Logger        *zap.Logger
}

// NewHandler cria um novo handler de liquidações
func NewHandler(db *gorm.DB, registro *reversao.Registro, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		DB:            db,
		Cargas:        carga.NewRepository(),
		Movimentacoes: movimentacao.NewRepository(db),
		Registro:      registro,
		Logger:        logger,
	}
}

// Liquidar trata POST /cargas/{id}/liquidacoes
func (h *Handler) Liquidar(w http.ResponseWriter, r *http.Request) {
	// 1) pega ID da carga
	cargaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de carga inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	// 2) decodifica no DTO
	var dto LiquidarDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	dados := dto.ParaDados()

	// 3) carrega a carga com os trajetos
	c, err := h.Cargas.BuscarPorID(h.DB, uint(cargaID))
	if err != nil {
		http.Error(w, "Carga não encontrada", http.StatusNotFound)
		return
	}

	var valorBase float64
	if dados.NumeroTrajeto >= 1 {
		traj := c.TrajetoPorNumero(dados.NumeroTrajeto)
		if traj == nil {
			http.Error(w, "Trajeto não encontrado", http.StatusNotFound)
			return
		}
		valorBase = traj.ValorBase
	}

	// 4) inicia transação: a releitura das movimentações do trajeto e a
	// inserção do plano acontecem na mesma transação, para que a validação
	// enxergue o estado mais fresco possível.
	tx := h.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Não foi possível iniciar transação", http.StatusInternalServerError)
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			http.Error(w, "Falha interna", http.StatusInternalServerError)
		}
	}()

	// 5) relê o estado do trajeto e resolve a situação
	existentes, err := h.Movimentacoes.WithDB(tx).ListarFretePorTrajeto(uint(cargaID), dados.NumeroTrajeto)
	if err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao consultar movimentações do trajeto", http.StatusInternalServerError)
		return
	}
	sit := Resolver(existentes)

	// 6) valida e planeja — nenhuma emissão parcial em caso de rejeição
	plano, err := Planejar(c.Codigo, c.ID, valorBase, sit, dados)
	if err != nil {
		_ = tx.Rollback()
		status := http.StatusUnprocessableEntity
		if EhConflitoDeEstado(err) {
			status = http.StatusConflict
		}
		http.Error(w, err.Error(), status)
		return
	}

	// 7) persiste o plano inteiro
	criadas := make([]*movimentacao.MovimentacaoFinanceira, len(plano))
	for i := range plano {
		criadas[i] = &plano[i]
	}
	if err := h.Movimentacoes.WithDB(tx).CriarEmLote(criadas); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao criar movimentações da liquidação", http.StatusInternalServerError)
		return
	}

	// 8) commit
	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	// 9) registra o desfazer: apaga exatamente os IDs criados, nada mais
	ids := make([]uint, len(criadas))
	for i, m := range criadas {
		ids[i] = m.ID
	}
	movRepo := h.Movimentacoes
	h.Registro.Registrar(
		fmt.Sprintf("Liquidação do trajeto %d da carga %s", dados.NumeroTrajeto, c.Codigo),
		func() error { return movRepo.DeletarPorIDs(ids) },
	)

	h.Logger.Info("liquidação lançada",
		zap.String("carga", c.Codigo),
		zap.Int("trajeto", dados.NumeroTrajeto),
		zap.Int("movimentacoes", len(ids)))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(plano)
}

// Situacao trata GET /cargas/{id}/trajetos/{numero}/situacao — consulta a
// situação de liquidação de um trajeto sem lançar nada.
func (h *Handler) Situacao(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cargaID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "ID de carga inválido", http.StatusBadRequest)
		return
	}
	numero, err := strconv.Atoi(vars["numero"])
	if err != nil {
		http.Error(w, "Número de trajeto inválido", http.StatusBadRequest)
		return
	}

	movs, err := h.Movimentacoes.ListarFretePorTrajeto(uint(cargaID), numero)
	if err != nil {
		http.Error(w, "Erro ao consultar movimentações do trajeto", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Resolver(movs))
}
