// internal/movimentacao/handler.go
package movimentacao

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// Handler gerencia as rotas de movimentações financeiras
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Criar trata POST /movimentacoes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto CreateMovimentacaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if dto.Tipo != TipoReceita && dto.Tipo != TipoDespesa {
		http.Error(w, "Tipo inválido (use 'Receita' ou 'Despesa')", http.StatusBadRequest)
		return
	}
	if dto.Valor <= 0 {
		http.Error(w, "O campo 'valor' deve ser maior que zero", http.StatusBadRequest)
		return
	}

	vencimento, err := time.Parse(time.RFC3339, dto.DataVencimento)
	if err != nil {
		http.Error(w, "Data de vencimento inválida", http.StatusBadRequest)
		return
	}

	m := MovimentacaoFinanceira{
		Tipo:            dto.Tipo,
		Valor:           dto.Valor,
		Descricao:       dto.Descricao,
		Categoria:       dto.Categoria,
		DataVencimento:  vencimento,
		StatusPagamento: StatusPendente,
		CargaID:         dto.CargaID,
		NumeroTrajeto:   dto.NumeroTrajeto,
		Observacoes:     dto.Observacoes,
	}

	if err := h.Repo.Criar(&m); err != nil {
		http.Error(w, "Erro ao salvar movimentação", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(m)
}

// Listar trata GET /movimentacoes?categoria=&status=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	categoria := r.URL.Query().Get("categoria")
	status := r.URL.Query().Get("status")

	list, err := h.Repo.Listar(categoria, status)
	if err != nil {
		http.Error(w, "Erro ao listar movimentações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// ListarPorCarga trata GET /cargas/{id}/movimentacoes
func (h *Handler) ListarPorCarga(w http.ResponseWriter, r *http.Request) {
	cargaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de carga inválido", http.StatusBadRequest)
		return
	}

	list, err := h.Repo.ListarPorCarga(uint(cargaID))
	if err != nil {
		http.Error(w, "Erro ao listar movimentações da carga", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /movimentacoes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	m, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Movimentação não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}

// AtualizarStatus trata PATCH /movimentacoes/{id}/status
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var payload struct {
		Status        string `json:"status"`
		DataPagamento string `json:"dataPagamento"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if payload.Status == "" {
		http.Error(w, "O campo 'status' é obrigatório", http.StatusBadRequest)
		return
	}

	dataPagamento := time.Now()
	if payload.DataPagamento != "" {
		if t, err := time.Parse(time.RFC3339, payload.DataPagamento); err == nil {
			dataPagamento = t
		}
	}

	if err := h.Repo.AtualizarStatus(uint(id), payload.Status, dataPagamento); err != nil {
		http.Error(w, "Erro ao atualizar status da movimentação", http.StatusInternalServerError)
		return
	}

	m, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Movimentação não encontrada após atualização", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}

// Deletar trata DELETE /movimentacoes/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeletarPorID(uint(id)); err != nil {
		http.Error(w, "Movimentação não encontrada", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
