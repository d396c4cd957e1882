package motorista

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler cria um novo handler de motoristas
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// Criar trata POST /motoristas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var m Motorista
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if m.Nome == "" {
		http.Error(w, "O campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Salvar(h.DB, &m); err != nil {
		http.Error(w, "Erro ao salvar motorista (CPF duplicado?)", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(m)
}

// Listar trata GET /motoristas e GET /parceiros/{id}/motoristas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	if idStr, ok := mux.Vars(r)["id"]; ok {
		parceiroID, err := strconv.Atoi(idStr)
		if err != nil {
			http.Error(w, "ID de parceiro inválido", http.StatusBadRequest)
			return
		}
		list, err := h.Repository.ListarPorParceiro(h.DB, uint(parceiroID))
		if err != nil {
			http.Error(w, "Erro ao listar motoristas do parceiro", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(list)
		return
	}

	list, err := h.Repository.Listar(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar motoristas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /motoristas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	m, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Motorista não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}

// Atualizar trata PUT /motoristas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existing, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Motorista não encontrado", http.StatusNotFound)
		return
	}

	var payload Motorista
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	existing.Nome = payload.Nome
	existing.CPF = payload.CPF
	existing.CNH = payload.CNH
	existing.CategoriaCNH = payload.CategoriaCNH
	existing.ValidadeCNH = payload.ValidadeCNH
	existing.Telefone = payload.Telefone
	existing.ParceiroID = payload.ParceiroID

	if err := h.Repository.Atualizar(h.DB, existing); err != nil {
		http.Error(w, "Erro ao atualizar motorista", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existing)
}

// Deletar trata DELETE /motoristas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir motorista", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
