// internal/trajeto/handler.go
package trajeto

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler cria um novo handler de trajetos
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

type trajetoDTO struct {
	Numero      int     `json:"numero"`
	Origem      string  `json:"origem"`
	Destino     string  `json:"destino"`
	ValorBase   float64 `json:"valorBase"`
	DataColeta  string  `json:"dataColeta"`  // RFC3339, opcional
	DataEntrega string  `json:"dataEntrega"` // RFC3339, opcional
	ParceiroID  *uint   `json:"parceiroId"`
	MotoristaID *uint   `json:"motoristaId"`
	VeiculoID   *uint   `json:"veiculoId"`
	Reboques    []uint  `json:"reboques"`
}

func parseDataOpcional(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

// Criar trata POST /cargas/{id}/trajetos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	cargaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de carga inválido", http.StatusBadRequest)
		return
	}

	var dto trajetoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.Numero < 1 {
		http.Error(w, "O campo 'numero' deve ser maior ou igual a 1", http.StatusBadRequest)
		return
	}
	if dto.ValorBase < 0 {
		http.Error(w, "O campo 'valorBase' não pode ser negativo", http.StatusBadRequest)
		return
	}
	if dto.Reboques == nil {
		dto.Reboques = []uint{}
	}

	t := Trajeto{
		CargaID:     uint(cargaID),
		Numero:      dto.Numero,
		Origem:      dto.Origem,
		Destino:     dto.Destino,
		ValorBase:   dto.ValorBase,
		DataColeta:  parseDataOpcional(dto.DataColeta),
		DataEntrega: parseDataOpcional(dto.DataEntrega),
		ParceiroID:  dto.ParceiroID,
		MotoristaID: dto.MotoristaID,
		VeiculoID:   dto.VeiculoID,
		Reboques:    dto.Reboques,
	}

	if err := h.Repository.Salvar(h.DB, &t); err != nil {
		http.Error(w, "Erro ao salvar trajeto (número duplicado?)", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(t)
}

// ListarPorCarga trata GET /cargas/{id}/trajetos
func (h *Handler) ListarPorCarga(w http.ResponseWriter, r *http.Request) {
	cargaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de carga inválido", http.StatusBadRequest)
		return
	}

	list, err := h.Repository.ListarPorCarga(h.DB, uint(cargaID))
	if err != nil {
		http.Error(w, "Erro ao listar trajetos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// BuscarPorNumero trata GET /cargas/{id}/trajetos/{numero}
func (h *Handler) BuscarPorNumero(w http.ResponseWriter, r *http.Request) {
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

	t, err := h.Repository.BuscarPorNumero(h.DB, uint(cargaID), numero)
	if err != nil {
		http.Error(w, "Trajeto não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(t)
}

// Atualizar trata PUT /cargas/{id}/trajetos/{numero}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
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

	existing, err := h.Repository.BuscarPorNumero(h.DB, uint(cargaID), numero)
	if err != nil {
		http.Error(w, "Trajeto não encontrado", http.StatusNotFound)
		return
	}

	var dto trajetoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.ValorBase < 0 {
		http.Error(w, "O campo 'valorBase' não pode ser negativo", http.StatusBadRequest)
		return
	}
	if dto.Reboques == nil {
		dto.Reboques = []uint{}
	}

	existing.Origem = dto.Origem
	existing.Destino = dto.Destino
	existing.ValorBase = dto.ValorBase
	existing.DataColeta = parseDataOpcional(dto.DataColeta)
	existing.DataEntrega = parseDataOpcional(dto.DataEntrega)
	existing.ParceiroID = dto.ParceiroID
	existing.MotoristaID = dto.MotoristaID
	existing.VeiculoID = dto.VeiculoID
	existing.Reboques = dto.Reboques

	if err := h.Repository.Atualizar(h.DB, existing); err != nil {
		http.Error(w, "Erro ao atualizar trajeto", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existing)
}

// Deletar trata DELETE /cargas/{id}/trajetos/{numero}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Repository.Deletar(h.DB, uint(cargaID), numero); err != nil {
		http.Error(w, "Trajeto não encontrado", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
