// internal/reversao/handler.go
package reversao

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Handler expõe o registro de ações desfazíveis.
type Handler struct {
	Registro *Registro
}

// NewHandler cria um novo Handler
func NewHandler(registro *Registro) *Handler {
	return &Handler{Registro: registro}
}

// Ultima trata GET /acoes/ultima
func (h *Handler) Ultima(w http.ResponseWriter, r *http.Request) {
	a, ok := h.Registro.Ultima()
	if !ok {
		http.Error(w, "Nenhuma ação registrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}

// DesfazerUltima trata POST /acoes/desfazer
func (h *Handler) DesfazerUltima(w http.ResponseWriter, r *http.Request) {
	a, err := h.Registro.DesfazerUltima()
	if err != nil {
		if errors.Is(err, ErrNadaParaDesfazer) {
			http.Error(w, "Nenhuma ação para desfazer", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao desfazer ação", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}
