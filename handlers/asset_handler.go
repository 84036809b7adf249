package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"assets-backend/models"
	"assets-backend/services"

	"github.com/go-chi/chi/v5"
)

// Padrões de paginação aplicados quando os parâmetros são omitidos ou
// inválidos (política resolvida aqui, na borda do transporte).
const (
	defaultPage = 0
	defaultSize = 10
)

// AssetHandler lida com requisições HTTP relacionadas a ativos.
type AssetHandler struct {
	Service services.AssetLifecycle
}

// NewAssetHandler cria uma nova instância do handler de ativos.
func NewAssetHandler(s services.AssetLifecycle) *AssetHandler {
	return &AssetHandler{Service: s}
}

// ListAssets devolve todos os ativos.
// GET /api/assets
func (h *AssetHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.Service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if assets == nil {
		assets = []models.Asset{}
	}
	writeJSON(w, http.StatusOK, assets)
}

// ListAssetsPaginated devolve uma página de ativos.
// GET /api/assets/paginated?page=0&size=10
func (h *AssetHandler) ListAssetsPaginated(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", defaultPage)
	if page < 0 {
		page = defaultPage
	}
	size := queryInt(r, "size", defaultSize)
	if size < 1 {
		size = defaultSize
	}

	result, err := h.Service.ListPaginated(r.Context(), page, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetAssetByID obtém um ativo pelo ID.
// GET /api/assets/{id}
func (h *AssetHandler) GetAssetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	asset, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

// CreateAsset cria um novo ativo.
// POST /api/assets
func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var asset models.Asset
	if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "json inválido"})
		return
	}

	saved, err := h.Service.Create(r.Context(), asset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

// UpdateAsset atualiza um ativo existente.
// PUT /api/assets/{id}
func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var changes models.Asset
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "json inválido"})
		return
	}

	saved, err := h.Service.Update(r.Context(), id, changes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// DeleteAsset remove um ativo.
// DELETE /api/assets/{id}
func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError traduz os erros tipados do serviço para o status HTTP correto.
// Erros de validação viram um mapa campo→mensagem; os demais, {"error": msg}.
func writeError(w http.ResponseWriter, err error) {
	var notFound services.NotFoundError
	var duplicate services.DuplicateSerialNoError
	var validation services.ValidationError

	switch {
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": notFound.Error()})
	case errors.As(err, &duplicate):
		writeJSON(w, http.StatusConflict, map[string]string{"error": duplicate.Error()})
	case errors.As(err, &validation):
		fields := make(map[string]string, len(validation.Fields))
		for _, f := range validation.Fields {
			fields[f.Field] = f.Message
		}
		writeJSON(w, http.StatusBadRequest, fields)
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "erro interno ao processar a requisição"})
	}
}

// queryInt lê um parâmetro numérico da query, caindo no padrão quando ausente
// ou não numérico.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
