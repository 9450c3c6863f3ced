package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-analytics-api/internal/domain"
	"github.com/vfg2006/creator-analytics-api/internal/usecases/creator"
	"github.com/vfg2006/creator-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/creator-analytics-api/pkg/middleware"
)

type GetCreatorResponse struct {
	Creator   *domain.Creator         `json:"creator"`
	Analytics *domain.AnalyticsRecord `json:"analytics,omitempty"`
}

// CreateCreator cadastra um novo criador para o usuário autenticado
func CreateCreator(service creator.CreatorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.CreateCreatorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateCreator(r.Context(), userClaims, &req)
		if err != nil {
			handleCreatorError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// ListCreators lista os criadores visíveis para o usuário autenticado, com
// paginação. Administradores podem filtrar por dono através de ?user_id.
func ListCreators(service creator.CreatorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		query := r.URL.Query()

		var ownerFilter *int
		if raw := query.Get("user_id"); raw != "" {
			ownerID, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro user_id inválido", nil)
				return
			}
			ownerFilter = &ownerID
		}

		page := parseIntParam(query.Get("page"), 1)
		limit := parseIntParam(query.Get("limit"), 0)

		result, err := service.ListCreators(userClaims, ownerFilter, page, limit)
		if err != nil {
			handleCreatorError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// GetCreator retorna um criador e, quando existente, seu registro de analytics
func GetCreator(service creator.CreatorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		creatorID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if creatorID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do criador não fornecido", nil)
			return
		}

		found, analytics, err := service.GetCreator(userClaims, creatorID)
		if err != nil {
			handleCreatorError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(GetCreatorResponse{
			Creator:   found,
			Analytics: analytics,
		})
	}
}

// UpdateCreator altera os dados cadastrais de um criador
func UpdateCreator(service creator.CreatorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		creatorID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if creatorID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do criador não fornecido", nil)
			return
		}

		var req domain.UpdateCreatorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		updated, err := service.UpdateCreator(userClaims, creatorID, &req)
		if err != nil {
			handleCreatorError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

// DeleteCreator remove um criador e todos os seus dados de analytics
func DeleteCreator(service creator.CreatorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		creatorID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if creatorID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do criador não fornecido", nil)
			return
		}

		if err := service.DeleteCreator(userClaims, creatorID); err != nil {
			handleCreatorError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleCreatorError trata erros do contexto de criadores e retorna a resposta apropriada
func handleCreatorError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	var creatorErr *creator.CreatorError
	if errors.As(err, &creatorErr) {
		var details map[string]any
		if creatorErr.CreatorID != "" {
			details = map[string]any{"creator_id": creatorErr.CreatorID}
		}
		apiErrors.WriteError(w, creatorErr.Code, creatorErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, creator.ErrCreatorNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCreatorNotFound, "Criador não encontrado", nil)

	case errors.Is(err, creator.ErrForbidden):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Acesso negado ao criador", nil)

	case errors.Is(err, creator.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome, plataforma e username são obrigatórios", nil)

	case errors.Is(err, creator.ErrInvalidPlatform):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPlatform, "Plataforma não suportada", nil)

	case errors.Is(err, creator.ErrCreatorAlreadyExists):
		apiErrors.WriteError(w, apiErrors.ErrCreatorAlreadyExists, "Username já cadastrado para este usuário", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar criador", nil)
	}
}

// parseIntParam converte um parâmetro numérico de query string, devolvendo o
// valor padrão quando ausente ou inválido
func parseIntParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
