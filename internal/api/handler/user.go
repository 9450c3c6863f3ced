package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/creator-analytics-api/pkg/apiErrors"
)

type SetUserDisabledRequest struct {
	Disabled bool `json:"disabled"`
}

// ListUsers retorna todos os usuários com a quantidade de criadores de cada um.
// Rota restrita a administradores.
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUsers()
		if err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"users": users,
			"total": len(users),
		})
	}
}

// SetUserDisabled ativa ou desativa o acesso de um usuário.
// Rota restrita a administradores.
func SetUserDisabled(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userIDStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if userIDStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
			return
		}

		userID, err := strconv.Atoi(userIDStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		var req SetUserDisabledRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		user, err := service.SetUserDisabled(userID, req.Disabled)
		if err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(user)
	}
}
