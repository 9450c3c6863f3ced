package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-analytics-api/internal/domain"
	"github.com/vfg2006/creator-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/creator-analytics-api/internal/usecases/dashboarding"
	"github.com/vfg2006/creator-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/creator-analytics-api/pkg/log"
	"github.com/vfg2006/creator-analytics-api/pkg/middleware"
)

// GetDashboard retorna o resumo agregado de analytics dos criadores visíveis
// para o usuário autenticado
func GetDashboard(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		timeframe := domain.Timeframe(r.URL.Query().Get("timeframe"))
		if timeframe == "" {
			timeframe = domain.TimeframeWeek
		}

		summary, err := service.GetSummary(userClaims, timeframe)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}

// GetCreatorAnalytics retorna o registro de analytics de um criador específico
func GetCreatorAnalytics(service analyzing.AnalyticsService) http.HandlerFunc {
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

		analytics, err := service.GetCreatorAnalytics(userClaims, creatorID)
		if err != nil {
			handleAnalyticsError(w, err)
			return
		}

		if analytics == nil {
			apiErrors.WriteError(w, apiErrors.ErrAnalyticsNotFound, "Nenhum registro de analytics para o criador", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(analytics)
	}
}

// RefreshAnalytics gera um novo snapshot para o criador, criando o registro de
// analytics quando ainda não houver um
func RefreshAnalytics(service analyzing.AnalyticsService) http.HandlerFunc {
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

		logger := log.ForContext(r.Context())
		logger.WithField("creator_id", creatorID).Info("analytics: atualizando snapshot do criador")

		analytics, err := service.RefreshAnalytics(r.Context(), userClaims, creatorID)
		if err != nil {
			handleAnalyticsError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(analytics)
	}
}

// handleAnalyticsError trata erros do contexto de analytics e retorna a resposta apropriada
func handleAnalyticsError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	var analyticsErr *analyzing.AnalyticsError
	if errors.As(err, &analyticsErr) {
		var details map[string]any
		if analyticsErr.CreatorID != "" {
			details = map[string]any{"creator_id": analyticsErr.CreatorID}
		}
		apiErrors.WriteError(w, analyticsErr.Code, analyticsErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, analyzing.ErrCreatorNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCreatorNotFound, "Criador não encontrado", nil)

	case errors.Is(err, analyzing.ErrForbidden):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Acesso negado ao criador", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar analytics", nil)
	}
}
