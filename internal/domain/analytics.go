package domain

import "time"

// Limites dos valores gerados para um snapshot de analytics
const (
	MinFollowers      = 5000
	MaxFollowers      = 500000
	MinEngagementRate = 1.0
	MaxEngagementRate = 10.0
	MinHistoryFloor   = 100
)

// Snapshot é um ponto de dados de analytics gerado para um criador
type Snapshot struct {
	Followers      int     `json:"followers"`
	EngagementRate float64 `json:"engagement_rate"`
	AvgLikes       int     `json:"avg_likes"`
	AvgComments    int     `json:"avg_comments"`
}

// HistoricalEntry é uma medição diária da série histórica de um criador
type HistoricalEntry struct {
	Date           time.Time `json:"date"`
	Followers      int       `json:"followers"`
	EngagementRate float64   `json:"engagement_rate"`
}

// AnalyticsRecord é o registro persistido de analytics de um criador (1:1)
type AnalyticsRecord struct {
	ID             int               `json:"id"`
	CreatorID      string            `json:"creator_id"`
	Followers      int               `json:"followers"`
	EngagementRate float64           `json:"engagement_rate"`
	AvgLikes       int               `json:"avg_likes"`
	AvgComments    int               `json:"avg_comments"`
	Historical     []HistoricalEntry `json:"historical"`
	LastUpdated    time.Time         `json:"last_updated"`
}

// AnalyticsResponse é o registro acompanhado da identidade do criador
type AnalyticsResponse struct {
	*AnalyticsRecord
	Creator *CreatorRef `json:"creator"`
}

// Timeframe define o recorte temporal do dashboard
type Timeframe string

const (
	TimeframeDay   Timeframe = "day"
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
	TimeframeYear  Timeframe = "year"
)

// DataPoints retorna a quantidade de pontos das séries sintéticas do dashboard
func (t Timeframe) DataPoints() int {
	switch t {
	case TimeframeDay:
		return 24
	case TimeframeMonth:
		return 30
	case TimeframeYear:
		return 12
	default:
		return 7
	}
}

// TopCreator é uma entrada do ranking de criadores do dashboard
type TopCreator struct {
	Name           string  `json:"name"`
	Username       string  `json:"username"`
	Followers      int     `json:"followers"`
	EngagementRate float64 `json:"engagement"`
}

// DashboardSummary agrega os analytics visíveis para o usuário autenticado
type DashboardSummary struct {
	TotalCreators        int              `json:"total_creators"`
	TotalFollowers       int              `json:"total_followers"`
	AvgEngagement        float64          `json:"avg_engagement"`
	PlatformDistribution map[Platform]int `json:"platform_distribution"`
	TopCreators          []*TopCreator    `json:"top_creators"`
	FollowersGrowth      []float64        `json:"followers_growth"`
	EngagementHistory    []float64        `json:"engagement_history"`
	CreatorsChange       string           `json:"creators_change"`
	FollowersChange      string           `json:"followers_change"`
	EngagementChange     string           `json:"engagement_change"`
}
