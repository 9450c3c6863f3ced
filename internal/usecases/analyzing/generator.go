package analyzing

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/vfg2006/creator-analytics-api/internal/domain"
	"github.com/vfg2006/creator-analytics-api/pkg/utils"
)

// Generator produz snapshots e séries históricas pseudoaleatórias de
// analytics. A fonte de aleatoriedade é injetada para permitir execuções
// determinísticas nos testes.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewDefaultGenerator cria um gerador com semente baseada no relógio
func NewDefaultGenerator() *Generator {
	return NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// GenerateSnapshot produz um ponto de dados plausível de analytics.
// Seguidores entre 5 mil e 500 mil, engajamento entre 1% e 10%.
func (g *Generator) GenerateSnapshot() *domain.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	followers := g.rng.Intn(domain.MaxFollowers-domain.MinFollowers+1) + domain.MinFollowers
	engagementRate := utils.RoundWithTwoDecimalPlace(
		g.rng.Float64()*(domain.MaxEngagementRate-domain.MinEngagementRate) + domain.MinEngagementRate,
	)

	avgLikes := int(math.Round(float64(followers) * engagementRate / 100))
	avgComments := int(math.Round(float64(avgLikes) * 0.1))

	return &domain.Snapshot{
		Followers:      followers,
		EngagementRate: engagementRate,
		AvgLikes:       avgLikes,
		AvgComments:    avgComments,
	}
}

// GenerateHistory produz uma série diária de `days` entradas em ordem
// cronológica crescente, terminando no dia atual. Os seguidores seguem um
// passeio aleatório limitado: a variação diária fica em até 1% do valor
// corrente para cada lado e o piso é 100.
func (g *Generator) GenerateHistory(days int) ([]domain.HistoricalEntry, error) {
	if days < 0 {
		return nil, ErrInvalidDays
	}

	entries := make([]domain.HistoricalEntry, 0, days)
	if days == 0 {
		return entries, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	base := g.rng.Intn(domain.MaxFollowers-domain.MinFollowers+1) + domain.MinFollowers

	for i := days - 1; i >= 0; i-- {
		change := int(math.Floor((g.rng.Float64() - 0.5) * float64(base) * 0.02))
		base += change
		if base < domain.MinHistoryFloor {
			base = domain.MinHistoryFloor
		}

		engagementRate := utils.RoundWithTwoDecimalPlace(
			g.rng.Float64()*(domain.MaxEngagementRate-domain.MinEngagementRate) + domain.MinEngagementRate,
		)

		entries = append(entries, domain.HistoricalEntry{
			Date:           now.Add(-time.Duration(i) * 24 * time.Hour),
			Followers:      base,
			EngagementRate: engagementRate,
		})
	}

	return entries, nil
}

// Jitter retorna o valor base com uma variação aleatória de até ±20%,
// usado apenas nas séries ilustrativas do dashboard
func (g *Generator) Jitter(base float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return base * (0.8 + g.rng.Float64()*0.4)
}
