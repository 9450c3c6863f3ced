package analyzing

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-analytics-api/internal/domain"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

func TestGenerator_GenerateSnapshot(t *testing.T) {
	generator := newTestGenerator(42)

	for i := 0; i < 200; i++ {
		snapshot := generator.GenerateSnapshot()

		assert.GreaterOrEqual(t, snapshot.Followers, domain.MinFollowers)
		assert.LessOrEqual(t, snapshot.Followers, domain.MaxFollowers)

		assert.GreaterOrEqual(t, snapshot.EngagementRate, domain.MinEngagementRate)
		assert.Less(t, snapshot.EngagementRate, domain.MaxEngagementRate)

		// O engajamento é arredondado para duas casas decimais
		assert.InDelta(t, snapshot.EngagementRate, math.Round(snapshot.EngagementRate*100)/100, 1e-9)

		// Likes e comentários são derivados dos seguidores e do engajamento
		expectedLikes := int(math.Round(float64(snapshot.Followers) * snapshot.EngagementRate / 100))
		assert.Equal(t, expectedLikes, snapshot.AvgLikes)

		expectedComments := int(math.Round(float64(snapshot.AvgLikes) * 0.1))
		assert.Equal(t, expectedComments, snapshot.AvgComments)
	}
}

func TestGenerator_GenerateSnapshot_Deterministico(t *testing.T) {
	first := newTestGenerator(7).GenerateSnapshot()
	second := newTestGenerator(7).GenerateSnapshot()

	assert.Equal(t, first, second)
}

func TestGenerator_GenerateHistory(t *testing.T) {
	tests := []struct {
		name    string
		days    int
		wantErr error
		wantLen int
	}{
		{
			name:    "Série de 30 dias",
			days:    30,
			wantLen: 30,
		},
		{
			name:    "Série de um único dia",
			days:    1,
			wantLen: 1,
		},
		{
			name:    "Zero dias retorna série vazia",
			days:    0,
			wantLen: 0,
		},
		{
			name:    "Dias negativos retornam erro",
			days:    -1,
			wantErr: ErrInvalidDays,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := newTestGenerator(99)

			entries, err := generator.GenerateHistory(tt.days)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, entries, tt.wantLen)

			for i, entry := range entries {
				assert.GreaterOrEqual(t, entry.Followers, domain.MinHistoryFloor)

				assert.GreaterOrEqual(t, entry.EngagementRate, domain.MinEngagementRate)
				assert.Less(t, entry.EngagementRate, domain.MaxEngagementRate)

				// Datas em ordem cronológica crescente, com um dia de intervalo
				if i > 0 {
					assert.True(t, entry.Date.After(entries[i-1].Date),
						"datas devem ser crescentes")
					assert.InDelta(t, 24.0, entry.Date.Sub(entries[i-1].Date).Hours(), 0.01)
				}
			}
		})
	}
}

func TestGenerator_GenerateHistory_UltimaEntradaEhHoje(t *testing.T) {
	generator := newTestGenerator(1)

	entries, err := generator.GenerateHistory(7)

	assert.NoError(t, err)
	assert.Len(t, entries, 7)

	// A última entrada corresponde ao dia atual
	last := entries[len(entries)-1]
	assert.WithinDuration(t, time.Now(), last.Date, time.Minute)
}

func TestGenerator_Jitter(t *testing.T) {
	generator := newTestGenerator(5)

	base := 1000.0
	for i := 0; i < 100; i++ {
		value := generator.Jitter(base)

		assert.GreaterOrEqual(t, value, base*0.8)
		assert.Less(t, value, base*1.2)
	}
}
