package cli

import (
	"sort"
	"strings"

	"github.com/iudanet/cardconnect/internal/models"
)

// IndustryCount - число карточек одной отрасли
type IndustryCount struct {
	Industry string
	Count    int
}

// IndustryStats группирует карточки по отрасли. Пустая отрасль считается
// как models.FallbackIndustry. Сортировка по убыванию числа, затем по имени.
func IndustryStats(cards []*models.Card) []IndustryCount {
	counts := make(map[string]int)
	for _, card := range cards {
		industry := strings.TrimSpace(card.Industry)
		if industry == "" {
			industry = models.FallbackIndustry
		}
		counts[industry]++
	}

	stats := make([]IndustryCount, 0, len(counts))
	for industry, count := range counts {
		stats = append(stats, IndustryCount{Industry: industry, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Industry < stats[j].Industry
	})
	return stats
}
