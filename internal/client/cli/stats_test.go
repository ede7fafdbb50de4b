package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cardconnect/internal/client/storage"
	"github.com/iudanet/cardconnect/internal/models"
)

func TestIndustryStats(t *testing.T) {
	tests := []struct {
		name     string
		cards    []*models.Card
		expected []IndustryCount
	}{
		{
			name:     "no cards",
			expected: []IndustryCount{},
		},
		{
			name: "blank industry counted as unknown",
			cards: []*models.Card{
				{Industry: ""},
				{Industry: "  "},
				{Industry: "Unknown"},
				{Industry: "Software"},
			},
			expected: []IndustryCount{
				{Industry: "Unknown", Count: 3},
				{Industry: "Software", Count: 1},
			},
		},
		{
			name: "sorted by count then name",
			cards: []*models.Card{
				{Industry: "Retail"},
				{Industry: "Banking"},
				{Industry: "Software"},
				{Industry: "Software"},
			},
			expected: []IndustryCount{
				{Industry: "Software", Count: 2},
				{Industry: "Banking", Count: 1},
				{Industry: "Retail", Count: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IndustryStats(tt.cards))
		})
	}
}

func TestCli_runStats(t *testing.T) {
	mockIO, out := newTestIO()
	cards := &storage.CardStorageMock{
		ListCardSummariesFunc: func(ctx context.Context) ([]*models.Card, error) {
			return []*models.Card{{Industry: "Software"}, {Industry: "Software"}, {}}, nil
		},
	}
	c := newTestCli(Deps{IO: mockIO, Cards: cards})

	require.NoError(t, c.runStats(context.Background()))

	got := lines(out.String())
	require.Len(t, got, 3)
	assert.Contains(t, got[0], "INDUSTRY")
	assert.Contains(t, got[1], "Software")
	assert.Contains(t, got[1], "2")
	assert.Contains(t, got[2], "Unknown")
}

func TestCli_runStats_Empty(t *testing.T) {
	mockIO, out := newTestIO()
	cards := &storage.CardStorageMock{
		ListCardSummariesFunc: func(ctx context.Context) ([]*models.Card, error) {
			return nil, nil
		},
	}
	c := newTestCli(Deps{IO: mockIO, Cards: cards})

	require.NoError(t, c.runStats(context.Background()))
	assert.Equal(t, "No cards yet.\n", out.String())
}
