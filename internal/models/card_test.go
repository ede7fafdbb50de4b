package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFallbackEnrichment(t *testing.T) {
	e := FallbackEnrichment()
	assert.Equal(t, "Failed to enrich data.", e.CompanyDescription)
	assert.Equal(t, "Failed to enrich data.", e.RoleDescription)
	assert.Equal(t, "Unknown", e.Industry)
}

func TestNewCardFromDraft(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	draft := CardDraft{
		Name:        "John Smith",
		Title:       "CTO",
		Phone:       "+1 555 0100",
		Email:       "john@acme.test",
		Website:     "acme.test",
		CompanyName: "Acme Corp",
		Department:  "R&D",
		Address:     "1 Main St",
	}
	enrichment := Enrichment{CompanyDescription: "Makes anvils", RoleDescription: "Runs tech", Industry: "Manufacturing"}

	card := NewCardFromDraft("id-1", now, draft, enrichment)

	assert.Equal(t, "id-1", card.ID)
	assert.Equal(t, now, card.CreatedAt)
	assert.Equal(t, draft, card.Draft())
	assert.Equal(t, "Makes anvils", card.CompanyDescription)
	assert.Equal(t, "Runs tech", card.PersonRoleDescription)
	assert.Equal(t, "Manufacturing", card.Industry)
	assert.False(t, card.IsSyncedToCloud)
}

func TestCard_ApplyEnrichmentKeepsSyncFlag(t *testing.T) {
	card := &Card{ID: "id-1", IsSyncedToCloud: true}
	card.ApplyEnrichment(FallbackEnrichment())

	assert.True(t, card.IsSyncedToCloud)
	assert.Equal(t, FallbackIndustry, card.Industry)
}

func TestCard_IndustryOrUnknown(t *testing.T) {
	tests := []struct {
		name     string
		industry string
		want     string
	}{
		{name: "blank", industry: "", want: "Unknown"},
		{name: "set", industry: "Finance", want: "Finance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Card{Industry: tt.industry}
			assert.Equal(t, tt.want, c.IndustryOrUnknown())
		})
	}
}
