package models

import "time"

// Fallback values used when enrichment fails.
const (
	FallbackDescription = "Failed to enrich data."
	FallbackIndustry    = "Unknown"
)

// Card представляет визитную карточку, сохраненную на устройстве.
// ID неизменяем после создания и служит ключом документа в облаке.
type Card struct {
	CreatedAt             time.Time `json:"created_at"`              // время создания, не меняется
	ID                    string    `json:"id"`                      // UUID карточки
	Name                  string    `json:"name"`                    // имя контакта
	Title                 string    `json:"title"`                   // должность
	Phone                 string    `json:"phone"`                   // телефон
	Email                 string    `json:"email"`                   // email
	Website               string    `json:"website"`                 // сайт
	CompanyName           string    `json:"company_name"`            // компания
	Department            string    `json:"department"`              // отдел
	Address               string    `json:"address"`                 // адрес
	CompanyDescription    string    `json:"company_description"`     // описание компании (может быть markdown)
	PersonRoleDescription string    `json:"person_role_description"` // описание роли (может быть markdown)
	Industry              string    `json:"industry"`                // короткий тег отрасли
	ImageData             []byte    `json:"-"`                       // исходное изображение, хранится отдельно от JSON
	IsSyncedToCloud       bool      `json:"is_synced_to_cloud"`      // false пока не подтверждена запись в облако
}

// CardDraft - результат распознавания одной карточки на изображении.
// Живет только в пайплайне ингеста и нигде не сохраняется.
type CardDraft struct {
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Website     string `json:"website,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Department  string `json:"department,omitempty"`
	Address     string `json:"address,omitempty"`
}

// Enrichment содержит сгенерированные описания для карточки
type Enrichment struct {
	CompanyDescription string `json:"companyDescription"`
	RoleDescription    string `json:"roleDescription"`
	Industry           string `json:"industry"`
}

// FallbackEnrichment returns the placeholder enrichment stored when the model call fails.
func FallbackEnrichment() Enrichment {
	return Enrichment{
		CompanyDescription: FallbackDescription,
		RoleDescription:    FallbackDescription,
		Industry:           FallbackIndustry,
	}
}

// NewCardFromDraft builds an unsynced card from a draft and its enrichment.
func NewCardFromDraft(id string, createdAt time.Time, draft CardDraft, enrichment Enrichment) *Card {
	return &Card{
		ID:                    id,
		CreatedAt:             createdAt,
		Name:                  draft.Name,
		Title:                 draft.Title,
		Phone:                 draft.Phone,
		Email:                 draft.Email,
		Website:               draft.Website,
		CompanyName:           draft.CompanyName,
		Department:            draft.Department,
		Address:               draft.Address,
		CompanyDescription:    enrichment.CompanyDescription,
		PersonRoleDescription: enrichment.RoleDescription,
		Industry:              enrichment.Industry,
	}
}

// ApplyEnrichment overwrites the generated fields. The sync flag is left as is.
func (c *Card) ApplyEnrichment(e Enrichment) {
	c.CompanyDescription = e.CompanyDescription
	c.PersonRoleDescription = e.RoleDescription
	c.Industry = e.Industry
}

// Draft returns the extracted part of the card, used to re-run enrichment.
func (c *Card) Draft() CardDraft {
	return CardDraft{
		Name:        c.Name,
		Title:       c.Title,
		Phone:       c.Phone,
		Email:       c.Email,
		Website:     c.Website,
		CompanyName: c.CompanyName,
		Department:  c.Department,
		Address:     c.Address,
	}
}

// IndustryOrUnknown returns the industry tag or "Unknown" when it is blank.
func (c *Card) IndustryOrUnknown() string {
	if c.Industry == "" {
		return FallbackIndustry
	}
	return c.Industry
}
