package api

import (
	"encoding/json"
	"time"
)

// CardDocument - документ карточки в облачной коллекции users/{uid}/cards/{id}.
// Ключи совпадают с форматом документа мобильного клиента.
type CardDocument struct {
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"` // обновляется при каждой записи
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Title                 string    `json:"title"`
	Phone                 string    `json:"phone"`
	Email                 string    `json:"email"`
	Website               string    `json:"website"`
	CompanyName           string    `json:"companyName"`
	Department            string    `json:"department"`
	Address               string    `json:"address"`
	CompanyDescription    string    `json:"companyDescription"`
	PersonRoleDescription string    `json:"personRoleDescription"`
	Industry              string    `json:"industry"`
	ImageDataBase64       string    `json:"imageDataBase64,omitempty"` // отсутствует если изображения нет или кодек не справился
}

// CardListResponse - ответ на GET /api/v1/users/{userID}/cards.
// Документы отдаются как есть, разбор выполняет клиент.
type CardListResponse struct {
	Documents []json.RawMessage `json:"documents"`
}
