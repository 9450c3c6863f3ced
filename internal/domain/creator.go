package domain

import "time"

// Platform é a rede social monitorada de um criador de conteúdo
type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformYouTube   Platform = "YouTube"
	PlatformX         Platform = "X"
)

// IsValid verifica se a plataforma informada é suportada
func (p Platform) IsValid() bool {
	switch p {
	case PlatformInstagram, PlatformYouTube, PlatformX:
		return true
	}
	return false
}

type Creator struct {
	ID              string    `json:"id"`
	UserID          int       `json:"user_id"`
	Name            string    `json:"name"`
	Platform        Platform  `json:"platform"`
	Username        string    `json:"username"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreatorRef é a projeção somente-leitura da identidade do criador
// anexada às respostas de analytics
type CreatorRef struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Platform        Platform `json:"platform"`
	Username        string   `json:"username"`
	ProfileImageURL *string  `json:"profile_image_url,omitempty"`
}

// Ref retorna a projeção de identidade do criador
func (c *Creator) Ref() *CreatorRef {
	return &CreatorRef{
		ID:              c.ID,
		Name:            c.Name,
		Platform:        c.Platform,
		Username:        c.Username,
		ProfileImageURL: c.ProfileImageURL,
	}
}

type CreateCreatorRequest struct {
	Name            string   `json:"name"`
	Platform        Platform `json:"platform"`
	Username        string   `json:"username"`
	ProfileImageURL *string  `json:"profile_image_url"`
}

type UpdateCreatorRequest struct {
	Name            *string   `json:"name"`
	Platform        *Platform `json:"platform"`
	Username        *string   `json:"username"`
	ProfileImageURL *string   `json:"profile_image_url"`
}

// ListCreatorsFilter define o escopo e a paginação da listagem de criadores
type ListCreatorsFilter struct {
	UserID *int
	Page   int
	Limit  int
}

type CreatorPage struct {
	Creators []*Creator `json:"creators"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	Limit    int        `json:"limit"`
}
