package dto

// CreditsResponse - баланс плюс публичный профиль (GET /api/user/credits).
type CreditsResponse struct {
	Credits int         `json:"credits"`
	User    ProfileUser `json:"user"`
}

type ProfileUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Credits int    `json:"credits"`
}
