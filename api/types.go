package api

import "github.com/yeremiapane/stellar-client/models"

// envelope is the common response wrapper: a success flag plus an optional
// message, with payload fields inlined alongside.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ingredientsResponse struct {
	envelope
	Data []models.Ingredient `json:"data"`
}

type feedResponse struct {
	envelope
	Orders     []models.Order `json:"orders"`
	Total      int            `json:"total"`
	TotalToday int            `json:"totalToday"`
}

type ordersResponse struct {
	envelope
	Orders []models.Order `json:"orders"`
}

type orderResponse struct {
	envelope
	Name  string       `json:"name"`
	Order models.Order `json:"order"`
}

type authResponse struct {
	envelope
	User         models.User `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

func (r authResponse) session() models.AuthSession {
	return models.AuthSession{
		User:         r.User,
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
	}
}

type userResponse struct {
	envelope
	User models.User `json:"user"`
}

type refreshResponse struct {
	envelope
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type tokenRequest struct {
	Token string `json:"token"`
}

type createOrderRequest struct {
	Ingredients []string `json:"ingredients"`
}
