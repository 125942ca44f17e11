package rest

import "github.com/dmitrijs2005/whattowear/internal/server/models"

// signupRequest limits the password in bytes since bcrypt ignores input
// past 72 bytes.
type signupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=30"`
	Avatar   string `json:"avatar" validate:"required,url"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
}

// signinRequest has no format rules; a bad address simply fails to log in.
type signinRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateMeRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=2,max=30"`
	Avatar *string `json:"avatar" validate:"omitempty,url"`
}

type createItemRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=30"`
	Weather  string `json:"weather" validate:"required,oneof=cold warm hot"`
	ImageURL string `json:"imageUrl" validate:"required,url"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type deleteItemResponse struct {
	Message string               `json:"message"`
	Data    *models.ClothingItem `json:"data"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type healthResponse struct {
	Status string `json:"status"`
}
