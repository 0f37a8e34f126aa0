package request

import (
	"turfbook/internal/domain/user"
)

type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r SignupRequest) ToDomain() (user.Credentials, error) {
	return credentialsFrom(r.Email, r.Password)
}

func (r LoginRequest) ToDomain() (user.Credentials, error) {
	return credentialsFrom(r.Email, r.Password)
}

func credentialsFrom(rawEmail, rawPassword string) (user.Credentials, error) {
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return user.Credentials{}, err
	}
	password, err := user.NewPassword(rawPassword)
	if err != nil {
		return user.Credentials{}, err
	}
	return user.NewCredentials(email, password), nil
}
