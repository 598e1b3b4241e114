package models

import (
	"strconv"

	"pot-portal/core/output"
)

// User is the profile of the logged-in account.
type User struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Email       string `json:"email" yaml:"email"`
	SteamID     string `json:"steamId" yaml:"steamId"`
	ProfileName string `json:"profileName" yaml:"profileName"`
}

// Table implements output.Tabular.
func (u User) Table() output.Table {
	return output.Table{
		Headers: []string{"field", "value"},
		Rows: [][]string{
			{"id", strconv.Itoa(u.ID)},
			{"name", u.Name},
			{"email", u.Email},
			{"profile name", u.ProfileName},
			{"steam id", u.SteamID},
		},
	}
}

// LoginResponse is returned by login and signup.
type LoginResponse struct {
	Token string `json:"token"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest creates an account.
type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	ProfileName string `json:"profileName"`
}

// PasswordResetRequest asks for a reset mail.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordReset completes a reset with the mailed token.
type PasswordReset struct {
	Token    string `json:"token"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// ProfileUpdate changes the public profile name.
type ProfileUpdate struct {
	ProfileName string `json:"profileName"`
}
