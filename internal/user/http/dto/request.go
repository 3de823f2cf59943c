// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	userDomain "github.com/allisson/accounts/internal/user/domain"
	appValidation "github.com/allisson/accounts/internal/validation"
)

// RegisterUserRequest represents the API request for user registration.
type RegisterUserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AvatarURL string `json:"avatar_url"`
}

// Validate validates the RegisterUserRequest using the jellydator/validation library.
// This provides comprehensive validation including:
// - Required field checks
// - Email format validation
// - Password strength requirements (min 8 chars, uppercase, lowercase, number, special char)
func (r *RegisterUserRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
			appValidation.NoWhitespace,
			validation.Length(1, 150).Error("username must be between 1 and 150 characters"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:      8,
				RequireUpper:   true,
				RequireLower:   true,
				RequireNumber:  true,
				RequireSpecial: true,
			},
		),
		validation.Field(&r.FirstName,
			validation.Length(0, 150).Error("first_name must be at most 150 characters"),
		),
		validation.Field(&r.LastName,
			validation.Length(0, 150).Error("last_name must be at most 150 characters"),
		),
		validation.Field(&r.AvatarURL,
			validation.Length(0, 500).Error("avatar_url must be at most 500 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// ToCreateUserInput converts a RegisterUserRequest DTO to a CreateUserInput use case input.
func ToCreateUserInput(req RegisterUserRequest) *userDomain.CreateUserInput {
	return &userDomain.CreateUserInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		AvatarURL: req.AvatarURL,
	}
}

// UpdateUserRequest represents the API request for profile updates.
// All fields are optional; omitted fields are left unchanged.
// Email, password, and active status cannot be changed through this request.
type UpdateUserRequest struct {
	Username  *string `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	AvatarURL *string `json:"avatar_url"`
}

// Validate validates the UpdateUserRequest. Nil fields are skipped; a field
// that is present must still satisfy its rules.
func (r *UpdateUserRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.NilOrNotEmpty.Error("username must not be empty"),
			appValidation.NotBlank,
			appValidation.NoWhitespace,
			validation.Length(1, 150).Error("username must be between 1 and 150 characters"),
		),
		validation.Field(&r.FirstName,
			validation.Length(0, 150).Error("first_name must be at most 150 characters"),
		),
		validation.Field(&r.LastName,
			validation.Length(0, 150).Error("last_name must be at most 150 characters"),
		),
		validation.Field(&r.AvatarURL,
			validation.Length(0, 500).Error("avatar_url must be at most 500 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// ToUpdateUserInput converts an UpdateUserRequest DTO to an UpdateUserInput use case input.
func ToUpdateUserInput(req UpdateUserRequest) *userDomain.UpdateUserInput {
	return &userDomain.UpdateUserInput{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		AvatarURL: req.AvatarURL,
	}
}
