package handler

import (
	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"
)

type loginForm struct {
	Email    string `form:"email"`
	Username string `form:"username"`
	Password string `form:"password"`
	Remember string `form:"remember"`
}

func (f loginForm) identifier(role domain.Role) string {
	if role.IdentifierField() == "username" {
		return f.Username
	}
	return f.Email
}

type registerForm struct {
	Name            string  `form:"name" validate:"max=100"`
	Surname         string  `form:"surname" validate:"max=100"`
	Email           string  `form:"email" validate:"omitempty,email"`
	Username        string  `form:"username" validate:"max=50"`
	Password        string  `form:"password" validate:"required"`
	ConfirmPassword string  `form:"confirm_password"`
	Phone           string  `form:"phone" validate:"max=30"`
	Trade           string  `form:"trade" validate:"max=100"`
	Rate            float64 `form:"rate" validate:"gte=0"`
	SortCode        string  `form:"sort_code" validate:"max=20"`
	AccountNumber   string  `form:"account_number" validate:"max=20"`
	Remember        string  `form:"remember"`
}

func (f registerForm) input(role domain.Role) ports.RegisterInput {
	return ports.RegisterInput{
		Role:            role,
		Name:            f.Name,
		Surname:         f.Surname,
		Email:           f.Email,
		Username:        f.Username,
		Password:        f.Password,
		ConfirmPassword: f.ConfirmPassword,
		Phone:           f.Phone,
		Trade:           f.Trade,
		Rate:            f.Rate,
		SortCode:        f.SortCode,
		AccountNumber:   f.AccountNumber,
		Remember:        checked(f.Remember),
	}
}

type updateProfileForm struct {
	Name        string `form:"name" validate:"max=100"`
	Surname     string `form:"surname" validate:"max=100"`
	Email       string `form:"email" validate:"omitempty,email"`
	DateOfBirth string `form:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	City        string `form:"city" validate:"max=100"`
	Country     string `form:"country" validate:"max=100"`
	Bio         string `form:"bio" validate:"max=2000"`
}

type changePasswordForm struct {
	OldPassword     string `form:"old_password"`
	NewPassword     string `form:"new_password"`
	ConfirmPassword string `form:"confirm_password"`
}

type deleteAccountForm struct {
	Password string `form:"password"`
}

type postJobForm struct {
	Title       string  `form:"title" validate:"required,max=200"`
	Location    string  `form:"location" validate:"max=200"`
	Description string  `form:"description" validate:"max=2000"`
	Budget      float64 `form:"budget" validate:"gte=0"`
}

type reserveJobForm struct {
	JobID string `form:"job_id"`
}

type shelfAddForm struct {
	Title  string `form:"title" validate:"required,max=300"`
	Author string `form:"author" validate:"max=200"`
}

type shelfRemoveForm struct {
	EntryID string `form:"entry_id"`
}
