package usecase

import (
	"strings"

	"todo-api/internal/apperror"
	authdomain "todo-api/internal/auth/domain"
	"todo-api/internal/auth/repository"
	"todo-api/pkg/security"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	hasher   *security.Hasher
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, hasher *security.Hasher) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func (u *authUsecase) Register(email, password string) (*authdomain.User, error) {
	// Minimal shape check; full format validation is the binding layer's job.
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperror.Validation("VALIDATION_001", "Invalid email format")
	}

	if err := security.ValidatePassword(password); err != nil {
		return nil, err
	}

	existing, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("CONFLICT_001", "Email already registered")
	}

	passwordHash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate deliberately reports the same failure for unknown email and
// wrong password, but a distinct one for inactive accounts.
func (u *authUsecase) Authenticate(email, password string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Authentication("AUTH_001", "Invalid email or password")
	}

	if !user.IsActive {
		return nil, apperror.Authentication("AUTH_005", "User account is inactive")
	}

	if !u.hasher.Verify(password, user.PasswordHash) {
		return nil, apperror.Authentication("AUTH_001", "Invalid email or password")
	}

	return user, nil
}

func (u *authUsecase) ChangePassword(userID uint, currentPassword, newPassword string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Authentication("AUTH_004", "User not found")
	}

	if !u.hasher.Verify(currentPassword, user.PasswordHash) {
		return nil, apperror.Authentication("AUTH_001", "Current password is incorrect")
	}

	if err := security.ValidatePassword(newPassword); err != nil {
		return nil, err
	}

	passwordHash, err := u.hasher.Hash(newPassword)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = passwordHash
	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) GetByID(userID uint) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("NOT_FOUND_001", "User not found")
	}
	return user, nil
}

func (u *authUsecase) Deactivate(userID uint) error {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("NOT_FOUND_001", "User not found")
	}

	user.IsActive = false
	return u.userRepo.Update(user)
}
