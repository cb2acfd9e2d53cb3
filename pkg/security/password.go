package security

import (
	"unicode"

	"todo-api/internal/apperror"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies passwords using bcrypt with a configurable cost.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Verify reports whether password matches hash. A malformed hash verifies
// as false rather than surfacing an error.
func (h *Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

const specialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

// ValidatePassword enforces the password strength policy: at least 8
// characters with an uppercase letter, a lowercase letter, a digit and a
// special character. The first failing requirement is reported.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return apperror.Validation("VALIDATION_002", "Password must be at least 8 characters")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
		for _, s := range specialChars {
			if c == s {
				hasSpecial = true
			}
		}
	}

	if !hasUpper {
		return apperror.Validation("VALIDATION_002", "Password must contain uppercase letter")
	}
	if !hasLower {
		return apperror.Validation("VALIDATION_002", "Password must contain lowercase letter")
	}
	if !hasDigit {
		return apperror.Validation("VALIDATION_002", "Password must contain digit")
	}
	if !hasSpecial {
		return apperror.Validation("VALIDATION_002", "Password must contain special character")
	}

	return nil
}
