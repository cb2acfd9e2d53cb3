package domain

import "time"

// Todo represents a single to-do item owned by a user.
// Invariant: CompletedAt is set if and only if IsCompleted is true.
type Todo struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"index;not null"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Description string     `json:"description,omitempty" gorm:"size:2000"`
	IsCompleted bool       `json:"is_completed" gorm:"default:false;not null"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
