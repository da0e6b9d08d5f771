package models

import "time"

// Patient represents a registered patient record.
type Patient struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Phone       string    `bson:"phone" json:"phone"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	DateOfBirth string    `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"` // "YYYY-MM-DD"
	Gender      string    `bson:"gender,omitempty" json:"gender,omitempty"`
	BloodGroup  string    `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
