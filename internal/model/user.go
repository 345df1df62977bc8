package model

import "fmt"

// Role closed set of account roles
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleLawyer Role = "lawyer"
	RoleClient Role = "client"
)

// ParseRole accepts exactly the three known roles
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleLawyer, RoleClient:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string { return string(r) }

// User users table
type User struct {
	UserID         string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name           string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Username       string  `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	PasswordHash   string  `gorm:"type:varchar(255);not null"                     json:"-"`
	Role           Role    `gorm:"type:varchar(20);not null"                      json:"role"`
	Specialization *string `gorm:"type:varchar(100)"                              json:"specialization,omitempty"`
	Email          *string `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	Phone          *string `gorm:"type:varchar(32)"                               json:"phone,omitempty"`
	BaseModel
}

// TableName table name
func (User) TableName() string { return "users" }

// Contact notification addresses of a user; empty strings mean the channel is unavailable
type Contact struct {
	Name  string
	Email string
	Phone string
}

// Contact extracts the user's notification addresses
func (u *User) Contact() Contact {
	c := Contact{Name: u.Name}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
	return c
}
