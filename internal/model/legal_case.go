package model

import "github.com/lib/pq"

// LegalCase legal_cases table
type LegalCase struct {
	CaseID     string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"case_id"`
	CaseNumber string         `gorm:"type:varchar(50);not null;uniqueIndex"          json:"case_number"`
	Title      string         `gorm:"type:varchar(200);not null"                     json:"title"`
	Court      string         `gorm:"type:varchar(100);not null"                     json:"court"`
	Date       string         `gorm:"type:varchar(10);not null"                      json:"date"`
	Judge      *string        `gorm:"type:varchar(100)"                              json:"judge,omitempty"`
	LawyerID   string         `gorm:"type:uuid;not null"                             json:"lawyer_id"`
	ClientIDs  pq.StringArray `gorm:"type:uuid[];not null;default:'{}'"              json:"client_ids"`
	BaseModel
}

// TableName table name
func (LegalCase) TableName() string { return "legal_cases" }
