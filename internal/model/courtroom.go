package model

// Courtroom courtrooms table; bookings reference it by name
type Courtroom struct {
	CourtroomID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"courtroom_id"`
	Name        string  `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	IsActive    bool    `gorm:"not null;default:true"                          json:"is_active"`
	CreatedBy   *string `gorm:"type:uuid"                                      json:"created_by,omitempty"`
	BaseModel
}

// TableName table name
func (Courtroom) TableName() string { return "courtrooms" }
