package models

import "time"

// Session is a client-identified conversation thread. The id is an opaque
// token generated by the client; rows are created implicitly on the first
// message and never deleted.
type Session struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	UpdatedAt time.Time `gorm:"column:updated_at;index" json:"updated_at"`
}

func (Session) TableName() string { return "sessions" }
