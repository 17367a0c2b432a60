package domain

// SupportMessage is a write-once intake record. There is no read API for
// these beyond the debug surface.
type SupportMessage struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	PublicID string `gorm:"uniqueIndex;not null" json:"id"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	TS       int64  `json:"ts"`
}
