package domain

const (
	DefaultRole = "user"

	// Every new account gets this demo balance. Funds are never moved.
	WalletPrefill = 125000
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	PublicID string `gorm:"uniqueIndex;not null" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Phone    string `json:"phone,omitempty"`
	// Stored exactly as submitted and never read back. Login does not compare
	// passwords; see the defect notes in the README.
	Password  string  `json:"-"`
	BVN       string  `gorm:"not null" json:"-"`
	Verified  bool    `json:"verified"`
	Wallet    float64 `json:"wallet"`
	Role      string  `gorm:"type:varchar(20);not null;default:user" json:"role"`
	CreatedAt int64   `gorm:"autoCreateTime:milli" json:"-"`
}

// FlaggedBVN bars a verification number from all future signups. Rows are
// only ever added, never removed.
type FlaggedBVN struct {
	ID  uint   `gorm:"primaryKey" json:"-"`
	BVN string `gorm:"uniqueIndex;not null" json:"bvn"`
}
