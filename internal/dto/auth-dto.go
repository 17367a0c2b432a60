package dto

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	BVN      string `json:"bvn"`
}

type LoginRequest struct {
	Email string `json:"email"`
}

// UserSummary is the only user shape ever returned to callers.
type UserSummary struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Wallet float64 `json:"wallet"`
}
