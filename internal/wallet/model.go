package wallet

const (
	// DefaultBalance is credited to every account at registration.
	DefaultBalance = 1000.0

	// MaxBalance bounds admin-initiated credits.
	MaxBalance = 1000000.0

	RolePlayer = "player"
	RoleAdmin  = "admin"
)

type Account struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Role      string  `json:"role"`
	Balance   float64 `json:"balance"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}
