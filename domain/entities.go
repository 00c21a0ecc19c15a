package domain

import "time"

// Account represents a business account authenticating with a tax
// identifier and password.
type Account struct {
	ID            uint
	BusinessEmail string
	BusinessName  string
	TaxID         string
	PasswordHash  string
	Country       string
	IsConfirmed   bool
	IsBlocked     bool
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	BusinessEmail   string
	BusinessName    string
	TaxID           string
	Country         string
	Password        string
	ConfirmPassword string
}

// OTPRecord is a single-use numeric code tied to one account. At most one
// record per account may be unexpired at a time; records older than the
// configured TTL are treated as expired at read time.
type OTPRecord struct {
	ID          uint
	AccountID   uint
	Code        string
	CreatedTime time.Time
	IsExpired   bool
	IsApproved  bool
}

// TokenReply is the OAuth2 provider's response, carried verbatim so
// handlers can forward the remote status and body without rewriting them.
type TokenReply struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the provider answered with a 2xx status.
func (r *TokenReply) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// CachedToken is the most recently issued access token for an account.
type CachedToken struct {
	AccessToken string    `json:"access_token"`
	Expires     time.Time `json:"expires"`
}
