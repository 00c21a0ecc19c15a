package domain

import (
	"context"
	"time"
)

// AccountRepository defines account data access operations
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
	// FindByEmailLocked locks the account row for the duration of the
	// enclosing transaction, serializing concurrent OTP issuance.
	FindByEmailLocked(ctx context.Context, email string) (*Account, error)
	FindByTaxID(ctx context.Context, taxID string) (*Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	TaxIDExists(ctx context.Context, taxID string) (bool, error)
	UpdatePassword(ctx context.Context, accountID uint, passwordHash string) error
}

// OTPRepository defines OTP record data access operations
type OTPRepository interface {
	// ExpirePending marks every unexpired record of the account expired
	// and returns how many rows changed. Idempotent.
	ExpirePending(ctx context.Context, accountID uint) (int64, error)
	Create(ctx context.Context, record *OTPRecord) error
	// FindValid returns the most recent record matching code and approval
	// state created after cutoff, or ErrOTPInvalidOrExpired.
	FindValid(ctx context.Context, accountID uint, code string, approved bool, cutoff time.Time) (*OTPRecord, error)
	Approve(ctx context.Context, recordID uint) error
	Consume(ctx context.Context, recordID uint) error
}

// Transactor runs fn inside a single database transaction. Repository
// calls made with the ctx passed to fn join that transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenGateway is the external OAuth2 provider. Every call is a blocking
// round-trip; the reply carries the remote status and body verbatim.
type TokenGateway interface {
	IssueToken(ctx context.Context, taxID, password string) (*TokenReply, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenReply, error)
	RevokeToken(ctx context.Context, token string) (*TokenReply, error)
}

// TokenCache remembers the most recent access token issued per account.
type TokenCache interface {
	Store(ctx context.Context, accountID uint, token string, ttl time.Duration) error
	Find(ctx context.Context, accountID uint) (*CachedToken, error)
}

// NotificationService defines outbound messaging operations
type NotificationService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// AccountService defines registration and token lifecycle business logic
type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (*Account, error)
	Login(ctx context.Context, taxID, password string) (*TokenReply, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenReply, error)
	Revoke(ctx context.Context, token string) (*TokenReply, error)
	Check(ctx context.Context, taxID, password string) (*CachedToken, error)
}

// ResetService drives the OTP password-reset flow: create issues a code,
// validate approves it, reset consumes it while changing the password.
type ResetService interface {
	CreateOTP(ctx context.Context, email string) error
	ValidateOTP(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, password, confirmPassword, code string) error
}
