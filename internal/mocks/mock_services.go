package mocks

import (
	"context"
	"time"

	"github.com/Grelo-LLC/Grelo-Corporate-API/domain"
)

// MockPasswordService implements domain.PasswordService for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

// Hash hashes a password
func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	// Default behavior: recognizable fake hash
	return "hashed_" + password, nil
}

// Verify checks a password against a hash
func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	// Default behavior: match against the fake hash
	return hashedPassword == "hashed_"+password
}

// MockTokenGateway implements domain.TokenGateway for testing
type MockTokenGateway struct {
	IssueTokenFunc   func(ctx context.Context, taxID, password string) (*domain.TokenReply, error)
	RefreshTokenFunc func(ctx context.Context, refreshToken string) (*domain.TokenReply, error)
	RevokeTokenFunc  func(ctx context.Context, token string) (*domain.TokenReply, error)
}

// NewMockTokenGateway creates a new MockTokenGateway with default behaviors
func NewMockTokenGateway() *MockTokenGateway {
	return &MockTokenGateway{}
}

// IssueToken performs a password grant
func (m *MockTokenGateway) IssueToken(ctx context.Context, taxID, password string) (*domain.TokenReply, error) {
	if m.IssueTokenFunc != nil {
		return m.IssueTokenFunc(ctx, taxID, password)
	}
	// Default behavior: empty success
	return &domain.TokenReply{StatusCode: 200, Body: []byte(`{}`)}, nil
}

// RefreshToken performs a refresh grant
func (m *MockTokenGateway) RefreshToken(ctx context.Context, refreshToken string) (*domain.TokenReply, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, refreshToken)
	}
	// Default behavior: empty success
	return &domain.TokenReply{StatusCode: 200, Body: []byte(`{}`)}, nil
}

// RevokeToken revokes a token
func (m *MockTokenGateway) RevokeToken(ctx context.Context, token string) (*domain.TokenReply, error) {
	if m.RevokeTokenFunc != nil {
		return m.RevokeTokenFunc(ctx, token)
	}
	// Default behavior: empty success
	return &domain.TokenReply{StatusCode: 200, Body: []byte(`{}`)}, nil
}

// MockTokenCache implements domain.TokenCache for testing
type MockTokenCache struct {
	StoreFunc func(ctx context.Context, accountID uint, token string, ttl time.Duration) error
	FindFunc  func(ctx context.Context, accountID uint) (*domain.CachedToken, error)
}

// NewMockTokenCache creates a new MockTokenCache with default behaviors
func NewMockTokenCache() *MockTokenCache {
	return &MockTokenCache{}
}

// Store remembers a token
func (m *MockTokenCache) Store(ctx context.Context, accountID uint, token string, ttl time.Duration) error {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, accountID, token, ttl)
	}
	// Default behavior: success
	return nil
}

// Find returns the cached token for the account
func (m *MockTokenCache) Find(ctx context.Context, accountID uint) (*domain.CachedToken, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, accountID)
	}
	// Default behavior: nothing cached
	return nil, domain.ErrNoActiveToken
}

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	SendEmailFunc func(ctx context.Context, to, subject, body string) error

	// SentEmails records every dispatched message for assertions
	SentEmails []SentEmail
}

// SentEmail captures one dispatched message
type SentEmail struct {
	To      string
	Subject string
	Body    string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendEmail dispatches an email
func (m *MockNotificationService) SendEmail(ctx context.Context, to, subject, body string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(ctx, to, subject, body)
	}
	// Default behavior: record and succeed
	m.SentEmails = append(m.SentEmails, SentEmail{To: to, Subject: subject, Body: body})
	return nil
}

// MockTransactor implements domain.Transactor for testing. It simply runs
// fn with the given context; atomicity is covered by repository tests.
type MockTransactor struct {
	WithinTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

// NewMockTransactor creates a new MockTransactor with default behaviors
func NewMockTransactor() *MockTransactor {
	return &MockTransactor{}
}

// WithinTransaction runs fn
func (m *MockTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.WithinTransactionFunc != nil {
		return m.WithinTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

// MockAccountService implements domain.AccountService for testing
type MockAccountService struct {
	RegisterFunc func(ctx context.Context, input domain.RegisterInput) (*domain.Account, error)
	LoginFunc    func(ctx context.Context, taxID, password string) (*domain.TokenReply, error)
	RefreshFunc  func(ctx context.Context, refreshToken string) (*domain.TokenReply, error)
	RevokeFunc   func(ctx context.Context, token string) (*domain.TokenReply, error)
	CheckFunc    func(ctx context.Context, taxID, password string) (*domain.CachedToken, error)
}

// NewMockAccountService creates a new MockAccountService with default behaviors
func NewMockAccountService() *MockAccountService {
	return &MockAccountService{}
}

// Register registers an account
func (m *MockAccountService) Register(ctx context.Context, input domain.RegisterInput) (*domain.Account, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, input)
	}
	return &domain.Account{ID: 1, BusinessEmail: input.BusinessEmail}, nil
}

// Login issues a token through the provider
func (m *MockAccountService) Login(ctx context.Context, taxID, password string) (*domain.TokenReply, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, taxID, password)
	}
	return &domain.TokenReply{StatusCode: 200, Body: []byte(`{}`)}, nil
}

// Refresh refreshes a token through the provider
func (m *MockAccountService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenReply, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	return &domain.TokenReply{StatusCode: 200, Body: []byte(`{}`)}, nil
}

// Revoke revokes a token through the provider
func (m *MockAccountService) Revoke(ctx context.Context, token string) (*domain.TokenReply, error) {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, token)
	}
	return &domain.TokenReply{StatusCode: 200, Body: []byte(`{}`)}, nil
}

// Check reports the cached token state
func (m *MockAccountService) Check(ctx context.Context, taxID, password string) (*domain.CachedToken, error) {
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx, taxID, password)
	}
	return nil, domain.ErrNoActiveToken
}

// MockResetService implements domain.ResetService for testing
type MockResetService struct {
	CreateOTPFunc     func(ctx context.Context, email string) error
	ValidateOTPFunc   func(ctx context.Context, email, code string) error
	ResetPasswordFunc func(ctx context.Context, email, password, confirmPassword, code string) error
}

// NewMockResetService creates a new MockResetService with default behaviors
func NewMockResetService() *MockResetService {
	return &MockResetService{}
}

// CreateOTP issues a code
func (m *MockResetService) CreateOTP(ctx context.Context, email string) error {
	if m.CreateOTPFunc != nil {
		return m.CreateOTPFunc(ctx, email)
	}
	return nil
}

// ValidateOTP approves a code
func (m *MockResetService) ValidateOTP(ctx context.Context, email, code string) error {
	if m.ValidateOTPFunc != nil {
		return m.ValidateOTPFunc(ctx, email, code)
	}
	return nil
}

// ResetPassword consumes a code while changing the credential
func (m *MockResetService) ResetPassword(ctx context.Context, email, password, confirmPassword, code string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email, password, confirmPassword, code)
	}
	return nil
}
