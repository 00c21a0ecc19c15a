package mocks

import (
	"context"

	"github.com/Grelo-LLC/Grelo-Corporate-API/domain"
)

// MockAccountRepository implements domain.AccountRepository for testing
type MockAccountRepository struct {
	CreateFunc            func(ctx context.Context, account *domain.Account) error
	FindByEmailFunc       func(ctx context.Context, email string) (*domain.Account, error)
	FindByEmailLockedFunc func(ctx context.Context, email string) (*domain.Account, error)
	FindByTaxIDFunc       func(ctx context.Context, taxID string) (*domain.Account, error)
	EmailExistsFunc       func(ctx context.Context, email string) (bool, error)
	TaxIDExistsFunc       func(ctx context.Context, taxID string) (bool, error)
	UpdatePasswordFunc    func(ctx context.Context, accountID uint, passwordHash string) error
}

// NewMockAccountRepository creates a new MockAccountRepository with default behaviors
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

// Create creates a new account
func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds an account by business email
func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// FindByEmailLocked finds an account by business email with a row lock
func (m *MockAccountRepository) FindByEmailLocked(ctx context.Context, email string) (*domain.Account, error) {
	if m.FindByEmailLockedFunc != nil {
		return m.FindByEmailLockedFunc(ctx, email)
	}
	// Default behavior: fall back to the unlocked lookup
	return m.FindByEmail(ctx, email)
}

// FindByTaxID finds an account by tax identifier
func (m *MockAccountRepository) FindByTaxID(ctx context.Context, taxID string) (*domain.Account, error) {
	if m.FindByTaxIDFunc != nil {
		return m.FindByTaxIDFunc(ctx, taxID)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// EmailExists reports whether an account with the email exists
func (m *MockAccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.EmailExistsFunc != nil {
		return m.EmailExistsFunc(ctx, email)
	}
	// Default behavior: free
	return false, nil
}

// TaxIDExists reports whether an account with the tax identifier exists
func (m *MockAccountRepository) TaxIDExists(ctx context.Context, taxID string) (bool, error) {
	if m.TaxIDExistsFunc != nil {
		return m.TaxIDExistsFunc(ctx, taxID)
	}
	// Default behavior: free
	return false, nil
}

// UpdatePassword replaces the stored credential hash
func (m *MockAccountRepository) UpdatePassword(ctx context.Context, accountID uint, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, accountID, passwordHash)
	}
	// Default behavior: success
	return nil
}
