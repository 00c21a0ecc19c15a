package mocks

import (
	"context"
	"time"

	"github.com/Grelo-LLC/Grelo-Corporate-API/domain"
)

// MockOTPRepository implements domain.OTPRepository for testing
type MockOTPRepository struct {
	ExpirePendingFunc func(ctx context.Context, accountID uint) (int64, error)
	CreateFunc        func(ctx context.Context, record *domain.OTPRecord) error
	FindValidFunc     func(ctx context.Context, accountID uint, code string, approved bool, cutoff time.Time) (*domain.OTPRecord, error)
	ApproveFunc       func(ctx context.Context, recordID uint) error
	ConsumeFunc       func(ctx context.Context, recordID uint) error
}

// NewMockOTPRepository creates a new MockOTPRepository with default behaviors
func NewMockOTPRepository() *MockOTPRepository {
	return &MockOTPRepository{}
}

// ExpirePending expires all pending records for the account
func (m *MockOTPRepository) ExpirePending(ctx context.Context, accountID uint) (int64, error) {
	if m.ExpirePendingFunc != nil {
		return m.ExpirePendingFunc(ctx, accountID)
	}
	// Default behavior: nothing pending
	return 0, nil
}

// Create persists a new OTP record
func (m *MockOTPRepository) Create(ctx context.Context, record *domain.OTPRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	// Default behavior: success
	return nil
}

// FindValid looks up a matching unexpired record
func (m *MockOTPRepository) FindValid(ctx context.Context, accountID uint, code string, approved bool, cutoff time.Time) (*domain.OTPRecord, error) {
	if m.FindValidFunc != nil {
		return m.FindValidFunc(ctx, accountID, code, approved, cutoff)
	}
	// Default behavior: no match
	return nil, domain.ErrOTPInvalidOrExpired
}

// Approve marks the record approved
func (m *MockOTPRepository) Approve(ctx context.Context, recordID uint) error {
	if m.ApproveFunc != nil {
		return m.ApproveFunc(ctx, recordID)
	}
	// Default behavior: success
	return nil
}

// Consume marks the record expired
func (m *MockOTPRepository) Consume(ctx context.Context, recordID uint) error {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, recordID)
	}
	// Default behavior: success
	return nil
}
