package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/Grelo-LLC/Grelo-Corporate-API/domain"
	"github.com/Grelo-LLC/Grelo-Corporate-API/internal/validators"
)

// ResetConfig configures the password reset flow
type ResetConfig struct {
	// TTL is how long an issued code stays redeemable. Expiry is checked
	// at read time against CreatedTime; records are never swept.
	TTL time.Duration
}

// ResetServiceImpl implements domain.ResetService. Each phase runs as one
// transaction; phases share no state beyond the OTP rows, so reset
// re-checks approval rather than trusting that validate ran.
type ResetServiceImpl struct {
	accountRepo     domain.AccountRepository
	otpRepo         domain.OTPRepository
	passwordSvc     domain.PasswordService
	notificationSvc domain.NotificationService
	tx              domain.Transactor
	config          ResetConfig
	now             func() time.Time
}

// NewResetService creates a new password reset service
func NewResetService(
	accountRepo domain.AccountRepository,
	otpRepo domain.OTPRepository,
	passwordSvc domain.PasswordService,
	notificationSvc domain.NotificationService,
	tx domain.Transactor,
	config ResetConfig,
) *ResetServiceImpl {
	return &ResetServiceImpl{
		accountRepo:     accountRepo,
		otpRepo:         otpRepo,
		passwordSvc:     passwordSvc,
		notificationSvc: notificationSvc,
		tx:              tx,
		config:          config,
		now:             time.Now,
	}
}

// WithClock replaces the service clock. Tests use it to move records past
// the expiry window without sleeping.
func (s *ResetServiceImpl) WithClock(now func() time.Time) *ResetServiceImpl {
	s.now = now
	return s
}

// CreateOTP implements domain.ResetService. Superseding any pending
// record and inserting the new one commit together, with the account row
// locked so concurrent creates cannot leave two active records. The email
// goes out after commit; a dispatch failure surfaces to the caller but
// the issued record stays.
func (s *ResetServiceImpl) CreateOTP(ctx context.Context, email string) error {
	var code string
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.FindByEmailLocked(ctx, email)
		if err != nil {
			return err
		}
		if _, err := s.otpRepo.ExpirePending(ctx, account.ID); err != nil {
			return fmt.Errorf("failed to expire pending otp: %w", err)
		}
		code, err = s.generateCode()
		if err != nil {
			return fmt.Errorf("failed to generate otp code: %w", err)
		}
		record := &domain.OTPRecord{
			AccountID:   account.ID,
			Code:        code,
			CreatedTime: s.now(),
		}
		return s.otpRepo.Create(ctx, record)
	})
	if err != nil {
		return err
	}

	body := fmt.Sprintf("Your OTP code is: %s. It is valid for %d minutes.", code, int(s.config.TTL.Minutes()))
	if err := s.notificationSvc.SendEmail(ctx, email, "OTP for Password Reset", body); err != nil {
		return fmt.Errorf("failed to send otp email: %w", err)
	}
	return nil
}

// ValidateOTP implements domain.ResetService. A wrong code and an aged-out
// code produce the same error.
func (s *ResetServiceImpl) ValidateOTP(ctx context.Context, email, code string) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		record, err := s.otpRepo.FindValid(ctx, account.ID, code, false, s.cutoff())
		if err != nil {
			return err
		}
		return s.otpRepo.Approve(ctx, record.ID)
	})
}

// ResetPassword implements domain.ResetService. The credential change and
// the record consumption commit together or not at all.
func (s *ResetServiceImpl) ResetPassword(ctx context.Context, email, password, confirmPassword, code string) error {
	if !validators.IsEmailValid(email) {
		return domain.NewValidationError("Invalid email format")
	}
	if !validators.IsPasswordValid(password) || !validators.IsPasswordValid(confirmPassword) {
		return domain.NewValidationError("Invalid password format")
	}
	if password != confirmPassword {
		return domain.NewValidationError("Passwords do not match")
	}

	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		record, err := s.otpRepo.FindValid(ctx, account.ID, code, true, s.cutoff())
		if err != nil {
			return err
		}
		passwordHash, err := s.passwordSvc.Hash(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		if err := s.accountRepo.UpdatePassword(ctx, account.ID, passwordHash); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		return s.otpRepo.Consume(ctx, record.ID)
	})
}

func (s *ResetServiceImpl) cutoff() time.Time {
	return s.now().Add(-s.config.TTL)
}

// generateCode draws a uniform 6-digit code from [100000, 999999].
func (s *ResetServiceImpl) generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
