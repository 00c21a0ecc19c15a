package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Grelo-LLC/Grelo-Corporate-API/domain"
)

// OTPRepositoryImpl implements domain.OTPRepository using GORM
type OTPRepositoryImpl struct {
	db *gorm.DB
}

// DBOTPToken represents the database model for OTPRecord (with GORM tags)
type DBOTPToken struct {
	ID          uint   `gorm:"primaryKey"`
	AccountID   uint   `gorm:"index;not null"`
	OTP         string `gorm:"size:250;not null"`
	CreatedTime time.Time
	IsExpired   bool
	IsApproved  bool

	Account DBAccount `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (DBOTPToken) TableName() string {
	return "otp_tokens"
}

// NewOTPRepository creates a new OTP repository
func NewOTPRepository(db *gorm.DB) domain.OTPRepository {
	return &OTPRepositoryImpl{db: db}
}

// ExpirePending implements domain.OTPRepository
func (r *OTPRepositoryImpl) ExpirePending(ctx context.Context, accountID uint) (int64, error) {
	res := conn(ctx, r.db).Model(&DBOTPToken{}).
		Where("account_id = ? AND is_expired = ?", accountID, false).
		Update("is_expired", true)
	return res.RowsAffected, res.Error
}

// Create implements domain.OTPRepository. The caller must have expired
// pending records in the same transaction first, so that at most one
// unexpired record per account exists at commit.
func (r *OTPRepositoryImpl) Create(ctx context.Context, record *domain.OTPRecord) error {
	dbToken := &DBOTPToken{
		AccountID:   record.AccountID,
		OTP:         record.Code,
		CreatedTime: record.CreatedTime,
		IsExpired:   record.IsExpired,
		IsApproved:  record.IsApproved,
	}
	if err := conn(ctx, r.db).Create(dbToken).Error; err != nil {
		return err
	}
	record.ID = dbToken.ID
	return nil
}

// FindValid implements domain.OTPRepository. Expiry by age is evaluated
// here, in the query, against the cutoff the caller computed; there is no
// background sweep.
func (r *OTPRepositoryImpl) FindValid(ctx context.Context, accountID uint, code string, approved bool, cutoff time.Time) (*domain.OTPRecord, error) {
	var dbToken DBOTPToken
	err := conn(ctx, r.db).
		Where("account_id = ? AND otp = ? AND is_expired = ? AND is_approved = ? AND created_time > ?",
			accountID, code, false, approved, cutoff).
		Order("created_time DESC").
		First(&dbToken).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrOTPInvalidOrExpired
		}
		return nil, err
	}
	return &domain.OTPRecord{
		ID:          dbToken.ID,
		AccountID:   dbToken.AccountID,
		Code:        dbToken.OTP,
		CreatedTime: dbToken.CreatedTime,
		IsExpired:   dbToken.IsExpired,
		IsApproved:  dbToken.IsApproved,
	}, nil
}

// Approve implements domain.OTPRepository
func (r *OTPRepositoryImpl) Approve(ctx context.Context, recordID uint) error {
	return conn(ctx, r.db).Model(&DBOTPToken{}).Where("id = ?", recordID).Update("is_approved", true).Error
}

// Consume implements domain.OTPRepository
func (r *OTPRepositoryImpl) Consume(ctx context.Context, recordID uint) error {
	return conn(ctx, r.db).Model(&DBOTPToken{}).Where("id = ?", recordID).Update("is_expired", true).Error
}
