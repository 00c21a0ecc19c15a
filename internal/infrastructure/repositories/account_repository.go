package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Grelo-LLC/Grelo-Corporate-API/domain"
)

// AccountRepositoryImpl implements domain.AccountRepository using GORM
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// DBAccount represents the database model for Account (with GORM tags)
type DBAccount struct {
	ID            uint           `gorm:"primaryKey"`
	BusinessEmail string         `gorm:"uniqueIndex;size:255"`
	BusinessName  string         `gorm:"size:100"`
	TaxID         string         `gorm:"uniqueIndex;size:15"`
	PasswordHash  string         `gorm:"column:password"`
	Country       string         `gorm:"size:50"`
	IsConfirmed   bool
	IsBlocked     bool
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "accounts"
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Create implements domain.AccountRepository
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	dbAccount := r.domainToDB(account)
	if err := conn(ctx, r.db).Create(dbAccount).Error; err != nil {
		return err
	}
	account.ID = dbAccount.ID
	return nil
}

// FindByEmail implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, conn(ctx, r.db), "business_email = ?", email)
}

// FindByEmailLocked implements domain.AccountRepository. Inside a
// transaction the account row is locked FOR UPDATE so two concurrent OTP
// issuances for the same account serialize on it. SQLite (used in tests)
// rejects the clause and serializes writers on its own.
func (r *AccountRepositoryImpl) FindByEmailLocked(ctx context.Context, email string) (*domain.Account, error) {
	tx := conn(ctx, r.db)
	if tx.Dialector.Name() != "sqlite" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return r.findOne(ctx, tx, "business_email = ?", email)
}

// FindByTaxID implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByTaxID(ctx context.Context, taxID string) (*domain.Account, error) {
	return r.findOne(ctx, conn(ctx, r.db), "tax_id = ?", taxID)
}

// EmailExists implements domain.AccountRepository
func (r *AccountRepositoryImpl) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&DBAccount{}).Where("business_email = ?", email).Count(&count).Error
	return count > 0, err
}

// TaxIDExists implements domain.AccountRepository
func (r *AccountRepositoryImpl) TaxIDExists(ctx context.Context, taxID string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&DBAccount{}).Where("tax_id = ?", taxID).Count(&count).Error
	return count > 0, err
}

// UpdatePassword implements domain.AccountRepository
func (r *AccountRepositoryImpl) UpdatePassword(ctx context.Context, accountID uint, passwordHash string) error {
	return conn(ctx, r.db).Model(&DBAccount{}).Where("id = ?", accountID).Update("password", passwordHash).Error
}

func (r *AccountRepositoryImpl) findOne(ctx context.Context, tx *gorm.DB, query string, args ...interface{}) (*domain.Account, error) {
	var dbAccount DBAccount
	err := tx.Where(query, args...).First(&dbAccount).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// domainToDB converts domain account to database account
func (r *AccountRepositoryImpl) domainToDB(account *domain.Account) *DBAccount {
	return &DBAccount{
		ID:            account.ID,
		BusinessEmail: account.BusinessEmail,
		BusinessName:  account.BusinessName,
		TaxID:         account.TaxID,
		PasswordHash:  account.PasswordHash,
		Country:       account.Country,
		IsConfirmed:   account.IsConfirmed,
		IsBlocked:     account.IsBlocked,
		IsActive:      account.IsActive,
	}
}

// dbToDomain converts database account to domain account
func (r *AccountRepositoryImpl) dbToDomain(dbAccount *DBAccount) *domain.Account {
	return &domain.Account{
		ID:            dbAccount.ID,
		BusinessEmail: dbAccount.BusinessEmail,
		BusinessName:  dbAccount.BusinessName,
		TaxID:         dbAccount.TaxID,
		PasswordHash:  dbAccount.PasswordHash,
		Country:       dbAccount.Country,
		IsConfirmed:   dbAccount.IsConfirmed,
		IsBlocked:     dbAccount.IsBlocked,
		IsActive:      dbAccount.IsActive,
		CreatedAt:     dbAccount.CreatedAt,
		UpdatedAt:     dbAccount.UpdatedAt,
	}
}
