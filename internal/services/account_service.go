package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Grelo-LLC/Grelo-Corporate-API/domain"
	"github.com/Grelo-LLC/Grelo-Corporate-API/internal/validators"
)

// AccountServiceImpl implements domain.AccountService. Local credential
// checks run before any gateway call, so a local validation failure never
// surfaces as a gateway error.
type AccountServiceImpl struct {
	accountRepo domain.AccountRepository
	passwordSvc domain.PasswordService
	gateway     domain.TokenGateway
	tokenCache  domain.TokenCache
}

// NewAccountService creates a new account service
func NewAccountService(
	accountRepo domain.AccountRepository,
	passwordSvc domain.PasswordService,
	gateway domain.TokenGateway,
	tokenCache domain.TokenCache,
) domain.AccountService {
	return &AccountServiceImpl{
		accountRepo: accountRepo,
		passwordSvc: passwordSvc,
		gateway:     gateway,
		tokenCache:  tokenCache,
	}
}

// Register implements domain.AccountService. Every field and uniqueness
// check runs before any row is written.
func (s *AccountServiceImpl) Register(ctx context.Context, input domain.RegisterInput) (*domain.Account, error) {
	emailTaken, err := s.accountRepo.EmailExists(ctx, input.BusinessEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if emailTaken {
		return nil, domain.NewConflictError("Email already exists")
	}

	taxIDTaken, err := s.accountRepo.TaxIDExists(ctx, input.TaxID)
	if err != nil {
		return nil, fmt.Errorf("failed to check tax id: %w", err)
	}
	if taxIDTaken {
		return nil, domain.NewConflictError("TAX ID already exists")
	}

	if !validators.IsEmailValid(input.BusinessEmail) {
		return nil, domain.NewValidationError("Invalid email")
	}
	if ok, reason := validators.CheckTaxID(input.TaxID); !ok {
		return nil, domain.NewValidationError(reason)
	}
	if !validators.IsPasswordValid(input.Password) {
		return nil, domain.NewValidationError("Invalid password")
	}
	if input.Password != input.ConfirmPassword {
		return nil, domain.NewValidationError("Passwords do not match")
	}

	passwordHash, err := s.passwordSvc.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.Account{
		BusinessEmail: input.BusinessEmail,
		BusinessName:  input.BusinessName,
		TaxID:         input.TaxID,
		PasswordHash:  passwordHash,
		Country:       input.Country,
		IsActive:      true,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

// Login implements domain.AccountService. The gateway is reached only
// after the local precondition checks pass; its reply is returned
// verbatim either way.
func (s *AccountServiceImpl) Login(ctx context.Context, taxID, password string) (*domain.TokenReply, error) {
	if ok, reason := validators.CheckTaxID(taxID); !ok {
		return nil, domain.NewValidationError(reason)
	}
	if password == "" {
		return nil, domain.NewValidationError("Password is required.")
	}
	if !validators.IsPasswordValid(password) {
		return nil, domain.NewValidationError("Invalid password format.")
	}

	account, err := s.accountRepo.FindByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}
	if !s.passwordSvc.Verify(account.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	reply, err := s.gateway.IssueToken(ctx, taxID, password)
	if err != nil {
		return nil, err
	}
	if reply.OK() {
		s.cacheIssuedToken(ctx, account.ID, reply.Body)
	}
	return reply, nil
}

// Refresh implements domain.AccountService
func (s *AccountServiceImpl) Refresh(ctx context.Context, refreshToken string) (*domain.TokenReply, error) {
	return s.gateway.RefreshToken(ctx, refreshToken)
}

// Revoke implements domain.AccountService
func (s *AccountServiceImpl) Revoke(ctx context.Context, token string) (*domain.TokenReply, error) {
	return s.gateway.RevokeToken(ctx, token)
}

// Check implements domain.AccountService
func (s *AccountServiceImpl) Check(ctx context.Context, taxID, password string) (*domain.CachedToken, error) {
	account, err := s.accountRepo.FindByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}
	if !s.passwordSvc.Verify(account.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return s.tokenCache.Find(ctx, account.ID)
}

// cacheIssuedToken records the freshly issued access token so check can
// answer without calling the provider. Cache trouble must not fail a
// login that already succeeded, so it is only logged.
func (s *AccountServiceImpl) cacheIssuedToken(ctx context.Context, accountID uint, body []byte) {
	var grant struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &grant); err != nil || grant.AccessToken == "" {
		log.Printf("TOKEN_CACHE_SKIP: account_id=%d unparseable grant body", accountID)
		return
	}
	ttl := time.Duration(grant.ExpiresIn) * time.Second
	if ttl <= 0 {
		return
	}
	if err := s.tokenCache.Store(ctx, accountID, grant.AccessToken, ttl); err != nil {
		log.Printf("TOKEN_CACHE_FAILED: account_id=%d error=%v", accountID, err)
	}
}
