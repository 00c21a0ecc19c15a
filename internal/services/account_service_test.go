package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Grelo-LLC/Grelo-Corporate-API/domain"
	"github.com/Grelo-LLC/Grelo-Corporate-API/internal/mocks"
)

func validRegisterInput() domain.RegisterInput {
	return domain.RegisterInput{
		BusinessEmail:   "ops@example.com",
		BusinessName:    "Test LLC",
		TaxID:           "AZ1234567",
		Country:         "Azerbaijan",
		Password:        "Abcdef12",
		ConfirmPassword: "Abcdef12",
	}
}

func TestAccountService_Register(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(input *domain.RegisterInput)
		setupMocks   func(repo *mocks.MockAccountRepository)
		wantErrMsg   string
		wantConflict bool
	}{
		{
			name:   "success",
			mutate: func(input *domain.RegisterInput) {},
		},
		{
			name:   "duplicate email",
			mutate: func(input *domain.RegisterInput) {},
			setupMocks: func(repo *mocks.MockAccountRepository) {
				repo.EmailExistsFunc = func(ctx context.Context, email string) (bool, error) { return true, nil }
			},
			wantErrMsg:   "Email already exists",
			wantConflict: true,
		},
		{
			name:   "duplicate tax id",
			mutate: func(input *domain.RegisterInput) {},
			setupMocks: func(repo *mocks.MockAccountRepository) {
				repo.TaxIDExistsFunc = func(ctx context.Context, taxID string) (bool, error) { return true, nil }
			},
			wantErrMsg:   "TAX ID already exists",
			wantConflict: true,
		},
		{
			name:       "invalid email",
			mutate:     func(input *domain.RegisterInput) { input.BusinessEmail = "not-an-email" },
			wantErrMsg: "Invalid email",
		},
		{
			name:       "tax id too short",
			mutate:     func(input *domain.RegisterInput) { input.TaxID = "AZ12345" },
			wantErrMsg: "Tax ID must be at least 8 characters long",
		},
		{
			name:       "weak password",
			mutate:     func(input *domain.RegisterInput) { input.Password = "abcdefgh"; input.ConfirmPassword = "abcdefgh" },
			wantErrMsg: "Invalid password",
		},
		{
			name:       "password mismatch",
			mutate:     func(input *domain.RegisterInput) { input.ConfirmPassword = "Abcdef13" },
			wantErrMsg: "Passwords do not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockAccountRepository()
			var created *domain.Account
			repo.CreateFunc = func(ctx context.Context, account *domain.Account) error {
				account.ID = 1
				created = account
				return nil
			}
			if tt.setupMocks != nil {
				tt.setupMocks(repo)
			}
			svc := NewAccountService(repo, mocks.NewMockPasswordService(), mocks.NewMockTokenGateway(), mocks.NewMockTokenCache())

			input := validRegisterInput()
			tt.mutate(&input)
			account, err := svc.Register(context.Background(), input)

			if tt.wantErrMsg == "" {
				if err != nil {
					t.Fatalf("Register returned error: %v", err)
				}
				if created == nil {
					t.Fatal("expected the account to be persisted")
				}
				if created.PasswordHash != "hashed_Abcdef12" {
					t.Errorf("password should be stored hashed, got %q", created.PasswordHash)
				}
				if !account.IsActive {
					t.Error("new accounts start active")
				}
				return
			}

			if created != nil {
				t.Error("no account may be persisted on a failed registration")
			}
			if tt.wantConflict {
				var cErr *domain.ConflictError
				if !errors.As(err, &cErr) {
					t.Fatalf("expected ConflictError, got %v", err)
				}
				if cErr.Message != tt.wantErrMsg {
					t.Errorf("expected message %q, got %q", tt.wantErrMsg, cErr.Message)
				}
				return
			}
			var vErr *domain.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Message != tt.wantErrMsg {
				t.Errorf("expected message %q, got %q", tt.wantErrMsg, vErr.Message)
			}
		})
	}
}

func accountWithHash(hash string) *domain.Account {
	return &domain.Account{
		ID:            1,
		BusinessEmail: "ops@example.com",
		TaxID:         "AZ1234567",
		PasswordHash:  hash,
		IsActive:      true,
	}
}

func TestAccountService_Login_LocalPreconditions(t *testing.T) {
	tests := []struct {
		name       string
		taxID      string
		password   string
		setupRepo  func(repo *mocks.MockAccountRepository)
		wantErr    error
		wantValMsg string
	}{
		{
			name:       "malformed tax id",
			taxID:      "short",
			password:   "Abcdef12",
			wantValMsg: "Tax ID must be at least 8 characters long",
		},
		{
			name:       "missing password",
			taxID:      "AZ1234567",
			password:   "",
			wantValMsg: "Password is required.",
		},
		{
			name:       "malformed password",
			taxID:      "AZ1234567",
			password:   "nodigits",
			wantValMsg: "Invalid password format.",
		},
		{
			name:     "unknown tax id",
			taxID:    "AZ1234567",
			password: "Abcdef12",
			wantErr:  domain.ErrAccountNotFound,
		},
		{
			name:     "wrong password",
			taxID:    "AZ1234567",
			password: "Abcdef13",
			setupRepo: func(repo *mocks.MockAccountRepository) {
				repo.FindByTaxIDFunc = func(ctx context.Context, taxID string) (*domain.Account, error) {
					return accountWithHash("hashed_Abcdef12"), nil
				}
			},
			wantErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockAccountRepository()
			if tt.setupRepo != nil {
				tt.setupRepo(repo)
			}
			gw := mocks.NewMockTokenGateway()
			gatewayCalled := false
			gw.IssueTokenFunc = func(ctx context.Context, taxID, password string) (*domain.TokenReply, error) {
				gatewayCalled = true
				return &domain.TokenReply{StatusCode: 200, Body: []byte(`{}`)}, nil
			}
			svc := NewAccountService(repo, mocks.NewMockPasswordService(), gw, mocks.NewMockTokenCache())

			_, err := svc.Login(context.Background(), tt.taxID, tt.password)
			if gatewayCalled {
				t.Error("gateway must not be reached when local checks fail")
			}

			if tt.wantValMsg != "" {
				var vErr *domain.ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				if vErr.Message != tt.wantValMsg {
					t.Errorf("expected message %q, got %q", tt.wantValMsg, vErr.Message)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAccountService_Login_CachesIssuedToken(t *testing.T) {
	repo := mocks.NewMockAccountRepository()
	repo.FindByTaxIDFunc = func(ctx context.Context, taxID string) (*domain.Account, error) {
		return accountWithHash("hashed_Abcdef12"), nil
	}
	gw := mocks.NewMockTokenGateway()
	gw.IssueTokenFunc = func(ctx context.Context, taxID, password string) (*domain.TokenReply, error) {
		return &domain.TokenReply{
			StatusCode: 200,
			Body:       []byte(`{"access_token":"abc","expires_in":3600,"token_type":"Bearer"}`),
		}, nil
	}
	cache := mocks.NewMockTokenCache()
	var storedToken string
	var storedTTL time.Duration
	cache.StoreFunc = func(ctx context.Context, accountID uint, token string, ttl time.Duration) error {
		storedToken = token
		storedTTL = ttl
		return nil
	}
	svc := NewAccountService(repo, mocks.NewMockPasswordService(), gw, cache)

	reply, err := svc.Login(context.Background(), "AZ1234567", "Abcdef12")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if !reply.OK() {
		t.Fatalf("expected a 2xx reply, got %d", reply.StatusCode)
	}
	if storedToken != "abc" {
		t.Errorf("expected cached token abc, got %q", storedToken)
	}
	if storedTTL != time.Hour {
		t.Errorf("expected TTL 1h, got %v", storedTTL)
	}
}

func TestAccountService_Login_RemoteErrorPassesThrough(t *testing.T) {
	repo := mocks.NewMockAccountRepository()
	repo.FindByTaxIDFunc = func(ctx context.Context, taxID string) (*domain.Account, error) {
		return accountWithHash("hashed_Abcdef12"), nil
	}
	gw := mocks.NewMockTokenGateway()
	gw.IssueTokenFunc = func(ctx context.Context, taxID, password string) (*domain.TokenReply, error) {
		return &domain.TokenReply{StatusCode: 401, Body: []byte(`{"error":"invalid_client"}`)}, nil
	}
	cache := mocks.NewMockTokenCache()
	cacheCalled := false
	cache.StoreFunc = func(ctx context.Context, accountID uint, token string, ttl time.Duration) error {
		cacheCalled = true
		return nil
	}
	svc := NewAccountService(repo, mocks.NewMockPasswordService(), gw, cache)

	reply, err := svc.Login(context.Background(), "AZ1234567", "Abcdef12")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if reply.StatusCode != 401 {
		t.Errorf("expected the remote 401 to pass through, got %d", reply.StatusCode)
	}
	if string(reply.Body) != `{"error":"invalid_client"}` {
		t.Errorf("expected the remote body to pass through, got %s", reply.Body)
	}
	if cacheCalled {
		t.Error("failed grants must not be cached")
	}
}

func TestAccountService_Check(t *testing.T) {
	expires := time.Now().Add(time.Hour)

	tests := []struct {
		name       string
		setupRepo  func(repo *mocks.MockAccountRepository)
		setupCache func(cache *mocks.MockTokenCache)
		wantErr    error
		wantToken  string
	}{
		{
			name:    "unknown account",
			wantErr: domain.ErrAccountNotFound,
		},
		{
			name: "wrong password",
			setupRepo: func(repo *mocks.MockAccountRepository) {
				repo.FindByTaxIDFunc = func(ctx context.Context, taxID string) (*domain.Account, error) {
					return accountWithHash("hashed_other"), nil
				}
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name: "no cached token",
			setupRepo: func(repo *mocks.MockAccountRepository) {
				repo.FindByTaxIDFunc = func(ctx context.Context, taxID string) (*domain.Account, error) {
					return accountWithHash("hashed_Abcdef12"), nil
				}
			},
			wantErr: domain.ErrNoActiveToken,
		},
		{
			name: "active token",
			setupRepo: func(repo *mocks.MockAccountRepository) {
				repo.FindByTaxIDFunc = func(ctx context.Context, taxID string) (*domain.Account, error) {
					return accountWithHash("hashed_Abcdef12"), nil
				}
			},
			setupCache: func(cache *mocks.MockTokenCache) {
				cache.FindFunc = func(ctx context.Context, accountID uint) (*domain.CachedToken, error) {
					return &domain.CachedToken{AccessToken: "abc", Expires: expires}, nil
				}
			},
			wantToken: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockAccountRepository()
			cache := mocks.NewMockTokenCache()
			if tt.setupRepo != nil {
				tt.setupRepo(repo)
			}
			if tt.setupCache != nil {
				tt.setupCache(cache)
			}
			svc := NewAccountService(repo, mocks.NewMockPasswordService(), mocks.NewMockTokenGateway(), cache)

			token, err := svc.Check(context.Background(), "AZ1234567", "Abcdef12")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Check returned error: %v", err)
			}
			if token.AccessToken != tt.wantToken {
				t.Errorf("expected token %q, got %q", tt.wantToken, token.AccessToken)
			}
		})
	}
}

func TestAccountService_RefreshAndRevokePassThrough(t *testing.T) {
	gw := mocks.NewMockTokenGateway()
	gw.RefreshTokenFunc = func(ctx context.Context, refreshToken string) (*domain.TokenReply, error) {
		return &domain.TokenReply{StatusCode: 400, Body: []byte(`{"error":"invalid_grant"}`)}, nil
	}
	gw.RevokeTokenFunc = func(ctx context.Context, token string) (*domain.TokenReply, error) {
		return &domain.TokenReply{StatusCode: 200, Body: nil}, nil
	}
	svc := NewAccountService(mocks.NewMockAccountRepository(), mocks.NewMockPasswordService(), gw, mocks.NewMockTokenCache())

	reply, err := svc.Refresh(context.Background(), "stale")
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if reply.StatusCode != 400 {
		t.Errorf("expected the remote 400 to pass through, got %d", reply.StatusCode)
	}

	reply, err = svc.Revoke(context.Background(), "token")
	if err != nil {
		t.Fatalf("Revoke returned error: %v", err)
	}
	if reply.StatusCode != 200 {
		t.Errorf("expected 200, got %d", reply.StatusCode)
	}
}
