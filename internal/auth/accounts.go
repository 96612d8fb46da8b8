package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=accounts_mocks_test.go -package=auth_test

type usersRepo interface {
	Create(ctx context.Context, username, email, passwordHash string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

type Accounts struct {
	repo usersRepo
}

func NewAccounts(repo usersRepo) *Accounts {
	return &Accounts{
		repo: repo,
	}
}

func (p RegisterParams) Validate() error {
	if err := pkg.NotBlank("username", p.Username); err != nil {
		return err
	}
	if len(p.Username) < 3 || len(p.Username) > 150 {
		return pkg.NewValidationError("username", "must be between 3 and 150 characters")
	}
	if strings.ContainsAny(p.Username, " \t\n:") {
		return pkg.NewValidationError("username", "must not contain whitespace or ':'")
	}
	if len(p.Password) < 8 {
		return pkg.NewValidationError("password", "must be at least 8 characters")
	}
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		return pkg.NewValidationError("email", "malformed")
	}
	return nil
}

func (a *Accounts) Register(ctx context.Context, params RegisterParams) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.accounts.register")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := params.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := pkg.HashPassword(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return a.repo.Create(ctx, params.Username, params.Email, passwordHash)
}

// Authenticate checks the credentials. An unknown username is reported as
// ErrWrongPassword, so callers cannot probe for existing accounts.
func (a *Accounts) Authenticate(ctx context.Context, credentials Credentials) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.accounts.authenticate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := a.repo.GetByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrWrongPassword
		}
		return nil, err
	}

	if !pkg.CheckPasswordHash(credentials.Password, user.PasswordHash) {
		return nil, ErrWrongPassword
	}

	return user, nil
}
