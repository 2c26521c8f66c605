package auth

import (
	"context"
	"time"

	"bookshop/internal/domain/user"
	"bookshop/pkg/jwt"
)

// TokenBlacklist records revoked tokens. Redis backs it in production; an
// in-memory map backs it in tests.
type TokenBlacklist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// Token is a freshly issued credential with its lifetime in seconds.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
}

// UseCase ties the identity service to token issuance and revocation.
type UseCase struct {
	users     user.Service
	tokens    *jwt.Manager
	blacklist TokenBlacklist
}

func NewUseCase(users user.Service, tokens *jwt.Manager, blacklist TokenBlacklist) *UseCase {
	return &UseCase{users: users, tokens: tokens, blacklist: blacklist}
}

// Register creates the account. It does not log the user in; the client
// follows up with Login.
func (uc *UseCase) Register(ctx context.Context, email, password, nickname string) (*user.User, error) {
	return uc.users.Register(ctx, email, password, nickname)
}

// Login verifies credentials and issues a bearer token.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*Token, error) {
	u, err := uc.users.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	signed, err := uc.tokens.Generate(u.ID, u.Roles)
	if err != nil {
		return nil, err
	}
	return &Token{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(uc.tokens.TTL().Seconds()),
	}, nil
}

// Logout revokes the presented token for the remainder of its lifetime.
func (uc *UseCase) Logout(ctx context.Context, token string) error {
	return uc.blacklist.Revoke(ctx, token, uc.tokens.TTL())
}
