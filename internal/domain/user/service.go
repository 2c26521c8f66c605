package user

import (
	"context"
	"regexp"
	"strings"
	"sync"

	apperrors "bookshop/pkg/errors"
	"bookshop/pkg/hash"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// decoyHash is compared against when the email is unknown, so a login
// attempt costs one argon2 verification whether or not the account exists.
var decoyHash = sync.OnceValue(func() string {
	h, _ := hash.Generate("decoy-password")
	return h
})

// Service holds identity operations: registration and credential checks.
// Token issuance lives in the auth application layer, not here.
type Service interface {
	// Register creates an account with the USER role and an argon2id hash.
	Register(ctx context.Context, email, password, nickname string) (*User, error)

	// Authenticate verifies credentials and returns the account. Wrong
	// email and wrong password are indistinguishable to the caller.
	Authenticate(ctx context.Context, email, password string) (*User, error)
}

type service struct {
	repo Repository
}

// NewService creates the user service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, email, password, nickname string) (*User, error) {
	if !emailPattern.MatchString(email) {
		return nil, apperrors.New(apperrors.KindValidation, "email is not valid")
	}
	if len(password) < 8 {
		return nil, apperrors.New(apperrors.KindValidation, "password must be at least 8 characters")
	}
	if nickname == "" {
		nickname, _, _ = strings.Cut(email, "@")
	}

	hashed, err := hash.Generate(password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:    email,
		Password: hashed,
		Nickname: nickname,
		Roles:    []string{RoleUser},
	}
	// Email uniqueness belongs to the database; the repository translates
	// the duplicate-key violation into ErrEmailDuplicate.
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			// Response timing must not reveal whether the email exists.
			_ = hash.Compare(decoyHash(), password)
			return nil, hash.ErrMismatch
		}
		return nil, err
	}
	if err := hash.Compare(u.Password, password); err != nil {
		return nil, err
	}
	return u, nil
}
