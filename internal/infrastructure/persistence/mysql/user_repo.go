package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bookshop/internal/domain/user"
	apperrors "bookshop/pkg/errors"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates the user repository.
func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	model := toUserModel(u)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return user.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	u.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model UserModel
	err := getDB(ctx, r.db).Preload("Roles").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to find user")
	}
	return toUserEntity(&model), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserModel
	err := getDB(ctx, r.db).Preload("Roles").Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to find user")
	}
	return toUserEntity(&model), nil
}

func toUserModel(u *user.User) *UserModel {
	roles := make([]UserRoleModel, len(u.Roles))
	for i, role := range u.Roles {
		roles[i] = UserRoleModel{Role: role}
	}
	return &UserModel{
		ID:       u.ID,
		Email:    u.Email,
		Password: u.Password,
		Nickname: u.Nickname,
		Roles:    roles,
	}
}

func toUserEntity(model *UserModel) *user.User {
	roles := make([]string, len(model.Roles))
	for i, role := range model.Roles {
		roles[i] = role.Role
	}
	return &user.User{
		ID:        model.ID,
		Email:     model.Email,
		Password:  model.Password,
		Nickname:  model.Nickname,
		Roles:     roles,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
