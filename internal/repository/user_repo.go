package repository

import (
	"context"
	"errors"

	"revup/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	// FindRole returns the role of the account matching both username and
	// password exactly, or ErrNotFound.
	FindRole(ctx context.Context, username, password string) (string, error)
	List(ctx context.Context) ([]model.User, error)
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepo{db: db} }

func (r *userRepo) FindRole(ctx context.Context, username, password string) (string, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Where("username = ? AND password = ?", username, password).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Order("username ASC").Find(&users).Error
	return users, err
}
