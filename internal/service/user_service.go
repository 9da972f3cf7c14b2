package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/logger"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
	"github.com/hance08/tally/internal/validation"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	repo store.UserRepository
}

func NewUserService(repo store.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// FindUser looks a user up by email, phone or profile id. Whitespace in the
// identifier is ignored.
func (us *UserService) FindUser(ctx context.Context, identifier, kind string) (*model.User, error) {
	if err := validation.ValidateIdentifierKind(kind); err != nil {
		return nil, err
	}

	id := validation.SanitizeIdentifier(identifier)
	if id == "" {
		return nil, fmt.Errorf("identifier can't be empty")
	}

	var (
		user *model.User
		err  error
	)
	switch kind {
	case constants.IdentifierEmail:
		user, err = us.repo.FindUserByEmail(ctx, id)
	case constants.IdentifierPhone:
		user, err = us.repo.FindUserByPhone(ctx, id)
	case constants.IdentifierUserID:
		profileID, perr := validation.ParseProfileID(id)
		if perr != nil {
			return nil, perr
		}
		user, err = us.repo.FindUserByProfileID(ctx, profileID)
	}

	if errors.Is(err, store.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: no user with %s '%s'", ErrUserNotFound, kind, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	log := logger.FromContext(ctx)
	log.Debug().
		Int64("profile_id", user.ProfileID).
		Str("kind", kind).
		Msg("user found")

	return user, nil
}

// CreateUser registers a user. At least one of email and phone is required
// so the user can be looked up later.
func (us *UserService) CreateUser(ctx context.Context, u store.NewUser) (*model.User, error) {
	u.Email = validation.SanitizeIdentifier(u.Email)
	u.Phone = validation.SanitizeIdentifier(u.Phone)
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)

	if u.Email == "" && u.Phone == "" {
		return nil, fmt.Errorf("email or phone is required")
	}
	if u.Email != "" {
		if err := validation.ValidateIdentifier(constants.IdentifierEmail)(u.Email); err != nil {
			return nil, err
		}
	}
	if u.Phone != "" {
		if err := validation.ValidateIdentifier(constants.IdentifierPhone)(u.Phone); err != nil {
			return nil, err
		}
	}
	if err := validation.ValidateName(u.FirstName); err != nil {
		return nil, fmt.Errorf("first name: %w", err)
	}
	if err := validation.ValidateName(u.LastName); err != nil {
		return nil, fmt.Errorf("last name: %w", err)
	}

	user, err := us.repo.CreateUser(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}
