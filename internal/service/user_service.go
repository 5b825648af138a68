package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ouderschapsplan-api/internal/auth"
	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/mapper"
	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/pkg/apperror"
	"ouderschapsplan-api/internal/pkg/logger"
	"ouderschapsplan-api/internal/repository/specification"
	"ouderschapsplan-api/internal/repository/unitofwork"
	"ouderschapsplan-api/pkg/database"
)

type IUserService interface {
	auth.UserDirectory

	GetProfile(ctx context.Context, userId uint) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uint, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	userMapper *mapper.UserMapper
	logger     logger.ILogger
	now        func() time.Time
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IUserService {
	return &userService{
		uowFactory: uowFactory,
		userMapper: mapper.NewUserMapper(),
		logger:     log,
		now:        time.Now,
	}
}

// identityFields applies the email and name rule: a name that looks like an
// email is used as the email when no email claim exists, and is never stored
// as a name.
func identityFields(claims auth.Claims) (email, naam string) {
	email = strings.TrimSpace(claims.Email)
	naam = strings.TrimSpace(claims.Name)
	if strings.Contains(naam, "@") {
		if email == "" {
			email = naam
		}
		naam = ""
	}
	return strings.ToLower(email), naam
}

// Resolve finds the user for a verified identity. Lookup order is the auth0
// id, then an unlinked user with the same email, then a new row.
func (s *userService) Resolve(ctx context.Context, claims auth.Claims) (*model.Gebruiker, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()
	now := s.now()

	user, err := repo.FindOne(ctx, specification.ByAuth0Id{Auth0Id: claims.Subject})
	if err != nil {
		return nil, fmt.Errorf("failed to find user by auth0 id: %w", err)
	}
	if user != nil {
		return s.touch(ctx, user, now)
	}

	email, naam := identityFields(claims)
	if email != "" {
		existing, err := repo.FindOne(ctx,
			specification.ByEmail{Email: email},
			specification.WithoutAuth0Id{},
			specification.OrderBy{Field: "id"},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to find user by email: %w", err)
		}
		if existing != nil {
			linked, err := repo.LinkAuth0Id(ctx, existing.Id, claims.Subject)
			if err != nil {
				return nil, fmt.Errorf("failed to link auth0 id: %w", err)
			}
			if linked {
				s.logger.Info("USER", "Linked identity to existing user", map[string]interface{}{
					"gebruiker_id": existing.Id,
					"auth0_id":     claims.Subject,
				})
				sub := claims.Subject
				existing.Auth0Id = &sub
				return s.touch(ctx, existing, now)
			}
		}
	}

	sub := claims.Subject
	user = &model.Gebruiker{
		Auth0Id:      &sub,
		Email:        email,
		Naam:         naam,
		LaatsteLogin: &now,
	}
	if err := repo.Create(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			// A concurrent request created the same identity first.
			return repo.FindOne(ctx, specification.ByAuth0Id{Auth0Id: claims.Subject})
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("USER", "Created user for new identity", map[string]interface{}{
		"gebruiker_id": user.Id,
		"auth0_id":     claims.Subject,
	})
	return user, nil
}

func (s *userService) touch(ctx context.Context, user *model.Gebruiker, at time.Time) (*model.Gebruiker, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().TouchLastLogin(ctx, user.Id, at); err != nil {
		s.logger.Warn("USER", "Failed to update last login", map[string]interface{}{
			"gebruiker_id": user.Id,
			"error":        err.Error(),
		})
		return user, nil
	}
	user.LaatsteLogin = &at
	return user, nil
}

func (s *userService) GetById(ctx context.Context, id uint) (*model.Gebruiker, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
}

func (s *userService) GetProfile(ctx context.Context, userId uint) (*dto.UserProfileResponse, error) {
	user, err := s.GetById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return s.userMapper.ToProfile(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uint, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	user, err := repo.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email == "" {
			return nil, apperror.BadRequest("email: must not be empty")
		}
		req.Email = &email
		taken, err := repo.Count(ctx, specification.ByEmail{Email: email}, specification.ExcludeID{ID: userId})
		if err != nil {
			return nil, err
		}
		if taken > 0 {
			return nil, apperror.Conflict("Email address is already in use")
		}
	}

	s.userMapper.ApplyProfile(user, req)
	if err := repo.Update(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperror.Conflict("Email address is already in use")
		}
		return nil, err
	}
	return s.userMapper.ToProfile(user), nil
}
