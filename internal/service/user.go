package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/repository"
	"github.com/acadify/acadify-api/internal/utils"
)

type UserService struct {
	repo repository.Repository
}

func NewUserService(repo repository.Repository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error) {
	if !domain.IsValidRole(req.Role) {
		return dto.UserResponse{}, ErrInvalidRole
	}

	existing, err := s.repo.User().GetByEmail(ctx, req.Email)
	if err != nil {
		return dto.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return dto.UserResponse{}, ErrEmailAlreadyExists
	}

	user := &domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     domain.Role(req.Role),
		IsActive: true,
	}

	// Only super admins may create users outside their own tenant, and only
	// super admins themselves carry no tenant.
	if utils.GetRoleFromContext(ctx) == string(domain.RoleSuperAdmin) {
		if req.TenantID != "" {
			user.TenantID = &req.TenantID
		}
	} else {
		tenantID, err := utils.GetTenantIDFromContext(ctx)
		if err != nil {
			return dto.UserResponse{}, ErrTenantIDRequired
		}
		user.TenantID = &tenantID
	}
	if user.TenantID == nil && user.Role != domain.RoleSuperAdmin {
		return dto.UserResponse{}, ErrTenantIDRequired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)

	created, err := s.repo.User().Create(ctx, user)
	if err != nil {
		return dto.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}
	return dto.SanitizeUser(created), nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	resp := dto.SanitizeUser(user)
	return &resp, nil
}

func (s *UserService) Update(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		if !domain.IsValidRole(*req.Role) {
			return nil, ErrInvalidRole
		}
		user.Role = domain.Role(*req.Role)
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	user.UpdatedAt = time.Now()
	if err := s.repo.User().Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	resp := dto.SanitizeUser(user)
	return &resp, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.repo.User().Delete(ctx, id)
}

func (s *UserService) List(ctx context.Context, filter domain.UserFilter) ([]dto.UserResponse, error) {
	if utils.GetRoleFromContext(ctx) != string(domain.RoleSuperAdmin) {
		tenantID, err := utils.GetTenantIDFromContext(ctx)
		if err != nil {
			return nil, ErrTenantIDRequired
		}
		filter.TenantID = tenantID
	}

	users, err := s.repo.User().List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = dto.SanitizeUser(&users[i])
	}
	return responses, nil
}
