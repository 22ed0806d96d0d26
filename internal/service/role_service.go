package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"delivery-backend/internal/model"
	"delivery-backend/internal/repository"
)

// --- DTOs ---

type CreateRoleRequest struct {
	Name        string   `json:"name" binding:"required,min=2,max=50"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

type UpdateRoleRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=2,max=50"`
	Description *string   `json:"description"`
	Permissions *[]string `json:"permissions"`
}

type RoleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Permissions string `json:"permissions"`
	UserCount   int64  `json:"user_count"`
	IsSystem    bool   `json:"is_system"`
	CreatedAt   string `json:"created_at"`
}

// --- Interface ---

type RoleService interface {
	List(ctx context.Context) ([]RoleResponse, error)
	Create(ctx context.Context, req CreateRoleRequest) (*RoleResponse, error)
	Update(ctx context.Context, id string, req UpdateRoleRequest) (*RoleResponse, error)
	// Delete refuses to remove system roles and roles still assigned to users
	Delete(ctx context.Context, id string) error
}

type roleService struct {
	roles repository.RoleRepository
}

func NewRoleService(roles repository.RoleRepository) RoleService {
	return &roleService{roles: roles}
}

// --- Implementation ---

func (s *roleService) List(ctx context.Context) ([]RoleResponse, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roles: %w", err)
	}

	res := make([]RoleResponse, 0, len(roles))
	for i := range roles {
		count, err := s.roles.CountUsers(ctx, roles[i].ID.String())
		if err != nil {
			return nil, fmt.Errorf("failed to count role users: %w", err)
		}
		res = append(res, toRoleResponse(&roles[i], count))
	}
	return res, nil
}

func (s *roleService) Create(ctx context.Context, req CreateRoleRequest) (*RoleResponse, error) {
	if _, err := s.roles.GetByName(ctx, req.Name); err == nil {
		return nil, errors.New("role already exists")
	}

	perms, err := encodePermissions(req.Permissions)
	if err != nil {
		return nil, err
	}

	role := &model.Role{
		Name:        req.Name,
		Description: req.Description,
		Permissions: perms,
	}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	resp := toRoleResponse(role, 0)
	return &resp, nil
}

func (s *roleService) Update(ctx context.Context, id string, req UpdateRoleRequest) (*RoleResponse, error) {
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("role not found")
	}

	if req.Name != nil && *req.Name != role.Name {
		if existing, err := s.roles.GetByName(ctx, *req.Name); err == nil && existing.ID != role.ID {
			return nil, errors.New("role name already taken")
		}
		role.Name = *req.Name
	}
	if req.Description != nil {
		role.Description = *req.Description
	}
	if req.Permissions != nil {
		perms, err := encodePermissions(*req.Permissions)
		if err != nil {
			return nil, err
		}
		role.Permissions = perms
	}

	if err := s.roles.Update(ctx, role); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	count, err := s.roles.CountUsers(ctx, role.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to count role users: %w", err)
	}
	resp := toRoleResponse(role, count)
	return &resp, nil
}

func (s *roleService) Delete(ctx context.Context, id string) error {
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return errors.New("role not found")
	}
	if role.IsSystem() {
		return errors.New("system roles cannot be deleted")
	}

	count, err := s.roles.CountUsers(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count role users: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("role is assigned to %d user(s)", count)
	}

	return s.roles.Delete(ctx, id)
}

// --- Helpers ---

func encodePermissions(perms []string) (string, error) {
	if perms == nil {
		perms = []string{}
	}
	raw, err := json.Marshal(perms)
	if err != nil {
		return "", fmt.Errorf("failed to serialize permissions: %w", err)
	}
	return string(raw), nil
}

func toRoleResponse(r *model.Role, userCount int64) RoleResponse {
	return RoleResponse{
		ID:          r.ID.String(),
		Name:        r.Name,
		Description: r.Description,
		Permissions: r.Permissions,
		UserCount:   userCount,
		IsSystem:    r.IsSystem(),
		CreatedAt:   r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
