package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"delivery-backend/internal/model"
	"delivery-backend/internal/rbac"
	"delivery-backend/internal/repository"
	"delivery-backend/internal/session"

	"golang.org/x/crypto/bcrypt"
)

// --- DTOs ---

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Password  *string `json:"password" binding:"omitempty,min=6"`
}

// MeResponse mirrors what the front-end auth store consumes after login
type MeResponse struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Permissions []string `json:"permissions"`
}

type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Phone       string     `json:"phone"`
	Role        model.Role `json:"role"`
	Permissions string     `json:"permissions"`
	CreatedAt   string     `json:"created_at"`
}

// --- Interface ---

type UserService interface {
	// Login validates credentials and returns the user together with a
	// freshly signed session token.
	Login(ctx context.Context, req LoginRequest, ip, userAgent string) (*model.User, string, error)
	Me(user *model.User) MeResponse
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) error
	CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error)
	ListUsers(ctx context.Context, offset, limit int) ([]UserResponse, int64, error)
}

type userService struct {
	users repository.UserRepository
	roles repository.RoleRepository
	codec *session.Codec
	logs  LogService
}

func NewUserService(users repository.UserRepository, roles repository.RoleRepository, codec *session.Codec, logs LogService) UserService {
	return &userService{users: users, roles: roles, codec: codec, logs: logs}
}

// --- Implementation ---

func (s *userService) Login(ctx context.Context, req LoginRequest, ip, userAgent string) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", errors.New("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", errors.New("invalid email or password")
	}

	token, err := s.codec.Sign(map[string]any{"uid": user.ID.String()})
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign session: %w", err)
	}

	s.logs.Record(ctx, &user.ID, model.ActionLogin, "user", user.ID.String(), nil, ip, userAgent)

	return user, token, nil
}

func (s *userService) Me(user *model.User) MeResponse {
	perms := rbac.ParsePermissions(user.Role.Permissions)
	if perms == nil {
		perms = []string{}
	}
	return MeResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		Role:        user.Role.Name,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Permissions: perms,
	}
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return errors.New("user not found")
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return errors.New("failed to hash password")
		}
		user.PasswordHash = string(hash)
	}

	return s.users.Update(ctx, user)
}

func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, errors.New("user already exists")
	}

	roleName := req.Role
	if roleName == "" {
		roleName = model.RoleCustomer
	}
	role, err := s.roles.GetByName(ctx, roleName)
	if err != nil {
		role = &model.Role{Name: roleName}
		if err := s.roles.Create(ctx, role); err != nil {
			return nil, fmt.Errorf("failed to create role '%s': %w", roleName, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		RoleID:       role.ID,
		Status:       "active",
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.Role = *role

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) ListUsers(ctx context.Context, offset, limit int) ([]UserResponse, int64, error) {
	users, total, err := s.users.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch users: %w", err)
	}

	res := make([]UserResponse, 0, len(users))
	for i := range users {
		res = append(res, toUserResponse(&users[i]))
	}
	return res, total, nil
}

// --- Helpers ---

func toUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		Role:        u.Role,
		Permissions: u.Role.Permissions,
		CreatedAt:   u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
