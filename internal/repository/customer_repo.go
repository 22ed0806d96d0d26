package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"delivery-backend/internal/model"

	"gorm.io/gorm"
)

// CustomerRepository defines data access for customer profiles
type CustomerRepository interface {
	GetByUserID(ctx context.Context, userID string) (*model.Customer, error)
	// FindOrCreateByPhone resolves the customer behind a phone number,
	// creating a shadow user + customer profile for walk-in orders.
	FindOrCreateByPhone(ctx context.Context, name, phone, address string) (*model.Customer, error)
	SearchByPhone(ctx context.Context, q string, limit int) ([]model.Customer, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) GetByUserID(ctx context.Context, userID string) (*model.Customer, error) {
	var customer model.Customer
	if err := GetDB(ctx, r.db).Preload("User").First(&customer, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) FindOrCreateByPhone(ctx context.Context, name, phone, address string) (*model.Customer, error) {
	db := GetDB(ctx, r.db)

	var user model.User
	userErr := db.First(&user, "phone = ?", phone).Error

	if userErr == nil {
		var customer model.Customer
		if err := db.Preload("User").First(&customer, "user_id = ?", user.ID).Error; err == nil {
			return &customer, nil
		}
	}

	var role model.Role
	if err := db.First(&role, "name = ?", model.RoleCustomer).Error; err != nil {
		role = model.Role{Name: model.RoleCustomer}
		if err := db.Create(&role).Error; err != nil {
			return nil, fmt.Errorf("failed to create customer role: %w", err)
		}
	}

	if userErr != nil {
		firstName, lastName := splitName(name)
		user = model.User{
			Email:        fmt.Sprintf("customer%d@example.com", time.Now().UnixMilli()),
			PasswordHash: "",
			FirstName:    firstName,
			LastName:     lastName,
			Phone:        phone,
			RoleID:       role.ID,
			Status:       "active",
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create customer user: %w", err)
		}
	}

	customer := model.Customer{UserID: user.ID}
	if address != "" {
		customer.Address = &address
	}
	if err := db.Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	customer.User = user
	return &customer, nil
}

func (r *customerRepository) SearchByPhone(ctx context.Context, q string, limit int) ([]model.Customer, error) {
	var customers []model.Customer
	err := GetDB(ctx, r.db).
		Joins("JOIN users ON users.id = customers.user_id").
		Where("users.phone LIKE ?", "%"+q+"%").
		Preload("User").
		Limit(limit).
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func splitName(name string) (string, string) {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) == 0 {
		return name, ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
