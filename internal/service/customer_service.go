package service

import (
	"context"
	"fmt"
	"strings"

	"delivery-backend/internal/repository"
)

const customerSearchLimit = 10

type CustomerSearchResult struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerService serves customer lookups for the order form autocomplete
type CustomerService interface {
	// Search matches customers by phone substring; queries shorter than
	// 3 characters return an empty set.
	Search(ctx context.Context, q string) ([]CustomerSearchResult, error)
}

type customerService struct {
	customers repository.CustomerRepository
}

func NewCustomerService(customers repository.CustomerRepository) CustomerService {
	return &customerService{customers: customers}
}

func (s *customerService) Search(ctx context.Context, q string) ([]CustomerSearchResult, error) {
	q = strings.TrimSpace(q)
	if len(q) < 3 {
		return []CustomerSearchResult{}, nil
	}

	customers, err := s.customers.SearchByPhone(ctx, q, customerSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}

	res := make([]CustomerSearchResult, 0, len(customers))
	for _, cust := range customers {
		address := ""
		if cust.Address != nil {
			address = *cust.Address
		}
		res = append(res, CustomerSearchResult{
			ID:      cust.ID.String(),
			Name:    strings.TrimSpace(cust.User.FirstName + " " + cust.User.LastName),
			Phone:   cust.User.Phone,
			Address: address,
		})
	}
	return res, nil
}
