package service

import (
	"context"
	"errors"
	"sync"

	"github.com/umalmyha/customer-accounts/internal/model"
)

// CustomerReference is lazy reference to customer, customer is loaded on first access only
type CustomerReference struct {
	ctx         context.Context
	id          int64
	customerSvc CustomerService

	once     sync.Once
	customer *model.Customer
	err      error
}

// ID returns referenced customer id
func (r *CustomerReference) ID() int64 {
	return r.id
}

// Customer loads referenced customer, nil customer is returned if it doesn't exist
func (r *CustomerReference) Customer() (*model.Customer, error) {
	r.once.Do(func() {
		c, err := r.customerSvc.FindByID(r.ctx, r.id)
		if err != nil {
			if errors.Is(err, ErrCustomerNotFound) {
				return
			}
			r.err = err
			return
		}
		r.customer = c
	})
	return r.customer, r.err
}

// CustomerReferencer builds lazy customer references
type CustomerReferencer struct {
	customerSvc CustomerService
}

// NewCustomerReferencer builds CustomerReferencer
func NewCustomerReferencer(customerSvc CustomerService) *CustomerReferencer {
	return &CustomerReferencer{customerSvc: customerSvc}
}

// Reference returns lazy reference to customer with provided id, nothing is loaded here
func (r *CustomerReferencer) Reference(ctx context.Context, id int64) any {
	return &CustomerReference{
		ctx:         ctx,
		id:          id,
		customerSvc: r.customerSvc,
	}
}
