package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-accounts/internal/cache"
	"github.com/umalmyha/customer-accounts/internal/model"
	"github.com/umalmyha/customer-accounts/internal/repository"
	"github.com/umalmyha/customer-accounts/internal/resource"
)

var (
	// ErrCustomerNotFound is raised when customer with requested id doesn't exist
	ErrCustomerNotFound = echo.NewHTTPError(http.StatusNotFound, "customer not found")
	// ErrRelationshipNotFound is raised when customer has no relationship with requested name
	ErrRelationshipNotFound = echo.NewHTTPError(http.StatusNotFound,
		fmt.Sprintf("relationship not found, customer has %s", strings.Join(resource.CustomerRelationshipNames(), ", ")))
)

// CustomerService represents behavior of customer service
type CustomerService interface {
	FindAll(context.Context) ([]*model.Customer, error)
	FindByID(context.Context, int64) (*model.Customer, error)
	FindRelated(context.Context, int64, string) (*resource.Related, error)
	FindRelationship(context.Context, int64, string) (*resource.Related, error)
}

type customerService struct {
	customerRps   repository.CustomerRepository
	customerCache cache.CustomerCacheRepository
}

// NewCustomerService builds customer service, customerCache is optional and can be nil
func NewCustomerService(customerRps repository.CustomerRepository, customerCache cache.CustomerCacheRepository) CustomerService {
	return &customerService{
		customerRps:   customerRps,
		customerCache: customerCache,
	}
}

func (s *customerService) FindAll(ctx context.Context) ([]*model.Customer, error) {
	customers, err := s.customerRps.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read customers - %w", err)
	}
	return customers, nil
}

func (s *customerService) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	if c := s.fromCache(ctx, id); c != nil {
		return s.withHierarchy(ctx, c)
	}

	c, err := s.customerRps.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read customer %d - %w", id, err)
	}

	if c == nil {
		return nil, ErrCustomerNotFound
	}

	s.toCache(ctx, c)
	return c, nil
}

func (s *customerService) FindRelated(ctx context.Context, id int64, name string) (*resource.Related, error) {
	related, err := s.FindRelationship(ctx, id, name)
	if err != nil {
		return nil, err
	}

	if !related.Relationship.TargetsCustomers() || len(related.Identifiers) == 0 {
		return related, nil
	}

	ids := make([]int64, 0, len(related.Identifiers))
	for _, ri := range related.Identifiers {
		relatedID, err := strconv.ParseInt(ri.ID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("customer %d references malformed customer id %q - %w", id, ri.ID, err)
		}
		ids = append(ids, relatedID)
	}

	customers, err := s.customerRps.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s of customer %d - %w", name, id, err)
	}

	if len(customers) != len(ids) {
		return nil, fmt.Errorf("%s of customer %d changed while reading, expected %d customers but got %d", name, id, len(ids), len(customers))
	}

	related.Customers = customers
	return related, nil
}

func (s *customerService) FindRelationship(ctx context.Context, id int64, name string) (*resource.Related, error) {
	c, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rel, ok := resource.LookupCustomerRelationship(name)
	if !ok {
		return nil, ErrRelationshipNotFound
	}

	return &resource.Related{
		Relationship: rel,
		Identifiers:  rel.Identifiers(c),
	}, nil
}

// withHierarchy attaches parent and children of cached customer, they are always read from repository
func (s *customerService) withHierarchy(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	h, err := s.customerRps.FindHierarchy(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read hierarchy of customer %d - %w", c.ID, err)
	}

	if h == nil {
		if err := s.customerCache.DeleteByID(ctx, c.ID); err != nil {
			logrus.Warnf("failed to evict customer %d from cache - %v", c.ID, err)
		}
		return nil, ErrCustomerNotFound
	}

	c.ParentID = h.ParentID
	c.ChildIDs = h.ChildIDs
	return c, nil
}

// fromCache never fails read, cache errors are only logged
func (s *customerService) fromCache(ctx context.Context, id int64) *model.Customer {
	if s.customerCache == nil {
		return nil
	}

	c, err := s.customerCache.FindByID(ctx, id)
	if err != nil {
		logrus.Warnf("failed to read customer %d from cache - %v", id, err)
		return nil
	}
	return c
}

func (s *customerService) toCache(ctx context.Context, c *model.Customer) {
	if s.customerCache == nil {
		return
	}

	if err := s.customerCache.Create(ctx, c); err != nil {
		logrus.Warnf("failed to cache customer %d - %v", c.ID, err)
	}
}
