package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/umalmyha/customer-accounts/internal/model"
)

type memoryCustomerRepository struct {
	graph *model.CustomerGraph
}

// NewMemoryCustomerRepository builds repository on top of immutable customer graph
func NewMemoryCustomerRepository(g *model.CustomerGraph) CustomerRepository {
	return &memoryCustomerRepository{graph: g}
}

func (r *memoryCustomerRepository) FindAll(_ context.Context) ([]*model.Customer, error) {
	return r.graph.All(), nil
}

func (r *memoryCustomerRepository) FindByID(_ context.Context, id int64) (*model.Customer, error) {
	c, ok := r.graph.Get(id)
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *memoryCustomerRepository) FindHierarchy(_ context.Context, id int64) (*model.CustomerHierarchy, error) {
	c, ok := r.graph.Get(id)
	if !ok {
		return nil, nil
	}
	return &model.CustomerHierarchy{ParentID: c.ParentID, ChildIDs: c.ChildIDs}, nil
}

func (r *memoryCustomerRepository) FindByIDs(_ context.Context, ids []int64) ([]*model.Customer, error) {
	sorted := make([]int64, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	customers := make([]*model.Customer, 0, len(sorted))
	for i, id := range sorted {
		if i > 0 && sorted[i-1] == id {
			continue
		}
		if c, ok := r.graph.Get(id); ok {
			customers = append(customers, c)
		}
	}
	return customers, nil
}

// CustomerFixture is customer entry of fixture file
type CustomerFixture struct {
	ID                     int64            `json:"id"`
	Name                   string           `json:"name"`
	Lifetime               *decimal.Decimal `json:"lifetime"`
	ParentID               *int64           `json:"parentId"`
	OwnerID                int64            `json:"ownerId"`
	OrganizationID         int64            `json:"organizationId"`
	GroupID                *int64           `json:"groupId"`
	SalesRepresentativeIDs []int64          `json:"salesRepresentativeIds"`
	InternalRating         *int             `json:"internalRating"`
	UserIDs                []int64          `json:"userIds"`
}

// LoadCustomerGraph reads customers fixture file and builds graph from it
func LoadCustomerGraph(path string) (*model.CustomerGraph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read customers fixture file - %w", err)
	}

	var fixtures []CustomerFixture
	if err := json.Unmarshal(raw, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to parse customers fixture file - %w", err)
	}

	return NewCustomerGraphFromFixtures(fixtures)
}

// NewCustomerGraphFromFixtures converts fixtures into customer graph
func NewCustomerGraphFromFixtures(fixtures []CustomerFixture) (*model.CustomerGraph, error) {
	customers := make([]*model.Customer, 0, len(fixtures))
	for _, f := range fixtures {
		c := &model.Customer{
			ID:                     f.ID,
			Name:                   f.Name,
			ParentID:               f.ParentID,
			OwnerID:                f.OwnerID,
			OrganizationID:         f.OrganizationID,
			GroupID:                f.GroupID,
			SalesRepresentativeIDs: nonNilIDs(f.SalesRepresentativeIDs),
			UserIDs:                nonNilIDs(f.UserIDs),
		}

		if f.Lifetime != nil {
			c.Lifetime = decimal.NewNullDecimal(*f.Lifetime)
		}

		if f.InternalRating != nil {
			r, err := model.NewCustomerRating(*f.InternalRating)
			if err != nil {
				return nil, fmt.Errorf("fixture of customer %d is invalid - %w", f.ID, err)
			}
			c.InternalRating = &r
		}

		customers = append(customers, c)
	}

	return model.NewCustomerGraph(customers)
}
