// Package cache keeps customers in redis
package cache

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/umalmyha/customer-accounts/internal/model"
)

// cachedCustomer is msgpack representation of customer, lifetime is kept as string to preserve precision.
// Parent and children are links to other customers and are never cached.
type cachedCustomer struct {
	ID                     int64   `msgpack:"id"`
	Name                   string  `msgpack:"name"`
	Lifetime               *string `msgpack:"lifetime"`
	OwnerID                int64   `msgpack:"ownerId"`
	OrganizationID         int64   `msgpack:"organizationId"`
	GroupID                *int64  `msgpack:"groupId"`
	SalesRepresentativeIDs []int64 `msgpack:"salesRepresentativeIds"`
	InternalRating         *int    `msgpack:"internalRating"`
	UserIDs                []int64 `msgpack:"userIds"`
}

func newCachedCustomer(c *model.Customer) *cachedCustomer {
	cc := &cachedCustomer{
		ID:                     c.ID,
		Name:                   c.Name,
		OwnerID:                c.OwnerID,
		OrganizationID:         c.OrganizationID,
		GroupID:                c.GroupID,
		SalesRepresentativeIDs: c.SalesRepresentativeIDs,
		UserIDs:                c.UserIDs,
	}

	if c.Lifetime.Valid {
		l := c.Lifetime.Decimal.String()
		cc.Lifetime = &l
	}

	if c.InternalRating != nil {
		r := int(*c.InternalRating)
		cc.InternalRating = &r
	}
	return cc
}

func (cc *cachedCustomer) customer() (*model.Customer, error) {
	c := &model.Customer{
		ID:                     cc.ID,
		Name:                   cc.Name,
		ChildIDs:               make([]int64, 0),
		OwnerID:                cc.OwnerID,
		OrganizationID:         cc.OrganizationID,
		GroupID:                cc.GroupID,
		SalesRepresentativeIDs: nonNil(cc.SalesRepresentativeIDs),
		UserIDs:                nonNil(cc.UserIDs),
	}

	if cc.Lifetime != nil {
		d, err := decimal.NewFromString(*cc.Lifetime)
		if err != nil {
			return nil, fmt.Errorf("cached customer %d has malformed lifetime - %w", cc.ID, err)
		}
		c.Lifetime = decimal.NewNullDecimal(d)
	}

	if cc.InternalRating != nil {
		r, err := model.NewCustomerRating(*cc.InternalRating)
		if err != nil {
			return nil, fmt.Errorf("cached customer %d has invalid internal rating - %w", cc.ID, err)
		}
		c.InternalRating = &r
	}
	return c, nil
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return make([]int64, 0)
	}
	return ids
}
