package model

import "github.com/shopspring/decimal"

// Customer is customer model entity
type Customer struct {
	ID                     int64
	Name                   string
	Lifetime               decimal.NullDecimal
	ParentID               *int64
	ChildIDs               []int64
	OwnerID                int64
	OrganizationID         int64
	GroupID                *int64
	SalesRepresentativeIDs []int64
	InternalRating         *CustomerRating
	UserIDs                []int64
}

// CustomerHierarchy is position of customer in forest
type CustomerHierarchy struct {
	ParentID *int64
	ChildIDs []int64
}

// IsRoot reports whether customer has no parent
func (c *Customer) IsRoot() bool {
	return c.ParentID == nil
}

// Clone returns deep copy of customer, so snapshots handed out by storage can't be mutated
func (c *Customer) Clone() *Customer {
	cp := *c
	cp.ParentID = cloneID(c.ParentID)
	cp.GroupID = cloneID(c.GroupID)
	cp.ChildIDs = cloneIDs(c.ChildIDs)
	cp.SalesRepresentativeIDs = cloneIDs(c.SalesRepresentativeIDs)
	cp.UserIDs = cloneIDs(c.UserIDs)
	if c.InternalRating != nil {
		r := *c.InternalRating
		cp.InternalRating = &r
	}
	return &cp
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func cloneIDs(ids []int64) []int64 {
	if ids == nil {
		return nil
	}
	cp := make([]int64, len(ids))
	copy(cp, ids)
	return cp
}
