package model

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidGraph is raised when customers can't form a forest
var ErrInvalidGraph = errors.New("invalid customer graph")

// CustomerGraph is an arena of customers keyed by id with index from parent id to children ids.
// Children of a customer are always derived from the index, never stored independently.
type CustomerGraph struct {
	customers map[int64]*Customer
	order     []int64
	children  map[int64][]int64
}

// NewCustomerGraph validates customers and builds graph. ChildIDs of provided customers are ignored.
func NewCustomerGraph(customers []*Customer) (*CustomerGraph, error) {
	g := &CustomerGraph{
		customers: make(map[int64]*Customer, len(customers)),
		order:     make([]int64, 0, len(customers)),
		children:  make(map[int64][]int64),
	}

	for _, c := range customers {
		if c == nil {
			return nil, fmt.Errorf("%w - nil customer", ErrInvalidGraph)
		}
		if _, ok := g.customers[c.ID]; ok {
			return nil, fmt.Errorf("%w - duplicate customer id %d", ErrInvalidGraph, c.ID)
		}
		if c.OwnerID == 0 {
			return nil, fmt.Errorf("%w - customer %d has no owner", ErrInvalidGraph, c.ID)
		}
		if c.OrganizationID == 0 {
			return nil, fmt.Errorf("%w - customer %d has no organization", ErrInvalidGraph, c.ID)
		}
		if c.InternalRating != nil && !c.InternalRating.Valid() {
			return nil, fmt.Errorf("%w - customer %d has rating %d out of range", ErrInvalidGraph, c.ID, *c.InternalRating)
		}

		cp := c.Clone()
		cp.ChildIDs = nil
		g.customers[c.ID] = cp
		g.order = append(g.order, c.ID)
	}

	sort.Slice(g.order, func(i, j int) bool { return g.order[i] < g.order[j] })

	for _, id := range g.order {
		c := g.customers[id]
		if c.IsRoot() {
			continue
		}
		if _, ok := g.customers[*c.ParentID]; !ok {
			return nil, fmt.Errorf("%w - parent %d of customer %d doesn't exist", ErrInvalidGraph, *c.ParentID, id)
		}
		g.children[*c.ParentID] = append(g.children[*c.ParentID], id)
	}

	if err := g.verifyAcyclic(); err != nil {
		return nil, err
	}

	for id, c := range g.customers {
		c.ChildIDs = g.Children(id)
	}
	return g, nil
}

func (g *CustomerGraph) verifyAcyclic() error {
	// 0 - not visited, 1 - on current parent chain, 2 - proven to reach a root
	state := make(map[int64]int, len(g.customers))

	for _, id := range g.order {
		chain := make([]int64, 0)
		cur := id
		for {
			if state[cur] == 2 {
				break
			}
			if state[cur] == 1 {
				return fmt.Errorf("%w - customer %d is its own ancestor", ErrInvalidGraph, cur)
			}
			state[cur] = 1
			chain = append(chain, cur)

			parent := g.customers[cur].ParentID
			if parent == nil {
				break
			}
			cur = *parent
		}

		for _, c := range chain {
			state[c] = 2
		}
	}
	return nil
}

// Len returns number of customers in graph
func (g *CustomerGraph) Len() int {
	return len(g.order)
}

// Get returns copy of customer with children populated
func (g *CustomerGraph) Get(id int64) (*Customer, bool) {
	c, ok := g.customers[id]
	if !ok {
		return nil, false
	}
	return c.Clone(), true
}

// All returns copies of all customers ordered by id
func (g *CustomerGraph) All() []*Customer {
	res := make([]*Customer, 0, len(g.order))
	for _, id := range g.order {
		res = append(res, g.customers[id].Clone())
	}
	return res
}

// Children returns ids of customers which reference provided one as parent, ordered by id
func (g *CustomerGraph) Children(id int64) []int64 {
	ids := g.children[id]
	res := make([]int64, len(ids))
	copy(res, ids)
	return res
}

// Roots returns ids of customers without parent
func (g *CustomerGraph) Roots() []int64 {
	res := make([]int64, 0)
	for _, id := range g.order {
		if g.customers[id].IsRoot() {
			res = append(res, id)
		}
	}
	return res
}
