// Package resource maps customers to JSON:API resources
package resource

import (
	"strconv"

	"github.com/umalmyha/customer-accounts/internal/jsonapi"
	"github.com/umalmyha/customer-accounts/internal/model"
)

// Resource types of customer and its related entities
const (
	TypeCustomers       = "customers"
	TypeUsers           = "users"
	TypeOrganizations   = "organizations"
	TypeCustomerGroups  = "customergroups"
	TypeCustomerRatings = "customerratings"
	TypeCustomerUsers   = "customerusers"
)

// Cardinality of relationship
type Cardinality int

const (
	// ToOne relationship references at most one resource
	ToOne Cardinality = iota
	// ToMany relationship references any number of resources
	ToMany
)

// Relationship describes customer relationship
type Relationship struct {
	Name        string
	Cardinality Cardinality
	TargetType  string
	ids         func(*model.Customer) []string
}

// Identifiers returns identifiers of resources related to customer
func (r Relationship) Identifiers(c *model.Customer) []jsonapi.ResourceIdentifier {
	ids := r.ids(c)
	res := make([]jsonapi.ResourceIdentifier, 0, len(ids))
	for _, id := range ids {
		res = append(res, jsonapi.ResourceIdentifier{Type: r.TargetType, ID: id})
	}
	return res
}

// Object builds relationship object embedded into customer resource
func (r Relationship) Object(c *model.Customer) jsonapi.Relationship {
	ris := r.Identifiers(c)
	if r.Cardinality == ToMany {
		return jsonapi.ToMany(ris)
	}
	if len(ris) == 0 {
		return jsonapi.ToOne(nil)
	}
	return jsonapi.ToOne(&ris[0])
}

// TargetsCustomers reports whether relationship points to other customers
func (r Relationship) TargetsCustomers() bool {
	return r.TargetType == TypeCustomers
}

// Relationship names
const (
	RelParent               = "parent"
	RelChildren             = "children"
	RelUsers                = "users"
	RelOwner                = "owner"
	RelOrganization         = "organization"
	RelSalesRepresentatives = "salesRepresentatives"
	RelInternalRating       = "internal_rating"
	RelGroup                = "group"
)

var customerRelationships = []Relationship{
	{Name: RelParent, Cardinality: ToOne, TargetType: TypeCustomers, ids: func(c *model.Customer) []string {
		return optionalID(c.ParentID)
	}},
	{Name: RelChildren, Cardinality: ToMany, TargetType: TypeCustomers, ids: func(c *model.Customer) []string {
		return formatIDs(c.ChildIDs)
	}},
	{Name: RelUsers, Cardinality: ToMany, TargetType: TypeCustomerUsers, ids: func(c *model.Customer) []string {
		return formatIDs(c.UserIDs)
	}},
	{Name: RelOwner, Cardinality: ToOne, TargetType: TypeUsers, ids: func(c *model.Customer) []string {
		return requiredID(c.OwnerID)
	}},
	{Name: RelOrganization, Cardinality: ToOne, TargetType: TypeOrganizations, ids: func(c *model.Customer) []string {
		return requiredID(c.OrganizationID)
	}},
	{Name: RelSalesRepresentatives, Cardinality: ToMany, TargetType: TypeUsers, ids: func(c *model.Customer) []string {
		return formatIDs(c.SalesRepresentativeIDs)
	}},
	{Name: RelInternalRating, Cardinality: ToOne, TargetType: TypeCustomerRatings, ids: func(c *model.Customer) []string {
		if c.InternalRating == nil {
			return nil
		}
		return []string{c.InternalRating.ID()}
	}},
	{Name: RelGroup, Cardinality: ToOne, TargetType: TypeCustomerGroups, ids: func(c *model.Customer) []string {
		return optionalID(c.GroupID)
	}},
}

var customerRelationshipsByName = func() map[string]Relationship {
	m := make(map[string]Relationship, len(customerRelationships))
	for _, r := range customerRelationships {
		m[r.Name] = r
	}
	return m
}()

// CustomerRelationshipNames returns names of all customer relationships
func CustomerRelationshipNames() []string {
	names := make([]string, 0, len(customerRelationships))
	for _, r := range customerRelationships {
		names = append(names, r.Name)
	}
	return names
}

// LookupCustomerRelationship finds customer relationship by name
func LookupCustomerRelationship(name string) (Relationship, bool) {
	r, ok := customerRelationshipsByName[name]
	return r, ok
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func optionalID(id *int64) []string {
	if id == nil {
		return nil
	}
	return []string{formatID(*id)}
}

func requiredID(id int64) []string {
	if id == 0 {
		return nil
	}
	return []string{formatID(id)}
}

func formatIDs(ids []int64) []string {
	res := make([]string, 0, len(ids))
	for _, id := range ids {
		res = append(res, formatID(id))
	}
	return res
}
