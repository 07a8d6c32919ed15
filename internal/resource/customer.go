package resource

import (
	"encoding/json"

	"github.com/umalmyha/customer-accounts/internal/jsonapi"
	"github.com/umalmyha/customer-accounts/internal/model"
)

// Customer builds customer resource object with all relationships
func Customer(c *model.Customer) *jsonapi.Resource {
	var lifetime any
	if c.Lifetime.Valid {
		lifetime = json.Number(c.Lifetime.Decimal.String())
	}

	rels := make(map[string]jsonapi.Relationship, len(customerRelationships))
	for _, r := range customerRelationships {
		rels[r.Name] = r.Object(c)
	}

	return &jsonapi.Resource{
		Type: TypeCustomers,
		ID:   formatID(c.ID),
		Attributes: map[string]any{
			"name":     c.Name,
			"lifetime": lifetime,
		},
		Relationships: rels,
	}
}

// Customers builds customer resources preserving order
func Customers(customers []*model.Customer) []*jsonapi.Resource {
	res := make([]*jsonapi.Resource, 0, len(customers))
	for _, c := range customers {
		res = append(res, Customer(c))
	}
	return res
}

// Related is resolved customer relationship.
// Customers is filled for relationships targeting customers, Identifiers always.
type Related struct {
	Relationship Relationship
	Customers    []*model.Customer
	Identifiers  []jsonapi.ResourceIdentifier
}

// Document builds subresource document: related resources become primary data
func (r *Related) Document() *jsonapi.Document {
	resources := r.resources()
	if r.Relationship.Cardinality == ToMany {
		return jsonapi.Collection(resources)
	}
	if len(resources) == 0 {
		return jsonapi.Single(nil)
	}
	return jsonapi.Single(resources[0])
}

// IdentifiersDocument builds relationship document: only identifiers of related resources
func (r *Related) IdentifiersDocument() *jsonapi.Document {
	if r.Relationship.Cardinality == ToMany {
		return jsonapi.IdentifierCollection(r.Identifiers)
	}
	if len(r.Identifiers) == 0 {
		return jsonapi.SingleIdentifier(nil)
	}
	ri := r.Identifiers[0]
	return jsonapi.SingleIdentifier(&ri)
}

func (r *Related) resources() []*jsonapi.Resource {
	if r.Relationship.TargetsCustomers() {
		return Customers(r.Customers)
	}

	// attributes of users, organizations, groups and ratings are owned by other services
	res := make([]*jsonapi.Resource, 0, len(r.Identifiers))
	for _, ri := range r.Identifiers {
		res = append(res, &jsonapi.Resource{Type: ri.Type, ID: ri.ID})
	}
	return res
}
