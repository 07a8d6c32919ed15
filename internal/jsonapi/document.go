// Package jsonapi contains JSON:API document primitives
package jsonapi

// MediaType is JSON:API media type
const MediaType = "application/vnd.api+json"

// ResourceIdentifier identifies related resource
type ResourceIdentifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Relationship is relationship object, Data is either *ResourceIdentifier (null when nil) or []ResourceIdentifier
type Relationship struct {
	Data any `json:"data"`
}

// ToOne builds to-one relationship, nil identifier is encoded as null
func ToOne(ri *ResourceIdentifier) Relationship {
	return Relationship{Data: ri}
}

// ToMany builds to-many relationship, it is never encoded as null
func ToMany(ris []ResourceIdentifier) Relationship {
	if ris == nil {
		ris = make([]ResourceIdentifier, 0)
	}
	return Relationship{Data: ris}
}

// Resource is resource object
type Resource struct {
	Type          string                  `json:"type"`
	ID            string                  `json:"id"`
	Attributes    map[string]any          `json:"attributes,omitempty"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`
}

// Identifier returns identifier of resource
func (r *Resource) Identifier() ResourceIdentifier {
	return ResourceIdentifier{Type: r.Type, ID: r.ID}
}

// Document is top-level document, Data is single resource, collection or null
type Document struct {
	Data any `json:"data"`
}

// Single builds document with single resource, nil resource is encoded as null
func Single(r *Resource) *Document {
	if r == nil {
		return &Document{Data: nil}
	}
	return &Document{Data: r}
}

// Collection builds document with collection of resources
func Collection(rs []*Resource) *Document {
	if rs == nil {
		rs = make([]*Resource, 0)
	}
	return &Document{Data: rs}
}

// SingleIdentifier builds document with single resource identifier or null
func SingleIdentifier(ri *ResourceIdentifier) *Document {
	if ri == nil {
		return &Document{Data: nil}
	}
	return &Document{Data: ri}
}

// IdentifierCollection builds document with collection of resource identifiers
func IdentifierCollection(ris []ResourceIdentifier) *Document {
	if ris == nil {
		ris = make([]ResourceIdentifier, 0)
	}
	return &Document{Data: ris}
}
