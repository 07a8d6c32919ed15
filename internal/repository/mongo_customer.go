package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/umalmyha/customer-accounts/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoDatabase           = "customers"
	mongoCustomerCollection = "customers"
)

type mongoCustomer struct {
	ID                     int64                 `bson:"_id"`
	Name                   string                `bson:"name"`
	Lifetime               *primitive.Decimal128 `bson:"lifetime"`
	ParentID               *int64                `bson:"parentId"`
	OwnerID                int64                 `bson:"ownerId"`
	OrganizationID         int64                 `bson:"organizationId"`
	GroupID                *int64                `bson:"groupId"`
	SalesRepresentativeIDs []int64               `bson:"salesRepresentativeIds"`
	InternalRating         *int                  `bson:"internalRating"`
	UserIDs                []int64               `bson:"userIds"`
}

func newMongoCustomer(c *model.Customer) (*mongoCustomer, error) {
	doc := &mongoCustomer{
		ID:                     c.ID,
		Name:                   c.Name,
		ParentID:               c.ParentID,
		OwnerID:                c.OwnerID,
		OrganizationID:         c.OrganizationID,
		GroupID:                c.GroupID,
		SalesRepresentativeIDs: c.SalesRepresentativeIDs,
		UserIDs:                c.UserIDs,
	}

	if c.Lifetime.Valid {
		d, err := primitive.ParseDecimal128(c.Lifetime.Decimal.String())
		if err != nil {
			return nil, fmt.Errorf("failed to convert lifetime of customer %d - %w", c.ID, err)
		}
		doc.Lifetime = &d
	}

	if c.InternalRating != nil {
		r := int(*c.InternalRating)
		doc.InternalRating = &r
	}
	return doc, nil
}

func (m *mongoCustomer) customer() (*model.Customer, error) {
	c := &model.Customer{
		ID:                     m.ID,
		Name:                   m.Name,
		ParentID:               m.ParentID,
		OwnerID:                m.OwnerID,
		OrganizationID:         m.OrganizationID,
		GroupID:                m.GroupID,
		ChildIDs:               make([]int64, 0),
		SalesRepresentativeIDs: nonNilIDs(m.SalesRepresentativeIDs),
		UserIDs:                nonNilIDs(m.UserIDs),
	}

	if m.Lifetime != nil {
		d, err := decimal.NewFromString(m.Lifetime.String())
		if err != nil {
			return nil, fmt.Errorf("customer %d has malformed lifetime - %w", m.ID, err)
		}
		c.Lifetime = decimal.NewNullDecimal(d)
	}

	if m.InternalRating != nil {
		r, err := model.NewCustomerRating(*m.InternalRating)
		if err != nil {
			return nil, fmt.Errorf("customer %d has invalid internal rating - %w", m.ID, err)
		}
		c.InternalRating = &r
	}
	return c, nil
}

type mongoCustomerRepository struct {
	client *mongo.Client
}

// NewMongoCustomerRepository builds mongo customer repository
func NewMongoCustomerRepository(client *mongo.Client) CustomerRepository {
	return &mongoCustomerRepository{client: client}
}

func (r *mongoCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	customers, err := r.find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	g, err := model.NewCustomerGraph(customers)
	if err != nil {
		return nil, err
	}
	return g.All(), nil
}

func (r *mongoCustomerRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	var doc mongoCustomer
	if err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	c, err := doc.customer()
	if err != nil {
		return nil, err
	}

	if err := r.attachChildren(ctx, bson.M{"parentId": id}, map[int64]*model.Customer{id: c}); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *mongoCustomerRepository) FindByIDs(ctx context.Context, ids []int64) ([]*model.Customer, error) {
	if len(ids) == 0 {
		return make([]*model.Customer, 0), nil
	}

	customers, err := r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*model.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	if err := r.attachChildren(ctx, bson.M{"parentId": bson.M{"$in": ids}}, byID); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *mongoCustomerRepository) FindHierarchy(ctx context.Context, id int64) (*model.CustomerHierarchy, error) {
	var doc struct {
		ParentID *int64 `bson:"parentId"`
	}

	opts := options.FindOne().SetProjection(bson.M{"parentId": 1})
	if err := r.collection().FindOne(ctx, bson.M{"_id": id}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	c := &model.Customer{ID: id, ParentID: doc.ParentID, ChildIDs: make([]int64, 0)}
	if err := r.attachChildren(ctx, bson.M{"parentId": id}, map[int64]*model.Customer{id: c}); err != nil {
		return nil, err
	}
	return &model.CustomerHierarchy{ParentID: c.ParentID, ChildIDs: c.ChildIDs}, nil
}

// Save inserts or replaces customer document, children are derived and never stored
func (r *mongoCustomerRepository) Save(ctx context.Context, c *model.Customer) error {
	doc, err := newMongoCustomer(c)
	if err != nil {
		return err
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection().ReplaceOne(ctx, bson.M{"_id": c.ID}, doc, opts); err != nil {
		return err
	}
	return nil
}

func (r *mongoCustomerRepository) find(ctx context.Context, filter bson.M) ([]*model.Customer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	customers := make([]*model.Customer, 0)
	for cursor.Next(ctx) {
		var doc mongoCustomer
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}

		c, err := doc.customer()
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *mongoCustomerRepository) attachChildren(ctx context.Context, filter bson.M, parents map[int64]*model.Customer) error {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetProjection(bson.M{"_id": 1, "parentId": 1})

	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var child struct {
			ID       int64 `bson:"_id"`
			ParentID int64 `bson:"parentId"`
		}
		if err := cursor.Decode(&child); err != nil {
			return err
		}

		if p, ok := parents[child.ParentID]; ok {
			p.ChildIDs = append(p.ChildIDs, child.ID)
		}
	}
	return cursor.Err()
}

func (r *mongoCustomerRepository) collection() *mongo.Collection {
	return r.client.Database(mongoDatabase).Collection(mongoCustomerCollection)
}

func nonNilIDs(ids []int64) []int64 {
	if ids == nil {
		return make([]int64, 0)
	}
	return ids
}
