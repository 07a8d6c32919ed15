package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	cacheMocks "github.com/umalmyha/customer-accounts/internal/cache/mocks"
	"github.com/umalmyha/customer-accounts/internal/model"
	rpsMocks "github.com/umalmyha/customer-accounts/internal/repository/mocks"
	"github.com/umalmyha/customer-accounts/internal/resource"
)

type customerTestData struct {
	ctx   context.Context
	root  *model.Customer
	child *model.Customer
}

type customerServiceTestSuite struct {
	suite.Suite
	customerSvc       CustomerService
	customerRpsMock   *rpsMocks.CustomerRepository
	customerCacheMock *cacheMocks.CustomerCacheRepository
	testData          *customerTestData
}

func (s *customerServiceTestSuite) SetupSuite() {
	parentID := int64(1)
	groupID := int64(1)
	rating := model.CustomerRating(1)

	s.testData = &customerTestData{
		ctx: context.Background(),
		root: &model.Customer{
			ID:                     1,
			Name:                   "CustomerUser CustomerUser",
			ChildIDs:               []int64{2},
			OwnerID:                1,
			OrganizationID:         1,
			SalesRepresentativeIDs: []int64{},
			UserIDs:                []int64{1},
		},
		child: &model.Customer{
			ID:                     2,
			Name:                   "customer.1",
			ParentID:               &parentID,
			ChildIDs:               []int64{},
			OwnerID:                1,
			OrganizationID:         1,
			GroupID:                &groupID,
			SalesRepresentativeIDs: []int64{1},
			InternalRating:         &rating,
			UserIDs:                []int64{},
		},
	}
}

func (s *customerServiceTestSuite) SetupTest() {
	t := s.T()
	s.customerRpsMock = rpsMocks.NewCustomerRepository(t)
	s.customerCacheMock = cacheMocks.NewCustomerCacheRepository(t)
	s.customerSvc = NewCustomerService(s.customerRpsMock, s.customerCacheMock)
}

// expectCached makes cache return copy of customer without links, links are served by repository
func (s *customerServiceTestSuite) expectCached(c *model.Customer) {
	ctx := s.testData.ctx

	cached := c.Clone()
	cached.ParentID = nil
	cached.ChildIDs = make([]int64, 0)

	s.customerCacheMock.On("FindByID", ctx, c.ID).Return(cached, nil).Once()
	s.customerRpsMock.On("FindHierarchy", ctx, c.ID).Return(&model.CustomerHierarchy{ParentID: c.ParentID, ChildIDs: c.ChildIDs}, nil).Once()
}

func (s *customerServiceTestSuite) TestFindByIDFromCache() {
	ctx := s.testData.ctx
	customer := s.testData.root

	s.expectCached(customer)

	s.T().Log("customer must be found in cache")
	{
		c, err := s.customerSvc.FindByID(ctx, customer.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(customer, c, "cached customer must be returned")
		s.customerRpsMock.AssertNotCalled(s.T(), "FindByID", ctx, customer.ID)
	}
}

func (s *customerServiceTestSuite) TestFindByIDCachedCustomerRemoved() {
	ctx := s.testData.ctx
	customer := s.testData.child

	s.customerCacheMock.On("FindByID", ctx, customer.ID).Return(customer.Clone(), nil).Once()
	s.customerRpsMock.On("FindHierarchy", ctx, customer.ID).Return(nil, nil).Once()
	s.customerCacheMock.On("DeleteByID", ctx, customer.ID).Return(nil).Once()

	s.T().Log("customer is cached, but removed from primary datasource")
	{
		c, err := s.customerSvc.FindByID(ctx, customer.ID)
		s.Assert().ErrorIs(err, ErrCustomerNotFound, "not found error must be raised")
		s.Assert().Nil(c)
		s.customerCacheMock.AssertCalled(s.T(), "DeleteByID", ctx, customer.ID)
	}
}

func (s *customerServiceTestSuite) TestFindByIDCachedHierarchyFailed() {
	ctx := s.testData.ctx
	customer := s.testData.root
	rpsErr := errors.New("connection refused")

	s.customerCacheMock.On("FindByID", ctx, customer.ID).Return(customer.Clone(), nil).Once()
	s.customerRpsMock.On("FindHierarchy", ctx, customer.ID).Return(nil, rpsErr).Once()

	s.T().Log("links of cached customer can't be read")
	{
		_, err := s.customerSvc.FindByID(ctx, customer.ID)
		s.Assert().ErrorIs(err, rpsErr)
	}
}

func (s *customerServiceTestSuite) TestFindByIDNotFound() {
	ctx := s.testData.ctx
	id := int64(404)

	s.customerCacheMock.On("FindByID", ctx, id).Return(nil, nil).Once()
	s.customerRpsMock.On("FindByID", ctx, id).Return(nil, nil).Once()

	s.T().Log("customer is missing in cache and in primary datasource")
	{
		c, err := s.customerSvc.FindByID(ctx, id)
		s.Assert().ErrorIs(err, ErrCustomerNotFound, "not found error must be raised")
		s.Assert().Nil(c, "no customer must be present but it was found")
		s.customerCacheMock.AssertNotCalled(s.T(), "Create", ctx, mock.AnythingOfType("*model.Customer"))
	}
}

func (s *customerServiceTestSuite) TestFindByIDCached() {
	ctx := s.testData.ctx
	customer := s.testData.root

	s.customerCacheMock.On("FindByID", ctx, customer.ID).Return(nil, nil).Once()
	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()
	s.customerCacheMock.On("Create", ctx, customer).Return(nil).Once()

	s.T().Log("customer is not in cache, found in primary datasource and cached")
	{
		c, err := s.customerSvc.FindByID(ctx, customer.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().NotNil(c, "customer must be found")
		s.customerCacheMock.AssertCalled(s.T(), "Create", ctx, mock.AnythingOfType("*model.Customer"))
	}
}

func (s *customerServiceTestSuite) TestFindByIDCacheFailed() {
	ctx := s.testData.ctx
	customer := s.testData.root

	s.customerCacheMock.On("FindByID", ctx, customer.ID).Return(nil, errors.New("cache err")).Once()
	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()
	s.customerCacheMock.On("Create", ctx, customer).Return(errors.New("cache err")).Once()

	s.T().Log("cache is broken, but customer is read from primary datasource")
	{
		c, err := s.customerSvc.FindByID(ctx, customer.ID)
		s.Assert().NoError(err, "cache errors must not be raised")
		s.Assert().Equal(customer, c)
	}
}

func (s *customerServiceTestSuite) TestFindByIDRepositoryFailed() {
	ctx := s.testData.ctx
	customer := s.testData.root
	rpsErr := errors.New("connection refused")

	s.customerCacheMock.On("FindByID", ctx, customer.ID).Return(nil, nil).Once()
	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(nil, rpsErr).Once()

	s.T().Log("repository error must be raised up")
	{
		_, err := s.customerSvc.FindByID(ctx, customer.ID)
		s.Assert().ErrorIs(err, rpsErr)
		s.Assert().NotErrorIs(err, ErrCustomerNotFound, "storage failure isn't not found")
	}
}

func (s *customerServiceTestSuite) TestFindByIDWithoutCache() {
	ctx := s.testData.ctx
	customer := s.testData.root
	customerSvc := NewCustomerService(s.customerRpsMock, nil)

	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()

	s.T().Log("customer is read from primary datasource only")
	{
		c, err := customerSvc.FindByID(ctx, customer.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(customer, c)
	}
}

func (s *customerServiceTestSuite) TestFindAllSuccessfully() {
	ctx := s.testData.ctx
	customers := []*model.Customer{s.testData.root, s.testData.child}

	s.customerRpsMock.On("FindAll", ctx).Return(customers, nil).Once()

	s.T().Log("customers must be found from data source")
	{
		found, err := s.customerSvc.FindAll(ctx)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Len(found, 2)
		s.customerCacheMock.AssertNotCalled(s.T(), "FindByID", ctx, mock.Anything)
	}
}

func (s *customerServiceTestSuite) TestFindRelatedParent() {
	ctx := s.testData.ctx
	root := s.testData.root
	child := s.testData.child

	s.expectCached(child)
	s.customerRpsMock.On("FindByIDs", ctx, []int64{1}).Return([]*model.Customer{root}, nil).Once()

	s.T().Log("parent must be loaded as full customer")
	{
		related, err := s.customerSvc.FindRelated(ctx, child.ID, resource.RelParent)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(resource.RelParent, related.Relationship.Name)
		s.Assert().Equal([]*model.Customer{root}, related.Customers)
		s.Assert().Len(related.Identifiers, 1)
	}
}

func (s *customerServiceTestSuite) TestFindRelatedParentOfRoot() {
	ctx := s.testData.ctx
	root := s.testData.root

	s.expectCached(root)

	s.T().Log("root has no parent, nothing must be loaded")
	{
		related, err := s.customerSvc.FindRelated(ctx, root.ID, resource.RelParent)
		s.Assert().NoError(err, "null relationship isn't an error")
		s.Assert().Empty(related.Customers)
		s.Assert().Empty(related.Identifiers)
		s.customerRpsMock.AssertNotCalled(s.T(), "FindByIDs", ctx, mock.Anything)
	}
}

func (s *customerServiceTestSuite) TestFindRelatedChildren() {
	ctx := s.testData.ctx
	root := s.testData.root
	child := s.testData.child

	s.expectCached(root)
	s.customerRpsMock.On("FindByIDs", ctx, []int64{2}).Return([]*model.Customer{child}, nil).Once()

	s.T().Log("children must be loaded as full customers")
	{
		related, err := s.customerSvc.FindRelated(ctx, root.ID, resource.RelChildren)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal([]*model.Customer{child}, related.Customers)
	}
}

func (s *customerServiceTestSuite) TestFindRelatedNonCustomerTarget() {
	ctx := s.testData.ctx
	child := s.testData.child

	s.expectCached(child)

	s.T().Log("owner is returned as identifier only")
	{
		related, err := s.customerSvc.FindRelated(ctx, child.ID, resource.RelOwner)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Empty(related.Customers)
		s.Assert().Equal("users", related.Identifiers[0].Type)
		s.Assert().Equal("1", related.Identifiers[0].ID)
		s.customerRpsMock.AssertNotCalled(s.T(), "FindByIDs", ctx, mock.Anything)
	}
}

func (s *customerServiceTestSuite) TestFindRelatedUnknownRelationship() {
	ctx := s.testData.ctx
	child := s.testData.child

	s.expectCached(child)

	s.T().Log("unknown relationship must be reported as relationship not found")
	{
		_, err := s.customerSvc.FindRelated(ctx, child.ID, "accounts")
		s.Assert().ErrorIs(err, ErrRelationshipNotFound)
		s.Assert().NotErrorIs(err, ErrCustomerNotFound)
	}
}

func (s *customerServiceTestSuite) TestFindRelatedUnknownCustomer() {
	ctx := s.testData.ctx
	id := int64(404)

	s.customerCacheMock.On("FindByID", ctx, id).Return(nil, nil).Once()
	s.customerRpsMock.On("FindByID", ctx, id).Return(nil, nil).Once()

	s.T().Log("unknown customer must be reported as customer not found")
	{
		_, err := s.customerSvc.FindRelated(ctx, id, resource.RelParent)
		s.Assert().ErrorIs(err, ErrCustomerNotFound)
		s.Assert().NotErrorIs(err, ErrRelationshipNotFound)
	}
}

func (s *customerServiceTestSuite) TestFindRelationship() {
	ctx := s.testData.ctx
	root := s.testData.root

	s.expectCached(root)

	s.T().Log("relationship contains identifiers only")
	{
		related, err := s.customerSvc.FindRelationship(ctx, root.ID, resource.RelChildren)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Nil(related.Customers, "customers must not be loaded")
		s.Assert().Equal("2", related.Identifiers[0].ID)
		s.customerRpsMock.AssertNotCalled(s.T(), "FindByIDs", ctx, mock.Anything)
	}
}

func (s *customerServiceTestSuite) TestCustomerReference() {
	ctx := s.testData.ctx
	root := s.testData.root
	referencer := NewCustomerReferencer(NewCustomerService(s.customerRpsMock, nil))

	s.T().Log("reference doesn't load customer")
	ref, ok := referencer.Reference(ctx, root.ID).(*CustomerReference)
	s.Require().True(ok, "reference must be customer reference")
	s.customerRpsMock.AssertNotCalled(s.T(), "FindByID", ctx, root.ID)

	s.customerRpsMock.On("FindByID", ctx, root.ID).Return(root, nil).Once()

	s.T().Log("customer is loaded once on first access")
	{
		for i := 0; i < 2; i++ {
			c, err := ref.Customer()
			s.Assert().NoError(err)
			s.Assert().Equal(root, c)
		}
		s.customerRpsMock.AssertNumberOfCalls(s.T(), "FindByID", 1)
	}

	s.T().Log("reference to missing customer resolves to nil")
	{
		s.customerRpsMock.On("FindByID", ctx, int64(404)).Return(nil, nil).Once()

		missing := referencer.Reference(ctx, 404).(*CustomerReference)
		c, err := missing.Customer()
		s.Assert().NoError(err, "missing customer isn't an error for reference")
		s.Assert().Nil(c)
		s.Assert().Equal(int64(404), missing.ID())
	}
}

// start customer service test suite
func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(customerServiceTestSuite))
}
