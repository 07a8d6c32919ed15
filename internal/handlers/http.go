package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/customer-accounts/internal/jsonapi"
	"github.com/umalmyha/customer-accounts/internal/resource"
	"github.com/umalmyha/customer-accounts/internal/service"
	"github.com/umalmyha/customer-accounts/internal/view"
)

type identifier struct {
	ID string `param:"id" validate:"required,number"`
}

type association struct {
	identifier
	Association string `param:"association" validate:"required"`
}

// CustomerHTTPHandler is http handler for customer endpoint
type CustomerHTTPHandler struct {
	customerSvc service.CustomerService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(customerSvc service.CustomerService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{customerSvc: customerSvc}
}

// GetAll gets all customers
// @Summary     Get all customers
// @Description Returns collection of customers ordered by id
// @Tags        customers
// @Security	ApiKeyAuth
// @Produce     application/vnd.api+json
// @Success     200    {object} jsonapi.Document
// @Failure     401    {object} jsonapi.ErrorDocument
// @Failure     500    {object} jsonapi.ErrorDocument
// @Router      /api/customers [get]
func (h *CustomerHTTPHandler) GetAll(c echo.Context) error {
	customers, err := h.customerSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return document(c, http.StatusOK, jsonapi.Collection(resource.Customers(customers)))
}

// Get gets customer
// @Summary     Get single customer by id
// @Description Returns single customer with provided id
// @Tags        customers
// @Security	ApiKeyAuth
// @Produce     application/vnd.api+json
// @Param       id     path 	int true "Customer id"
// @Success     200    {object} jsonapi.Document
// @Failure     400    {object} jsonapi.ErrorDocument
// @Failure     404    {object} jsonapi.ErrorDocument
// @Failure     500    {object} jsonapi.ErrorDocument
// @Router      /api/customers/{id} [get]
func (h *CustomerHTTPHandler) Get(c echo.Context) error {
	id, err := customerID(c, &identifier{ID: c.Param("id")})
	if err != nil {
		return err
	}

	customer, err := h.customerSvc.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return document(c, http.StatusOK, jsonapi.Single(resource.Customer(customer)))
}

// GetRelated gets related resources of customer
// @Summary     Get customer subresource
// @Description Returns resources of customer relationship as primary data. Parent and children are full customers, other resources contain identity only
// @Tags        customers
// @Security	ApiKeyAuth
// @Produce     application/vnd.api+json
// @Param       id          path     int    true "Customer id"
// @Param       association path     string true "Relationship name" Enums(parent, children, users, owner, organization, salesRepresentatives, internal_rating, group)
// @Success     200         {object} jsonapi.Document
// @Failure     400         {object} jsonapi.ErrorDocument
// @Failure     404         {object} jsonapi.ErrorDocument
// @Failure     500         {object} jsonapi.ErrorDocument
// @Router      /api/customers/{id}/{association} [get]
func (h *CustomerHTTPHandler) GetRelated(c echo.Context) error {
	a := &association{identifier: identifier{ID: c.Param("id")}, Association: c.Param("association")}
	id, err := customerID(c, a)
	if err != nil {
		return err
	}

	related, err := h.customerSvc.FindRelated(c.Request().Context(), id, a.Association)
	if err != nil {
		return err
	}
	return document(c, http.StatusOK, related.Document())
}

// GetRelationship gets relationship of customer
// @Summary     Get customer relationship
// @Description Returns resource identifiers of customer relationship
// @Tags        customers
// @Security	ApiKeyAuth
// @Produce     application/vnd.api+json
// @Param       id          path     int    true "Customer id"
// @Param       association path     string true "Relationship name" Enums(parent, children, users, owner, organization, salesRepresentatives, internal_rating, group)
// @Success     200         {object} jsonapi.Document
// @Failure     400         {object} jsonapi.ErrorDocument
// @Failure     404         {object} jsonapi.ErrorDocument
// @Failure     500         {object} jsonapi.ErrorDocument
// @Router      /api/customers/{id}/relationships/{association} [get]
func (h *CustomerHTTPHandler) GetRelationship(c echo.Context) error {
	a := &association{identifier: identifier{ID: c.Param("id")}, Association: c.Param("association")}
	id, err := customerID(c, a)
	if err != nil {
		return err
	}

	related, err := h.customerSvc.FindRelationship(c.Request().Context(), id, a.Association)
	if err != nil {
		return err
	}
	return document(c, http.StatusOK, related.IdentifiersDocument())
}

// AccountHTTPHandler is http handler for account view sections
type AccountHTTPHandler struct {
	dispatcher *view.Dispatcher
	renderer   view.Renderer
}

// NewAccountHTTPHandler builds new AccountHTTPHandler
func NewAccountHTTPHandler(dispatcher *view.Dispatcher, renderer view.Renderer) *AccountHTTPHandler {
	return &AccountHTTPHandler{dispatcher: dispatcher, renderer: renderer}
}

// GetSections gets sections of account view
// @Summary     Get account view sections
// @Description Returns blocks rendered for account view page. Customer section is added only if account id is integer and section isn't blank
// @Tags        accounts
// @Security	ApiKeyAuth
// @Produce     json
// @Param       id     path 	string true "Account id"
// @Success     200    {object} view.ScrollData
// @Failure     500    {object} jsonapi.ErrorDocument
// @Router      /api/accounts/{id}/sections [get]
func (h *AccountHTTPHandler) GetSections(c echo.Context) error {
	ctx := view.WithRequest(c.Request().Context(), &echoRequest{c: c})

	e := view.NewBeforeListRenderEvent(h.renderer)
	if err := h.dispatcher.Dispatch(ctx, e); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, e.ScrollData)
}

// echoRequest exposes path parameters first, then query parameters
type echoRequest struct {
	c echo.Context
}

func (r *echoRequest) Param(name string) (string, bool) {
	for _, p := range r.c.ParamNames() {
		if p == name {
			return r.c.Param(name), true
		}
	}

	if values, ok := r.c.QueryParams()[name]; ok && len(values) > 0 {
		return values[0], true
	}
	return "", false
}

func customerID(c echo.Context, params any) (int64, error) {
	if err := c.Validate(params); err != nil {
		return 0, err
	}

	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is out of range")
	}
	return id, nil
}

func document(c echo.Context, status int, doc any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return c.Blob(status, jsonapi.MediaType, b)
}
