package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-accounts/internal/jsonapi"
	"github.com/umalmyha/customer-accounts/internal/validation"
)

// HTTPErrorHandler renders errors as JSON:API error documents
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, doc := errorDocument(err)

	entry := logrus.WithFields(logrus.Fields{
		"method": c.Request().Method,
		"uri":    c.Request().RequestURI,
		"status": status,
	})
	if status >= http.StatusInternalServerError {
		entry.Errorf("request failed - %v", err)
	} else {
		entry.Debugf("request rejected - %v", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = document(c, status, doc)
	}

	if err != nil {
		logrus.Errorf("failed to send error response - %v", err)
	}
}

func errorDocument(err error) (int, *jsonapi.ErrorDocument) {
	var pldErr *validation.PayloadError
	if errors.As(err, &pldErr) {
		violations := pldErr.Violations()
		errs := make([]jsonapi.Error, 0, len(violations))
		for _, v := range violations {
			errs = append(errs, jsonapi.NewParameterError(http.StatusBadRequest, v.Field, v.Message))
		}
		return http.StatusBadRequest, jsonapi.Errors(errs...)
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) && echoErr.Code < http.StatusInternalServerError {
		return echoErr.Code, jsonapi.Errors(jsonapi.NewError(echoErr.Code, fmt.Sprint(echoErr.Message)))
	}

	return http.StatusInternalServerError, jsonapi.Errors(jsonapi.NewError(http.StatusInternalServerError, "Internal server error"))
}
