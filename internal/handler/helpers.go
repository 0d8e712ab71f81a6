package handler

import (
	"errors"
	"net/http"
	"reflect"

	"revup/internal/access"
	"revup/internal/apierror"
	"revup/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return false
		}
		fields := make(map[string]string)
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError writes the status for a service error. Operator-facing errors
// keep their message; anything else is attached to the context for the
// ErrorHandler to log and answered with the generic 500 envelope.
func respondError(c *gin.Context, err error) {
	var ue *service.UserError
	if !errors.As(err, &ue) {
		if errors.Is(err, access.ErrForbidden) {
			c.JSON(http.StatusForbidden, apierror.New(err.Error()))
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.Internal())
		return
	}

	status := http.StatusBadRequest
	switch {
	case errors.Is(err, service.ErrValidation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrDuplicateItem), errors.Is(err, service.ErrInsufficientStock):
		status = http.StatusConflict
	case errors.Is(err, service.ErrItemNotFound), errors.Is(err, service.ErrSaleNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}
	c.JSON(status, apierror.New(ue.Msg))
}
