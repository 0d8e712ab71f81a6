package service

import "errors"

// Error kinds. Handlers map them to status codes with errors.Is; the
// message shown to the user comes from the UserError wrapping them.
var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateItem      = errors.New("duplicate item id")
	ErrItemNotFound       = errors.New("item not found")
	ErrSaleNotFound       = errors.New("sale not found")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserError is a rejected operation with a message fit for the operator.
type UserError struct {
	Kind error
	Msg  string
}

func (e *UserError) Error() string { return e.Msg }
func (e *UserError) Unwrap() error { return e.Kind }

func userErr(kind error, msg string) error { return &UserError{Kind: kind, Msg: msg} }
