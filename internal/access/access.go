// Package access holds the fixed role hierarchy and the permission table that
// gates every mutating action. Handlers never compare role strings themselves;
// they ask Requires.
package access

import "errors"

// Role is the permission level of an authenticated user. Higher values
// include every permission of the lower ones.
type Role int

const (
	RoleUnknown Role = iota
	RoleViewer
	RoleStaff
	RoleAdmin
)

// ParseRole maps the stored role name to a Role. Unknown names map to RoleUnknown.
func ParseRole(s string) Role {
	switch s {
	case "viewer":
		return RoleViewer
	case "staff":
		return RoleStaff
	case "admin":
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

func (r Role) String() string {
	switch r {
	case RoleViewer:
		return "viewer"
	case RoleStaff:
		return "staff"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// Action is a user-facing command subject to a permission check.
type Action string

const (
	ActionViewItems     Action = "view_items"
	ActionSearchItems   Action = "search_items"
	ActionAddItem       Action = "add_item"
	ActionUpdateItem    Action = "update_item"
	ActionDeleteItem    Action = "delete_item"
	ActionRecordSale    Action = "record_sale"
	ActionDeleteSale    Action = "delete_sale"
	ActionResetRevenue  Action = "reset_revenue"
	ActionViewReports   Action = "view_reports"
	ActionExportReports Action = "export_reports"
)

// required is the permission matrix: minimum role per action.
var required = map[Action]Role{
	ActionViewItems:     RoleViewer,
	ActionSearchItems:   RoleViewer,
	ActionViewReports:   RoleViewer,
	ActionExportReports: RoleViewer,
	ActionAddItem:       RoleStaff,
	ActionUpdateItem:    RoleStaff,
	ActionRecordSale:    RoleStaff,
	ActionDeleteItem:    RoleAdmin,
	ActionDeleteSale:    RoleAdmin,
	ActionResetRevenue:  RoleAdmin,
}

// ErrForbidden is wrapped by every denial returned from Requires.
var ErrForbidden = errors.New("forbidden")

// DeniedError is a permission denial. Its message is meant for the user.
type DeniedError struct {
	Action Action
	Msg    string
}

func (e *DeniedError) Error() string { return e.Msg }
func (e *DeniedError) Unwrap() error { return ErrForbidden }

// RequiredRole returns the minimum role for an action. Unlisted actions
// require admin.
func RequiredRole(a Action) Role {
	if r, ok := required[a]; ok {
		return r
	}
	return RoleAdmin
}

// Requires returns nil when role may perform action, or an error wrapping
// ErrForbidden whose message is suitable for showing to the user.
func Requires(role Role, a Action) error {
	if role == RoleUnknown {
		return &DeniedError{Action: a, Msg: "Authentication required."}
	}
	need := RequiredRole(a)
	if role >= need {
		return nil
	}
	if need == RoleAdmin {
		return &DeniedError{Action: a, Msg: "Admin access required."}
	}
	return &DeniedError{Action: a, Msg: "Only staff/admin can perform this."}
}
