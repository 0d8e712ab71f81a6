package access

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequires_Matrix(t *testing.T) {
	cases := []struct {
		action Action
		viewer bool
		staff  bool
		admin  bool
	}{
		{ActionViewItems, true, true, true},
		{ActionSearchItems, true, true, true},
		{ActionViewReports, true, true, true},
		{ActionExportReports, true, true, true},
		{ActionAddItem, false, true, true},
		{ActionUpdateItem, false, true, true},
		{ActionRecordSale, false, true, true},
		{ActionDeleteItem, false, false, true},
		{ActionDeleteSale, false, false, true},
		{ActionResetRevenue, false, false, true},
	}
	for _, tc := range cases {
		t.Run(string(tc.action), func(t *testing.T) {
			assert.Equal(t, tc.viewer, Requires(RoleViewer, tc.action) == nil)
			assert.Equal(t, tc.staff, Requires(RoleStaff, tc.action) == nil)
			assert.Equal(t, tc.admin, Requires(RoleAdmin, tc.action) == nil)
		})
	}
}

func TestRequires_Messages(t *testing.T) {
	err := Requires(RoleStaff, ActionResetRevenue)
	assert.True(t, errors.Is(err, ErrForbidden))
	assert.Equal(t, "Admin access required.", err.Error())

	err = Requires(RoleViewer, ActionRecordSale)
	assert.True(t, errors.Is(err, ErrForbidden))
	assert.Equal(t, "Only staff/admin can perform this.", err.Error())

	var denied *DeniedError
	require.True(t, errors.As(err, &denied))
	assert.Equal(t, ActionRecordSale, denied.Action)
}

func TestRequires_UnknownRoleDenied(t *testing.T) {
	assert.ErrorIs(t, Requires(ParseRole("root"), ActionViewItems), ErrForbidden)
}

func TestUnlistedActionNeedsAdmin(t *testing.T) {
	assert.Equal(t, RoleAdmin, RequiredRole(Action("drop_everything")))
}

func TestParseRole_RoundTrip(t *testing.T) {
	for _, r := range []Role{RoleViewer, RoleStaff, RoleAdmin} {
		assert.Equal(t, r, ParseRole(r.String()))
	}
	assert.Equal(t, RoleUnknown, ParseRole(""))
}
