package user

// Role ranks accounts. Guests book for themselves; operators and admins run the front desk.
type Role string

const (
	RoleGuest    Role = "guest"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

var roleLevel = map[Role]int{
	RoleGuest:    1,
	RoleOperator: 2,
	RoleAdmin:    3,
}

func NewRole(s string) (Role, error) {
	if !Role(s).IsValid() {
		return "", ErrInvalidRole
	}
	return Role(s), nil
}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	_, ok := roleLevel[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. Unknown roles never qualify.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleLevel[r]
	want, minOK := roleLevel[min]
	return ok && minOK && have >= want
}

// CanManageBookings covers listing every reservation and moving it through its lifecycle.
func (r Role) CanManageBookings() bool {
	return r.AtLeast(RoleOperator)
}
