package entity

// GroupCode classifies an account.
type GroupCode string

const (
	// GroupAdmin is the administrator group. At most one account may reference it.
	GroupAdmin GroupCode = "Admin"
	// GroupUser is the default group assigned on creation.
	GroupUser GroupCode = "User"
)

// String returns the string representation of the GroupCode.
func (g GroupCode) String() string {
	return string(g)
}

// IsValid checks if the GroupCode is a valid value.
func (g GroupCode) IsValid() bool {
	switch g {
	case GroupAdmin, GroupUser:
		return true
	default:
		return false
	}
}

// UserGroup is the reference row a UserAccount points to.
type UserGroup struct {
	ID          int
	Code        GroupCode
	Description string
}
