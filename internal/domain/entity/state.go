package entity

// StateCode marks where an account is in its lifecycle.
//
//	Active --soft-delete--> Blocked
//
// Blocked is terminal.
type StateCode string

const (
	// StateActive is the initial state of every new account.
	StateActive StateCode = "Active"
	// StateBlocked hides the account from reads; the row stays in the store.
	StateBlocked StateCode = "Blocked"
)

// String returns the string representation of the StateCode.
func (s StateCode) String() string {
	return string(s)
}

// IsValid checks if the StateCode is a valid value.
func (s StateCode) IsValid() bool {
	switch s {
	case StateActive, StateBlocked:
		return true
	default:
		return false
	}
}

// UserState is the reference row a UserAccount points to.
type UserState struct {
	ID          int
	Code        StateCode
	Description string
}
