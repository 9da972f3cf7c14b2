package model

// User is an account holder together with its profile.
type User struct {
	AccountID int64
	ProfileID int64
	Email     string
	Phone     string
	FirstName string
	LastName  string
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
