package constants

const (
	MaxNameLen = 100
)

// Identifier kinds accepted when looking up a user.
const (
	IdentifierEmail  = "email"
	IdentifierPhone  = "phone"
	IdentifierUserID = "userId"
)
