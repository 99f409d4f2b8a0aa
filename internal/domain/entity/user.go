package entity

// RemoteUser is a transient copy of a user record owned by the remote LMS.
// It is re-fetched on every workflow invocation and never persisted locally.
type RemoteUser struct {
	ID        string // LMS user identifier, used for enrollment calls and write-back.
	Email     string
	FirstName string
	LastName  string
}

// NewUser carries the attributes for provisioning a user on the remote LMS.
// The LMS assigns the identifier; locale, timezone and level defaults are
// fixed by the client.
type NewUser struct {
	Email     string
	FirstName string
	LastName  string
}

// Subject is the person a record enrolls, selected from either the requester
// or the trainee field mapping. It exists only for the duration of one
// record's processing.
type Subject struct {
	Email     string
	FirstName string
	LastName  string
	SID       string
	Affiliate string
}
