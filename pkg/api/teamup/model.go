package teamup

type Customer struct {
	FirstName string
	LastName  string
	Email     string
}

type Membership struct {
	// CustomerID is kept untyped because TeamUp answers numeric ids for some
	// accounts and string ids for others.
	CustomerID   any
	MembershipID string
	StartDate    string
}
