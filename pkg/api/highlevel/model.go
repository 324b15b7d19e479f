package highlevel

type Contact struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}
