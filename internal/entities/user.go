package entities

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	IsAdmin      bool
	Street       string
	Apartment    string
	Zip          string
	City         string
	Country      string
}

// UserRef is the part of a user embedded into order responses.
type UserRef struct {
	ID    string
	Name  string
	Email string
}
