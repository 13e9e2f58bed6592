package domain

// Identity is the verified account identity returned by the identity
// provider at login. Email is the stable key; we never persist the identity
// itself, only the users row the client chooses to create.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
