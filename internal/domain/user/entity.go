package user

// User represents an account in the system.
type User struct {
	ID           string `json:"id"`       // ID is the server-generated UUID of the user
	FName        string `json:"fname"`    // FName is the first name
	LName        string `json:"lname"`    // LName is the last name
	Username     string `json:"username"` // Username is the unique login name
	Email        string `json:"email"`    // Email is the unique email address
	PasswordHash string `json:"-"`        // PasswordHash is the bcrypt hash, never serialized
}
