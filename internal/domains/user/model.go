package user

// User is an account created through the signup path. Password holds the
// bcrypt hash, never the plaintext, and is not serialized.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
