package model

// RoleAdmin is the only role the site knows about. It exists as a stored
// field so the users collection stays compatible with future role checks.
const RoleAdmin = "admin"

// AdminUser is a dashboard login credential. PasswordHash is a bcrypt hash;
// the plaintext password never leaves the authentication path.
type AdminUser struct {
	Username     string
	PasswordHash string
	Role         string
}
