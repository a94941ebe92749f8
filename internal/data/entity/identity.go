package entity

// Identity is the authentication principal. Contact details and the role
// live on the Profile row created alongside it at registration.
type Identity struct {
	BaseSimple
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
}
