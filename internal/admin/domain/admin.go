package domain

// Admin is a dashboard operator. Src is the storage key of the profile
// photo, resolved to a URL at login.
type Admin struct {
	ID           string
	User         string
	Email        string
	PasswordHash string
	Src          string
}
