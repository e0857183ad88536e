package model

// Identity is the authenticated caller as resolved from a session.
type Identity struct {
	UserID     int64
	Email      string
	Name       string
	PictureURL *string
}
