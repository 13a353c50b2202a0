package service

// UserLocker serializes mutating operations of one user.
type UserLocker interface {
	// Lock blocks until the user's lock is held and returns the release function.
	Lock(userID uint64) (unlock func())
}
