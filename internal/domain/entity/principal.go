package entity

// Principal is the authenticated identity produced by a successful
// authorization check. It is never persisted by this service.
type Principal struct {
	UserID int64
	Role   Role
}
