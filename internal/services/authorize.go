package services

// Decision is the outcome of an ownership check.
type Decision int

const (
	Deny Decision = iota
	Allow
)

// Authorize decides whether the caller may act on a resource owned by
// ownerID. It assumes the resource exists; existence must be established
// before this check so that missing resources surface as not-found rather
// than forbidden.
func Authorize(callerID, ownerID uint64) Decision {
	if callerID == ownerID {
		return Allow
	}
	return Deny
}
