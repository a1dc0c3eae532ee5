package domain

// EntityType identifies which lifecycle domain a record belongs to.
// Two records are the same lifecycle entity iff entity type and ID match.
type EntityType string

const (
	EntityInquiry    EntityType = "INQUIRY"
	EntityCarRequest EntityType = "CAR_REQUEST"
	EntityCarListing EntityType = "CAR_LISTING"
)

// Role distinguishes the two sides of the marketplace.
type Role string

const (
	RoleBuyer  Role = "BUYER"
	RoleDealer Role = "DEALER"
)

// UserRef is the injected "current user" identity. Authentication itself is
// an external collaborator; the engine only ever sees this pair.
type UserRef struct {
	ID   string `json:"id"` // UUID
	Role Role   `json:"role"`
}
