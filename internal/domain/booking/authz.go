package booking

import "github.com/google/uuid"

// Pure authorization predicates shared by the lifecycle engine and the
// item display path.

// CanCreate: the item owner may not book their own item.
func CanCreate(itemOwnerID, bookerID uuid.UUID) bool {
	return itemOwnerID != bookerID
}

// CanDecide: only the item owner approves or rejects.
func CanDecide(itemOwnerID, actorID uuid.UUID) bool {
	return itemOwnerID == actorID
}

// CanView: a single booking is visible to the booker and the item owner.
func CanView(itemOwnerID, bookerID, actorID uuid.UUID) bool {
	return actorID == bookerID || actorID == itemOwnerID
}
