package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already in use")

	// Item errors
	ErrItemNotFound = errors.New("item not found")
	ErrNotItemOwner = errors.New("item can only be edited by its owner")

	// Request errors
	ErrRequestNotFound = errors.New("item request not found")

	// Booking lifecycle errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidInterval  = errors.New("booking end must be after start")
	ErrBackdatedBooking = errors.New("booking cannot start or end in the past")
	ErrItemUnavailable  = errors.New("item is not available for booking")
	ErrSelfBooking      = errors.New("owner cannot book own item")
	ErrAlreadyDecided   = errors.New("booking is already decided")
	ErrForbidden        = errors.New("actor is not allowed to perform this action")

	// Booking query errors
	ErrInvalidPagination = errors.New("pagination parameters cannot be negative")
	ErrUnknownBucket     = errors.New("unknown booking state")

	// Comment errors
	ErrCommentNotAllowed = errors.New("commenting requires a finished approved booking")
)
