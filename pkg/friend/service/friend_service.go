package service

import "greenhouse/pkg/friend/repository"

// FriendService enforces the edge lifecycle: none -> pending -> accepted,
// with delete as the only way back to none from any state.
type FriendService interface {
	Request(userID uint, friendUsername string) error
	Accept(userID, requestID uint) error
	List(userID uint) ([]repository.FriendUser, error)
	Pending(userID uint) ([]repository.PendingRow, error)
	Sent(userID uint) ([]repository.PendingRow, error)
	// Delete is idempotent; removing a missing edge is not an error.
	Delete(userID, friendID uint) error
}
