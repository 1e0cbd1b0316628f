package repository

// FriendUser is the counterpart user on an accepted edge.
type FriendUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// PendingRow is a pending edge with the other user and the edge id, which the
// recipient needs to accept.
type PendingRow struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	RequestID uint   `json:"request_id"`
}

type FriendRepository interface {
	UserIDByUsername(username string) (uint, bool, error)
	// EdgeExists matches either direction regardless of status.
	EdgeExists(a, b uint) (bool, error)
	CreatePending(userID, friendID uint) error
	// Accept flips status only where the edge's friend_id is recipientID;
	// returns rows affected so the caller can tell nothing matched.
	Accept(requestID, recipientID uint) (int64, error)
	Accepted(userID uint) ([]FriendUser, error)
	PendingIncoming(userID uint) ([]PendingRow, error)
	PendingOutgoing(userID uint) ([]PendingRow, error)
	// DeleteEdge removes the pair's edge in whichever direction it exists.
	DeleteEdge(userID, friendID uint) error
}
