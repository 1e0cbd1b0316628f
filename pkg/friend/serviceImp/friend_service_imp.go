package serviceImp

import (
	"greenhouse/pkg/apperr"
	"greenhouse/pkg/friend/repository"
	"greenhouse/pkg/friend/service"
)

type friendService struct{ repo repository.FriendRepository }

func New(repo repository.FriendRepository) service.FriendService {
	return &friendService{repo}
}

func (s *friendService) Request(userID uint, friendUsername string) error {
	friendID, found, err := s.repo.UserIDByUsername(friendUsername)
	if err != nil {
		return err
	}
	if !found {
		return apperr.NotFound("User not found")
	}
	if userID == friendID {
		return apperr.Invalid("Cannot add yourself")
	}

	// One edge per unordered pair: a pending or accepted edge in either
	// direction blocks a new request.
	exists, err := s.repo.EdgeExists(userID, friendID)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Conflict("Friend request already exists or already friends")
	}
	return s.repo.CreatePending(userID, friendID)
}

func (s *friendService) Accept(userID, requestID uint) error {
	n, err := s.repo.Accept(requestID, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		// Not found, already accepted, or the caller is not the recipient;
		// the original contract does not distinguish these.
		return apperr.Invalid("Request not found or already accepted")
	}
	return nil
}

func (s *friendService) List(userID uint) ([]repository.FriendUser, error) {
	return s.repo.Accepted(userID)
}

func (s *friendService) Pending(userID uint) ([]repository.PendingRow, error) {
	return s.repo.PendingIncoming(userID)
}

func (s *friendService) Sent(userID uint) ([]repository.PendingRow, error) {
	return s.repo.PendingOutgoing(userID)
}

func (s *friendService) Delete(userID, friendID uint) error {
	return s.repo.DeleteEdge(userID, friendID)
}
