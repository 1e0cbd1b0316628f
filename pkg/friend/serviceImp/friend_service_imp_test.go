package serviceImp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"greenhouse/database"
	"greenhouse/entities"
	"greenhouse/pkg/apperr"
	"greenhouse/pkg/friend/repositoryImp"
	"greenhouse/pkg/friend/service"
)

func newTestService(t *testing.T) (service.FriendService, *gorm.DB) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return New(repositoryImp.New(db)), db
}

func seedUser(t *testing.T, db *gorm.DB, username string) uint {
	t.Helper()
	u := entities.User{Username: username, Email: username + "@example.com", Password: "x", IsVerified: true}
	require.NoError(t, db.Create(&u).Error)
	return u.ID
}

func TestRequestUnknownUser(t *testing.T) {
	svc, db := newTestService(t)
	alice := seedUser(t, db, "alice")

	err := svc.Request(alice, "ghost")
	require.EqualError(t, err, "User not found")
	require.Equal(t, 404, apperr.Status(err))
}

func TestRequestSelf(t *testing.T) {
	svc, db := newTestService(t)
	alice := seedUser(t, db, "alice")

	err := svc.Request(alice, "alice")
	require.EqualError(t, err, "Cannot add yourself")
	require.Equal(t, 400, apperr.Status(err))
}

func TestRequestConflictBothDirections(t *testing.T) {
	svc, db := newTestService(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	require.NoError(t, svc.Request(alice, "bob"))

	err := svc.Request(alice, "bob")
	require.EqualError(t, err, "Friend request already exists or already friends")
	require.Equal(t, 409, apperr.Status(err))

	// The reverse request hits the same edge.
	err = svc.Request(bob, "alice")
	require.Equal(t, 409, apperr.Status(err))
}

func requestID(t *testing.T, db *gorm.DB, from, to uint) uint {
	t.Helper()
	var f entities.Friend
	require.NoError(t, db.Where("user_id = ? AND friend_id = ?", from, to).Take(&f).Error)
	return f.ID
}

func TestAcceptOnlyByRecipient(t *testing.T) {
	svc, db := newTestService(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	require.NoError(t, svc.Request(alice, "bob"))
	id := requestID(t, db, alice, bob)

	// The sender cannot accept their own request.
	err := svc.Accept(alice, id)
	require.EqualError(t, err, "Request not found or already accepted")
	require.Equal(t, 400, apperr.Status(err))

	require.NoError(t, svc.Accept(bob, id))

	// Accepting twice matches zero rows.
	err = svc.Accept(bob, id)
	require.EqualError(t, err, "Request not found or already accepted")
}

func TestListSymmetricAfterAccept(t *testing.T) {
	svc, db := newTestService(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	seedUser(t, db, "carol")

	require.NoError(t, svc.Request(alice, "bob"))
	require.NoError(t, svc.Accept(bob, requestID(t, db, alice, bob)))

	friendsOfAlice, err := svc.List(alice)
	require.NoError(t, err)
	require.Len(t, friendsOfAlice, 1)
	require.Equal(t, "bob", friendsOfAlice[0].Username)

	friendsOfBob, err := svc.List(bob)
	require.NoError(t, err)
	require.Len(t, friendsOfBob, 1)
	require.Equal(t, "alice", friendsOfBob[0].Username)
}

func TestPendingAndSentViews(t *testing.T) {
	svc, db := newTestService(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	require.NoError(t, svc.Request(alice, "bob"))

	incoming, err := svc.Pending(bob)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	require.Equal(t, "alice", incoming[0].Username)
	require.Equal(t, requestID(t, db, alice, bob), incoming[0].RequestID)

	outgoing, err := svc.Sent(alice)
	require.NoError(t, err)
	require.Len(t, outgoing, 1)
	require.Equal(t, "bob", outgoing[0].Username)

	// Pending requests do not show up in the accepted list.
	friends, err := svc.List(alice)
	require.NoError(t, err)
	require.Empty(t, friends)
}

func TestDeleteIsIdempotentEitherDirection(t *testing.T) {
	svc, db := newTestService(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	require.NoError(t, svc.Request(alice, "bob"))
	require.NoError(t, svc.Accept(bob, requestID(t, db, alice, bob)))

	// Deleting from the receiving side removes the edge too.
	require.NoError(t, svc.Delete(bob, alice))

	friends, err := svc.List(alice)
	require.NoError(t, err)
	require.Empty(t, friends)

	// Deleting an absent edge is not an error.
	require.NoError(t, svc.Delete(bob, alice))

	// The pair can start over after deletion.
	require.NoError(t, svc.Request(bob, "alice"))
}
