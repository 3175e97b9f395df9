package socialservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/pg"
)

//go:generate mockgen -source=socialservice.go -destination=mocks.go -package=socialservice

type SocialRepo interface {
	CreatePost(ctx context.Context, userID int, content string) (*domain.SocialPost, error)
	FindPosts(ctx context.Context, limit int) ([]domain.SocialPost, error)
	PostExists(ctx context.Context, postID int) (bool, error)
	CreateComment(ctx context.Context, postID, userID int, content string) (*domain.Comment, error)
	FindComments(ctx context.Context, postID int) ([]domain.Comment, error)
	ToggleLike(ctx context.Context, postID, userID int) (bool, error)
}

type FriendshipRepo interface {
	Create(ctx context.Context, requesterID, addresseeID int) (*domain.Friendship, error)
	FindByID(ctx context.Context, friendshipID int) (*domain.Friendship, error)
	FindByUser(ctx context.Context, userID int) ([]domain.Friendship, error)
	UpdateStatus(ctx context.Context, friendshipID int, status string) error
	FriendIDs(ctx context.Context, userID int) ([]int, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	TopByPoints(ctx context.Context, limit int) ([]domain.User, error)
}

type Notifier interface {
	Notify(ctx context.Context, n *domain.Notification)
}

const defaultFeedLimit = 50

var (
	ErrEmptyContent       = errors.New("content is required")
	ErrPostNotFound       = errors.New("post not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrSelfFriendship     = errors.New("you cannot friend yourself")
	ErrAlreadyRequested   = errors.New("friend request already exists")
	ErrRequestNotFound    = errors.New("friend request not found")
	ErrNotAddressee       = errors.New("only the addressee can respond")
	ErrRequestNotPending  = errors.New("friend request already handled")
	ErrInvalidFriendReply = errors.New("response must be accepted or rejected")
)

type Service struct {
	socialRepo     SocialRepo
	friendshipRepo FriendshipRepo
	userRepo       UserRepo
	notifier       Notifier
}

func New(socialRepo SocialRepo, friendshipRepo FriendshipRepo, userRepo UserRepo, notifier Notifier) *Service {
	return &Service{
		socialRepo:     socialRepo,
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
		notifier:       notifier,
	}
}

func (s *Service) CreatePost(ctx context.Context, userID int, content string) (*domain.SocialPost, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	return s.socialRepo.CreatePost(ctx, userID, content)
}

func (s *Service) ListPosts(ctx context.Context, limit int) ([]domain.SocialPost, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	return s.socialRepo.FindPosts(ctx, limit)
}

func (s *Service) AddComment(ctx context.Context, postID, userID int, content string) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	exists, err := s.socialRepo.PostExists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPostNotFound
	}
	return s.socialRepo.CreateComment(ctx, postID, userID, content)
}

func (s *Service) ListComments(ctx context.Context, postID int) ([]domain.Comment, error) {
	exists, err := s.socialRepo.PostExists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPostNotFound
	}
	return s.socialRepo.FindComments(ctx, postID)
}

func (s *Service) TogglePostLike(ctx context.Context, postID, userID int) (bool, error) {
	exists, err := s.socialRepo.PostExists(ctx, postID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, ErrPostNotFound
	}
	return s.socialRepo.ToggleLike(ctx, postID, userID)
}

// RequestFriend files a pending friendship and pings the addressee.
func (s *Service) RequestFriend(ctx context.Context, requesterID, addresseeID int) (*domain.Friendship, error) {
	if requesterID == addresseeID {
		return nil, ErrSelfFriendship
	}
	requester, err := s.userRepo.FindByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if requester == nil {
		return nil, ErrUserNotFound
	}
	addressee, err := s.userRepo.FindByID(ctx, addresseeID)
	if err != nil {
		return nil, err
	}
	if addressee == nil {
		return nil, ErrUserNotFound
	}

	friendship, err := s.friendshipRepo.Create(ctx, requesterID, addresseeID)
	if err != nil {
		if errors.Is(err, pg.ErrUniqueViolation) {
			return nil, ErrAlreadyRequested
		}
		return nil, err
	}

	s.notifier.Notify(ctx, &domain.Notification{
		UserID:  addresseeID,
		Title:   "Friend Request",
		Message: fmt.Sprintf("%s wants to be your friend", requester.Username),
		Kind:    domain.NotifyFriendRequest,
	})
	return friendship, nil
}

// RespondFriend lets the addressee accept or reject a pending request.
func (s *Service) RespondFriend(ctx context.Context, userID, friendshipID int, status string) error {
	if status != domain.FriendshipAccepted && status != domain.FriendshipRejected {
		return ErrInvalidFriendReply
	}

	friendship, err := s.friendshipRepo.FindByID(ctx, friendshipID)
	if err != nil {
		return err
	}
	if friendship == nil {
		return ErrRequestNotFound
	}
	if friendship.AddresseeID != userID {
		return ErrNotAddressee
	}
	if friendship.Status != domain.FriendshipPending {
		return ErrRequestNotPending
	}

	if err := s.friendshipRepo.UpdateStatus(ctx, friendshipID, status); err != nil {
		return err
	}

	if status == domain.FriendshipAccepted {
		addressee, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		s.notifier.Notify(ctx, &domain.Notification{
			UserID:  friendship.RequesterID,
			Title:   "Friend Request Accepted",
			Message: fmt.Sprintf("%s accepted your friend request", addressee.Username),
			Kind:    domain.NotifyFriendRequest,
		})
	}
	return nil
}

func (s *Service) ListFriendships(ctx context.Context, userID int) ([]domain.Friendship, error) {
	return s.friendshipRepo.FindByUser(ctx, userID)
}

func (s *Service) ListFriends(ctx context.Context, userID int) ([]domain.User, error) {
	ids, err := s.friendshipRepo.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	friends := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		friend, err := s.userRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if friend != nil {
			friends = append(friends, *friend)
		}
	}
	return friends, nil
}

func (s *Service) Leaderboard(ctx context.Context, limit int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.userRepo.TopByPoints(ctx, limit)
}
