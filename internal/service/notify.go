package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v3"

	"kollegebot/internal/domain"
	"kollegebot/internal/repository"
)

// Sender is the outbound delivery surface, satisfied by *tele.Bot
type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// UserFilter is a conjunction of optional per-user predicates.
// A nil field means "don't care".
type UserFilter struct {
	Notifiable *bool
	HasGroup   *bool
	IsAdmin    *bool
}

// Matches reports whether the user passes every set predicate
func (f UserFilter) Matches(user domain.User, isAdmin bool) bool {
	if f.Notifiable != nil && *f.Notifiable != user.Notifiable {
		return false
	}
	if f.HasGroup != nil && *f.HasGroup != user.HasGroup() {
		return false
	}
	if f.IsAdmin != nil && *f.IsAdmin != isAdmin {
		return false
	}
	return true
}

// SubscriberFilter selects the upload-notification audience:
// opted in, group selected, not an admin.
func SubscriberFilter() UserFilter {
	yes, no := true, false
	return UserFilter{Notifiable: &yes, HasGroup: &yes, IsAdmin: &no}
}

// DeliveryStatus classifies one broadcast delivery attempt
type DeliveryStatus int

const (
	// Delivered means the message reached the platform
	Delivered DeliveryStatus = iota
	// SkippedUnreachable means the recipient blocked the bot, was
	// deactivated, or the platform is throttling; silently skipped
	SkippedUnreachable
	// FailedUnexpected is any other failure class; logged, broadcast continues
	FailedUnexpected
)

// DeliveryResult is the per-recipient outcome of a broadcast
type DeliveryResult struct {
	UserID int64
	Status DeliveryStatus
	Err    error
}

// IsUnreachable reports whether a delivery error means the recipient is
// unreachable or the platform is rate-limiting. Such failures are swallowed.
func IsUnreachable(err error) bool {
	if err == nil {
		return false
	}

	var flood tele.FloodError
	if errors.As(err, &flood) {
		return true
	}

	return errors.Is(err, tele.ErrBlockedByUser) ||
		errors.Is(err, tele.ErrUserIsDeactivated) ||
		errors.Is(err, tele.ErrNotStartedByUser) ||
		errors.Is(err, tele.ErrChatNotFound)
}

// Notifier fans one message out to every user matching a filter.
// Deliveries run concurrently up to maxInFlight and are paced by the rate
// limiter; one failing recipient never blocks the rest.
type Notifier struct {
	sender      Sender
	users       repository.UserRepository
	auth        *AuthService
	logger      *zap.Logger
	limiter     *rate.Limiter
	maxInFlight int
}

// NewNotifier creates a notifier with the given in-flight bound and
// outbound messages-per-second pacing
func NewNotifier(
	sender Sender,
	users repository.UserRepository,
	auth *AuthService,
	logger *zap.Logger,
	maxInFlight int,
	perSecond float64,
) *Notifier {
	if maxInFlight < 1 {
		maxInFlight = 1
	}
	return &Notifier{
		sender:      sender,
		users:       users,
		auth:        auth,
		logger:      logger,
		limiter:     rate.NewLimiter(rate.Limit(perSecond), 1),
		maxInFlight: maxInFlight,
	}
}

// Broadcast attempts one delivery per matching user and returns the
// per-recipient results. Only the directory scan itself can fail.
func (n *Notifier) Broadcast(
	ctx context.Context,
	filter UserFilter,
	text string,
	markup *tele.ReplyMarkup,
) ([]DeliveryResult, error) {
	all, err := n.users.GetAll()
	if err != nil {
		return nil, fmt.Errorf("scan user directory: %w", err)
	}

	var selected []domain.User
	for _, user := range all {
		if filter.Matches(user, n.auth.IsAdmin(user.ID)) {
			selected = append(selected, user)
		}
	}

	results := make([]DeliveryResult, len(selected))

	var g errgroup.Group
	g.SetLimit(n.maxInFlight)

	for i, user := range selected {
		i, user := i, user
		g.Go(func() error {
			results[i] = n.deliver(ctx, user, text, markup)
			return nil
		})
	}
	_ = g.Wait()

	n.logger.Info("broadcast finished",
		zap.Int("selected", len(selected)),
		zap.Int("total", len(all)),
	)

	return results, nil
}

func (n *Notifier) deliver(
	ctx context.Context,
	user domain.User,
	text string,
	markup *tele.ReplyMarkup,
) DeliveryResult {
	if err := n.limiter.Wait(ctx); err != nil {
		return DeliveryResult{UserID: user.ID, Status: FailedUnexpected, Err: err}
	}

	var opts []interface{}
	if markup != nil {
		opts = append(opts, markup)
	}

	_, err := n.sender.Send(tele.ChatID(user.ID), text, opts...)
	switch {
	case err == nil:
		return DeliveryResult{UserID: user.ID, Status: Delivered}
	case IsUnreachable(err):
		n.logger.Debug("recipient unreachable, skipping",
			zap.Int64("user_id", user.ID),
			zap.Error(err),
		)
		return DeliveryResult{UserID: user.ID, Status: SkippedUnreachable, Err: err}
	default:
		n.logger.Error("notification delivery failed",
			zap.Int64("user_id", user.ID),
			zap.Error(err),
		)
		return DeliveryResult{UserID: user.ID, Status: FailedUnexpected, Err: err}
	}
}
