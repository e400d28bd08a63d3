package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/prachij94/CancelItNowBot/internal/domain"
	"github.com/prachij94/CancelItNowBot/internal/repository"

	"go.uber.org/zap"
)

// SubscriptionService drives the writes of the add and cancel flows
// and the active-rows reads behind them
type SubscriptionService struct {
	repo    repository.SubscriptionRepository
	timeout time.Duration
	logger  *zap.Logger
}

// NewSubscriptionService creates a new subscription service. Every
// store round-trip is bounded by timeout.
func NewSubscriptionService(repo repository.SubscriptionRepository, timeout time.Duration, logger *zap.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo:    repo,
		timeout: timeout,
		logger:  logger,
	}
}

// RegisterContact appends the passive placeholder row written on first
// contact. It carries no cost data and never shows up in reports.
func (s *SubscriptionService) RegisterContact(userID int64, username string) error {
	ctx, cancel := s.callContext()
	defer cancel()

	_, err := s.repo.Append(ctx, domain.Subscription{
		UserID:   userID,
		Username: username,
		Status:   domain.StatusPassive,
	})
	return err
}

// Add appends one active row with the collected name, cost and
// priority. Exactly one row per completed add flow.
func (s *SubscriptionService) Add(userID int64, username, name string, cost int, priority domain.Priority) error {
	ctx, cancel := s.callContext()
	defer cancel()

	rowPos, err := s.repo.Append(ctx, domain.Subscription{
		UserID:   userID,
		Username: username,
		Name:     name,
		Cost:     cost,
		Priority: priority,
		Status:   domain.StatusActive,
	})
	if err != nil {
		return err
	}

	s.logger.Info("Subscription saved",
		zap.Int64("user_id", userID),
		zap.String("name", name),
		zap.Int("cost", cost),
		zap.String("priority", string(priority)),
		zap.Int("row_pos", rowPos),
	)
	return nil
}

// ListActive returns the user's active subscriptions in table order.
// Always a fresh full scan; the store is the sole source of truth.
func (s *SubscriptionService) ListActive(userID int64) ([]domain.Subscription, error) {
	ctx, cancel := s.callContext()
	defer cancel()

	return s.repo.ListActive(ctx, userID)
}

// Cancel flips one row from active to cancelled. No retry on failure:
// the caller reports a transient error instead.
func (s *SubscriptionService) Cancel(target domain.CancelTarget) error {
	ctx, cancel := s.callContext()
	defer cancel()

	if err := s.repo.SetStatus(ctx, target.RowPos, domain.StatusCancelled); err != nil {
		return err
	}

	s.logger.Info("Subscription cancelled",
		zap.Int("row_pos", target.RowPos),
		zap.String("name", target.Name),
		zap.Int("monthly_savings", target.Cost),
	)
	return nil
}

func (s *SubscriptionService) callContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// ParseCost validates a cost reply from the user. Anything that is not
// an integer in [MinCost, MaxCost] comes back as a ValidationError so
// the flow re-prompts.
func ParseCost(text string) (int, error) {
	cost, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &domain.ValidationError{
			Reason: fmt.Sprintf("cost %q is not an integer", text),
		}
	}

	if cost < domain.MinCost || cost > domain.MaxCost {
		return 0, &domain.ValidationError{
			Reason: fmt.Sprintf("cost %d out of range %d–%d", cost, domain.MinCost, domain.MaxCost),
		}
	}

	return cost, nil
}
