package service

import (
	"context"
	"time"

	"github.com/prachij94/CancelItNowBot/internal/domain"
	"github.com/prachij94/CancelItNowBot/internal/repository"

	"go.uber.org/zap"
)

// BenefitsSummary aggregates a user's active subscriptions
type BenefitsSummary struct {
	Count  int
	Total  int
	High   int
	Medium int
	Low    int
}

// ReportService builds the stateless read views. Each call does a
// fresh full-table scan, so results always match the latest store
// state.
type ReportService struct {
	repo    repository.SubscriptionRepository
	timeout time.Duration
	logger  *zap.Logger
}

// NewReportService creates a new report service
func NewReportService(repo repository.SubscriptionRepository, timeout time.Duration, logger *zap.Logger) *ReportService {
	return &ReportService{
		repo:    repo,
		timeout: timeout,
		logger:  logger,
	}
}

// Benefits computes count, monthly total and per-tier counts over the
// user's active subscriptions
func (s *ReportService) Benefits(userID int64) (BenefitsSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	subs, err := s.repo.ListActive(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load subscriptions for benefits",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return BenefitsSummary{}, err
	}

	return Summarize(subs), nil
}

// Summarize folds a list of subscriptions into a BenefitsSummary
func Summarize(subs []domain.Subscription) BenefitsSummary {
	var sum BenefitsSummary
	for _, sub := range subs {
		sum.Count++
		sum.Total += sub.Cost
		switch sub.Priority {
		case domain.PriorityHigh:
			sum.High++
		case domain.PriorityMedium:
			sum.Medium++
		case domain.PriorityLow:
			sum.Low++
		}
	}
	return sum
}
