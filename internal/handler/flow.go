package handler

import (
	"strings"

	"github.com/prachij94/CancelItNowBot/internal/domain"
	"github.com/prachij94/CancelItNowBot/internal/metrics"
	"github.com/prachij94/CancelItNowBot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText drives the add flow: name, then cost. Anything typed
// outside a flow just brings the menu back.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := c.Text()

	// Ignore commands (starting with /)
	if strings.HasPrefix(strings.TrimSpace(text), "/") {
		return nil
	}

	state := h.sessions.Get(userID)

	switch state.State {
	case domain.StateCollectName:
		// The name is captured verbatim, no validation
		state.State = domain.StateCollectCost
		state.PendingName = text
		h.sessions.Set(userID, state)

		return c.Send(msgAskCost)

	case domain.StateCollectCost:
		cost, err := service.ParseCost(text)
		if err != nil {
			// Recoverable: re-prompt and stay in this state. The user
			// may retry as many times as they like.
			h.logger.Debug("Invalid cost input",
				zap.Int64("user_id", userID),
				zap.String("input", text),
			)
			return c.Send(msgInvalidCost)
		}

		state.State = domain.StateCollectPriority
		state.PendingCost = cost
		h.sessions.Set(userID, state)

		return c.Send(msgAskPriority, priorityMarkup(), tele.ModeMarkdown)

	default:
		return h.sendMenu(c)
	}
}

// handleAdd enters the add flow
func (h *Handler) handleAdd(c tele.Context) error {
	userID := c.Sender().ID

	h.sessions.Set(userID, &domain.StateData{State: domain.StateCollectName})

	if err := c.Send(msgAskName); err != nil {
		return err
	}
	return c.Respond()
}

// handlePriority finishes the add flow: this is the only transition
// that writes a permanent record
func (h *Handler) handlePriority(c tele.Context) error {
	userID := c.Sender().ID

	priority, ok := domain.ParsePriority(cleanCallbackData(c.Data()))
	if !ok {
		h.logger.Warn("Invalid priority callback",
			zap.Int64("user_id", userID),
			zap.String("data", c.Data()),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Please pick one of the options"})
	}

	state := h.sessions.Get(userID)
	if state.State != domain.StateCollectPriority || state.PendingCost < domain.MinCost {
		// Session expired (or the button outlived the flow)
		h.sessions.Reset(userID)
		if err := c.Send(msgSessionExpired); err != nil {
			return err
		}
		if err := h.sendMenu(c); err != nil {
			return err
		}
		return c.Respond()
	}

	err := h.subs.Add(userID, c.Sender().Username, state.PendingName, state.PendingCost, priority)
	if err != nil {
		h.sessions.Reset(userID)
		return h.replyStoreDown(c, "add subscription", err)
	}

	metrics.SubscriptionsAdded.Inc()
	h.sessions.Reset(userID)

	if err := c.Send(msgSaved); err != nil {
		return err
	}
	if err := h.sendMenu(c); err != nil {
		return err
	}
	return c.Respond()
}

// priorityMarkup presents exactly the three priority tiers
func priorityMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, 3)
	for _, p := range []domain.Priority{domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow} {
		btn := markup.Data(p.Glyph()+" "+string(p), btnPriority.Unique, string(p))
		rows = append(rows, markup.Row(btn))
	}
	markup.Inline(rows...)
	return markup
}
