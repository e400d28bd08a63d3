package handler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/prachij94/CancelItNowBot/internal/domain"
	"github.com/prachij94/CancelItNowBot/internal/metrics"
	"github.com/prachij94/CancelItNowBot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleView lists the user's active subscriptions
func (h *Handler) handleView(c tele.Context) error {
	subs, err := h.subs.ListActive(c.Sender().ID)
	if err != nil {
		return h.replyStoreDown(c, "view subscriptions", err)
	}

	if len(subs) == 0 {
		if err := c.Send(msgNoSubs); err != nil {
			return err
		}
	} else {
		if err := c.Send(viewMessage(subs), tele.ModeMarkdown); err != nil {
			return err
		}
	}

	if err := h.sendMenu(c); err != nil {
		return err
	}
	return c.Respond()
}

func viewMessage(subs []domain.Subscription) string {
	var b strings.Builder
	b.WriteString("📋 Here’s a snapshot of your current *active* subscriptions:\n\n")
	for _, s := range subs {
		fmt.Fprintf(&b, "🔹 *%s*\n   💰 ₹%d / month\n   🏷️ Priority: %s %s\n\n",
			s.Name, s.Cost, s.Priority.Glyph(), s.Priority)
	}
	b.WriteString("🧘 _Review. Reflect. You’re already doing great._\n")
	return b.String()
}

// handleBenefits aggregates the user's active subscriptions
func (h *Handler) handleBenefits(c tele.Context) error {
	summary, err := h.reports.Benefits(c.Sender().ID)
	if err != nil {
		return h.replyStoreDown(c, "benefits", err)
	}

	if summary.Count == 0 {
		if err := c.Send(msgNoSubs); err != nil {
			return err
		}
	} else {
		text := fmt.Sprintf(
			"📊 Your Subscription Snapshot:\n\n"+
				"• Total Active: %d\n"+
				"• Monthly Spend: ₹%d\n"+
				"• Priority Breakdown:\n"+
				"🔴 High: %d\n"+
				"🟡 Medium: %d\n"+
				"🟢 Low: %d\n\n"+
				"💡 _Think: what can you cut to save more?_",
			summary.Count, summary.Total, summary.High, summary.Medium, summary.Low,
		)
		if err := c.Send(text, tele.ModeMarkdown); err != nil {
			return err
		}
	}

	if err := h.sendMenu(c); err != nil {
		return err
	}
	return c.Respond()
}

// handleCancelMenu lists active subscriptions as cancel candidates
func (h *Handler) handleCancelMenu(c tele.Context) error {
	userID := c.Sender().ID

	subs, err := h.subs.ListActive(userID)
	if err != nil {
		return h.replyStoreDown(c, "list for cancel", err)
	}

	if len(subs) == 0 {
		if err := c.Send(msgNoSubsToCancel); err != nil {
			return err
		}
		if err := h.sendMenu(c); err != nil {
			return err
		}
		return c.Respond()
	}

	// Each button carries row|name|cost so the selection step needs no
	// server-side lookup
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(subs))
	for _, s := range subs {
		label := fmt.Sprintf("%s | ₹%d | %s", s.Name, s.Cost, s.Priority)
		btn := markup.Data(label, btnCancelSelect.Unique,
			strconv.Itoa(s.RowPos), s.Name, strconv.Itoa(s.Cost))
		rows = append(rows, markup.Row(btn))
	}
	markup.Inline(rows...)

	h.sessions.Set(userID, &domain.StateData{State: domain.StateAwaitCancelConfirm})

	if err := c.Send(msgSelectCancel, markup); err != nil {
		return err
	}
	return c.Respond()
}

// handleCancelSelection captures the chosen row and asks for confirmation
func (h *Handler) handleCancelSelection(c tele.Context) error {
	userID := c.Sender().ID

	target, err := parseCancelSelection(cleanCallbackData(c.Data()))
	if err != nil {
		h.logger.Warn("Rejected cancel selection",
			zap.Int64("user_id", userID),
			zap.String("data", c.Data()),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: "That selection is no longer valid"})
	}

	h.sessions.Set(userID, &domain.StateData{
		State:  domain.StateAwaitCancelConfirm,
		Cancel: &target,
	})

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnDoCancel),
		markup.Row(btnAbortCancel),
	)

	text := fmt.Sprintf(
		"Are you sure you want to cancel '%s' subscription?\n💸 It’s costing you ₹%d every month.",
		target.Name, target.Cost,
	)
	if err := c.Send(text, markup); err != nil {
		return err
	}
	return c.Respond()
}

// handleDoCancel confirms the cancellation and reports the savings
func (h *Handler) handleDoCancel(c tele.Context) error {
	userID := c.Sender().ID

	state := h.sessions.Get(userID)
	target := state.Cancel
	if state.State != domain.StateAwaitCancelConfirm || target == nil {
		h.sessions.Reset(userID)
		if err := c.Send(msgSessionExpired); err != nil {
			return err
		}
		if err := h.sendMenu(c); err != nil {
			return err
		}
		return c.Respond()
	}

	if err := h.subs.Cancel(*target); err != nil {
		h.sessions.Reset(userID)
		return h.replyStoreDown(c, "cancel subscription", err)
	}

	metrics.SubscriptionsCancelled.Inc()
	h.sessions.Reset(userID)

	text := fmt.Sprintf(
		"✅ Subscription '%s' has been cancelled.\n"+
			"🎉 You just saved ₹%d monthly! That’s ₹%d per year! 💰\n\n"+
			"💪 _Keep going — smarter money is your new normal._",
		target.Name, target.Cost, target.YearlySavings(),
	)
	if err := c.Send(text, tele.ModeMarkdown); err != nil {
		return err
	}
	if err := h.sendMenu(c); err != nil {
		return err
	}
	return c.Respond()
}

// handleAbortCancel backs out without touching the store
func (h *Handler) handleAbortCancel(c tele.Context) error {
	userID := c.Sender().ID

	cost := 0
	if state := h.sessions.Get(userID); state.Cancel != nil {
		cost = state.Cancel.Cost
	}
	h.sessions.Reset(userID)

	text := fmt.Sprintf(
		"😌 No worries.\nYour subscription is safe for now.\n\n"+
			"💡 It currently costs you *₹%d monthly*.\n\n"+
			"Take your time to decide — I'm here whenever you're ready to optimize your expenses 💸💪",
		cost,
	)
	if err := c.Send(text, tele.ModeMarkdown); err != nil {
		return err
	}
	if err := h.sendMenu(c); err != nil {
		return err
	}
	return c.Respond()
}

// handleHelp shows the help guide
func (h *Handler) handleHelp(c tele.Context) error {
	if err := c.Send(msgHelp, tele.ModeMarkdown); err != nil {
		return err
	}
	if err := h.sendMenu(c); err != nil {
		return err
	}
	return c.Respond()
}

// handleShare shows the share link
func (h *Handler) handleShare(c tele.Context) error {
	if err := c.Send(msgShare); err != nil {
		return err
	}
	if err := h.sendMenu(c); err != nil {
		return err
	}
	return c.Respond()
}

// handleUpcoming shows the roadmap teaser
func (h *Handler) handleUpcoming(c tele.Context) error {
	if err := c.Send(msgUpcoming, tele.ModeMarkdown); err != nil {
		return err
	}
	if err := h.sendMenu(c); err != nil {
		return err
	}
	return c.Respond()
}

// handleCallback catches callback data none of the registered buttons
// matched. Unknown actions are logged and answered, never crash the
// session.
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	data := cleanCallbackData(callback.Data)

	// Buttons occasionally arrive without the unique marker; route the
	// known ones by data before giving up
	switch data {
	case btnAdd.Unique:
		return h.handleAdd(c)
	case btnView.Unique:
		return h.handleView(c)
	case btnCancelSub.Unique:
		return h.handleCancelMenu(c)
	case btnBenefits.Unique:
		return h.handleBenefits(c)
	case btnHelp.Unique:
		return h.handleHelp(c)
	case btnUpcoming.Unique:
		return h.handleUpcoming(c)
	case btnShare.Unique:
		return h.handleShare(c)
	case btnMainMenu.Unique:
		return h.handleMenu(c)
	case btnDoCancel.Unique:
		return h.handleDoCancel(c)
	case btnAbortCancel.Unique:
		return h.handleAbortCancel(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Error(domain.ErrUnknownAction),
	)
	return c.Respond(&tele.CallbackResponse{Text: "I didn't get that, use the menu below"})
}

// parseCancelSelection parses "row|name|cost" selection data. The row
// and cost are validated rather than trusted: the row must point at a
// data row (>= 2) and the cost must be a valid subscription cost.
func parseCancelSelection(data string) (domain.CancelTarget, error) {
	parts := strings.Split(data, "|")
	if len(parts) < 3 {
		return domain.CancelTarget{}, fmt.Errorf("selection %q: %w", data, domain.ErrUnknownAction)
	}

	rowPos, err := strconv.Atoi(parts[0])
	if err != nil || rowPos < 2 {
		return domain.CancelTarget{}, fmt.Errorf("selection row %q: %w", parts[0], domain.ErrUnknownAction)
	}

	costStr := parts[len(parts)-1]
	cost, err := service.ParseCost(costStr)
	if err != nil {
		return domain.CancelTarget{}, fmt.Errorf("selection cost %q: %w", costStr, domain.ErrUnknownAction)
	}

	// The name itself may contain the separator
	name := strings.Join(parts[1:len(parts)-1], "|")

	return domain.CancelTarget{RowPos: rowPos, Name: name, Cost: cost}, nil
}
