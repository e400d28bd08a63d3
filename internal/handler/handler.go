package handler

import (
	"github.com/prachij94/CancelItNowBot/internal/metrics"
	"github.com/prachij94/CancelItNowBot/internal/service"
	"github.com/prachij94/CancelItNowBot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	subs     *service.SubscriptionService
	reports  *service.ReportService
	sessions *session.Store
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	subs *service.SubscriptionService,
	reports *service.ReportService,
	sessions *session.Store,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		subs:     subs,
		reports:  reports,
		sessions: sessions,
		logger:   logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/menu", h.handleMenu)

	// Text messages (drive the add flow)
	h.bot.Handle(tele.OnText, h.handleText)

	// Menu buttons
	h.bot.Handle(&btnAdd, h.handleAdd)
	h.bot.Handle(&btnView, h.handleView)
	h.bot.Handle(&btnCancelSub, h.handleCancelMenu)
	h.bot.Handle(&btnBenefits, h.handleBenefits)
	h.bot.Handle(&btnHelp, h.handleHelp)
	h.bot.Handle(&btnUpcoming, h.handleUpcoming)
	h.bot.Handle(&btnShare, h.handleShare)
	h.bot.Handle(&btnMainMenu, h.handleMenu)

	// Cancellation flow buttons
	h.bot.Handle(&btnCancelSelect, h.handleCancelSelection)
	h.bot.Handle(&btnDoCancel, h.handleDoCancel)
	h.bot.Handle(&btnAbortCancel, h.handleAbortCancel)

	// Priority choice in the add flow
	h.bot.Handle(&btnPriority, h.handlePriority)

	// Fallback for callback data nothing above matched
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Inline keyboard buttons
var (
	btnAdd = tele.Btn{
		Unique: "add",
		Text:   "➕ Add Subscription",
	}
	btnView = tele.Btn{
		Unique: "view",
		Text:   "📂 View Subscriptions",
	}
	btnCancelSub = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel Subscription",
	}
	btnBenefits = tele.Btn{
		Unique: "benefits",
		Text:   "📈 View Benefits",
	}
	btnHelp = tele.Btn{
		Unique: "help",
		Text:   "❓ Help",
	}
	btnUpcoming = tele.Btn{
		Unique: "upcoming",
		Text:   "🚧 Upcoming features",
	}
	btnShare = tele.Btn{
		Unique: "share",
		Text:   "📤 Share",
	}
	btnMainMenu = tele.Btn{
		Unique: "menu",
		Text:   "🏠 Main menu",
	}
	btnDoCancel = tele.Btn{
		Unique: "do_cancel",
		Text:   "✅ Yes, Cancel",
	}
	btnAbortCancel = tele.Btn{
		Unique: "cancel_abort",
		Text:   "❌ No",
	}

	// Uniques for dynamic buttons; text and data are filled per row
	btnCancelSelect = tele.Btn{Unique: "cancelsel"}
	btnPriority     = tele.Btn{Unique: "priority"}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnAdd, btnView),
		menu.Row(btnCancelSub, btnBenefits),
		menu.Row(btnHelp, btnUpcoming),
		menu.Row(btnShare),
	)
	return menu
}

// sendMenu re-presents the main menu; every flow terminates here
func (h *Handler) sendMenu(c tele.Context) error {
	return c.Send(msgMenuPrompt, mainMenuMarkup())
}

// replyStoreDown reports a store failure to the user. The write is
// never retried, so a flaky backend cannot duplicate an append.
func (h *Handler) replyStoreDown(c tele.Context, op string, err error) error {
	metrics.StoreErrors.Inc()
	h.logger.Error("Store operation failed",
		zap.String("op", op),
		zap.Int64("user_id", c.Sender().ID),
		zap.Error(err),
	)
	return c.Send(msgStoreDown)
}
