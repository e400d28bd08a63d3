package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start: appends the passive placeholder row and
// shows the welcome message with the main menu
func (h *Handler) handleStart(c tele.Context) error {
	user := c.Sender()

	h.logger.Info("User started bot",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	if err := h.subs.RegisterContact(user.ID, user.Username); err != nil {
		return h.replyStoreDown(c, "register contact", err)
	}

	h.sessions.Reset(user.ID)

	if err := c.Send(msgWelcome, tele.ModeMarkdown); err != nil {
		return err
	}
	return c.Send(msgGetStarted, mainMenuMarkup())
}

// handleMenu handles /menu and the menu button
func (h *Handler) handleMenu(c tele.Context) error {
	h.sessions.Reset(c.Sender().ID)

	if err := h.sendMenu(c); err != nil {
		return err
	}
	if c.Callback() != nil {
		return c.Respond()
	}
	return nil
}
