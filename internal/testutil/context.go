package testutil

import (
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"
)

// SentMessage records one outbound reply captured by FakeContext
type SentMessage struct {
	Text   string
	Markup *tele.ReplyMarkup
	Opts   []interface{}
}

// FakeContext implements tele.Context for handler tests. It records
// outbound sends and callback responses instead of talking to
// Telegram; everything else returns zero values.
type FakeContext struct {
	User *tele.User
	Msg  *tele.Message
	Cb   *tele.Callback

	SentMessages []SentMessage
	Responded    []*tele.CallbackResponse

	store map[string]interface{}
}

// NewTextContext builds a context carrying a plain text message
func NewTextContext(userID int64, username, text string) *FakeContext {
	return &FakeContext{
		User: &tele.User{ID: userID, Username: username},
		Msg:  &tele.Message{Text: text},
	}
}

// NewCallbackContext builds a context carrying a button callback
func NewCallbackContext(userID int64, username, unique, data string) *FakeContext {
	return &FakeContext{
		User: &tele.User{ID: userID, Username: username},
		Cb:   &tele.Callback{Unique: unique, Data: data},
	}
}

// SentTexts returns the text of every recorded Send call in order
func (c *FakeContext) SentTexts() []string {
	texts := make([]string, 0, len(c.SentMessages))
	for _, m := range c.SentMessages {
		texts = append(texts, m.Text)
	}
	return texts
}

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	sent := SentMessage{Text: fmt.Sprint(what), Opts: opts}
	for _, opt := range opts {
		if markup, ok := opt.(*tele.ReplyMarkup); ok {
			sent.Markup = markup
		}
	}
	c.SentMessages = append(c.SentMessages, sent)
	return nil
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		resp = []*tele.CallbackResponse{{}}
	}
	c.Responded = append(c.Responded, resp...)
	return nil
}

func (c *FakeContext) Sender() *tele.User        { return c.User }
func (c *FakeContext) Message() *tele.Message    { return c.Msg }
func (c *FakeContext) Callback() *tele.Callback  { return c.Cb }

func (c *FakeContext) Text() string {
	if c.Msg != nil {
		return c.Msg.Text
	}
	return ""
}

func (c *FakeContext) Data() string {
	if c.Cb != nil {
		return c.Cb.Data
	}
	return ""
}

func (c *FakeContext) Get(key string) interface{} {
	return c.store[key]
}

func (c *FakeContext) Set(key string, val interface{}) {
	if c.store == nil {
		c.store = make(map[string]interface{})
	}
	c.store[key] = val
}

// The rest of the interface is inert in tests

func (c *FakeContext) Bot() *tele.Bot                            { return nil }
func (c *FakeContext) Update() tele.Update                       { return tele.Update{} }
func (c *FakeContext) Query() *tele.Query                        { return nil }
func (c *FakeContext) InlineResult() *tele.InlineResult          { return nil }
func (c *FakeContext) ShippingQuery() *tele.ShippingQuery        { return nil }
func (c *FakeContext) PreCheckoutQuery() *tele.PreCheckoutQuery  { return nil }
func (c *FakeContext) Poll() *tele.Poll                          { return nil }
func (c *FakeContext) PollAnswer() *tele.PollAnswer              { return nil }
func (c *FakeContext) ChatMember() *tele.ChatMemberUpdate        { return nil }
func (c *FakeContext) ChatJoinRequest() *tele.ChatJoinRequest    { return nil }
func (c *FakeContext) Migration() (int64, int64)                 { return 0, 0 }
func (c *FakeContext) Topic() *tele.Topic                        { return nil }
func (c *FakeContext) Chat() *tele.Chat                          { return nil }
func (c *FakeContext) Recipient() tele.Recipient                 { return c.User }
func (c *FakeContext) Entities() tele.Entities                   { return nil }
func (c *FakeContext) Args() []string                            { return nil }
func (c *FakeContext) SendAlbum(a tele.Album, opts ...interface{}) error { return nil }
func (c *FakeContext) Reply(what interface{}, opts ...interface{}) error { return c.Send(what, opts...) }
func (c *FakeContext) Forward(msg tele.Editable, opts ...interface{}) error     { return nil }
func (c *FakeContext) ForwardTo(to tele.Recipient, opts ...interface{}) error   { return nil }
func (c *FakeContext) Edit(what interface{}, opts ...interface{}) error         { return nil }
func (c *FakeContext) EditCaption(caption string, opts ...interface{}) error    { return nil }
func (c *FakeContext) EditOrSend(what interface{}, opts ...interface{}) error   { return c.Send(what, opts...) }
func (c *FakeContext) EditOrReply(what interface{}, opts ...interface{}) error  { return c.Send(what, opts...) }
func (c *FakeContext) Delete() error                             { return nil }
func (c *FakeContext) DeleteAfter(d time.Duration) *time.Timer   { return nil }
func (c *FakeContext) Notify(action tele.ChatAction) error       { return nil }
func (c *FakeContext) Ship(what ...interface{}) error            { return nil }
func (c *FakeContext) Accept(errorMessage ...string) error       { return nil }
func (c *FakeContext) Answer(resp *tele.QueryResponse) error     { return nil }
