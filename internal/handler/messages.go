package handler

// User-facing copy. Kept in one place so the flow code stays readable.
const (
	msgWelcome = `Why keep paying for what you don’t use?
✨ You’re not alone — over 80% of people lose money on unused subscriptions.
We are here to help you flip the script.

👋 Welcome to *CancelItNowBot* — your personal assistant for cutting subscription clutter.

✅ Track everything you're paying for
🧠 Reflect on what's *actually* worth it
❌ Cancel wasteful services in seconds
💰 Feel lighter — mentally and financially

Let’s turn confusion into clarity.
Let’s simplify your life.
One subscription at a time.

Start below 👇`

	msgGetStarted = "Click the button below to get started:"
	msgMenuPrompt = "📍 What would you like to do now?"

	msgAskName     = "📌 What subscription do you want to add?"
	msgAskCost     = "💰 How much does it cost you monthly?"
	msgInvalidCost = "❗ Please enter a valid monthly cost (1–100000)."
	msgAskPriority = "📊 How important is this to you?\n\n_(Be honest — we won’t judge)_"
	msgSaved       = "✅ Subscription saved successfully!"

	msgNoSubs         = "📭 No active subscriptions."
	msgNoSubsToCancel = "📭 No active subscriptions to cancel."
	msgSelectCancel   = "🔻 Select a subscription you want to cancel:"

	msgSessionExpired = "⌛ Looks like that session expired. Let's start over from the menu."
	msgStoreDown      = "⚠️ I couldn't reach the subscription store. Please try again later."

	msgHelp = `🤖 *CancelItNowBot Help Guide*

Here's what I can do for you:

🔹 *Add Subscription* – Add a new subscription and track the recurring cost
🔹 *View Subscriptions* – See all your active services
🔹 *Cancel Subscription* – Cancel a subscription
🔹 *View Benefits* – Get insights into where your money goes

I'm here to simplify your digital expenses and help you cut waste! 💸`

	msgShare = `❤️ Love CancelItNowBot?

Invite your friends to manage their subscriptions too!
Click below to share:
https://t.me/cancelitnowbot`

	msgUpcoming = `🚀 *Coming Soon to CancelItNowBot:*

🌐 *Multilanguage Support* – Use the bot in your native language!
🧠 *Smart Recommendations* – AI will suggest what to cancel or keep
📅 *Reminder Alerts* – Monthly nudges before recurring payments
📊 *Monthly Summary Reports* – Track your total savings & expenses
👥 *Referral Rewards* – Invite friends, unlock perks!
💳 *Budget Planning Tools* – Set monthly budgets & auto warnings
🤝 *Exclusive Discounts* – Save more with partner deals
🔒 *Private Mode* – Keep your subscriptions 100% private
📥 *Import from Email* – Auto-detect subscriptions from receipts
📌 *Custom Notes* – Add notes or cancellation deadlines per subscription

We're just getting started — thank you for growing with us 💚`
)
