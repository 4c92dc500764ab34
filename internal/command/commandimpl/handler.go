package commandimpl

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/internal/session"
	"github.com/orgball2608/motivate-ai/pkg/formatter"
)

const maxTitleRunes = 80

const operatorOnlyMessage = "This bot only answers its operator."

const helpMessage = `Welcome to the MotivateAI operator bot!

/status - Where the current wizard session stands.
/history [n] - The last n published videos (default 10).
/stats - How many videos went out per platform.

Type /help at any time to see this guide.`

const rateLimitedMessage = "Too many commands, please slow down."

func (c *CommandImpl) HandleCommand(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := c.Telegram.GetUpdatesChan(u)
	c.Logger.Info("Command handler started, listening for updates.")

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("Command handler shutting down.")
			c.Telegram.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				c.Logger.Warn("Telegram updates channel closed unexpectedly")
				return errors.New("telegram updates channel closed")
			}

			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}

			go func(msg *tgbotapi.Message) {
				defer func() {
					if r := recover(); r != nil {
						c.Logger.Error("Panic recovered while processing an update", "panic", r, "stack", string(debug.Stack()))
					}
				}()

				if err := c.processCommand(ctx, msg); err != nil {
					c.Logger.Error("Error processing command",
						"command", msg.Command(),
						"error", err)
				}
			}(update.Message)
		}
	}
}

func (c *CommandImpl) processCommand(ctx context.Context, msg *tgbotapi.Message) error {
	chatID := msg.Chat.ID

	if !c.fromOperator(msg) {
		c.Logger.Warn("Ignoring command from a non-operator", "chat_id", chatID, "command", msg.Command())
		_, err := c.Telegram.SendMessage(chatID, operatorOnlyMessage)
		return err
	}

	if !c.Limiter.Allow("chat:" + strconv.FormatInt(chatID, 10)) {
		_, err := c.Telegram.SendMessage(chatID, rateLimitedMessage)
		return err
	}

	var reply string
	switch msg.Command() {
	case "start", "help":
		reply = helpMessage
	case "status":
		reply = c.statusText(ctx)
	case "history":
		reply = c.historyText(ctx, msg.CommandArguments())
	case "stats":
		reply = c.statsText(ctx)
	default:
		reply = "Unknown command. Type /help to see the list of available commands."
	}

	_, err := c.Telegram.SendMessage(chatID, reply)
	return err
}

func (c *CommandImpl) fromOperator(msg *tgbotapi.Message) bool {
	if c.Operator == 0 {
		return true
	}
	return msg.From != nil && msg.From.ID == c.Operator
}

func (c *CommandImpl) statusText(ctx context.Context) string {
	view, err := c.Wizard.Snapshot(ctx)
	if err != nil {
		c.Logger.Error("Failed to read wizard state", "error", err)
		return "Could not read the wizard state."
	}
	return formatStatus(view)
}

func (c *CommandImpl) historyText(ctx context.Context, args string) string {
	limit := 0
	if args = strings.TrimSpace(args); args != "" {
		n, err := strconv.Atoi(args)
		if err != nil || n <= 0 {
			return "Usage: /history [n], where n is a positive number."
		}
		limit = n
	}

	pubs, err := c.History.Recent(ctx, limit)
	if err != nil {
		c.Logger.Error("Failed to load history", "error", err)
		return "Something went wrong while loading the history."
	}
	if len(pubs) == 0 {
		return "Nothing has been published yet."
	}

	var b strings.Builder
	b.WriteString("Recently published:\n")
	for i, p := range pubs {
		fmt.Fprintf(&b, "%d. [%s] %s\n%s (%s)\n", i+1, p.Platform, formatter.Truncate(p.Title, maxTitleRunes), p.URL, p.PublishedAt.Format("2006-01-02 15:04"))
	}
	return b.String()
}

func (c *CommandImpl) statsText(ctx context.Context) string {
	stats, err := c.History.Stats(ctx)
	if err != nil {
		c.Logger.Error("Failed to load stats", "error", err)
		return "Something went wrong while loading the stats."
	}

	var b strings.Builder
	b.WriteString("Published videos:\n")
	for _, p := range domain.Platforms() {
		fmt.Fprintf(&b, "%s: %s\n", p, formatter.FormatNumber(stats[p]))
	}
	return b.String()
}

func formatStatus(v session.View) string {
	var b strings.Builder

	if v.Step == int(session.Complete) {
		b.WriteString("Wizard complete\n")
	} else {
		fmt.Fprintf(&b, "Step %d/5: %s\n", v.Step, v.StepName)
	}

	for _, p := range domain.Platforms() {
		conn := v.Connections[p]
		switch {
		case conn.Connected && conn.Username != nil:
			fmt.Fprintf(&b, "%s: connected as %s\n", p, *conn.Username)
		case conn.Connecting:
			fmt.Fprintf(&b, "%s: connecting\n", p)
		default:
			fmt.Fprintf(&b, "%s: not connected\n", p)
		}
	}

	if v.Step >= int(session.Upload) {
		for _, p := range domain.Platforms() {
			if !v.Connections[p].Connected {
				continue
			}
			up := v.Uploads[p]
			line := fmt.Sprintf("upload %s: %s", p, up.Status)
			if up.Result != nil {
				line += " " + up.Result.URL
			}
			if up.Error != "" {
				line += " (" + up.Error + ")"
			}
			b.WriteString(line + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
