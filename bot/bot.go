// Package bot is the Telegram glue around the round services: inbound
// command dispatch and outbound message formatting. It holds no round
// state of its own; everything it knows it asks the services.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"brewbot/contract"
	"brewbot/domain"
	"brewbot/errors"
	"brewbot/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"
)

type handlerFunc func(user domain.Participant, args string) string

// command is one line of the dispatch table: the alias set and its
// handler. The table is ordered and matched first-alias-wins, with a
// default "unrecognized" fallback; no hidden dispatch state.
type command struct {
	aliases []string
	fn      handlerFunc
}

type Bot struct {
	log          *slog.Logger
	api          *tgbotapi.BotAPI
	chatID       int64
	botName      string
	beverage     string
	window       time.Duration
	clock        contract.Clock
	participants services.IParticipantService
	rounds       services.IRoundService
	ranks        services.IRankService
}

func New(
	log *slog.Logger,
	api *tgbotapi.BotAPI,
	chatID int64,
	botName string,
	beverage string,
	window time.Duration,
	clock contract.Clock,
	participants services.IParticipantService,
	rounds services.IRoundService,
	ranks services.IRankService,
) *Bot {
	return &Bot{
		log:          log,
		api:          api,
		chatID:       chatID,
		botName:      botName,
		beverage:     beverage,
		window:       window,
		clock:        clock,
		participants: participants,
		rounds:       rounds,
		ranks:        ranks,
	}
}

// Run is the long-polling transport loop, supervised like any other
// worker.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	b.log.Info("Bot listening", "chat", b.chatID)
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.Text == "" {
		return
	}
	if b.chatID != 0 && msg.Chat.ID != b.chatID {
		return
	}

	user, err := b.participants.FromChat(
		strconv.FormatInt(msg.From.ID, 10),
		msg.From.UserName,
		strings.TrimSpace(msg.From.FirstName+" "+msg.From.LastName),
	)
	if err != nil {
		b.log.Error("Participant lookup failed", "from", msg.From.ID, "err", err)
		return
	}

	if reply := b.Dispatch(user, msg.Text); reply != "" {
		if _, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
			b.log.Error("Reply failed", "err", err)
		}
	}
}

// Dispatch resolves a raw message into a handler and returns the reply
// text. Empty input yields an empty reply; an unknown verb yields the
// fallback.
func (b *Bot) Dispatch(user domain.Participant, text string) string {
	action, args := b.splitCommand(text)
	if action == "" {
		return ""
	}

	for _, cmd := range b.commands() {
		for _, alias := range cmd.aliases {
			if alias == action {
				return cmd.fn(user, args)
			}
		}
	}
	return "I did not understand that command. For help type /help."
}

func (b *Bot) commands() []command {
	return []command{
		{aliases: []string{"register", "update"}, fn: b.register},
		{aliases: []string{"brew", b.beverage}, fn: b.brew},
		{aliases: []string{"me", "in"}, fn: b.me},
		{aliases: []string{"nominate"}, fn: b.nominate},
		{aliases: []string{"timer", "remaining"}, fn: b.timer},
		{aliases: []string{"leaderboard"}, fn: b.leaderboard},
		{aliases: []string{"directory", "users"}, fn: b.directory},
		{aliases: []string{"stats"}, fn: b.stats},
		{aliases: []string{"info"}, fn: b.info},
		{aliases: []string{"help"}, fn: b.help},
		{aliases: []string{"ping"}, fn: b.ping},
		{aliases: []string{"hi", "hello", "yo"}, fn: b.hello},
	}
}

// splitCommand extracts the verb and argument tail from a message,
// tolerating both "/brew@brewbot milk" and plain "brew milk".
func (b *Bot) splitCommand(text string) (string, string) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return "", ""
	}
	action := strings.ToLower(strings.TrimPrefix(fields[0], "/"))
	if b.botName != "" {
		action = strings.TrimSuffix(action, "@"+strings.ToLower(b.botName))
	}
	return action, strings.TrimSpace(strings.Join(fields[1:], " "))
}

func (b *Bot) register(user domain.Participant, args string) string {
	if args == "" {
		return fmt.Sprintf("You didn't tell me what type of %s you like.\n\nTry /register milky %s",
			b.beverage, b.beverage)
	}
	_, wasRegistered, err := b.participants.Register(user, args)
	if err != nil {
		return fmt.Sprintf("That preference doesn't look right: %v", err)
	}
	if wasRegistered {
		return fmt.Sprintf("I've updated your %s preference", b.beverage)
	}
	return fmt.Sprintf("Welcome to the %s party %s", b.beverage, user.Name())
}

func (b *Bot) brew(user domain.Participant, _ string) string {
	switch err := b.rounds.Brew(user); err {
	case nil:
		return fmt.Sprintf("%s%s is making %s. Who's in? Type /me to join.",
			user.Name(), user.Badge(), b.beverage)
	case errors.ErrAlreadyBrewing:
		return fmt.Sprintf("You have already offered to make %s!", b.beverage)
	case errors.ErrRoundActive:
		return fmt.Sprintf("Someone is already making %s. Want in? Type /me.", b.beverage)
	default:
		b.log.Error("Brew failed", "user", user.ID, "err", err)
		return "Something went wrong starting the round."
	}
}

func (b *Bot) me(user domain.Participant, _ string) string {
	switch err := b.rounds.Join(user); err {
	case nil:
		return fmt.Sprintf("You're in %s!", user.Name())
	case errors.ErrNotRegistered:
		return fmt.Sprintf("You must register your %s preference first. Try /register milky %s",
			b.beverage, b.beverage)
	case errors.ErrNoRound, errors.ErrRoundOver:
		return fmt.Sprintf("No one has volunteered to make %s, why don't you make it %s?",
			b.beverage, user.Name())
	case errors.ErrSelfJoin:
		return fmt.Sprintf("%s you are making the %s!", user.Name(), b.beverage)
	case errors.ErrAlreadyJoined:
		return fmt.Sprintf("You said it once already %s.", user.Name())
	case errors.ErrRoundFull:
		return fmt.Sprintf("Sorry %s, this round is full.", user.Name())
	default:
		b.log.Error("Join failed", "user", user.ID, "err", err)
		return "Something went wrong joining the round."
	}
}

func (b *Bot) nominate(user domain.Participant, args string) string {
	username := parseMention(args)
	if username == "" {
		return "To nominate you must specify a valid user e.g. /nominate @fred"
	}
	target, err := b.participants.InfoByUsername(username)
	if err != nil {
		return "User not found!"
	}

	nominee, err := b.rounds.Nominate(user, target.ID)
	switch err {
	case nil:
		return fmt.Sprintf("%s%s has nominated %s%s to make %s! Who wants some? Type /me.",
			user.Name(), user.Badge(), nominee.Name(), nominee.Badge(), b.beverage)
	case errors.ErrNotFound:
		return "User not found!"
	case errors.ErrAlreadyBrewing:
		return fmt.Sprintf("You have already offered to make %s!", b.beverage)
	case errors.ErrRoundActive:
		return fmt.Sprintf("Someone is already making %s!", b.beverage)
	default:
		b.log.Error("Nominate failed", "user", user.ID, "err", err)
		return "Something went wrong starting the round."
	}
}

func (b *Bot) timer(_ domain.Participant, _ string) string {
	remaining, active := b.rounds.Remaining()
	if !active {
		return fmt.Sprintf("No one is making %s", b.beverage)
	}
	return fmt.Sprintf("%d seconds remaining...", remaining)
}

func (b *Bot) leaderboard(_ domain.Participant, args string) string {
	cutoff := b.clock.Now().Add(-b.window)
	if args != "" {
		parsed, err := time.Parse("2006-01-02", args)
		if err != nil {
			return "I can't read that date. Try /leaderboard 2026-01-31"
		}
		cutoff = parsed
	}

	entries, err := b.ranks.ComputeSince(cutoff)
	if err != nil {
		b.log.Error("Leaderboard failed", "err", err)
		return "Leaderboard is unavailable right now."
	}
	if len(entries) == 0 {
		return fmt.Sprintf("No one has brewed since %s.", cutoff.Format("January 2 2006"))
	}

	lines := lo.Map(entries, func(e services.Entry, idx int) string {
		return fmt.Sprintf("%d. %s has brewed %d cups of %s",
			idx+1, e.Participant.Name(), e.Score, b.beverage)
	})
	return fmt.Sprintf("Leaderboard since %s\n%s",
		cutoff.Format("January 2 2006"), strings.Join(lines, "\n"))
}

func (b *Bot) directory(_ domain.Participant, _ string) string {
	users, err := b.participants.Directory()
	if err != nil {
		b.log.Error("Directory failed", "err", err)
		return "Directory is unavailable right now."
	}
	lines := lo.Map(users, func(p domain.Participant, _ int) string {
		return fmt.Sprintf("@%s — %s likes %s", p.Username, p.Name(), p.Preference)
	})
	return fmt.Sprintf("There are %d registered users.\n%s", len(users), strings.Join(lines, "\n"))
}

func (b *Bot) stats(_ domain.Participant, _ string) string {
	users, err := b.participants.Stats()
	if err != nil {
		b.log.Error("Stats failed", "err", err)
		return "Stats are unavailable right now."
	}
	lines := lo.Map(users, func(p domain.Participant, _ int) string {
		return fmt.Sprintf("@%s%s — %d brewed | %d received | %d consumed",
			p.Username, p.Badge(), p.Brewed, p.Received, p.Consumed)
	})
	return fmt.Sprintf("Statistics for %d registered brewers.\n%s", len(users), strings.Join(lines, "\n"))
}

func (b *Bot) info(_ domain.Participant, args string) string {
	username := parseMention(args)
	if username == "" {
		return "To get user info please specify a valid user e.g. /info @bob"
	}
	p, err := b.participants.InfoByUsername(username)
	if err != nil {
		return "User not found!"
	}
	return fmt.Sprintf("@%s%s\n%s likes %s\n%d brewed | %d received | %d consumed",
		p.Username, p.Badge(), p.Name(), p.Preference, p.Brewed, p.Received, p.Consumed)
}

func (b *Bot) help(_ domain.Participant, _ string) string {
	return fmt.Sprintf(`Welcome to %sbot.

/register <preference> — tell me what you like
/brew — offer to make %s
/me — join the active round
/nominate @user — volunteer someone else
/timer — seconds left on the round
/leaderboard [YYYY-MM-DD] — who's been pulling their weight
/directory — registered users
/stats — brewing statistics
/info @user — one user's card`, b.beverage, b.beverage)
}

func (b *Bot) ping(_ domain.Participant, _ string) string {
	return "Pong!"
}

func (b *Bot) hello(user domain.Participant, _ string) string {
	return fmt.Sprintf("Hello %s!", user.Name())
}

func parseMention(args string) string {
	args = strings.TrimSpace(args)
	if !strings.HasPrefix(args, "@") {
		return ""
	}
	return strings.TrimPrefix(strings.Fields(args)[0], "@")
}
