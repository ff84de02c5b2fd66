// Package domain contains core concepts of the brew round system.
// This file defines Participant entities and their derived fields.
// No runtime, transport, or storage logic should be added here.
package domain

// Counter field names used by the repositories' atomic increment API.
const (
	CounterBrewed   = "brewed"
	CounterReceived = "received"
	CounterConsumed = "consumed"
	CounterRounds   = "rounds"
)

// Participant is anyone the bot has ever talked to.
// The zero value of Preference means "not registered".
type Participant struct {
	ID               string
	Username         string
	RealName         string
	Email            string
	Picture          string
	Preference       string
	Deleted          bool
	Brewed           int
	Received         int
	Consumed         int
	Rounds           int
	NominationPoints int // TODO: spend these to budget /nominate calls

	Rank             int
}

// Name returns the display name, falling back to the username.
// Computed at read time so it can never go stale.
func (p Participant) Name() string {
	if p.RealName != "" {
		return p.RealName
	}
	return p.Username
}

// Registered reports whether the participant has stated a brew preference.
func (p Participant) Registered() bool {
	return p.Preference != ""
}

// Badge maps the current rank to a podium medal. Rank 0 means unranked.
func (p Participant) Badge() string {
	switch p.Rank {
	case 1:
		return "\U0001F947" // gold
	case 2:
		return "\U0001F948" // silver
	case 3:
		return "\U0001F949" // bronze
	default:
		return ""
	}
}
