package vote

import (
	"github.com/KirkDiggler/roomsync/internal/models"
)

// Toggle returns the next votes map: the voter is removed from every other
// game and their membership in gameID is flipped. The input is not modified.
func Toggle(votes map[string]map[string]bool, voterID, gameID string) (map[string]map[string]bool, bool) {
	voted := !votes[gameID][voterID]

	next := make(map[string]map[string]bool, len(votes)+1)
	for game, voters := range votes {
		set := make(map[string]bool, len(voters))
		for voter, ok := range voters {
			if ok && voter != voterID {
				set[voter] = true
			}
		}
		if len(set) > 0 {
			next[game] = set
		}
	}

	if voted {
		if next[gameID] == nil {
			next[gameID] = map[string]bool{}
		}
		next[gameID][voterID] = true
	}

	return next, voted
}

// Sanitize drops votes cast by identities that are absent from the room or offline
func Sanitize(votes map[string]map[string]bool, players []*models.Player) map[string]map[string]bool {
	online := make(map[string]bool, len(players))
	for _, p := range players {
		if p.IsOnline() {
			online[p.ID] = true
		}
	}

	out := make(map[string]map[string]bool, len(votes))
	for game, voters := range votes {
		set := map[string]bool{}
		for voter, ok := range voters {
			if ok && online[voter] {
				set[voter] = true
			}
		}
		if len(set) > 0 {
			out[game] = set
		}
	}
	return out
}

// SelectWinner returns the game with the most voters. Ties go to the game
// declared first in order; with no votes the default is returned. Games
// missing from order never win.
func SelectWinner(votes map[string]map[string]bool, order []string, defaultID string) string {
	winner := defaultID
	best := 0

	for _, game := range order {
		count := 0
		for _, ok := range votes[game] {
			if ok {
				count++
			}
		}
		if count > best {
			winner = game
			best = count
		}
	}

	return winner
}
