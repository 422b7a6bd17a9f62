package vote

// ToggleVoteInput contains parameters for toggling a vote
type ToggleVoteInput struct {
	RoomID  string
	VoterID string
	GameID  string
}

// ToggleVoteOutput contains the result of toggling a vote
type ToggleVoteOutput struct {
	// Voted is true when the voter now backs GameID
	Voted bool

	// Votes is the whole votes map that was written
	Votes map[string]map[string]bool
}

// TallyInput contains parameters for tallying votes
type TallyInput struct {
	RoomID string
}

// TallyOutput contains the result of a tally
type TallyOutput struct {
	// WinnerID is the selected game
	WinnerID string

	// Votes are the sanitized votes the winner was selected from
	Votes map[string]map[string]bool
}
