package entity

import "strings"

const (
	PhaseWaiting     = "waiting"
	PhaseWordSetting = "word-setting"
	PhasePlaying     = "playing"
	PhaseDrawing     = "drawing"
	PhaseGameOver    = "game-over"
)

const (
	MaxPlayers      = 2
	MaxWrongGuesses = 6
)

// Game is the authoritative state of one room. It is mutated only by the
// room session goroutine and broadcast as a whole after every accepted action.
type Game struct {
	RoomID          string    `json:"roomId"`
	Phase           string    `json:"phase"`
	Players         []*Player `json:"players"`
	CurrentRound    int       `json:"currentRound"`
	Word            string    `json:"word"`
	RevealedLetters []string  `json:"revealedLetters"`
	GuessedLetters  []string  `json:"guessedLetters"`
	WrongGuesses    int       `json:"wrongGuesses"`
	MaxWrongGuesses int       `json:"maxWrongGuesses"`
	WordSetterID    string    `json:"wordSetterId"`
	GuesserID       string    `json:"guesserId"`
}

func NewGame(roomID string) *Game {
	return &Game{
		RoomID:          roomID,
		Phase:           PhaseWaiting,
		Players:         make([]*Player, 0, MaxPlayers),
		CurrentRound:    1,
		Word:            "",
		RevealedLetters: make([]string, 0),
		GuessedLetters:  make([]string, 0),
		WrongGuesses:    0,
		MaxWrongGuesses: MaxWrongGuesses,
	}
}

func (that *Game) IsWaiting() bool {
	return that.Phase == PhaseWaiting
}

func (that *Game) IsWordSetting() bool {
	return that.Phase == PhaseWordSetting
}

func (that *Game) IsPlaying() bool {
	return that.Phase == PhasePlaying
}

func (that *Game) IsDrawing() bool {
	return that.Phase == PhaseDrawing
}

func (that *Game) IsGameOver() bool {
	return that.Phase == PhaseGameOver
}

func (that *Game) IsFull() bool {
	return len(that.Players) >= MaxPlayers
}

func (that *Game) PlayerByID(id string) *Player {
	for _, player := range that.Players {
		if player.ID == id {
			return player
		}
	}

	return nil
}

func (that *Game) PlayerByRole(role string) *Player {
	for _, player := range that.Players {
		if player.Role == role {
			return player
		}
	}

	return nil
}

// HasGuessed reports whether the letter was already attempted this round.
func (that *Game) HasGuessed(letter string) bool {
	for _, guessed := range that.GuessedLetters {
		if guessed == letter {
			return true
		}
	}

	return false
}

// IsWordRevealed reports whether every letter of the secret word has been
// revealed. An empty word is never considered revealed.
func (that *Game) IsWordRevealed() bool {
	if that.Word == "" {
		return false
	}

	for _, letter := range strings.Split(that.Word, "") {
		if !that.isRevealed(letter) {
			return false
		}
	}

	return true
}

func (that *Game) isRevealed(letter string) bool {
	for _, revealed := range that.RevealedLetters {
		if revealed == letter {
			return true
		}
	}

	return false
}

// ResetRound clears all round-scoped fields, keeping players and scores.
func (that *Game) ResetRound() {
	that.Word = ""
	that.RevealedLetters = make([]string, 0)
	that.GuessedLetters = make([]string, 0)
	that.WrongGuesses = 0
}

// RefreshRoleIDs recomputes the denormalized setter/guesser id fields from
// the player list.
func (that *Game) RefreshRoleIDs() {
	that.WordSetterID = ""
	that.GuesserID = ""

	for _, player := range that.Players {
		switch player.Role {
		case RoleSetter:
			that.WordSetterID = player.ID
		case RoleGuesser:
			that.GuesserID = player.ID
		}
	}
}
