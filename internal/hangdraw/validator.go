// Package hangdraw holds the transition rules of the word-guessing game.
// Every function takes the current room state and a proposed action, applies
// it when its preconditions hold and reports what happened. Nothing here does
// I/O, so the whole state machine is testable without a transport.
package hangdraw

import (
	"strings"

	"github.com/hangdraw/hangdraw-backend/internal/apperror"
	"github.com/hangdraw/hangdraw-backend/internal/entity"
)

// Outcome classifies the result of applying an action to the game state.
type Outcome string

const (
	// OutcomeIgnored means a precondition failed and the state is untouched.
	OutcomeIgnored Outcome = "ignored"
	// OutcomeNoop means the action was legal but changed nothing
	// (re-guessing an already guessed letter).
	OutcomeNoop Outcome = "noop"

	OutcomeJoined      Outcome = "joined"
	OutcomeReconnected Outcome = "reconnected"
	OutcomeStarted     Outcome = "started"
	OutcomeWordSet     Outcome = "word-set"
	OutcomeCorrect     Outcome = "correct"
	OutcomeWrong       Outcome = "wrong"
	OutcomeWin         Outcome = "win"
	OutcomeLoss        Outcome = "loss"
	OutcomeResumed     Outcome = "resumed"
	OutcomeRematch     Outcome = "rematch"
	OutcomeLeft        Outcome = "left"
)

const (
	minWordLength = 3
	maxWordLength = 15
)

// AddPlayer registers a player in the room. A known player id is a
// reconnect, not an error; a third distinct player is ignored. The first
// joiner becomes the setter, the second the guesser.
func AddPlayer(game *entity.Game, playerID, playerName string) Outcome {
	if game.PlayerByID(playerID) != nil {
		return OutcomeReconnected
	}

	if game.IsFull() {
		return OutcomeIgnored
	}

	role := entity.RoleSetter
	if len(game.Players) > 0 {
		role = entity.RoleGuesser
	}

	game.Players = append(game.Players, &entity.Player{
		ID:   playerID,
		Name: playerName,
		Role: role,
	})
	game.RefreshRoleIDs()

	return OutcomeJoined
}

// StartGame moves the room from waiting to word-setting once both players
// are present.
func StartGame(game *entity.Game) Outcome {
	if !game.IsWaiting() || !game.IsFull() {
		return OutcomeIgnored
	}

	game.Phase = entity.PhaseWordSetting

	return OutcomeStarted
}

// ValidateWord checks the secret word against the 3-15 letters, A-Z only
// contract. The word is expected to be uppercased already.
func ValidateWord(word string) error {
	if len(word) < minWordLength {
		return apperror.ErrWordTooShort
	}

	if len(word) > maxWordLength {
		return apperror.ErrWordTooLong
	}

	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return apperror.ErrWordCharset
		}
	}

	return nil
}

// SetWord stores the secret word and opens the guessing phase. The word is
// canonicalized to uppercase and validated server-side; a malformed word is
// rejected and the state stays untouched.
func SetWord(game *entity.Game, word string) (Outcome, error) {
	if !game.IsWordSetting() {
		return OutcomeIgnored, nil
	}

	word = strings.ToUpper(strings.TrimSpace(word))
	if err := ValidateWord(word); err != nil {
		return OutcomeIgnored, err
	}

	game.Word = word
	game.Phase = entity.PhasePlaying

	return OutcomeWordSet, nil
}

// Guess applies a letter guess. A correct letter is revealed; revealing the
// whole word wins the round for the guesser. A wrong letter moves the room
// to the drawing phase, or ends the round in favor of the setter once the
// guess limit is reached.
func Guess(game *entity.Game, letter string) Outcome {
	if !game.IsPlaying() {
		return OutcomeIgnored
	}

	letter = strings.ToUpper(strings.TrimSpace(letter))
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return OutcomeIgnored
	}

	if game.HasGuessed(letter) {
		return OutcomeNoop
	}

	game.GuessedLetters = append(game.GuessedLetters, letter)

	if strings.Contains(game.Word, letter) {
		game.RevealedLetters = append(game.RevealedLetters, letter)

		if game.IsWordRevealed() {
			game.Phase = entity.PhaseGameOver
			if guesser := game.PlayerByRole(entity.RoleGuesser); guesser != nil {
				guesser.Score++
			}
			return OutcomeWin
		}

		return OutcomeCorrect
	}

	game.WrongGuesses++

	if game.WrongGuesses >= game.MaxWrongGuesses {
		game.Phase = entity.PhaseGameOver
		if setter := game.PlayerByRole(entity.RoleSetter); setter != nil {
			setter.Score++
		}
		return OutcomeLoss
	}

	game.Phase = entity.PhaseDrawing

	return OutcomeWrong
}

// DrawingDone resumes guessing after the setter finished the penalty step.
func DrawingDone(game *entity.Game) Outcome {
	if !game.IsDrawing() {
		return OutcomeIgnored
	}

	game.Phase = entity.PhasePlaying

	return OutcomeResumed
}

// PlayAgain starts a new round: roles swap, scores persist, round-scoped
// fields reset and the round counter advances.
func PlayAgain(game *entity.Game) Outcome {
	if !game.IsGameOver() {
		return OutcomeIgnored
	}

	for _, player := range game.Players {
		player.SwapRole()
	}
	game.RefreshRoleIDs()

	game.ResetRound()
	game.Phase = entity.PhaseWordSetting
	game.CurrentRound++

	return OutcomeRematch
}

// RemovePlayer handles a full departure: the player is dropped, the round in
// progress is abandoned and a remaining player is forced back to setter so a
// fresh game can start. Returns the departed player's name for the
// notification to the remaining client.
func RemovePlayer(game *entity.Game, playerID string) (string, Outcome) {
	departing := game.PlayerByID(playerID)
	if departing == nil {
		return "", OutcomeIgnored
	}

	remaining := make([]*entity.Player, 0, entity.MaxPlayers)
	for _, player := range game.Players {
		if player.ID != playerID {
			remaining = append(remaining, player)
		}
	}
	game.Players = remaining

	// A lone guesser cannot proceed, so whoever is left sets the next word.
	for _, player := range game.Players {
		player.Role = entity.RoleSetter
	}
	game.RefreshRoleIDs()

	game.ResetRound()
	game.Phase = entity.PhaseWaiting

	return departing.Name, OutcomeLeft
}
