package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: create a new game instance
	game := NewGame("ABC123")

	// Then: the game should have the expected initial state
	require.NotNil(t, game)
	assert.Equal(t, "ABC123", game.RoomID)
	assert.Equal(t, PhaseWaiting, game.Phase)
	assert.Empty(t, game.Players)
	assert.Equal(t, 1, game.CurrentRound)
	assert.Empty(t, game.Word)
	assert.Empty(t, game.RevealedLetters)
	assert.Empty(t, game.GuessedLetters)
	assert.Zero(t, game.WrongGuesses)
	assert.Equal(t, MaxWrongGuesses, game.MaxWrongGuesses)
}

func TestGamePhaseMethods(t *testing.T) {
	t.Run("IsWaiting returns true in waiting phase", func(t *testing.T) {
		// Given: a game in the waiting phase
		game := &Game{Phase: PhaseWaiting}

		// Then: only the waiting predicate holds
		assert.True(t, game.IsWaiting())
		assert.False(t, game.IsPlaying())
	})

	t.Run("IsPlaying returns true in playing phase", func(t *testing.T) {
		// Given: a game in the playing phase
		game := &Game{Phase: PhasePlaying}

		assert.True(t, game.IsPlaying())
		assert.False(t, game.IsGameOver())
	})

	t.Run("IsGameOver returns true in game-over phase", func(t *testing.T) {
		// Given: a finished round
		game := &Game{Phase: PhaseGameOver}

		assert.True(t, game.IsGameOver())
	})
}

func TestGame_IsWordRevealed(t *testing.T) {
	t.Run("Empty word is never revealed", func(t *testing.T) {
		// Given: a game with no active word
		game := NewGame("000")

		// Then: the word is not considered revealed
		assert.False(t, game.IsWordRevealed())
	})

	t.Run("Word with all letters revealed", func(t *testing.T) {
		// Given: a game where every distinct letter was revealed
		game := NewGame("000")
		game.Word = "CAT"
		game.RevealedLetters = []string{"C", "A", "T"}

		// Then: the word counts as fully revealed
		assert.True(t, game.IsWordRevealed())
	})

	t.Run("Repeated letters need a single reveal", func(t *testing.T) {
		// Given: a word with a repeated letter
		game := NewGame("000")
		game.Word = "LLAMA"
		game.RevealedLetters = []string{"L", "A", "M"}

		assert.True(t, game.IsWordRevealed())
	})

	t.Run("Partially revealed word", func(t *testing.T) {
		// Given: a game with one letter still hidden
		game := NewGame("000")
		game.Word = "CAT"
		game.RevealedLetters = []string{"C", "A"}

		assert.False(t, game.IsWordRevealed())
	})
}

func TestGame_ResetRound(t *testing.T) {
	// Given: a game mid-round with guesses recorded
	game := NewGame("000")
	game.Word = "CAT"
	game.RevealedLetters = []string{"C"}
	game.GuessedLetters = []string{"C", "X"}
	game.WrongGuesses = 1

	// When: the round is reset
	game.ResetRound()

	// Then: all round-scoped fields are cleared
	assert.Empty(t, game.Word)
	assert.Empty(t, game.RevealedLetters)
	assert.Empty(t, game.GuessedLetters)
	assert.Zero(t, game.WrongGuesses)
}

func TestGame_RefreshRoleIDs(t *testing.T) {
	// Given: a game with a setter and a guesser
	game := NewGame("000")
	game.Players = []*Player{
		{ID: "a", Role: RoleSetter},
		{ID: "b", Role: RoleGuesser},
	}

	// When: the denormalized ids are refreshed
	game.RefreshRoleIDs()

	// Then: they point at the right players
	assert.Equal(t, "a", game.WordSetterID)
	assert.Equal(t, "b", game.GuesserID)
}

func TestPlayer_SwapRole(t *testing.T) {
	// Given: a setter and a guesser
	setter := &Player{ID: "a", Role: RoleSetter}
	guesser := &Player{ID: "b", Role: RoleGuesser}

	// When: both swap roles
	setter.SwapRole()
	guesser.SwapRole()

	// Then: the roles are flipped
	assert.Equal(t, RoleGuesser, setter.Role)
	assert.Equal(t, RoleSetter, guesser.Role)
}
