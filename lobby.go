package main

import "math/rand"

func newLobbyPlayer(connID, name, secret string) Player {
	return Player{
		ID:     connID,
		Name:   name,
		Secret: secret,
		Attributes: PlayerAttributes{
			Role:      RoleUnknown,
			Team:      TeamUnknown,
			Alive:     true,
			VisibleTo: []string{VisibleToAll},
		},
	}
}

// newGameState builds a fresh lobby containing its founding player.
func newGameState(code, connID, name, secret string) *GameState {
	return &GameState{
		LobbyID:       code,
		Phase:         newPhase(PhaseLobby),
		Players:       []Player{newLobbyPlayer(connID, name, secret)},
		InternalState: map[string]string{},
	}
}

// joinGame admits a player into an existing lobby. A player whose name is
// already registered must present the matching secret and gets their
// connection id replaced (reconnect); reconnecting works in any phase.
// New names are only admitted while the lobby has not started.
func joinGame(gs *GameState, connID, name, secret string) *ActionError {
	if existing := gs.playerByName(name); existing != nil {
		if existing.Secret != secret {
			return validationError("Wrong secret for player %q", name)
		}
		existing.ID = connID
		return nil
	}
	if gs.Phase.Name != PhaseLobby {
		return validationError("Error cannot join an in-progress game")
	}
	gs.Players = append(gs.Players, newLobbyPlayer(connID, name, secret))
	return nil
}

// startGame deals roles and opens the first Day. The caller becomes the
// moderator.
func startGame(gs *GameState, actorID string, opts RoleOptions, rng *rand.Rand) *ActionError {
	if gs.Phase.Name != PhaseLobby {
		return notYourTurn()
	}
	players, aerr := assignRoles(gs.Players, opts, actorID, rng)
	if aerr != nil {
		return aerr
	}
	gs.Players = players
	gs.Phase = newPhase(PhaseDay)
	return nil
}
