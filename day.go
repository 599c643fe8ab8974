package main

// lynchAction puts the village's verdict into effect. Only the moderator
// may lynch, only during Day, and only a living target. Returns the
// victim so the caller can narrate the death.
func lynchAction(gs *GameState, actorID, targetName string) (*Player, *ActionError) {
	actor := gs.playerByID(actorID)
	if actor == nil {
		return nil, playerNotFound(actorID)
	}
	if gs.Phase.Name != PhaseDay {
		return nil, notYourTurn()
	}
	if actor.Attributes.Role != RoleMod {
		return nil, wrongRole("You are not the moderator!")
	}
	target := gs.playerByName(targetName)
	if target == nil {
		return nil, invalidTarget("Invalid player to lynch!")
	}
	if !target.Attributes.Alive {
		return nil, alreadyDead()
	}

	target.Attributes.Alive = false

	if winners := checkGameOver(gs.Players); winners != nil {
		gs.Phase = newPhase(PhaseEnd)
		gs.Phase.Data[winnerKey] = winnerString(winners)
	} else {
		gs.Phase = newPhase(nextNightPhase(gs.Players))
	}
	return target, nil
}

// sleepAction sends the village to bed without a lynch. Moderator-only,
// Day-only; routes straight to the first enabled night phase.
func sleepAction(gs *GameState, actorID string) *ActionError {
	actor := gs.playerByID(actorID)
	if actor == nil {
		return playerNotFound(actorID)
	}
	if gs.Phase.Name != PhaseDay {
		return notYourTurn()
	}
	if actor.Attributes.Role != RoleMod {
		return wrongRole("You are not the moderator!")
	}
	gs.Phase = newPhase(nextNightPhase(gs.Players))
	return nil
}
