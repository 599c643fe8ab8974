package main

// seerAction marks a target as seen by the seer and advances the night.
// The seer may pass by naming no target. A successful look appends "Seer"
// to the target's visible_to, so the filter reveals that player's team to
// the seer from then on.
func seerAction(gs *GameState, actorID, targetName string) *ActionError {
	actor := gs.playerByID(actorID)
	if actor == nil {
		return playerNotFound(actorID)
	}
	if gs.Phase.Name != PhaseSeer {
		return notYourTurn()
	}
	if actor.Attributes.Role != RoleSeer {
		return wrongRole("You are not the seer!")
	}

	if targetName != "" {
		target := gs.playerByName(targetName)
		if target == nil {
			return invalidTarget("Invalid player to see!")
		}
		if !target.Attributes.Alive {
			return alreadyDead()
		}
		for _, v := range target.Attributes.VisibleTo {
			if v == string(RoleSeer) {
				return alreadySeen()
			}
		}
		target.Attributes.VisibleTo = append(target.Attributes.VisibleTo, string(RoleSeer))
	}

	if livingPlayersWithRole(RoleBodyguard, gs.Players) > 0 {
		gs.Phase = newPhase(PhaseBodyguard)
	} else {
		gs.Phase = newPhase(PhaseWerewolf)
	}
	return nil
}

// bodyguardAction records tonight's protected player. The bodyguard may
// not protect themselves, a dead player, or the same player two nights
// running.
func bodyguardAction(gs *GameState, actorID, targetName string) *ActionError {
	actor := gs.playerByID(actorID)
	if actor == nil {
		return playerNotFound(actorID)
	}
	if gs.Phase.Name != PhaseBodyguard {
		return notYourTurn()
	}
	if actor.Attributes.Role != RoleBodyguard {
		return wrongRole("You are not the bodyguard!")
	}
	target := gs.playerByName(targetName)
	if target == nil || targetName == actor.Name || targetName == gs.InternalState[lastGuardedKey] {
		return invalidTarget("Invalid player to protect!")
	}
	if !target.Attributes.Alive {
		return alreadyDead()
	}

	gs.InternalState = map[string]string{lastGuardedKey: targetName}
	gs.Phase = newPhase(PhaseWerewolf)
	return nil
}

// werewolfAction records one werewolf's vote and, once every living
// werewolf has voted, resolves the night. A unanimous vote kills the
// target unless a living bodyguard protected them; any disagreement, or
// a protected target, ends the night with no kill. Votes accumulate in
// phase.data under each werewolf's name until resolution.
// Returns the victim when someone died.
func werewolfAction(gs *GameState, actorID, targetName string) (*Player, *ActionError) {
	actor := gs.playerByID(actorID)
	if actor == nil {
		return nil, playerNotFound(actorID)
	}
	if gs.Phase.Name != PhaseWerewolf {
		return nil, notYourTurn()
	}
	if actor.Attributes.Role != RoleWerewolf {
		return nil, wrongRole("You are not a werewolf!")
	}
	target := gs.playerByName(targetName)
	if target == nil || target.Attributes.Team != TeamGood {
		return nil, invalidTarget("Invalid player to eat!")
	}
	if !target.Attributes.Alive {
		return nil, alreadyDead()
	}

	gs.Phase.Data[actor.Name] = targetName

	numWerewolves := livingPlayersWithRole(RoleWerewolf, gs.Players)
	if len(gs.Phase.Data) < numWerewolves {
		return nil, nil // waiting on the rest of the pack
	}

	for _, vote := range gs.Phase.Data {
		if vote != targetName {
			gs.Phase = newPhase(PhaseDay)
			return nil, nil
		}
	}

	if gs.InternalState[lastGuardedKey] == targetName &&
		livingPlayersWithRole(RoleBodyguard, gs.Players) > 0 {
		gs.Phase = newPhase(PhaseDay)
		return nil, nil
	}

	target.Attributes.Alive = false

	if winners := checkGameOver(gs.Players); winners != nil {
		gs.Phase = newPhase(PhaseEnd)
		gs.Phase.Data[winnerKey] = winnerString(winners)
	} else {
		gs.Phase = newPhase(PhaseDay)
	}
	return target, nil
}
