package seabattle

import "fmt"

// Announce describes a legal shot from the point of view of the human player.
func Announce(shooter Side, res ShotResult) string {
	if shooter == Human {
		switch res.Outcome {
		case Hit:
			return fmt.Sprintf("%s: hit! Make another shot.", res.Target)
		case Sunk:
			return fmt.Sprintf("%s: you sank a %d-deck ship!", res.Target, res.Ship.Len())
		default:
			return fmt.Sprintf("%s: miss.", res.Target)
		}
	}

	switch res.Outcome {
	case Hit:
		return fmt.Sprintf("Computer fires at %s: hit, it shoots again.", res.Target)
	case Sunk:
		return fmt.Sprintf("Computer fires at %s: your %d-deck ship has sunk!", res.Target, res.Ship.Len())
	default:
		return fmt.Sprintf("Computer fires at %s: miss.", res.Target)
	}
}
