package game

import "snakego/core"

// CheckCollision classifies a freshly advanced head. The wall test
// runs before the self test, and a snake of length 1 never hits
// itself no matter what body is passed in.
func CheckCollision(head core.Cell, grid core.Grid, body []core.Cell, length int) core.Outcome {
	if !grid.Contains(head) {
		return core.WallHit
	}
	if length > 1 && containsCell(body, head) {
		return core.SelfHit
	}
	return core.Ok
}

func containsCell(cells []core.Cell, c core.Cell) bool {
	for _, b := range cells {
		if b == c {
			return true
		}
	}
	return false
}
