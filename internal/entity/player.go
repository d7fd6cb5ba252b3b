package entity

const (
	RoleSetter  = "setter"
	RoleGuesser = "guesser"
)

type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Role  string `json:"role"`
}

func (that *Player) IsSetter() bool {
	return that.Role == RoleSetter
}

func (that *Player) IsGuesser() bool {
	return that.Role == RoleGuesser
}

// SwapRole flips the player between setter and guesser.
func (that *Player) SwapRole() {
	if that.Role == RoleSetter {
		that.Role = RoleGuesser
	} else {
		that.Role = RoleSetter
	}
}
