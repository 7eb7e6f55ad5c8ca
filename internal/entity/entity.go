package entity

// ID identifies a collision-relevant entity of the range.
type ID int

const (
	Player ID = iota
	Arrow
	Target1
	Target2
	Target3
	WallLeft
	WallRight
	WallFront
	WallBack
	Count // Sentinel value for array sizing
)

// Kind groups entities by the collision rules that apply to them.
type Kind int

const (
	KindPlayer Kind = iota
	KindArrow
	KindTarget
	KindWall
)

var names = [Count]string{
	Player:    "archer",
	Arrow:     "arrow",
	Target1:   "target1",
	Target2:   "target2",
	Target3:   "target3",
	WallLeft:  "wall_left",
	WallRight: "wall_right",
	WallFront: "wall_front",
	WallBack:  "wall_back",
}

// Targets lists the target entities in draw order.
var Targets = [...]ID{Target1, Target2, Target3}

// Walls lists the boundary walls that block the archer and stop arrows.
var Walls = [...]ID{WallLeft, WallRight, WallFront, WallBack}

func (id ID) String() string {
	if id < 0 || id >= Count {
		return "unknown"
	}
	return names[id]
}

// Kind returns the rule group of the entity.
func (id ID) Kind() Kind {
	switch {
	case id == Player:
		return KindPlayer
	case id == Arrow:
		return KindArrow
	case id >= Target1 && id <= Target3:
		return KindTarget
	default:
		return KindWall
	}
}
