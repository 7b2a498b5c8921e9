package types

import "strings"

type BCFLAG uint8

const (
	BC_None BCFLAG = iota
	BC_Dirichlet
	BC_Neuman
)

var BCNameMap = map[string]BCFLAG{
	"dirichlet": BC_Dirichlet,
	"value":     BC_Dirichlet,
	"neuman":    BC_Neuman,
	"neumann":   BC_Neuman,
	"flux":      BC_Neuman,
}

func (bc BCFLAG) String() string {
	switch bc {
	case BC_Dirichlet:
		return "Dirichlet"
	case BC_Neuman:
		return "Neumann"
	}
	return "None"
}

func NewBCFLAG(label string) (bc BCFLAG) {
	var ok bool
	if bc, ok = BCNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		bc = BC_None
	}
	return
}

// Wall identifies one of the two ends of the 1D domain
type Wall uint8

const (
	Left_Wall Wall = iota
	Right_Wall
)

var WallNameMap = map[string]Wall{
	"left":       Left_Wall,
	"left_wall":  Left_Wall,
	"a":          Left_Wall,
	"right":      Right_Wall,
	"right_wall": Right_Wall,
	"b":          Right_Wall,
}

func (w Wall) String() string {
	if w == Right_Wall {
		return "RIGHT_WALL"
	}
	return "LEFT_WALL"
}

func NewWall(label string) (w Wall, ok bool) {
	w, ok = WallNameMap[strings.ToLower(strings.TrimSpace(label))]
	return
}
