package manager

import (
	"snek/game/entity"
	"snek/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (ct CollisionType) String() string {
	switch ct {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "unknown"
	}
}

// CheckMove classifies moving the head of s into dest. The current tail is
// not a collision: it leaves the cell on the same tick the head arrives.
func CheckMove(s *entity.Snake, dest types.Cell) CollisionType {
	if !dest.Valid() {
		return WallCollision
	}
	if s.Occupied(dest) && dest != s.Tail() {
		return SelfCollision
	}
	return NoCollision
}
