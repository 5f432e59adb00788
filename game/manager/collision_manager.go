package manager

import (
	"toroidal-snake/game/entity"
	"toroidal-snake/game/types"
)

type CollisionManager struct {
	size int
}

func NewCollisionManager(size int) *CollisionManager {
	return &CollisionManager{
		size: size,
	}
}

// NextHead steps pos once in dir, wrapping around the board edges.
func (cm *CollisionManager) NextHead(pos types.Cell, dir types.Direction) types.Cell {
	dx, dy := dir.Delta()
	return types.Cell{
		X: types.Wrap(pos.X+dx, cm.size),
		Y: types.Wrap(pos.Y+dy, cm.size),
	}
}

// CheckTurn validates a requested direction against the current heading.
func (cm *CollisionManager) CheckTurn(heading, dir types.Direction) types.CollisionType {
	if !dir.Valid() {
		return types.InvalidDirection
	}
	if heading.IsOpposite(dir) {
		return types.IllegalReversal
	}
	return types.NoCollision
}

// CheckCollision tests the candidate head against the body. The tail is not
// an obstacle.
func (cm *CollisionManager) CheckCollision(pos types.Cell, snake *entity.Snake) types.CollisionType {
	if snake.ContainsExceptTail(pos) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// HandleMovement runs the turn check and, when the turn is legal, computes
// the candidate head and checks it for self collision.
func (cm *CollisionManager) HandleMovement(snake *entity.Snake, heading, dir types.Direction) (types.Cell, types.CollisionType) {
	if c := cm.CheckTurn(heading, dir); c != types.NoCollision {
		return types.Cell{}, c
	}
	newHead := cm.NextHead(snake.GetHead(), dir)
	return newHead, cm.CheckCollision(newHead, snake)
}
