// Package game implements a single-player snake on a toroidal square board.
//
// A GameState is not safe for concurrent use; callers serialize Move and
// Snapshot themselves.
package game

import (
	"time"

	"toroidal-snake/game/entity"
	"toroidal-snake/game/manager"
	"toroidal-snake/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// GameOverScore is returned by Move once the game has ended.
const GameOverScore = -1

// InitialHeading is the heading of a freshly built snake.
const InitialHeading = types.West

var (
	ErrInvalidBoardSize = errors.New("board size must be positive")
	ErrInvalidLength    = errors.New("initial length must be positive and fit in one row")
	ErrNoRoomForFood    = errors.New("initial snake leaves no free cell for food")
)

// State is the lifecycle phase of a game.
type State int

const (
	Playing State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game over"
	}
	return "playing"
}

type GameState struct {
	id        string
	size      int
	snake     *entity.Snake
	heading   types.Direction
	food      types.Cell
	hasFood   bool
	score     int
	steps     int
	state     State
	collision types.CollisionType
	startTime time.Time
	endTime   time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

// New builds a game whose food placement is seeded from the clock.
func New(boardSize, initialLength int) (*GameState, error) {
	return NewWithRand(boardSize, initialLength, rand.New(rand.NewSource(uint64(time.Now().UnixNano()))))
}

// NewWithRand builds a game drawing food positions from rng.
func NewWithRand(boardSize, initialLength int, rng *rand.Rand) (*GameState, error) {
	if err := Validate(boardSize, initialLength); err != nil {
		return nil, err
	}

	g := &GameState{
		id:           uuid.New().String(),
		size:         boardSize,
		snake:        entity.NewSnake(initialBody(boardSize, initialLength)),
		heading:      InitialHeading,
		state:        Playing,
		startTime:    time.Now(),
		collisionMgr: manager.NewCollisionManager(boardSize),
		foodMgr:      manager.NewFoodManager(boardSize, rng),
	}
	g.food, g.hasFood = g.foodMgr.GenerateFood(g.snake)

	return g, nil
}

// Validate checks construction parameters without building a game.
func Validate(boardSize, initialLength int) error {
	if boardSize <= 0 {
		return errors.Wrapf(ErrInvalidBoardSize, "board size %d", boardSize)
	}
	if initialLength <= 0 || initialLength > boardSize {
		return errors.Wrapf(ErrInvalidLength, "initial length %d on board %d", initialLength, boardSize)
	}
	if initialLength >= boardSize*boardSize {
		return errors.Wrapf(ErrNoRoomForFood, "initial length %d on board %d", initialLength, boardSize)
	}
	return nil
}

// initialBody lays the snake out on the middle row, head at the centre,
// extending east. Columns wrap past the right edge.
func initialBody(size, length int) []types.Cell {
	mid := size / 2
	cells := make([]types.Cell, length)
	for i := range cells {
		cells[i] = types.Cell{X: types.Wrap(mid+i, size), Y: mid}
	}
	return cells
}

// Move advances the snake one cell in dir and returns the score, or
// GameOverScore when the move ends the game. A finished game keeps
// returning GameOverScore and is never mutated.
func (g *GameState) Move(dir types.Direction) int {
	if g.state == GameOver {
		return GameOverScore
	}

	newHead, collision := g.collisionMgr.HandleMovement(g.snake, g.heading, dir)
	if collision != types.NoCollision {
		g.state = GameOver
		g.collision = collision
		g.endTime = time.Now()
		return GameOverScore
	}

	g.heading = dir
	g.snake.Move(newHead)
	g.steps++

	if g.hasFood && newHead == g.food {
		g.score++
		g.food, g.hasFood = g.foodMgr.GenerateFood(g.snake)
	} else {
		g.snake.RemoveTail()
	}

	return g.score
}

// Snapshot renders the board as rows indexed [y][x].
func (g *GameState) Snapshot() [][]types.Marker {
	board := make([][]types.Marker, g.size)
	for y := range board {
		row := make([]types.Marker, g.size)
		for x := range row {
			row[x] = types.Empty
		}
		board[y] = row
	}

	if g.hasFood {
		board[g.food.Y][g.food.X] = types.Food
	}
	for _, c := range g.snake.Cells() {
		board[c.Y][c.X] = types.Snake
	}

	return board
}

func (g *GameState) ID() string { return g.id }
func (g *GameState) BoardSize() int { return g.size }
func (g *GameState) Score() int { return g.score }
func (g *GameState) Steps() int { return g.steps }
func (g *GameState) Heading() types.Direction { return g.heading }
func (g *GameState) Head() types.Cell { return g.snake.GetHead() }
func (g *GameState) Len() int { return g.snake.Len() }
func (g *GameState) State() State { return g.state }
func (g *GameState) IsOver() bool { return g.state == GameOver }
func (g *GameState) StartTime() time.Time { return g.startTime }
func (g *GameState) Body() []types.Cell { return g.snake.Cells() }
func (g *GameState) Food() (types.Cell, bool) { return g.food, g.hasFood }

// LastCollision is the reason the game ended, or NoCollision while playing.
func (g *GameState) LastCollision() types.CollisionType { return g.collision }

// Duration is the time played so far, or the total once the game is over.
func (g *GameState) Duration() time.Duration {
	if g.state == GameOver {
		return g.endTime.Sub(g.startTime)
	}
	return time.Since(g.startTime)
}
