package entity

// TurnTime is the number of seconds a player has to move before the turn passes.
const TurnTime = 30

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDraw       = "draw"
)

type Mode string

const (
	ModeNone     Mode = ""
	ModeHuman    Mode = "vs-human"
	ModeComputer Mode = "vs-computer"
)

func (that Mode) IsValid() bool {
	return that == ModeHuman || that == ModeComputer
}

type Difficulty string

const (
	EasyDifficulty   Difficulty = "easy"
	MediumDifficulty Difficulty = "medium"
	HardDifficulty   Difficulty = "hard"
)

func (that Difficulty) IsValid() bool {
	switch that {
	case EasyDifficulty, MediumDifficulty, HardDifficulty:
		return true
	default:
		return false
	}
}

// Move is the position of a placed token.
type Move struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

type Game struct {
	ID            string         `json:"id"`
	Board         Board          `json:"board"`
	CurrentPlayer Player         `json:"current_player"`
	Winner        Player         `json:"winner"`
	IsGameOver    bool           `json:"is_game_over"`
	Status        string         `json:"status"`
	Scores        map[Player]int `json:"scores"`
	TimeLeft      int            `json:"time_left"`
	Mode          Mode           `json:"mode"`
	Difficulty    Difficulty     `json:"difficulty"`
	MoveCount     int            `json:"move_count"`
	LastMove      *Move          `json:"last_move"`
}

func (that *Game) IsFinished() bool {
	return that.IsGameOver
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusInProgress
}

func (that *Game) IsDraw() bool {
	return that.Status == StatusDraw
}

func (that *Game) IsWithComputer() bool {
	return that.Mode == ModeComputer
}

// Snapshot returns a deep copy of the game that can be handed to readers.
func (that *Game) Snapshot() Game {
	snapshot := *that
	snapshot.Board = that.Board.Clone()

	snapshot.Scores = make(map[Player]int, len(that.Scores))
	for player, score := range that.Scores {
		snapshot.Scores[player] = score
	}

	if that.LastMove != nil {
		lastMove := *that.LastMove
		snapshot.LastMove = &lastMove
	}

	return snapshot
}
