package core

// GameState is the snapshot the platform reads after each tick.
type GameState struct {
	Year     int  // Current calendar year
	Tick     int  // Ticks elapsed since start
	Tasks    int  // Live scheduler tasks
	GameOver bool // Whether the rocket has crashed
	Paused   bool // Whether the game is paused
}
