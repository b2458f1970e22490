package combat

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Economy,Scoreboard

// Economy is the coin balance owned outside the simulation.
type Economy interface {
	GetCoinCount() int
	AddCoins(amount int)
	SubtractCoins(amount int)
}

// Scoreboard collects kills and earnings for the current run.
type Scoreboard interface {
	AddDeathCount()
	AddCoins(amount int)
	GameOver()
}
