package kong

import "fmt"

// Display receives HUD updates. The game writes to it and never reads back.
type Display interface {
	SetScore(score int)
	SetLives(lives int)
	SetLevel(level int)
	SetSummary(text string)
	ShowStart(visible bool)
	ShowGameOver(visible bool)
}

// Panel is the built-in Display that Game.Draw renders.
type Panel struct {
	Score    string
	Lives    string
	Level    string
	Summary  string
	Start    bool
	GameOver bool
}

func (p *Panel) SetScore(score int)        { p.Score = fmt.Sprintf("Score: %d", score) }
func (p *Panel) SetLives(lives int)        { p.Lives = fmt.Sprintf("Lives: %d", lives) }
func (p *Panel) SetLevel(level int)        { p.Level = fmt.Sprintf("Level: %d", level) }
func (p *Panel) SetSummary(text string)    { p.Summary = text }
func (p *Panel) ShowStart(visible bool)    { p.Start = visible }
func (p *Panel) ShowGameOver(visible bool) { p.GameOver = visible }

// displays fans HUD updates out to several sinks.
type displays []Display

func (ds displays) SetScore(score int) {
	for _, d := range ds {
		d.SetScore(score)
	}
}

func (ds displays) SetLives(lives int) {
	for _, d := range ds {
		d.SetLives(lives)
	}
}

func (ds displays) SetLevel(level int) {
	for _, d := range ds {
		d.SetLevel(level)
	}
}

func (ds displays) SetSummary(text string) {
	for _, d := range ds {
		d.SetSummary(text)
	}
}

func (ds displays) ShowStart(visible bool) {
	for _, d := range ds {
		d.ShowStart(visible)
	}
}

func (ds displays) ShowGameOver(visible bool) {
	for _, d := range ds {
		d.ShowGameOver(visible)
	}
}
