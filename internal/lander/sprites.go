package lander

import "github.com/vovakirdan/tui-lander/internal/core"

const (
	green  = core.ColorBrightGreen
	white  = core.ColorBrightWhite
	yellow = core.ColorBrightYellow
)

var (
	landerIdle = core.Sprite{
		Rows: []string{
			"=__ ",
			" || ",
			` /\ `,
		},
		Colors: [][]core.Color{
			{green, white, white, white},
			{white, white, white, white},
			{white, yellow, yellow, white},
		},
		Fallback: white,
	}

	// Flame on the right side pushes the lander left.
	landerLeft = core.Sprite{
		Rows: []string{
			"=__ ",
			" ||<",
			` /\ `,
		},
		Colors: [][]core.Color{
			{green, white, white, white},
			{white, white, white, yellow},
			{white, white, white, white},
		},
		Fallback: white,
	}

	landerRight = core.Sprite{
		Rows: []string{
			"=__ ",
			">|| ",
			` /\ `,
		},
		Colors: [][]core.Color{
			{green, white, white, white},
			{yellow, white, white, white},
			{white, white, white, white},
		},
		Fallback: white,
	}
)

// LanderSprite picks the sprite for the lander's current lateral thrust.
func LanderSprite(l *Lander) core.Sprite {
	switch {
	case l.MovingLeft:
		return landerLeft
	case l.MovingRight:
		return landerRight
	default:
		return landerIdle
	}
}

// ExplosionFrame is a stage of the crash animation.
type ExplosionFrame int

const (
	ExplosionEmpty ExplosionFrame = iota
	ExplosionSmall
	ExplosionBig
)

var explosionSprites = map[ExplosionFrame]core.Sprite{
	ExplosionEmpty: {
		Rows: []string{
			"       ",
			"       ",
			"       ",
			"       ",
			"       ",
		},
		Fallback: yellow,
	},
	ExplosionSmall: {
		Rows: []string{
			"       ",
			`  \|/  `,
			"  - -  ",
			`  /|\  `,
			"       ",
		},
		Fallback: yellow,
	},
	ExplosionBig: {
		Rows: []string{
			`\  |  /`,
			"       ",
			"-     -",
			"       ",
			`/  |  \`,
		},
		Fallback: yellow,
	},
}

var splashSprite = core.Sprite{
	Rows: []string{
		"  Lunar Lander  ",
		"       __       ",
		"       ||       ",
		`       /\       `,
		"                ",
		"   Get Ready!   ",
	},
	Fallback: white,
}

// artBlock is a piece of banner text anchored at a fixed screen position.
type artBlock struct {
	X, Y int
	Rows []string
}

func (a artBlock) draw(dst *core.Screen, c core.Color) {
	for i, row := range a.Rows {
		dst.DrawTextColor(a.X, a.Y+i, row, c)
	}
}
