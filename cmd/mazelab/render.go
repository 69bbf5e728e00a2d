package main

import (
	"bytes"

	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/pursuit"
)

const (
	glyphPath   = '*'
	glyphPlayer = 'P'
	glyphEnemy  = 'X'
)

// canvas is the text form of a grid split into mutable rows.
func canvas(g *grid.Grid) [][]byte {
	return bytes.Split(bytes.TrimSuffix([]byte(g.String()), []byte("\n")), []byte("\n"))
}

func join(rows [][]byte) string {
	return string(append(bytes.Join(rows, []byte("\n")), '\n'))
}

// render draws the maze with path cells marked, keeping S and E visible.
func render(g *grid.Grid, path []grid.Coordinate) string {
	rows := canvas(g)
	for _, c := range path {
		if c != g.Start() && c != g.Exit() {
			rows[c.Y][c.X] = glyphPath
		}
	}
	return join(rows)
}

// renderGame draws the player's trail and both actors. The enemy wins a shared cell.
func renderGame(gm *pursuit.Game) string {
	rows := canvas(gm.Grid())
	g := gm.Grid()
	for _, c := range gm.Player().History() {
		if c != g.Start() && c != g.Exit() {
			rows[c.Y][c.X] = glyphPath
		}
	}
	p, en := gm.Player().Position(), gm.Enemy().Position()
	rows[p.Y][p.X] = glyphPlayer
	rows[en.Y][en.X] = glyphEnemy
	return join(rows)
}
