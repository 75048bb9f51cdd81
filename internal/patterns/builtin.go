package patterns

import "strings"

func mustParse(name, description, art string) Pattern {
	p, err := Parse(strings.NewReader(art))
	if err != nil {
		panic(err)
	}
	p.Name = name
	p.Description = description
	return p
}

func init() {
	Register(mustParse("glider", "smallest spaceship, moves diagonally", `
.O.
..O
OOO
`))
	Register(mustParse("blinker", "period 2 oscillator", `
OOO
`))
	Register(mustParse("block", "still life", `
OO
OO
`))
	Register(mustParse("toad", "period 2 oscillator", `
.OOO
OOO.
`))
	Register(mustParse("beacon", "period 2 oscillator", `
OO..
OO..
..OO
..OO
`))
	Register(mustParse("lwss", "lightweight spaceship, moves horizontally", `
.O..O
O....
O...O
OOOO.
`))
	Register(mustParse("r-pentomino", "methuselah, stabilises after 1103 generations", `
.OO
OO.
.O.
`))
	Register(mustParse("sample", "eight-cell seed that grows into a mixed colony", `
......
.OO...
.OO.O.
...OOO
`))
}
