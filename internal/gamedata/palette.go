package gamedata

import "github.com/gdamore/tcell/v2"

// PaletteDef holds the hex colors used to draw the board.
type PaletteDef struct {
	Numbers   []string `json:"numbers"` // Colors for adjacency counts 1 through 8
	Mine      string   `json:"mine"`
	Flag      string   `json:"flag"`
	Concealed string   `json:"concealed"`
	Cursor    string   `json:"cursor"`
}

// LoadPalette loads the embedded palette.json.
func LoadPalette() (*PaletteDef, error) {
	p, err := Load[PaletteDef]("palette.json")
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() *PaletteDef {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

// NumberColor returns the color for an adjacency count of n.
// Counts without an entry are drawn white.
func (p *PaletteDef) NumberColor(n int) tcell.Color {
	if n < 1 || n > len(p.Numbers) {
		return tcell.ColorWhite
	}
	return colorOr(p.Numbers[n-1], tcell.ColorWhite)
}

// MineColor returns the color of a revealed mine.
func (p *PaletteDef) MineColor() tcell.Color {
	return colorOr(p.Mine, tcell.ColorRed)
}

// FlagColor returns the color of a flag.
func (p *PaletteDef) FlagColor() tcell.Color {
	return colorOr(p.Flag, tcell.ColorYellow)
}

// ConcealedColor returns the color of a concealed cell.
func (p *PaletteDef) ConcealedColor() tcell.Color {
	return colorOr(p.Concealed, tcell.ColorGray)
}

// CursorColor returns the background of the selected cell.
func (p *PaletteDef) CursorColor() tcell.Color {
	return colorOr(p.Cursor, tcell.ColorYellow)
}

func colorOr(hex string, fallback tcell.Color) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color
}
