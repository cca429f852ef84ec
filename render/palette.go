package render

import "golang.org/x/image/colornames"

var (
	ColorBG     = colornames.Black
	ColorAxis   = colornames.White
	ColorCurve  = colornames.White
	ColorLabel  = colornames.White
	ColorMark   = colornames.Red
	ColorHUD    = colornames.Darkgray
	ColorPrompt = colornames.Darkgray
	ColorInput  = colornames.Maroon
	ColorCaret  = colornames.Gold
	ColorError  = colornames.Orangered
)
