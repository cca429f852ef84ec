// Package hal is the boundary between the plotter and the host: display,
// input, time and logging.
package hal

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is the RGB565 plot surface. Present ends a frame.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode names the keys the plotter reacts to.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
	KeyZ
	KeyX
	KeyR
	KeyC
)

// KeyEvent is a keyboard event.
//
// Text input arrives as press events with Code == KeyUnknown and a Rune.
// Letter keys that double as plot controls are reported both ways.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard delivers press, release and rune events.
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Pointer reports the pointer position in framebuffer pixels.
type Pointer interface {
	Position() (x, y int)
}

// Display owns the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input groups keyboard and pointer.
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// Time streams millisecond tick sequence numbers. Slow consumers drop ticks.
type Time interface {
	Ticks() <-chan uint64
}

// HAL is everything a task may touch.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
