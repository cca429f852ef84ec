package graph

// View holds the parameters that place the curve on screen.
type View struct {
	Phase     int
	Amplitude float64
	Origin    int
}

// Steps are the increments applied per action.
type Steps struct {
	Phase        int
	Amplitude    float64
	Origin       int
	MinAmplitude float64
}

// DefaultSteps matches the interactive step sizes.
var DefaultSteps = Steps{
	Phase:        5,
	Amplitude:    1.5,
	Origin:       2,
	MinAmplitude: 0.5,
}

// DefaultView centres the origin vertically in fr.
func DefaultView(fr Frame) View {
	return View{Amplitude: 2, Origin: fr.Height / 2}
}

// Action is a discrete view mutation.
type Action uint8

const (
	ActionNone Action = iota
	PanLeft
	PanRight
	ZoomIn
	ZoomOut
	RaiseOrigin
	LowerOrigin
)

func (a Action) String() string {
	switch a {
	case PanLeft:
		return "pan-left"
	case PanRight:
		return "pan-right"
	case ZoomIn:
		return "zoom-in"
	case ZoomOut:
		return "zoom-out"
	case RaiseOrigin:
		return "raise-origin"
	case LowerOrigin:
		return "lower-origin"
	default:
		return "none"
	}
}

// Controller applies actions to a View and tracks whether it needs re-sampling.
type Controller struct {
	View  View
	Steps Steps

	dirty bool
}

// NewController returns a controller that starts dirty so the first frame samples.
func NewController(v View, s Steps) *Controller {
	if s.MinAmplitude <= 0 {
		s.MinAmplitude = DefaultSteps.MinAmplitude
	}
	if v.Amplitude < s.MinAmplitude {
		v.Amplitude = s.MinAmplitude
	}
	return &Controller{View: v, Steps: s, dirty: true}
}

// Apply mutates the view. It reports whether the view changed.
func (c *Controller) Apply(a Action) bool {
	prev := c.View
	switch a {
	case PanLeft:
		c.View.Phase += c.Steps.Phase
	case PanRight:
		c.View.Phase -= c.Steps.Phase
	case ZoomIn:
		c.View.Amplitude += c.Steps.Amplitude
	case ZoomOut:
		c.View.Amplitude -= c.Steps.Amplitude
		if c.View.Amplitude < c.Steps.MinAmplitude {
			c.View.Amplitude = c.Steps.MinAmplitude
		}
	case RaiseOrigin:
		c.View.Origin += c.Steps.Origin
	case LowerOrigin:
		c.View.Origin -= c.Steps.Origin
	}
	if c.View == prev {
		return false
	}
	c.dirty = true
	return true
}

// Invalidate forces the next Take to report dirty.
func (c *Controller) Invalidate() { c.dirty = true }

// Take returns the dirty flag and clears it.
func (c *Controller) Take() bool {
	d := c.dirty
	c.dirty = false
	return d
}

// Dirty reports the flag without clearing it.
func (c *Controller) Dirty() bool { return c.dirty }
