package curlyarc

// Standard defaults for new arcs.
const (
	DefaultWaveLength = 0.02
	DefaultAmplitude  = 0.01
	DefaultIsCurly    = true
)

// Defaults holds the wave parameters given to arcs created through it.
// Each editor, document or test owns its own Defaults; there is no
// process-wide copy.
type Defaults struct {
	waveLength float64
	amplitude  float64
	curly      bool
}

// NewDefaults returns Defaults seeded with the standard values.
func NewDefaults() *Defaults {
	return &Defaults{
		waveLength: DefaultWaveLength,
		amplitude:  DefaultAmplitude,
		curly:      DefaultIsCurly,
	}
}

// WaveLength returns the default wave length.
func (d *Defaults) WaveLength() float64 { return d.waveLength }

// SetWaveLength sets the default wave length.
func (d *Defaults) SetWaveLength(v float64) { d.waveLength = v }

// Amplitude returns the default wave amplitude.
func (d *Defaults) Amplitude() float64 { return d.amplitude }

// SetAmplitude sets the default wave amplitude.
func (d *Defaults) SetAmplitude(v float64) { d.amplitude = v }

// IsCurly returns the default curliness.
func (d *Defaults) IsCurly() bool { return d.curly }

// SetIsCurly sets the default curliness.
func (d *Defaults) SetIsCurly(v bool) { d.curly = v }

// New creates an arc with the wave parameters taken from d.
// WithWaveLength, WithAmplitude and WithCurly override them.
func (d *Defaults) New(x, y, radius, phiMin, phiMax float64, opts ...Option) *Arc {
	base := []Option{WithCurly(d.curly)}
	return newArc(x, y, radius, phiMin, phiMax, d.waveLength, d.amplitude, append(base, opts...))
}
