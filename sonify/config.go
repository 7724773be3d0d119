package sonify

import "os"

const (
	// DefaultSampleRate is the waveform sample rate in Hz.
	DefaultSampleRate = 44100.0
	// DefaultToneDuration is the length of each rendered tone in seconds.
	DefaultToneDuration = 0.15

	defaultAmplitude = 1.0

	defaultFundamentalHz  = 440.0
	minFundamentalHz      = 80.0
	maxFundamentalHz      = 2000.0
	peakThresholdFraction = 0.15

	smoothingWindow = 5
	smoothingSigma  = 1.5
	clampLow        = -0.08
	clampHigh       = 0.12

	envelopeFloor = 0.6
	envelopeSpan  = 0.4

	minFrequencyHz = 20.0
	maxFrequencyHz = 5000.0

	minMIDINote  = 21
	maxMIDINote  = 108
	fallbackNote = "A4"
)

// HarmonicRatios is the fixed ratio table cycled over sample positions:
// unison, just major third, just fifth, major second, just fourth,
// minor sixth.
var HarmonicRatios = [6]float64{1, 5.0 / 4, 3.0 / 2, 9.0 / 8, 4.0 / 3, 8.0 / 5}

// Config holds sonification settings.
type Config struct {
	SampleRate   float64
	ToneDuration float64
	Amplitude    float64
	Logger       Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns CD-quality settings with diagnostics on stderr.
func DefaultConfig() Config {
	return Config{
		SampleRate:   DefaultSampleRate,
		ToneDuration: DefaultToneDuration,
		Amplitude:    defaultAmplitude,
		Logger:       NewLogger(os.Stderr),
	}
}

// WithSampleRate sets the waveform sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithToneDuration sets the per-tone duration in seconds.
func WithToneDuration(seconds float64) Option {
	return func(cfg *Config) {
		if seconds > 0 {
			cfg.ToneDuration = seconds
		}
	}
}

// WithAmplitude sets the tone amplitude in [0, 1].
func WithAmplitude(amplitude float64) Option {
	return func(cfg *Config) {
		if amplitude >= 0 && amplitude <= 1 {
			cfg.Amplitude = amplitude
		}
	}
}

// WithLogger sets the diagnostics sink.
func WithLogger(logger Logger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

// Sonifier runs the sonification pipeline with a shared configuration.
type Sonifier struct {
	cfg Config
}

// New creates a configured Sonifier.
func New(opts ...Option) *Sonifier {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Sonifier{cfg: cfg}
}

// Config returns the sonifier configuration.
func (s *Sonifier) Config() Config {
	return s.cfg
}
