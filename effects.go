package motion

// Prebuilt keyframe tracks for the common attention effects. Every config
// field is a plain tuned number with a documented default; zero values pick
// the defaults, matching the rest of the package's config structs.

// ShakeConfig parameterizes ShakeTrack.
type ShakeConfig struct {
	// Intensity is the maximum excursion in pixels. Default 10.
	Intensity float64
	// Cycles is how many full left-right oscillations the shake makes.
	// Default 4.
	Cycles int
	// Duration is the total shake time in seconds. Default 0.5.
	Duration float32
}

// ShakeTrack builds a decaying left-right oscillation around 0. Apply the
// value as a horizontal translation.
func ShakeTrack(cfg ShakeConfig) *Track {
	if cfg.Intensity <= 0 {
		cfg.Intensity = 10
	}
	if cfg.Cycles <= 0 {
		cfg.Cycles = 4
	}
	if cfg.Duration <= 0 {
		cfg.Duration = 0.5
	}
	seg := cfg.Duration / float32(2*cfg.Cycles+1)
	frames := make([]Keyframe, 0, 2*cfg.Cycles+1)
	for i := 0; i < cfg.Cycles; i++ {
		amp := cfg.Intensity * (1 - float64(i)/float64(cfg.Cycles))
		frames = append(frames,
			Keyframe{To: -amp, Duration: seg, Ease: EaseInOutSine},
			Keyframe{To: amp, Duration: seg, Ease: EaseInOutSine},
		)
	}
	frames = append(frames, Keyframe{To: 0, Duration: seg, Ease: EaseOutSine})
	return NewTrack(0, frames...)
}

// SpinConfig parameterizes SpinTrack.
type SpinConfig struct {
	// Rotations is the number of full turns. Default 1.
	Rotations int
	// Duration is the total spin time in seconds. Default 1.
	Duration float32
	// Ease is the curve across the whole spin. Default EaseInOutCubic.
	Ease EaseKind
}

// SpinTrack builds a rotation from 0 to Rotations full turns, in degrees.
func SpinTrack(cfg SpinConfig) *Track {
	if cfg.Rotations <= 0 {
		cfg.Rotations = 1
	}
	if cfg.Duration <= 0 {
		cfg.Duration = 1
	}
	if cfg.Ease == EaseLinear {
		cfg.Ease = EaseInOutCubic
	}
	return NewTrack(0, Keyframe{
		To:       float64(cfg.Rotations) * 360,
		Duration: cfg.Duration,
		Ease:     cfg.Ease,
	})
}

// SwingConfig parameterizes SwingTrack.
type SwingConfig struct {
	// AngleDeg is the initial swing amplitude in degrees. Default 30.
	AngleDeg float64
	// Swings is how many alternating swings before coming to rest.
	// Default 3.
	Swings int
	// Duration is the total swing time in seconds. Default 0.8.
	Duration float32
}

// SwingTrack builds a pendulum rotation: alternating swings around 0 that
// decay to rest, in degrees.
func SwingTrack(cfg SwingConfig) *Track {
	if cfg.AngleDeg <= 0 {
		cfg.AngleDeg = 30
	}
	if cfg.Swings <= 0 {
		cfg.Swings = 3
	}
	if cfg.Duration <= 0 {
		cfg.Duration = 0.8
	}
	seg := cfg.Duration / float32(cfg.Swings+1)
	frames := make([]Keyframe, 0, cfg.Swings+1)
	sign := 1.0
	for i := 0; i < cfg.Swings; i++ {
		amp := cfg.AngleDeg * (1 - float64(i)/float64(cfg.Swings))
		frames = append(frames, Keyframe{To: sign * amp, Duration: seg, Ease: EaseInOutSine})
		sign = -sign
	}
	frames = append(frames, Keyframe{To: 0, Duration: seg, Ease: EaseOutSine})
	return NewTrack(0, frames...)
}

// PulseConfig parameterizes PulseTrack.
type PulseConfig struct {
	// Peak is the scale at the top of the pulse. Default 1.15.
	Peak float64
	// Duration is the total pulse time in seconds. Default 0.6.
	Duration float32
}

// PulseTrack builds a scale pulse: 1 up to Peak and back to 1.
func PulseTrack(cfg PulseConfig) *Track {
	if cfg.Peak <= 0 {
		cfg.Peak = 1.15
	}
	if cfg.Duration <= 0 {
		cfg.Duration = 0.6
	}
	half := cfg.Duration / 2
	return NewTrack(1,
		Keyframe{To: cfg.Peak, Duration: half, Ease: EaseOutQuad},
		Keyframe{To: 1, Duration: half, Ease: EaseInOutQuad},
	)
}
