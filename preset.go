package motion

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Preset files let integrators declare animations as data instead of code:
//
//	tracks:
//	  drop:
//	    from: -120
//	    frames:
//	      - {to: 12, duration: 0.3, ease: outQuad}
//	      - {to: 0, duration: 0.4, ease: outBounce}
//	springs:
//	  poppy: {response: 0.45, damping: 0.6}
//	phases:
//	  banner:
//	    - {duration: 0.2, ease: outQuad}
//	    - {duration: 0.5, ease: inOutSine}
//
// Every numeric value is a tunable, not a contract.

// PresetSet holds animation presets decoded from one YAML document.
type PresetSet struct {
	Tracks  map[string]TrackPreset `yaml:"tracks"`
	Springs map[string]Spring      `yaml:"springs"`
	Phases  map[string][]PhaseSpec `yaml:"phases"`
}

// TrackPreset is the declarative form of a Track.
type TrackPreset struct {
	From   float64    `yaml:"from"`
	Frames []Keyframe `yaml:"frames"`
}

// NewTrack instantiates a fresh Track from the preset.
func (tp TrackPreset) NewTrack() *Track {
	return NewTrack(tp.From, tp.Frames...)
}

// LoadPresets decodes and validates a YAML preset document.
func LoadPresets(data []byte) (*PresetSet, error) {
	var set PresetSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("motion: failed to parse presets: %w", err)
	}
	for name, tp := range set.Tracks {
		if len(tp.Frames) == 0 {
			return nil, fmt.Errorf("motion: track %q has no frames", name)
		}
		for i, kf := range tp.Frames {
			if kf.Duration <= 0 {
				return nil, fmt.Errorf("motion: track %q frame %d: duration must be positive", name, i)
			}
		}
	}
	for name, s := range set.Springs {
		if s.Response <= 0 {
			return nil, fmt.Errorf("motion: spring %q: response must be positive", name)
		}
		if s.Damping <= 0 {
			return nil, fmt.Errorf("motion: spring %q: damping must be positive", name)
		}
	}
	for name, specs := range set.Phases {
		for i, ps := range specs {
			if ps.Duration <= 0 {
				return nil, fmt.Errorf("motion: phase set %q spec %d: duration must be positive", name, i)
			}
		}
	}
	return &set, nil
}

// UnmarshalYAML decodes an easing by its preset-file name, e.g. "outBounce".
func (k *EaseKind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseEase(name)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalYAML encodes the easing by name.
func (k EaseKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}
