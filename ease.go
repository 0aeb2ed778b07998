package motion

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// EaseKind names an easing curve for keyframe segments, phase legs, hero
// flights, and preset files. The zero value is EaseLinear.
type EaseKind uint8

const (
	EaseLinear     EaseKind = iota // constant speed
	EaseInQuad                     // accelerate from rest
	EaseOutQuad                    // decelerate to rest
	EaseInOutQuad                  // accelerate then decelerate
	EaseInCubic                    // sharper accelerate
	EaseOutCubic                   // sharper decelerate
	EaseInOutCubic                 // sharper accelerate then decelerate
	EaseInSine                     // gentle accelerate
	EaseOutSine                    // gentle decelerate
	EaseInOutSine                  // gentle accelerate then decelerate
	EaseInExpo                     // near-still start, explosive finish
	EaseOutExpo                    // explosive start, long tail
	EaseOutBack                    // overshoot the target, then return
	EaseOutBounce                  // bounce off the target
	EaseOutElastic                 // spring past the target and oscillate
)

var easeNames = [...]string{
	"linear", "inQuad", "outQuad", "inOutQuad",
	"inCubic", "outCubic", "inOutCubic",
	"inSine", "outSine", "inOutSine",
	"inExpo", "outExpo",
	"outBack", "outBounce", "outElastic",
}

// String returns the kind's camelCase name as used in preset files.
func (k EaseKind) String() string {
	if int(k) < len(easeNames) {
		return easeNames[k]
	}
	return "unknown"
}

// ParseEase returns the EaseKind named by a preset-file string.
func ParseEase(name string) (EaseKind, error) {
	for i, n := range easeNames {
		if n == name {
			return EaseKind(i), nil
		}
	}
	return EaseLinear, fmt.Errorf("motion: unknown ease %q", name)
}

// Func returns the gween easing function for this kind. Unknown kinds fall
// back to linear.
func (k EaseKind) Func() ease.TweenFunc {
	switch k {
	case EaseInQuad:
		return ease.InQuad
	case EaseOutQuad:
		return ease.OutQuad
	case EaseInOutQuad:
		return ease.InOutQuad
	case EaseInCubic:
		return ease.InCubic
	case EaseOutCubic:
		return ease.OutCubic
	case EaseInOutCubic:
		return ease.InOutCubic
	case EaseInSine:
		return ease.InSine
	case EaseOutSine:
		return ease.OutSine
	case EaseInOutSine:
		return ease.InOutSine
	case EaseInExpo:
		return ease.InExpo
	case EaseOutExpo:
		return ease.OutExpo
	case EaseOutBack:
		return ease.OutBack
	case EaseOutBounce:
		return ease.OutBounce
	case EaseOutElastic:
		return ease.OutElastic
	default:
		return ease.Linear
	}
}
