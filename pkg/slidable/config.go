package slidable

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/slidable/pkg/errors"
)

// Duration is a time.Duration that unmarshals from YAML strings like
// "250ms" or "1.5s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("duration must be a string like \"250ms\": %w", err)
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// DismissProfile is the dismiss section of a tuning profile.
type DismissProfile struct {
	Threshold      float64  `yaml:"threshold"`
	Duration       Duration `yaml:"duration"`
	ResizeDuration Duration `yaml:"resize_duration"`
}

// Profile is a named set of interaction tuning values, loadable from YAML.
// Zero fields keep their defaults when applied.
//
//	profiles:
//	  inbox:
//	    open_threshold: 0.4
//	    extent_factor: 0.35
//	    motion: drawer
//	    open_duration: 200ms
//	    dismiss:
//	      threshold: 0.8
type Profile struct {
	OpenThreshold float64         `yaml:"open_threshold"`
	FastVelocity  float64         `yaml:"fast_velocity"`
	ExtentFactor  float64         `yaml:"extent_factor"`
	Motion        string          `yaml:"motion"`
	OpenDuration  Duration        `yaml:"open_duration"`
	CloseDuration Duration        `yaml:"close_duration"`
	Dismiss       *DismissProfile `yaml:"dismiss"`
}

type profileFile struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// ParseProfiles decodes named tuning profiles from YAML and validates them.
func ParseProfiles(data []byte) (map[string]Profile, error) {
	const op = "slidable.ParseProfiles"
	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &errors.SlidableError{Op: op, Kind: errors.KindConfig, Err: err}
	}
	for name, p := range file.Profiles {
		if err := p.validate(); err != nil {
			return nil, errors.Configf(op, "profile %q: %v", name, err)
		}
	}
	return file.Profiles, nil
}

// LoadProfiles reads and parses a profile file from disk.
func LoadProfiles(path string) (map[string]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.SlidableError{Op: "slidable.LoadProfiles", Kind: errors.KindConfig, Err: err}
	}
	return ParseProfiles(data)
}

func (p Profile) validate() error {
	if p.OpenThreshold < 0 || p.OpenThreshold > 1 {
		return fmt.Errorf("open_threshold %v outside (0, 1]", p.OpenThreshold)
	}
	if p.FastVelocity < 0 {
		return fmt.Errorf("fast_velocity %v is negative", p.FastVelocity)
	}
	if p.ExtentFactor < 0 || p.ExtentFactor > 1 {
		return fmt.Errorf("extent_factor %v outside (0, 1]", p.ExtentFactor)
	}
	if p.Motion != "" {
		if _, err := p.MotionStrategy(); err != nil {
			return err
		}
	}
	if p.Dismiss != nil && (p.Dismiss.Threshold < 0 || p.Dismiss.Threshold > 1) {
		return fmt.Errorf("dismiss.threshold %v outside (0, 1]", p.Dismiss.Threshold)
	}
	return nil
}

// MotionStrategy resolves the profile's motion name. An empty name means
// BehindMotion.
func (p Profile) MotionStrategy() (Motion, error) {
	switch p.Motion {
	case "", "behind":
		return BehindMotion{}, nil
	case "drawer":
		return DrawerMotion{}, nil
	case "scroll":
		return ScrollMotion{}, nil
	case "stretch":
		return StretchMotion{}, nil
	default:
		return nil, fmt.Errorf("unknown motion %q", p.Motion)
	}
}

// ApplyToTranslator applies the profile's gesture tuning.
func (p Profile) ApplyToTranslator(t *Translator) {
	if p.OpenThreshold > 0 {
		t.SetOpenThreshold(p.OpenThreshold)
	}
	if p.FastVelocity > 0 {
		t.SetFastVelocity(p.FastVelocity)
	}
}

// ApplyToConfig applies the profile's animation tuning to a controller
// configuration.
func (p Profile) ApplyToConfig(cfg *Config) {
	if p.OpenDuration > 0 {
		cfg.OpenDuration = time.Duration(p.OpenDuration)
	}
	if p.CloseDuration > 0 {
		cfg.CloseDuration = time.Duration(p.CloseDuration)
	}
}

// Pane builds an action pane from the profile for the given actions.
// The dismiss section carries no callback; attach one via OnDismissed on
// the returned pane's Dismiss config.
func (p Profile) Pane(actions []Action) (*ActionPane, error) {
	motion, err := p.MotionStrategy()
	if err != nil {
		return nil, errors.Configf("slidable.Profile.Pane", "%v", err)
	}
	pane := &ActionPane{
		Actions:      actions,
		ExtentFactor: p.ExtentFactor,
		Motion:       motion,
	}
	if p.Dismiss != nil {
		pane.Dismiss = &DismissConfig{
			Threshold:      p.Dismiss.Threshold,
			Duration:       time.Duration(p.Dismiss.Duration),
			ResizeDuration: time.Duration(p.Dismiss.ResizeDuration),
		}
	}
	if err := pane.validate(); err != nil {
		return nil, err
	}
	return pane, nil
}
