package nec

import (
	"errors"
	"fmt"
	"time"
)

// ErrProfile wraps every reason a Profile is rejected.
var ErrProfile = errors.New("nec: bad profile")

// Profile holds the timeouts and tolerance windows the Decoder checks each
// phase of a frame against. Every Timeout bounds a single busy wait.
type Profile struct {
	// IdleTimeout bounds the wait for the first falling edge. While nothing
	// is being sent this is how long each decode attempt takes.
	IdleTimeout time.Duration

	LeadTimeout time.Duration
	LeadMin     time.Duration
	LeadMax     time.Duration

	SpaceTimeout time.Duration
	SpaceMin     time.Duration
	SpaceMax     time.Duration

	// MarkTimeout bounds the burst that starts every bit.
	MarkTimeout time.Duration
	// BitTimeout bounds the space that carries the bit value.
	BitTimeout time.Duration
	// BitMin is the shortest space taken as a bit rather than noise.
	BitMin time.Duration
	// Spaces longer than OneThreshold are ones.
	OneThreshold time.Duration
}

var DefaultProfile = Profile{
	IdleTimeout: 150 * time.Millisecond,

	LeadTimeout: 12 * time.Millisecond,
	LeadMin:     8 * time.Millisecond,
	LeadMax:     10 * time.Millisecond,

	SpaceTimeout: 7 * time.Millisecond,
	SpaceMin:     3500 * time.Microsecond,
	SpaceMax:     5 * time.Millisecond,

	MarkTimeout:  time.Millisecond,
	BitTimeout:   2500 * time.Microsecond,
	BitMin:       200 * time.Microsecond,
	OneThreshold: 1200 * time.Microsecond,
}

func (p Profile) Validate() error {
	switch {
	case p.IdleTimeout <= 0, p.LeadTimeout <= 0, p.SpaceTimeout <= 0, p.MarkTimeout <= 0, p.BitTimeout <= 0:
		return fmt.Errorf("%w: timeouts must be positive", ErrProfile)
	case p.LeadMin > p.LeadMax || p.LeadMax > p.LeadTimeout:
		return fmt.Errorf("%w: lead window %v..%v with timeout %v", ErrProfile, p.LeadMin, p.LeadMax, p.LeadTimeout)
	case p.SpaceMin > p.SpaceMax || p.SpaceMax > p.SpaceTimeout:
		return fmt.Errorf("%w: space window %v..%v with timeout %v", ErrProfile, p.SpaceMin, p.SpaceMax, p.SpaceTimeout)
	case p.BitMin > p.OneThreshold || p.OneThreshold >= p.BitTimeout:
		return fmt.Errorf("%w: one threshold %v outside %v..%v", ErrProfile, p.OneThreshold, p.BitMin, p.BitTimeout)
	}
	return nil
}

// yamlProfile is how a Profile is written down: whole microseconds.
type yamlProfile struct {
	IdleTimeout  int64 `yaml:"idle_timeout_us"`
	LeadTimeout  int64 `yaml:"lead_timeout_us"`
	LeadMin      int64 `yaml:"lead_min_us"`
	LeadMax      int64 `yaml:"lead_max_us"`
	SpaceTimeout int64 `yaml:"space_timeout_us"`
	SpaceMin     int64 `yaml:"space_min_us"`
	SpaceMax     int64 `yaml:"space_max_us"`
	MarkTimeout  int64 `yaml:"mark_timeout_us"`
	BitTimeout   int64 `yaml:"bit_timeout_us"`
	BitMin       int64 `yaml:"bit_min_us"`
	OneThreshold int64 `yaml:"one_threshold_us"`
}

func us(d time.Duration) int64 { return int64(d / time.Microsecond) }

func fromUs(v int64) time.Duration { return time.Duration(v) * time.Microsecond }

func (p Profile) toYAML() *yamlProfile {
	return &yamlProfile{
		IdleTimeout:  us(p.IdleTimeout),
		LeadTimeout:  us(p.LeadTimeout),
		LeadMin:      us(p.LeadMin),
		LeadMax:      us(p.LeadMax),
		SpaceTimeout: us(p.SpaceTimeout),
		SpaceMin:     us(p.SpaceMin),
		SpaceMax:     us(p.SpaceMax),
		MarkTimeout:  us(p.MarkTimeout),
		BitTimeout:   us(p.BitTimeout),
		BitMin:       us(p.BitMin),
		OneThreshold: us(p.OneThreshold),
	}
}

func (p Profile) MarshalYAML() (interface{}, error) {
	return p.toYAML(), nil
}

// UnmarshalYAML overlays the keys present onto p, then validates the result.
// Keys left out keep p's current values.
func (p *Profile) UnmarshalYAML(unmarshal func(interface{}) error) error {
	yp := p.toYAML()
	if err := unmarshal(yp); err != nil {
		return err
	}
	np := Profile{
		IdleTimeout:  fromUs(yp.IdleTimeout),
		LeadTimeout:  fromUs(yp.LeadTimeout),
		LeadMin:      fromUs(yp.LeadMin),
		LeadMax:      fromUs(yp.LeadMax),
		SpaceTimeout: fromUs(yp.SpaceTimeout),
		SpaceMin:     fromUs(yp.SpaceMin),
		SpaceMax:     fromUs(yp.SpaceMax),
		MarkTimeout:  fromUs(yp.MarkTimeout),
		BitTimeout:   fromUs(yp.BitTimeout),
		BitMin:       fromUs(yp.BitMin),
		OneThreshold: fromUs(yp.OneThreshold),
	}
	if err := np.Validate(); err != nil {
		return err
	}
	*p = np
	return nil
}
