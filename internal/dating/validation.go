package dating

import (
	"errors"
	"fmt"

	"github.com/imadgeboyega/soulconnect-backend/internal/common/utils"
)

var ErrInvalidProfile = errors.New("invalid profile")

// ValidateProfile rejects profiles the engine cannot score meaningfully:
// missing id, out-of-range age, unknown relationship type, inverted or
// non-positive age range, non-positive max distance.
func ValidateProfile(p *UserProfile) error {
	if p == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if err := utils.ValidateStruct(p); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidProfile, p.ID, err)
	}

	r := p.Preferences.AgeRange
	if r.Min > r.Max {
		return fmt.Errorf("%w %q: age range min %d exceeds max %d", ErrInvalidProfile, p.ID, r.Min, r.Max)
	}

	return nil
}
