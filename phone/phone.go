package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// Validator checks a phone number string against a numbering plan.
type Validator interface {
	Validate(number string) error
}

// RegionValidator validates numbers against a single region's numbering
// plan (e.g. "HU" or "US").
type RegionValidator struct {
	region string
}

func NewRegionValidator(region string) *RegionValidator {
	return &RegionValidator{region: region}
}

func (v *RegionValidator) Validate(number string) error {
	parsed, err := phonenumbers.Parse(number, v.region)
	if err != nil {
		return fmt.Errorf("could not parse %q: %w", number, err)
	}
	if !phonenumbers.IsValidNumberForRegion(parsed, v.region) {
		return fmt.Errorf("%q is not a valid number for region %s", number, v.region)
	}
	return nil
}
