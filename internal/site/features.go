package site

// Features controls which optional sections exist for a mode: the cost and
// how-to pages/links and the contact CTA. Recomputed per render, never cached.
type Features struct {
	Cost    bool
	HowTo   bool
	Contact bool
}

// FeaturesFor returns the feature table for a mode.
//
// Unknown modes fall back to the regular table. This is deliberate,
// documented behavior: flag lookup is permissive while route resolution
// rejects unknown modes outright.
func FeaturesFor(m Mode) Features {
	switch m {
	case ModeRegular, ModeCost, ModeSubdomain:
		return Features{Cost: true, HowTo: true, Contact: true}
	case ModeState:
		return Features{Contact: true}
	case ModeRegularCityOnly:
		return Features{Contact: true}
	default:
		return Features{Cost: true, HowTo: true, Contact: true}
	}
}
