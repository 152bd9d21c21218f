package domain

import (
	"fmt"
	"math"
	"strings"
)

// DisasterType identifies the event class a claim is filed against.
type DisasterType string

const (
	DisasterFlood      DisasterType = "Flood"
	DisasterWildfire   DisasterType = "Wildfire"
	DisasterStorm      DisasterType = "Storm"
	DisasterHurricane  DisasterType = "Hurricane"
	DisasterEarthquake DisasterType = "Earthquake"
	DisasterOther      DisasterType = "Other"
)

// ParseDisasterType normalizes a caller-supplied disaster type string.
// Unrecognized values are a caller contract violation, not a data gap.
func ParseDisasterType(s string) (DisasterType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flood":
		return DisasterFlood, nil
	case "wildfire":
		return DisasterWildfire, nil
	case "storm":
		return DisasterStorm, nil
	case "hurricane":
		return DisasterHurricane, nil
	case "earthquake":
		return DisasterEarthquake, nil
	case "other":
		return DisasterOther, nil
	case "":
		return "", fmt.Errorf("%w: disaster type is required", ErrInvalidInput)
	default:
		return "", fmt.Errorf("%w: unrecognized disaster type %q", ErrInvalidInput, s)
	}
}

// ClaimStatus is the automated disposition of a claim.
type ClaimStatus string

const (
	ClaimApproved    ClaimStatus = "Approved"
	ClaimRejected    ClaimStatus = "Rejected"
	ClaimUnderReview ClaimStatus = "Under Review"
)

// Damage score bands driving claim disposition. The bands are exhaustive
// and mutually exclusive over [0,1]: >=0.70 auto-approves, <0.40 rejects,
// everything between goes to manual review.
const (
	autoApproveScore = 0.70
	rejectBelowScore = 0.40
)

// ConditionAnalysis echoes the conditions a damage estimate was derived
// from. Confidence is advisory metadata in [70,95]; it never affects the
// status decision.
type ConditionAnalysis struct {
	Temperature   float64 `json:"temperature"`
	Precipitation float64 `json:"precipitation"`
	WindSpeed     float64 `json:"wind_speed"`
	Confidence    int     `json:"confidence"`
}

// DamageAssessment is the outcome of automated claim triage.
type DamageAssessment struct {
	DamageScore    float64           `json:"damage_score"`
	ClaimAmountUSD int               `json:"claim_amount_usd"`
	ClaimStatus    ClaimStatus       `json:"claim_status"`
	AutoApproved   bool              `json:"auto_approved"`
	Analysis       ConditionAnalysis `json:"analysis"`
	DateAnalyzed   string            `json:"date_analyzed"`
}

// claimTerms holds the per-disaster payout parameters:
// amount = base + score * multiplier.
type claimTerms struct {
	base       float64
	multiplier float64
}

var defaultTerms = claimTerms{base: 50000, multiplier: 100000}

var termsByDisaster = map[DisasterType]claimTerms{
	DisasterFlood:     {base: 80000, multiplier: 100000},
	DisasterWildfire:  {base: 70000, multiplier: 120000},
	DisasterStorm:     {base: 60000, multiplier: 150000},
	DisasterHurricane: {base: 60000, multiplier: 150000},
}

// AssessDamage estimates disaster damage from current conditions and maps it
// to a claim disposition.
//
// Each disaster type combines its most correlated signal ratio with a random
// perturbation modelling estimation uncertainty; earthquakes and other types
// without a correlated signal use the uncertainty term alone on a higher
// base. The score is clamped to [0,1] and rounded to two decimals before the
// band rule applies.
func AssessDamage(disaster DisasterType, sig EnvironmentalSignal) DamageAssessment {
	var score float64
	switch disaster {
	case DisasterFlood:
		score = 0.3 + sig.Precipitation/100 + rng.Float64()*0.4
	case DisasterWildfire:
		score = 0.3 + sig.Temperature/50 + rng.Float64()*0.3
	case DisasterStorm, DisasterHurricane:
		score = 0.4 + sig.WindSpeed/100 + rng.Float64()*0.3
	default:
		score = 0.5 + rng.Float64()*0.3
	}
	score = Round2(clamp01(score))

	terms, ok := termsByDisaster[disaster]
	if !ok {
		terms = defaultTerms
	}

	status, autoApproved := classifyClaim(score)

	return DamageAssessment{
		DamageScore:    score,
		ClaimAmountUSD: int(math.Round(terms.base + score*terms.multiplier)),
		ClaimStatus:    status,
		AutoApproved:   autoApproved,
		Analysis: ConditionAnalysis{
			Temperature:   sig.Temperature,
			Precipitation: sig.Precipitation,
			WindSpeed:     sig.WindSpeed,
			Confidence:    int(math.Round((0.7 + rng.Float64()*0.25) * 100)),
		},
		DateAnalyzed: today(),
	}
}

// classifyClaim applies the disposition bands to a damage score.
func classifyClaim(score float64) (ClaimStatus, bool) {
	switch {
	case score >= autoApproveScore:
		return ClaimApproved, true
	case score < rejectBelowScore:
		return ClaimRejected, false
	default:
		return ClaimUnderReview, false
	}
}
