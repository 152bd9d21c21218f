// Package domain implements the climate-risk scoring and claim triage core:
// signal normalization, hazard sub-scores, the composite risk profile,
// parametric trigger evaluation, and damage-to-claim disposition.
//
// # Signals and defaults
//
// Upstream weather providers may omit any field. Normalization substitutes
// fixed fallbacks (temperature 20°C, humidity 50%, precipitation 0mm, wind
// 0km/h, elevation 0m) so formulas never see an undefined input. Missing
// data degrades precision; it is never an error.
//
// # Hazard sub-scores
//
// Four independent sub-scores in [0,1], each a sum of a threshold step plus
// a linear ramp below the threshold, clamped at the sum and rounded to two
// decimals:
//
//	flood    = coastal ? 0.4 : 0.1   + (precip > 50 ? 0.3 : precip/166)  + (elev < 10 ? 0.3 : 0)
//	wildfire = (temp > 30 ? 0.4 : temp/75) + (humidity < 30 ? 0.4 : (100-humidity)/250) + (precip < 10 ? 0.2 : 0)
//	storm    = (wind > 50 ? 0.5 : wind/100) + (coastal ? 0.3 : 0.1)      + (precip > 30 ? 0.2 : 0)
//	dryness  = (temp > 25 ? 0.4 : temp/62.5) + (humidity < 40 ? 0.4 : (100-humidity)/166) + (precip < 20 ? 0.2 : 0)
//
// A location is coastal when |latitude| < 45 and elevation < 50m.
//
// # Composite score and bands
//
// risk_score = round(25 * sum of the four sub-scores), an integer in
// [0,100]. Bands are closed on their lower bound: >=70 High, >=50 Medium,
// else Low. historical_events and sea_level_rise_m are weighted proxies
// derived from the sub-scores.
//
// # Parametric triggers
//
// Threshold rules on observable parameters whose breach pays out
// independently of assessed damage: wind speed >= 150 km/h, 24h rainfall
// >= 200mm, river level >= 5m (flood-prone locations), AQI >= 180
// (wildfire-prone locations). current_value uses integer rounding except
// river level (one decimal). triggered is always recomputed as
// current_value >= threshold.
//
// # Claim triage
//
// Damage scores start from a disaster-correlated signal ratio plus a random
// perturbation, clamped to [0,1] and rounded to two decimals. Disposition
// bands: >=0.70 auto-approved, <0.40 rejected, otherwise under review.
//
// # Determinism
//
// Dates come from an injectable clockwork clock and perturbations from an
// injectable random source ([SetClock], [SetRand]), so two evaluations of
// identical inputs under fixed sources are bit-identical.
package domain
