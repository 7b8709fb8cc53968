package app

// ReasonCode identifies one scoring term that fired for a candidate.
// Reasons are appended in fixed rule order, so the first entry is the most
// salient one for compact display surfaces.
type ReasonCode string

const (
	ReasonNewDepartment      ReasonCode = "NEW_DEPARTMENT"
	ReasonInterestMatch      ReasonCode = "INTEREST_MATCH"
	ReasonCollisionPotential ReasonCode = "COLLISION_POTENTIAL"
	ReasonFreeFitsBudget     ReasonCode = "FREE_FITS_BUDGET"
	ReasonFitsTimeBudget     ReasonCode = "FITS_TIME_BUDGET"
	ReasonTimeOverBudget     ReasonCode = "TIME_OVER_BUDGET"
	ReasonDiscoverySlot      ReasonCode = "DISCOVERY_SLOT"
	ReasonExploreFallback    ReasonCode = "EXPLORE_FALLBACK"
	ReasonTagOverlap         ReasonCode = "TAG_OVERLAP"
	ReasonBeginnerFriendly   ReasonCode = "BEGINNER_FRIENDLY"
	ReasonSoftSkill          ReasonCode = "SOFT_SKILL"
	ReasonSensoryCaution     ReasonCode = "SENSORY_CAUTION"
	ReasonNearStart          ReasonCode = "NEAR_START"
	ReasonCrossDepartment    ReasonCode = "CROSS_DEPARTMENT"
)

// Reason is one human-readable justification with its score contribution.
// WeightDelta is nil for informational reasons that did not move the score.
type Reason struct {
	Code        ReasonCode
	Message     string
	WeightDelta *float64
}

// ExclusionCode identifies why the planner rejected a candidate outright.
type ExclusionCode string

const (
	ExclusionNotFree          ExclusionCode = "NOT_FREE"
	ExclusionExceedsTimeCap   ExclusionCode = "EXCEEDS_TIME_CAP"
	ExclusionNoStepFreeAccess ExclusionCode = "NO_STEP_FREE_ACCESS"
	ExclusionInvalidDuration  ExclusionCode = "INVALID_DURATION"
)

// Exclusion records one candidate dropped by a hard filter.
type Exclusion struct {
	ActivityID string
	Title      string
	Code       ExclusionCode
	Message    string
}

// RelaxConstraintsMessage is the caller-visible guidance shown whenever a
// filter pass leaves no candidates. Empty results are data, not errors.
const RelaxConstraintsMessage = "Nothing matches right now. Try relaxing your constraints — a longer time budget, paid events, or a different category."
