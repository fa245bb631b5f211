package entity

// ScoringParameters is the single immutable value that controls the scoring
// engine's coefficient tables (spec.md §4.3). Every field is overridable;
// DefaultScoringParameters supplies the values the implemented site ships
// with.
type ScoringParameters struct {
	MaxSpecialty   int
	DecaySpecialty int

	MaxCapability   int
	DecayCapability int

	MaxDoubleVolunteer   int
	DecayDoubleVolunteer int

	MaxShiftPreference   map[ShiftType]int
	DecayShiftPreference map[ShiftType]int
	ShiftPenalty         map[ShiftType]int
}

// DefaultScoringParameters returns the scoring parameters used at the
// implemented site: generous specialty/capability rewards, a mild
// disincentive against doubling, and a penalty reserved for conscripting
// non-volunteers onto NIGHT.
func DefaultScoringParameters() ScoringParameters {
	return ScoringParameters{
		MaxSpecialty:   100,
		DecaySpecialty: 5,

		MaxCapability:   50,
		DecayCapability: 10,

		MaxDoubleVolunteer:   -30,
		DecayDoubleVolunteer: 2,

		MaxShiftPreference: map[ShiftType]int{
			ShiftTypeMorning:   60,
			ShiftTypeAfternoon: 60,
			ShiftTypeNight:     80,
		},
		DecayShiftPreference: map[ShiftType]int{
			ShiftTypeMorning:   4,
			ShiftTypeAfternoon: 4,
			ShiftTypeNight:     6,
		},
		ShiftPenalty: map[ShiftType]int{
			ShiftTypeMorning:   0,
			ShiftTypeAfternoon: 0,
			ShiftTypeNight:     40,
		},
	}
}
