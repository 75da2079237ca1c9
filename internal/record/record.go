package record

// Student is a persisted student record.
// All text fields hold their normalized form (see Normalize).
type Student struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	State       string `json:"state"`
	WellDressed bool   `json:"well_dressed"`
	WellBehaved bool   `json:"well_behaved"`
}

// Draft holds the raw field values of a student that has not been stored yet.
// Text fields may carry arbitrary whitespace and casing.
type Draft struct {
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	State       string `json:"state"`
	WellDressed bool   `json:"well_dressed"`
	WellBehaved bool   `json:"well_behaved"`
}

// Normalized returns a copy of d with the write-time rules applied.
func (d Draft) Normalized() Draft {
	return Draft{
		Name:        NormalizeName(d.Name),
		Gender:      NormalizeGender(d.Gender),
		State:       NormalizeState(d.State),
		WellDressed: d.WellDressed,
		WellBehaved: d.WellBehaved,
	}
}

// Missing returns the names of mandatory fields that are blank after trimming,
// in the order Name, Gender, State.
func (d Draft) Missing() []string {
	var missing []string
	if NormalizeName(d.Name) == "" {
		missing = append(missing, "Name")
	}
	if NormalizeGender(d.Gender) == "" {
		missing = append(missing, "Gender")
	}
	if NormalizeState(d.State) == "" {
		missing = append(missing, "State")
	}
	return missing
}

// Flag converts a boolean to the 0/1 integer used for storage.
func Flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
