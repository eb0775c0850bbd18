package candidate

// Candidate is one parsed roster row. It is not persisted on its own; a
// snapshot of it is embedded in every generated schedule entry. ID is the
// row identity assigned at parse time: two rows sharing an email remain
// distinct candidates.
type Candidate struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Position      string `json:"position,omitempty"`
	Experience    string `json:"experience,omitempty"`
	Skills        string `json:"skills,omitempty"`
	PreferredDate string `json:"preferredDate,omitempty"`
	Notes         string `json:"notes,omitempty"`
}
