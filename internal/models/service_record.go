package models

// ServiceRecord is one offering from the bundled catalog.
type ServiceRecord struct {
	ID           string   `json:"id" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	Category     string   `json:"category" validate:"required"`
	Subcategory  string   `json:"subcategory" validate:"required"`
	Image        string   `json:"image"`                        // not checked for existence
	Features     []string `json:"features" validate:"required"` // may be empty, never absent
	Tags         []string `json:"tags,omitempty" validate:"omitempty,dive,filtertag"`
	Popular      bool     `json:"popular"`
	Price        string   `json:"price,omitempty"`
	TimeEstimate string   `json:"timeEstimate,omitempty"`
}

// Clone returns a deep copy so callers cannot mutate catalog-owned slices.
func (r ServiceRecord) Clone() ServiceRecord {
	out := r
	if r.Features != nil {
		out.Features = append(make([]string, 0, len(r.Features)), r.Features...)
	}
	if r.Tags != nil {
		out.Tags = append(make([]string, 0, len(r.Tags)), r.Tags...)
	}
	return out
}

// Stages at which a catalog entry can be rejected.
const (
	StageDecode   = "decode"   // Index is the position in the source data
	StageValidate = "validate" // Index is the position in the decoded record list
)

// RejectedRecord describes a catalog entry that was skipped at load time.
type RejectedRecord struct {
	Stage  string `json:"stage"`
	Index  int    `json:"index"`
	ID     string `json:"id,omitempty"`
	Reason string `json:"reason"`
}
