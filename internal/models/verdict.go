package models

const (
	VerdictTextValid   = "Valid number"
	VerdictTextInvalid = "Invalid number"
)

type Verdict struct {
	Number string `json:"number"`
	Valid  bool   `json:"valid"`
}

func (v Verdict) Text() string {
	if v.Valid {
		return VerdictTextValid
	}
	return VerdictTextInvalid
}

type CheckRequest struct {
	Number string `json:"number"`
}
