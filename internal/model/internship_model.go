package model

// Status is the lifecycle stage of an application. The client offers these
// values in a fixed dropdown; the server stores whatever it receives.
type Status string

const (
	StatusApplied   Status = "Applied"
	StatusInterview Status = "Interview"
	StatusOffer     Status = "Offer"
	StatusRejected  Status = "Rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// PlatformOther absorbs records without a platform in every per-platform view.
const PlatformOther = "Other"

// Platforms is the fixed list the per-platform breakdowns iterate over.
var Platforms = []string{"LinkedIn", "Handshake", "Indeed", "Company Site", "Email", PlatformOther}

// Internship is one tracked application. ID and CreatedAt are assigned by the
// store at creation and never change. Deadline is the application date as a
// plain YYYY-MM-DD string; CreatedAt is an RFC 3339 timestamp. The JSON keys
// match the on-disk store file.
type Internship struct {
	ID        string `json:"id"`
	Company   string `json:"company"`
	Role      string `json:"role"`
	Platform  string `json:"platform"`
	Location  string `json:"location"`
	Status    Status `json:"status"`
	Deadline  string `json:"deadline"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"`
}

// PlatformOrOther normalizes an empty platform for display grouping.
func (i Internship) PlatformOrOther() string {
	if i.Platform == "" {
		return PlatformOther
	}
	return i.Platform
}
