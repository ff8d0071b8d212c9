package model

import "testing"

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusApplied, true},
		{StatusInterview, true},
		{StatusOffer, true},
		{StatusRejected, true},
		{"", false},
		{"applied", false},
		{"Ghosted", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("Status(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestPlatformOrOther(t *testing.T) {
	if got := (Internship{Platform: "LinkedIn"}).PlatformOrOther(); got != "LinkedIn" {
		t.Errorf("PlatformOrOther() = %q, want LinkedIn", got)
	}
	if got := (Internship{}).PlatformOrOther(); got != PlatformOther {
		t.Errorf("PlatformOrOther() = %q, want %q", got, PlatformOther)
	}
}
