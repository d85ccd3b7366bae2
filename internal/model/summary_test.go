package model

import "testing"

// testFleet returns a small fleet with a known distribution of findings.
func testFleet() Fleet {
	return Fleet{
		{
			Name:     "host1",
			Software: []SoftwareItem{{Name: "nginx"}, {Name: "openssl"}},
			Vulnerabilities: []Vulnerability{
				{SeverityLabel: "High", SeverityScore: 4, ExploitExists: true},
				{SeverityLabel: "Critical", SeverityScore: 5, MalwareExists: true},
			},
		},
		{
			Name: "host2",
			Vulnerabilities: []Vulnerability{
				{SeverityLabel: "High", SeverityScore: 4},
			},
		},
		{Name: "host3"},
	}
}

func TestNewFleetSummary(t *testing.T) {
	t.Parallel()

	s := NewFleetSummary(testFleet())

	if s.DeviceCount != 3 {
		t.Errorf("DeviceCount = %d, want 3", s.DeviceCount)
	}
	if s.SoftwareCount != 2 {
		t.Errorf("SoftwareCount = %d, want 2", s.SoftwareCount)
	}
	if s.VulnerabilityCount != 3 {
		t.Errorf("VulnerabilityCount = %d, want 3", s.VulnerabilityCount)
	}
	if s.SeverityCounts["High"] != 2 || s.SeverityCounts["Critical"] != 1 {
		t.Errorf("SeverityCounts = %v, want High:2 Critical:1", s.SeverityCounts)
	}
	if s.ExploitableCount != 1 {
		t.Errorf("ExploitableCount = %d, want 1", s.ExploitableCount)
	}
	if s.MalwareCount != 1 {
		t.Errorf("MalwareCount = %d, want 1", s.MalwareCount)
	}
	if s.MaxSeverityScore != 5 {
		t.Errorf("MaxSeverityScore = %d, want 5", s.MaxSeverityScore)
	}
	if !s.HasVulnerabilities() {
		t.Error("HasVulnerabilities() = false, want true")
	}
}

func TestFleetSummaryEmptyFleet(t *testing.T) {
	t.Parallel()

	s := NewFleetSummary(Fleet{})

	if s.DeviceCount != 0 || s.VulnerabilityCount != 0 {
		t.Errorf("expected zero counts, got %+v", s)
	}
	if s.HasVulnerabilities() {
		t.Error("HasVulnerabilities() = true, want false")
	}
	if len(s.SeverityLabels()) != 0 {
		t.Errorf("SeverityLabels() = %v, want empty", s.SeverityLabels())
	}
}

func TestFleetSummarySeverityLabels(t *testing.T) {
	t.Parallel()

	s := NewFleetSummary(testFleet())

	labels := s.SeverityLabels()
	if len(labels) != 2 {
		t.Fatalf("got %d labels, want 2", len(labels))
	}
	// High has count 2, Critical count 1: order by count descending.
	if labels[0] != "High" || labels[1] != "Critical" {
		t.Errorf("labels = %v, want [High Critical]", labels)
	}
}
