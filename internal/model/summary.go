package model

import "sort"

// FleetSummary holds aggregate counts derived from a fleet. It backs the
// JSON and Markdown summary reports, the CLI status line, and the run
// history records.
//
// Severity is counted by the label strings found in the input
// ("Critical", "High", ...). Labels are not interpreted or ranked by this
// package; MaxSeverityScore carries the numeric ranking instead.
type FleetSummary struct {
	// DeviceCount is the number of devices in the fleet.
	DeviceCount int `json:"device_count"`

	// SoftwareCount is the total number of installed software entries
	// across all devices.
	SoftwareCount int `json:"software_count"`

	// VulnerabilityCount is the total number of vulnerability entries
	// across all devices.
	VulnerabilityCount int `json:"vulnerability_count"`

	// SeverityCounts maps each severity label to the number of
	// vulnerabilities carrying it.
	SeverityCounts map[string]int `json:"severity_counts"`

	// ExploitableCount is the number of vulnerabilities with a known
	// public exploit.
	ExploitableCount int `json:"exploitable_count"`

	// MalwareCount is the number of vulnerabilities with known malware.
	MalwareCount int `json:"malware_count"`

	// MaxSeverityScore is the highest numeric severity found, or 0 when
	// the fleet has no vulnerabilities.
	MaxSeverityScore int `json:"max_severity_score"`
}

// NewFleetSummary computes aggregate counts for the fleet.
func NewFleetSummary(fleet Fleet) *FleetSummary {
	s := &FleetSummary{
		DeviceCount:    len(fleet),
		SeverityCounts: make(map[string]int),
	}
	for _, device := range fleet {
		s.SoftwareCount += len(device.Software)
		s.VulnerabilityCount += len(device.Vulnerabilities)
		for _, vuln := range device.Vulnerabilities {
			s.SeverityCounts[vuln.SeverityLabel]++
			if vuln.ExploitExists {
				s.ExploitableCount++
			}
			if vuln.MalwareExists {
				s.MalwareCount++
			}
			if vuln.SeverityScore > s.MaxSeverityScore {
				s.MaxSeverityScore = vuln.SeverityScore
			}
		}
	}
	return s
}

// HasVulnerabilities reports whether any device carries a vulnerability.
func (s *FleetSummary) HasVulnerabilities() bool {
	return s.VulnerabilityCount > 0
}

// SeverityLabels returns the severity labels present in the fleet,
// ordered by count (descending) and then by label for a stable display
// order.
func (s *FleetSummary) SeverityLabels() []string {
	labels := make([]string, 0, len(s.SeverityCounts))
	for label := range s.SeverityCounts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if s.SeverityCounts[labels[i]] != s.SeverityCounts[labels[j]] {
			return s.SeverityCounts[labels[i]] > s.SeverityCounts[labels[j]]
		}
		return labels[i] < labels[j]
	})
	return labels
}
