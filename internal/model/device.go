package model

// OperatingSystem describes the operating system installed on a device.
// Each device owns exactly one OperatingSystem.
type OperatingSystem struct {
	// Name is the OS product name (e.g., "Microsoft Windows 10 Pro").
	Name string `json:"name"`

	// Version is the OS version string as reported by the endpoint agent.
	Version string `json:"version"`
}

// SoftwareItem describes a single installed application on a device.
// A device holds an ordered list of these; the order matches the input
// and is preserved through to the report.
type SoftwareItem struct {
	// Name is the application name.
	Name string `json:"name"`

	// Version is the installed version string.
	Version string `json:"version"`

	// Vendor is the software publisher.
	Vendor string `json:"vendor"`
}

// Vulnerability describes a known vulnerability discovered on a device.
// The fields mirror the Kaspersky-style vulnerability feed that produces
// the inventory export.
type Vulnerability struct {
	// KasperskyID is the vendor's vulnerability identifier (e.g., "KLA12345").
	KasperskyID string `json:"kaspersky_id"`

	// ProductName is the affected product.
	ProductName string `json:"product_name"`

	// DescriptionURL points at the vendor's advisory page.
	DescriptionURL string `json:"description_url"`

	// RecommendedMajorPatch is the major patch level that resolves the issue.
	RecommendedMajorPatch string `json:"recommended_major_patch"`

	// RecommendedMinorPatch is the minor patch level that resolves the issue.
	RecommendedMinorPatch string `json:"recommended_minor_patch"`

	// SeverityLabel is the human-readable severity category (e.g., "High").
	// The label is taken verbatim from the feed and never re-derived from
	// SeverityScore.
	SeverityLabel string `json:"severity_label"`

	// SeverityScore is the numeric severity ranking from the feed.
	SeverityScore int `json:"severity_score"`

	// CVEIDs lists related CVE identifiers in feed order.
	CVEIDs []string `json:"cve_ids"`

	// ExploitExists reports whether a public exploit is known.
	ExploitExists bool `json:"exploit_exists"`

	// MalwareExists reports whether malware abusing the vulnerability is known.
	MalwareExists bool `json:"malware_exists"`
}

// Device is a monitored network endpoint: identity, network addresses,
// an operating system, installed software, and discovered vulnerabilities.
type Device struct {
	// Name is the device name.
	Name string `json:"name"`

	// FQDNs lists fully qualified domain names for the device.
	FQDNs []string `json:"fqdns"`

	// IPAddresses lists the device's IP addresses.
	IPAddresses []string `json:"ip_addresses"`

	// MACAddresses lists the device's MAC addresses.
	MACAddresses []string `json:"mac_addresses"`

	// Owner is the responsible person or team.
	Owner string `json:"owner"`

	// OS is the installed operating system. Exactly one per device.
	OS OperatingSystem `json:"os"`

	// Software lists installed applications in input order. May be empty,
	// but never absent: decoding fails if the input omits the key.
	Software []SoftwareItem `json:"software"`

	// Vulnerabilities lists discovered vulnerabilities in input order.
	// Same presence rule as Software.
	Vulnerabilities []Vulnerability `json:"vulnerabilities"`
}

// Fleet is an ordered collection of devices. The order matches the input
// array and determines row order in every report sheet.
type Fleet []Device
