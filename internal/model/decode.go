package model

import "fmt"

// Record type names used in decode errors.
const (
	recordDevice          = "Device"
	recordOperatingSystem = "OperatingSystem"
	recordSoftwareItem    = "SoftwareItem"
	recordVulnerability   = "Vulnerability"
)

// DecodeFleet converts a parsed JSON array into a Fleet, preserving input
// order. Each element must be a JSON object matching the Device shape.
// The first bad element stops decoding; its position is included in the
// returned error.
func DecodeFleet(raw []any) (Fleet, error) {
	fleet := make(Fleet, 0, len(raw))
	for i, elem := range raw {
		data, ok := elem.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("device %d: not a JSON object", i)
		}
		device, err := DecodeDevice(data)
		if err != nil {
			return nil, fmt.Errorf("device %d: %w", i, err)
		}
		fleet = append(fleet, device)
	}
	return fleet, nil
}

// DecodeDevice converts one parsed JSON object into a Device.
//
// Every declared field must be present as a key in data; a missing key
// fails with a DecodeError naming the field and the record type. Nested
// records (os, each software item, each vulnerability) are decoded
// recursively under the same contract.
//
// The JSON key set follows the endpoint API export: fqdn, ipAddresses,
// macAddresses, kasperskyID, descriptionURL, severityStr, severity, cve
// and so on. Keys map positionally onto the struct fields; no alternate
// spellings are accepted.
func DecodeDevice(data map[string]any) (Device, error) {
	var d Device
	var err error

	if d.Name, err = stringField(data, recordDevice, "name"); err != nil {
		return Device{}, err
	}
	if d.FQDNs, err = stringListField(data, recordDevice, "fqdn"); err != nil {
		return Device{}, err
	}
	if d.IPAddresses, err = stringListField(data, recordDevice, "ipAddresses"); err != nil {
		return Device{}, err
	}
	if d.MACAddresses, err = stringListField(data, recordDevice, "macAddresses"); err != nil {
		return Device{}, err
	}
	if d.Owner, err = stringField(data, recordDevice, "owner"); err != nil {
		return Device{}, err
	}

	osData, err := objectField(data, recordDevice, "os")
	if err != nil {
		return Device{}, err
	}
	if d.OS, err = decodeOperatingSystem(osData); err != nil {
		return Device{}, err
	}

	softwareList, err := objectListField(data, recordDevice, "software")
	if err != nil {
		return Device{}, err
	}
	d.Software = make([]SoftwareItem, 0, len(softwareList))
	for _, item := range softwareList {
		sw, err := decodeSoftwareItem(item)
		if err != nil {
			return Device{}, err
		}
		d.Software = append(d.Software, sw)
	}

	vulnList, err := objectListField(data, recordDevice, "vulnerabilities")
	if err != nil {
		return Device{}, err
	}
	d.Vulnerabilities = make([]Vulnerability, 0, len(vulnList))
	for _, item := range vulnList {
		vuln, err := decodeVulnerability(item)
		if err != nil {
			return Device{}, err
		}
		d.Vulnerabilities = append(d.Vulnerabilities, vuln)
	}

	return d, nil
}

// decodeOperatingSystem converts one parsed JSON object into an OperatingSystem.
func decodeOperatingSystem(data map[string]any) (OperatingSystem, error) {
	var os OperatingSystem
	var err error

	if os.Name, err = stringField(data, recordOperatingSystem, "name"); err != nil {
		return OperatingSystem{}, err
	}
	if os.Version, err = stringField(data, recordOperatingSystem, "version"); err != nil {
		return OperatingSystem{}, err
	}
	return os, nil
}

// decodeSoftwareItem converts one parsed JSON object into a SoftwareItem.
func decodeSoftwareItem(data map[string]any) (SoftwareItem, error) {
	var sw SoftwareItem
	var err error

	if sw.Name, err = stringField(data, recordSoftwareItem, "name"); err != nil {
		return SoftwareItem{}, err
	}
	if sw.Version, err = stringField(data, recordSoftwareItem, "version"); err != nil {
		return SoftwareItem{}, err
	}
	if sw.Vendor, err = stringField(data, recordSoftwareItem, "vendor"); err != nil {
		return SoftwareItem{}, err
	}
	return sw, nil
}

// decodeVulnerability converts one parsed JSON object into a Vulnerability.
func decodeVulnerability(data map[string]any) (Vulnerability, error) {
	var v Vulnerability
	var err error

	if v.KasperskyID, err = stringField(data, recordVulnerability, "kasperskyID"); err != nil {
		return Vulnerability{}, err
	}
	if v.ProductName, err = stringField(data, recordVulnerability, "productName"); err != nil {
		return Vulnerability{}, err
	}
	if v.DescriptionURL, err = stringField(data, recordVulnerability, "descriptionURL"); err != nil {
		return Vulnerability{}, err
	}
	if v.RecommendedMajorPatch, err = stringField(data, recordVulnerability, "recommendedMajorPatch"); err != nil {
		return Vulnerability{}, err
	}
	if v.RecommendedMinorPatch, err = stringField(data, recordVulnerability, "recommendedMinorPatch"); err != nil {
		return Vulnerability{}, err
	}
	if v.SeverityLabel, err = stringField(data, recordVulnerability, "severityStr"); err != nil {
		return Vulnerability{}, err
	}
	if v.SeverityScore, err = intField(data, recordVulnerability, "severity"); err != nil {
		return Vulnerability{}, err
	}
	if v.CVEIDs, err = stringListField(data, recordVulnerability, "cve"); err != nil {
		return Vulnerability{}, err
	}
	if v.ExploitExists, err = boolField(data, recordVulnerability, "exploitExists"); err != nil {
		return Vulnerability{}, err
	}
	if v.MalwareExists, err = boolField(data, recordVulnerability, "malwareExists"); err != nil {
		return Vulnerability{}, err
	}
	return v, nil
}

// stringField extracts a required string value from data.
func stringField(data map[string]any, record, field string) (string, error) {
	raw, ok := data[field]
	if !ok {
		return "", missingField(record, field)
	}
	s, ok := raw.(string)
	if !ok {
		return "", wrongKind(record, field, "string")
	}
	return s, nil
}

// boolField extracts a required boolean value from data.
func boolField(data map[string]any, record, field string) (bool, error) {
	raw, ok := data[field]
	if !ok {
		return false, missingField(record, field)
	}
	b, ok := raw.(bool)
	if !ok {
		return false, wrongKind(record, field, "boolean")
	}
	return b, nil
}

// intField extracts a required integer value from data.
// encoding/json parses every JSON number as float64, so that is the
// kind we accept; a plain int is also accepted for values built in Go.
func intField(data map[string]any, record, field string) (int, error) {
	raw, ok := data[field]
	if !ok {
		return 0, missingField(record, field)
	}
	switch n := raw.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	default:
		return 0, wrongKind(record, field, "number")
	}
}

// stringListField extracts a required list of strings from data.
// An empty list is valid; an absent key is not.
func stringListField(data map[string]any, record, field string) ([]string, error) {
	raw, ok := data[field]
	if !ok {
		return nil, missingField(record, field)
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, wrongKind(record, field, "list of strings")
	}
	values := make([]string, 0, len(list))
	for _, elem := range list {
		s, ok := elem.(string)
		if !ok {
			return nil, wrongKind(record, field, "list of strings")
		}
		values = append(values, s)
	}
	return values, nil
}

// objectField extracts a required nested JSON object from data.
func objectField(data map[string]any, record, field string) (map[string]any, error) {
	raw, ok := data[field]
	if !ok {
		return nil, missingField(record, field)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, wrongKind(record, field, "object")
	}
	return obj, nil
}

// objectListField extracts a required list of nested JSON objects from data.
// An empty list is valid; an absent key is not.
func objectListField(data map[string]any, record, field string) ([]map[string]any, error) {
	raw, ok := data[field]
	if !ok {
		return nil, missingField(record, field)
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, wrongKind(record, field, "list of objects")
	}
	objects := make([]map[string]any, 0, len(list))
	for _, elem := range list {
		obj, ok := elem.(map[string]any)
		if !ok {
			return nil, wrongKind(record, field, "list of objects")
		}
		objects = append(objects, obj)
	}
	return objects, nil
}
