package catalog

import "strings"

// VendorFromMAC maps the first three octets of a MAC address to a vendor
// name. Separators (:, -, .) are tolerated and case is ignored. Malformed or
// empty input reports a miss rather than an error.
func (t *Tables) VendorFromMAC(mac string) (string, bool) {
	prefix, ok := normalizePrefix(mac)
	if !ok {
		return "", false
	}
	name, ok := t.Vendors[prefix]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// normalizePrefix reduces a MAC address or OUI prefix to the canonical
// uppercase AA:BB:CC form used as the vendor table key.
func normalizePrefix(mac string) (string, bool) {
	cleaned := strings.ToUpper(strings.TrimSpace(mac))
	for _, sep := range []string{":", "-", ".", " "} {
		cleaned = strings.ReplaceAll(cleaned, sep, "")
	}
	if len(cleaned) < 6 {
		return "", false
	}
	for _, r := range cleaned[:6] {
		if !strings.ContainsRune("0123456789ABCDEF", r) {
			return "", false
		}
	}
	return cleaned[0:2] + ":" + cleaned[2:4] + ":" + cleaned[4:6], true
}
