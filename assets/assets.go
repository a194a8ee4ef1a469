// Package assets holds the embedded fallback tables and HTML templates
// used when no external data files are supplied.
package assets

import _ "embed"

//go:embed vendors.json
var VendorData []byte

//go:embed known_devices.json
var DeviceData []byte

//go:embed problems.json
var ProblemData []byte

//go:embed report_template.html
var ReportTemplate []byte

//go:embed banner.html
var BannerHTML []byte
