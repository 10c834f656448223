// Package version reports are's version
package version

// BuildVersion reports are's build version. It is set with
// `go build -ldflags="-X github.com/puppetlabs/are/cmd/version.BuildVersion=${VERSION}"`
// as part of tagged builds. A local build might use
// `version.BuildVersion=$(git describe --always)` instead.
var BuildVersion = "unknown"
