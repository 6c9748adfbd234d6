// Package cookbook exposes project-level metadata shared by the CLI
// and build tooling.
package cookbook

// Version is the current Cookbook release.
var Version = "0.1.0"
