// Package types defines the Recipe entity, store configuration, and
// standard error values shared by the Cookbook storage and CLI layers.
package types
