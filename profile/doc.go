// Package profile loads and validates the 1-D intensity profiles that the
// fitting engine consumes: a display name plus equal-length x and y sample
// arrays, typically exported by a gel-scan tool as CSV.
package profile
