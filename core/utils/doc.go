// Package utils provides common utility functions for the guidegen application.
// It includes type coercion helpers for the loosely typed values language
// models return in JSON responses, and other shared logic that doesn't fit
// into domain-specific packages.
package utils
