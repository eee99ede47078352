// Package handlers contains HTTP handlers for the itemsvc API.
//
// This package provides handlers for:
//   - the health endpoint
//   - listing and creating items
//   - error-simulation endpoints used to exercise alerting
//   - shared response helper functions
//
// Handlers return errors instead of writing failures themselves; Adapt converts a
// returned error into a response through the foundation/errors HTTPErrorAdapter.
// Panics are left to the recovery middleware.
package handlers
