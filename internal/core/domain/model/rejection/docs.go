// Package rejection provides the in-memory model of manufacturing rejections
// built from one order-status report pass.
//
// The package includes:
//   - Reason: One rejection reason, keyed for deduplication by its deviation id
//   - Material: One size/material variant carrying newly observed reasons
//   - Model: One produced item accumulating materials across report entries
//   - ModelRejection: The per-produced-item aggregate a pass dispatches notifications from
//
// All of these are transient build targets: they live for the duration of one
// processing pass and are never persisted. Durable notification history lives
// in the tracker package.
package rejection
