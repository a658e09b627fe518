// Package services provides stateless domain services that implement business
// logic spanning multiple domain entities.
//
// The package includes RejectionNormalizer, which turns one partner
// order-status report into the rejection aggregates a processing pass
// dispatches notifications from, consulting the notification history to
// exclude already-notified rejection reasons.
package services
