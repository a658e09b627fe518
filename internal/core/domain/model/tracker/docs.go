// Package tracker provides the durable notification-history entity for
// manufacturing rejections.
//
// A RejectionEmailTracker exists per (order, produced item) pair and records
// which deviation ids have already triggered a notification, how many
// materials have been processed, and which order items are covered. The
// deviation-id set is the suppression source for subsequent status report
// passes: a reason whose id is already tracked is never notified again.
package tracker
