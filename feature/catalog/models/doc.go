// Package models defines the canonical catalog entities persisted by the hub:
// clients, products, taxonomy (categories and classes), product-line
// galleries, and the account/OTP records used by authentication.
//
// These are the shapes the sync pipeline normalizes the upstream Icoltex
// records into. Optional attributes are pointers so that "absent upstream"
// stays distinguishable from an empty value.
package models
