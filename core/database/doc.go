// Package database manages the optional relational database used for the
// request audit trail.
//
// The connection is optional: if it cannot be established at startup the
// service runs without audit persistence and logs a warning.
package database
