// Package platform defines the reserved-character sets of packaging targets.
//
// File and path name legality differs across operating systems, so the sets
// are passed to the naming filters as plain configuration values rather than
// queried from the live host. Predefined Windows, POSIX and Console targets
// cover the usual cases; FromEnv applies environment overrides for anything
// the defaults do not.
package platform
