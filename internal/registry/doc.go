// Package registry is the boundary between the presentation layer and the
// scholarship core.
//
// A Registry owns one store handle for the life of the process. It merges
// stored records with freshly computed awards and turns every persistence
// failure into a notification, so callers never see a partial roster:
//
//	Enroll  -> id, or the store error (also sent to the Notifier)
//	Roster  -> every record with its award, or an empty slice on failure
//
// How notifications reach the user (dialog, log line, exit code) is decided
// by the Notifier the caller supplies.
package registry
