// Package backup snapshots the files a deploy is about to touch so a
// partial or unwanted deploy can be undone by hand.
//
// Backups are stored per target:
//
//	$XDG_DATA_HOME/teamforge/backups/
//	└── {target}/
//	    └── {timestamp}/
//	        ├── manifest.json
//	        └── {copied files...}
//
// The manifest records each copied file with its SHA256 hash and mode, the
// directories that existed and the paths that did not. [Manager.Restore]
// verifies every hash first, then removes what the deploy added and writes
// the captured files back. [Manager.Prune] keeps the newest N backups.
//
// # Error Handling
//
//   - [ErrNoBackupsFound]: no backups exist for the target, or the id is unknown
//   - [ErrBackupCorrupted]: a stored file no longer matches its hash
package backup
