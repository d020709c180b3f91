// Package storage provides JSON-based persistence for event snapshots.
//
// A snapshot records the validated events of the most recent export, keyed
// by UID. Comparing a fresh normalization run against the previous snapshot
// shows which sessions appeared since the last export. The default storage
// location is ~/.local/share/identiverse-calendar/.
package storage
