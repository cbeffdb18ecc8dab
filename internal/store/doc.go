// Package store provides the file I/O used for parameter files.
//
// Files are JSON, written indented with a trailing newline. Writes go to a
// temporary file in the target directory which is then renamed over the
// target, so readers never observe a partial file.
package store
