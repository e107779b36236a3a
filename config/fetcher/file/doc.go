// Package file provides the file-based DataFetcher used by the config loader.
//
// The file is read when the Fetcher is constructed and its contents are cached,
// so every Fetch returns the same bytes even if the file changes afterwards.
// Configuration is loaded once; there is no reload.
//
// Usage:
//
//	fetcher, err := file.Read("/etc/app/config.json")
//	if err != nil {
//	    // missing file, permission denied, path is a directory, ...
//	}
//	data, err := fetcher.Fetch()
//
// Error Handling:
//   - Construction fails if the path is empty, cannot be read, or is a directory
//   - Errors include the cleaned path
//   - Use errors.Is(err, file.ErrPathIsDirectory) to detect directories
package file
