package download

// Package download orchestrates playlist jobs: resolving a URL into an
// ordered track list, downloading each track sequentially through the
// engine, aggregating two-level progress, and post-processing the
// destination folder.
