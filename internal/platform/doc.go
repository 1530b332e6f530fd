package platform

// Package platform contains OS/platform integration glue: filesystem naming
// and sanitization, directory helpers, external tool lookup, and opening the
// destination folder in the system file manager.
