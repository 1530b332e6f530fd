package model

// Package model defines the domain data structures shared across the app:
// playlist jobs, track references, progress snapshots, status enums, and the
// error taxonomy. Structures are designed for direct binding in the UI and
// explicit state transitions.
