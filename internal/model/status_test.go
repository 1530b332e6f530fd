package model

import "testing"

func TestTrackStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   TrackStatus
		expected bool
	}{
		{TrackStatusPending, false},
		{TrackStatusDownloading, false},
		{TrackStatusDone, true},
		{TrackStatusFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsTerminal()
		if result != test.expected {
			t.Errorf("TrackStatus(%s).IsTerminal() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestJobStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   JobStatus
		expected bool
	}{
		{JobStatusIdle, false},
		{JobStatusResolving, true},
		{JobStatusDownloading, true},
		{JobStatusCompleted, false},
		{JobStatusAborted, false},
		{JobStatusEmpty, false},
		{JobStatusFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("JobStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestJobStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   JobStatus
		expected bool
	}{
		{JobStatusIdle, false},
		{JobStatusResolving, false},
		{JobStatusDownloading, false},
		{JobStatusCompleted, true},
		{JobStatusAborted, true},
		{JobStatusEmpty, true},
		{JobStatusFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsTerminal()
		if result != test.expected {
			t.Errorf("JobStatus(%s).IsTerminal() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestJobStatus_String(t *testing.T) {
	status := JobStatusDownloading
	expected := "downloading"
	result := status.String()

	if result != expected {
		t.Errorf("JobStatus.String() = %s, expected %s", result, expected)
	}
}
