package progress

import (
	"testing"
)

func TestAggregator_PlaylistFormula(t *testing.T) {
	agg := NewAggregator(5)

	agg.StartTrack(1, "Track Two")
	snap := agg.UpdateBytes(50, 100, "1.2 MB/s")

	if snap.TrackPercent != 50 {
		t.Errorf("TrackPercent = %v, expected %v", snap.TrackPercent, 50.0)
	}
	// (1 + 50/100) / 5 * 100
	if snap.PlaylistPercent != 30 {
		t.Errorf("PlaylistPercent = %v, expected %v", snap.PlaylistPercent, 30.0)
	}
	if snap.Speed != "1.2 MB/s" {
		t.Errorf("Speed = %q, expected %q", snap.Speed, "1.2 MB/s")
	}
}

func TestAggregator_ClampsOverflowingBytes(t *testing.T) {
	agg := NewAggregator(2)

	agg.StartTrack(0, "First")
	snap := agg.UpdateBytes(150, 100, "")

	if snap.TrackPercent != 100 {
		t.Errorf("TrackPercent = %v, expected %v", snap.TrackPercent, 100.0)
	}
	if snap.PlaylistPercent > 100 {
		t.Errorf("PlaylistPercent = %v, expected at most 100", snap.PlaylistPercent)
	}
}

func TestAggregator_UnknownTotalKeepsTrackPercent(t *testing.T) {
	agg := NewAggregator(3)

	agg.StartTrack(0, "First")
	agg.UpdateBytes(50, 100, "")
	snap := agg.UpdateBytes(75, 0, "")

	if snap.TrackPercent != 50 {
		t.Errorf("TrackPercent = %v, expected %v", snap.TrackPercent, 50.0)
	}
}

func TestAggregator_PlaylistPercentIsMonotonic(t *testing.T) {
	agg := NewAggregator(4)

	agg.StartTrack(2, "Third")
	first := agg.UpdateBytes(80, 100, "")
	second := agg.UpdateBytes(20, 100, "")

	if second.PlaylistPercent < first.PlaylistPercent {
		t.Errorf("PlaylistPercent decreased from %v to %v", first.PlaylistPercent, second.PlaylistPercent)
	}
	if second.TrackPercent != 20 {
		t.Errorf("TrackPercent = %v, expected %v", second.TrackPercent, 20.0)
	}
}

func TestAggregator_StartTrackResetsTrackBarOnly(t *testing.T) {
	agg := NewAggregator(3)

	agg.StartTrack(0, "First")
	agg.UpdateBytes(100, 100, "900 kB/s")
	before := agg.FinishTrack(0)

	snap := agg.StartTrack(1, "Second")

	if snap.TrackPercent != 0 {
		t.Errorf("TrackPercent = %v, expected %v", snap.TrackPercent, 0.0)
	}
	if snap.PlaylistPercent != before.PlaylistPercent {
		t.Errorf("PlaylistPercent = %v, expected %v", snap.PlaylistPercent, before.PlaylistPercent)
	}
	if snap.Speed != "" {
		t.Errorf("Speed = %q, expected empty", snap.Speed)
	}
	if snap.TrackTitle != "Second" {
		t.Errorf("TrackTitle = %q, expected %q", snap.TrackTitle, "Second")
	}
}

func TestAggregator_FullBytesDoNotCompletePlaylist(t *testing.T) {
	agg := NewAggregator(2)

	agg.StartTrack(0, "First")
	agg.FinishTrack(0)
	agg.StartTrack(1, "Last")
	snap := agg.UpdateBytes(100, 100, "")

	if snap.PlaylistPercent >= 100 {
		t.Errorf("PlaylistPercent = %v, expected below 100 while the track is active", snap.PlaylistPercent)
	}

	snap = agg.FinishTrack(1)
	if snap.PlaylistPercent != 100 {
		t.Errorf("PlaylistPercent = %v, expected %v after the last track finished", snap.PlaylistPercent, 100.0)
	}
}

func TestAggregator_FinishTrackAdvancesBoundary(t *testing.T) {
	agg := NewAggregator(4)

	agg.StartTrack(0, "First")
	snap := agg.FinishTrack(0)

	if snap.PlaylistPercent != 25 {
		t.Errorf("PlaylistPercent = %v, expected %v", snap.PlaylistPercent, 25.0)
	}
	if snap.TrackPercent != 100 {
		t.Errorf("TrackPercent = %v, expected %v", snap.TrackPercent, 100.0)
	}
}

func TestAggregator_Complete(t *testing.T) {
	agg := NewAggregator(3)

	agg.StartTrack(2, "Last")
	agg.FinishTrack(2)
	snap := agg.Complete()

	if snap.PlaylistPercent != 100 {
		t.Errorf("PlaylistPercent = %v, expected %v", snap.PlaylistPercent, 100.0)
	}
	if snap.TrackPercent != 100 {
		t.Errorf("TrackPercent = %v, expected %v", snap.TrackPercent, 100.0)
	}
}

func TestAggregator_ZeroTotalDoesNotPanic(t *testing.T) {
	agg := NewAggregator(0)

	snap := agg.UpdateBytes(10, 100, "")

	if snap.PlaylistPercent != 0 {
		t.Errorf("PlaylistPercent = %v, expected %v", snap.PlaylistPercent, 0.0)
	}
}

func TestAggregator_SnapshotReflectsLatestState(t *testing.T) {
	agg := NewAggregator(2)

	agg.StartTrack(0, "First")
	agg.UpdateBytes(25, 100, "512 kB/s")

	snap := agg.Snapshot()
	if snap.TrackIndex != 0 {
		t.Errorf("TrackIndex = %v, expected %v", snap.TrackIndex, 0)
	}
	if snap.TrackTotal != 2 {
		t.Errorf("TrackTotal = %v, expected %v", snap.TrackTotal, 2)
	}
	if snap.TrackPercent != 25 {
		t.Errorf("TrackPercent = %v, expected %v", snap.TrackPercent, 25.0)
	}
	if snap.TrackTitle != "First" {
		t.Errorf("TrackTitle = %q, expected %q", snap.TrackTitle, "First")
	}
}
