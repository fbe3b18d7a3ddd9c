package scene

import "fmt"

// Stage is one narrative phase of the vignette.
type Stage struct {
	Label  string
	Anchor int
	Pose   Pose
}

var DefaultStages = []Stage{
	{Label: "OXFORD", Anchor: 12, Pose: PoseReading},
	{Label: "RESEARCH", Anchor: 32, Pose: PoseWriting},
	{Label: "CRICKET", Anchor: 52, Pose: PoseCricket},
}

// Anchors returns the horizontal anchor of every stage.
func Anchors(stages []Stage) []float64 {
	out := make([]float64, len(stages))
	for i, s := range stages {
		out[i] = float64(s.Anchor)
	}
	return out
}

// BuildStages pairs labels and anchors with poses in stage order. Poses
// repeat when there are more stages than pose variants.
func BuildStages(labels []string, anchors []int) ([]Stage, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("at least one stage is required")
	}
	if len(labels) != len(anchors) {
		return nil, fmt.Errorf("%d labels but %d anchors", len(labels), len(anchors))
	}
	stages := make([]Stage, len(labels))
	for i := range labels {
		stages[i] = Stage{
			Label:  labels[i],
			Anchor: anchors[i],
			Pose:   Poses[i%len(Poses)],
		}
	}
	return stages, nil
}
