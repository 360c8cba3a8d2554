package face

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SelfieResult carries what the face service extracted from a selfie.
// Pointer and slice fields are nil when the corresponding part was not
// requested or could not be extracted.
type SelfieResult struct {
	LivenessScore *float64
	FaceProfile   []byte
	FaceSelfie    []byte
	FaceAvatar    []byte
	BoundingBox   *BoundingBox
	NumberOfFaces int
	Metadata      map[string]any
}

// DocumentResult carries what the face service extracted from a document
// image.
type DocumentResult struct {
	FaceProfile []byte
	BoundingBox *BoundingBox
	Metadata    map[string]any
}

type MatchResult struct {
	Score float64
}

func parseLiveness(part []byte) (*float64, error) {
	if len(part) == 0 {
		return nil, nil
	}
	score, err := strconv.ParseFloat(string(part), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid liveness score: %w", err)
	}
	return &score, nil
}

func parseBoundingBox(part []byte) (*BoundingBox, error) {
	if len(part) == 0 {
		return nil, nil
	}
	var raw struct {
		X  float64 `json:"x"`
		Y  float64 `json:"y"`
		X2 float64 `json:"x2"`
		Y2 float64 `json:"y2"`
	}
	if err := json.Unmarshal(part, &raw); err != nil {
		return nil, fmt.Errorf("invalid bounding box: %w", err)
	}
	return &BoundingBox{
		X:      raw.X,
		Y:      raw.Y,
		Width:  raw.X2 - raw.X,
		Height: raw.Y2 - raw.Y,
	}, nil
}

func parseMetadata(part []byte) (map[string]any, error) {
	if len(part) == 0 {
		return nil, nil
	}
	var metadata map[string]any
	if err := json.Unmarshal(part, &metadata); err != nil {
		return nil, fmt.Errorf("invalid metadata: %w", err)
	}
	return metadata, nil
}
