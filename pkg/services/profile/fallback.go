package profile

import (
	"strings"

	"github.com/de-tools/repair-atlas/pkg/models/domain"
	"github.com/de-tools/repair-atlas/pkg/services/forecast"
)

// fallbackTemplates are the placeholder systems used when the detector
// yields too few usable detections for a photo.
var fallbackTemplates = [3]string{
	"Building envelope",
	"Utilities & fixtures",
	"Interior surfaces",
}

const (
	minUsableDetections = 2
	paddedItemCount     = 3
	templateSeedStep    = 37
)

// PadDetections guarantees every processed photo yields at least a
// minimal, reproducible set of damage items. When fewer than two usable
// detections exist, placeholder items are appended from the template
// list until three items are present; real detections always take
// priority and are never dropped. Template severities derive from the
// file name hash, so re-processing the same photo pads identically.
func PadDetections(fileName string, items []domain.DamageItem) []domain.DamageItem {
	usable := 0
	for _, item := range items {
		if strings.TrimSpace(item.Label) != "" {
			usable++
		}
	}
	if usable >= minUsableDetections {
		return items
	}

	capacity := len(items)
	if capacity < paddedItemCount {
		capacity = paddedItemCount
	}
	padded := make([]domain.DamageItem, len(items), capacity)
	copy(padded, items)

	seed := forecast.Seed(fileName, 0)
	for i := 0; len(padded) < paddedItemCount && i < len(fallbackTemplates); i++ {
		padded = append(padded, domain.DamageItem{
			Label:    fallbackTemplates[i],
			Severity: wrapSeverity(seed + i*templateSeedStep),
		})
	}

	return padded
}

// wrapSeverity folds an arbitrary non-negative value into the [1,5]
// severity range.
func wrapSeverity(v int) int {
	return v%domain.MaxSeverity + 1
}
