package models

import "strings"

// Job categories understood by the scoring service. Each selects a different
// weighting of keyword, semantic, project and problem-solving scores; any
// other value is scored with the general weights.
const (
	JobTypeSoftware    = "software"
	JobTypeDev         = "dev"
	JobTypeDataScience = "data science"
	JobTypeML          = "ml"
	JobTypeWeb         = "web"
	JobTypeFrontend    = "frontend"
	JobTypeGeneral     = "general"
)

var knownJobTypes = map[string]struct{}{
	JobTypeSoftware:    {},
	JobTypeDev:         {},
	JobTypeDataScience: {},
	JobTypeML:          {},
	JobTypeWeb:         {},
	JobTypeFrontend:    {},
	JobTypeGeneral:     {},
}

// IsKnownJobType reports whether jobType selects a dedicated weighting.
// Matching is case-insensitive, as on the server.
func IsKnownJobType(jobType string) bool {
	_, ok := knownJobTypes[strings.ToLower(strings.TrimSpace(jobType))]
	return ok
}
