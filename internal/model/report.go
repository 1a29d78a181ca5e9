package model

import "time"

// Advice report section tags, matching the tags the model is asked to emit
const (
	ReportSectionLeningdeel   = "adviesmotivatie_leningdeel"
	ReportSectionWerkloosheid = "adviesmotivatie_werkloosheid"
	ReportSectionAOW          = "adviesmotivatie_aow"
)

// ReportSectionTags lists the advice sections in report order
var ReportSectionTags = []string{
	ReportSectionLeningdeel,
	ReportSectionWerkloosheid,
	ReportSectionAOW,
}

// AdviceReport is the assembled advice document for a finished session.
// Complete is false when the session was exhausted rather than resolved, so
// an incomplete intake is never reported as a full advice.
type AdviceReport struct {
	SessionID   string            `json:"sessionId"`
	Status      SessionStatus     `json:"status"`
	Complete    bool              `json:"complete"`
	Sections    map[string]string `json:"sections"`
	GeneratedAt time.Time         `json:"generatedAt"`
}
