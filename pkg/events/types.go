// Package events provides the typed plan-processing event contract plus
// real-time delivery via WebSocket and PostgreSQL NOTIFY/LISTEN for
// cross-pod distribution.
//
// Every event is committed through the Publisher, which persists it to the
// events table and broadcasts it inside the same transaction. The wire
// format is an Envelope: routing fields live on the envelope, the payload
// in "data" is exactly the fields of the corresponding struct in
// payloads.go — no more, no less. Validation at commit time enforces this
// so the emitter cannot drift from what viewers parse.
//
// Per-sheet and singleton plan events carry a dedupe key; redelivered queue
// jobs that re-emit them hit the partial unique index on
// (plan_id, name, dedupe_key) and the duplicate is dropped before NOTIFY,
// so the log contains each such event at most once.
package events

// Event names. Names and payload shapes are a public contract consumed by
// viewers; do not rename.
const (
	EventPlanProcessingStarted      = "planProcessingStarted"
	EventPlanProcessingProgress     = "planProcessingProgress"
	EventSheetImageGenerated        = "sheetImageGenerated"
	EventSheetMetadataExtracted     = "sheetMetadataExtracted"
	EventPlanMetadataCompleted      = "planMetadataCompleted"
	EventSheetCalloutsDetected      = "sheetCalloutsDetected"
	EventSheetGridBubblesDetected   = "sheetGridBubblesDetected"
	EventSheetLayoutRegionsDetected = "sheetLayoutRegionsDetected"
	EventSheetTilesGenerated        = "sheetTilesGenerated"
	EventPlanProcessingCompleted    = "planProcessingCompleted"
	EventPlanProcessingFailed       = "planProcessingFailed"
)

// PlanChannel returns the channel name for a specific plan's events.
// Format: "plan:{plan_id}"
func PlanChannel(planID string) string {
	return "plan:" + planID
}

// OrgChannel returns the per-tenant channel. Plan lifecycle events are
// mirrored here (transient) so project dashboards can track all plans of
// an organization on one subscription.
// Format: "org:{organization_id}"
func OrgChannel(organizationID string) string {
	return "org:" + organizationID
}

// Envelope is the wire format for NOTIFY payloads and catchup responses.
// ID is the events table row id, used by clients for catchup position.
type Envelope struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Channel   string `json:"channel"`
	Data      any    `json:"data,omitempty"`
	Truncated bool   `json:"truncated,omitempty"`
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`     // Channel name (e.g., "plan:abc-123")
	LastEventID *int64 `json:"lastEventId,omitempty"` // For catchup
}
