// Package status translates between the internal (DB) status vocabulary and
// the smaller client-facing one. All mappings are total: unrecognized input
// falls through to a documented default instead of failing.
package status

// Client-facing order statuses
const (
	FrontPending    = "pending"
	FrontProcessing = "processing"
	FrontShipped    = "shipped"
	FrontDelivered  = "delivered"
	FrontCancelled  = "cancelled"
)

// OrderDBToFront collapses the seven internal order statuses onto the five
// client ones. confirmed/assigned become processing, picked_up/in_transit
// become shipped; anything unknown defaults to processing.
func OrderDBToFront(name string) string {
	switch name {
	case "pending":
		return FrontPending
	case "confirmed", "assigned":
		return FrontProcessing
	case "picked_up", "in_transit":
		return FrontShipped
	case "delivered":
		return FrontDelivered
	case "cancelled":
		return FrontCancelled
	default:
		return FrontProcessing
	}
}

// OrderFrontToDB picks the representative internal status for a client one.
// processing maps to confirmed and shipped to in_transit, so a round trip
// through OrderDBToFront is stable for every client status.
func OrderFrontToDB(status string) string {
	switch status {
	case FrontPending:
		return "pending"
	case FrontProcessing:
		return "confirmed"
	case FrontShipped:
		return "in_transit"
	case FrontDelivered:
		return "delivered"
	case FrontCancelled:
		return "cancelled"
	default:
		return "confirmed"
	}
}

// VehicleTypeDBToFront maps stored vehicle types to client ones. The canonical
// scheme is the six-type superset, so the mapping is the identity with a car
// default for unknown values.
func VehicleTypeDBToFront(t string) string {
	switch t {
	case "car", "motorcycle", "van", "truck", "bicycle", "scooter":
		return t
	default:
		return "car"
	}
}

// VehicleTypeFrontToDB mirrors VehicleTypeDBToFront for inbound payloads.
func VehicleTypeFrontToDB(t string) string {
	switch t {
	case "car", "motorcycle", "van", "truck", "bicycle", "scooter":
		return t
	default:
		return "car"
	}
}

// VehicleStatusDBToFront maps stored vehicle statuses to the client
// vocabulary: active→available, busy→in_delivery, maintenance→maintenance,
// inactive→offline; unknown defaults to available.
func VehicleStatusDBToFront(s string) string {
	switch s {
	case "active":
		return "available"
	case "busy":
		return "in_delivery"
	case "maintenance":
		return "maintenance"
	case "inactive":
		return "offline"
	default:
		return "available"
	}
}

// VehicleStatusFrontToDB maps client vehicle statuses back to stored ones.
// The client "busy" keeps its own stored value so it survives a round trip.
func VehicleStatusFrontToDB(s string) string {
	switch s {
	case "available":
		return "active"
	case "in_delivery":
		return "busy"
	case "maintenance":
		return "maintenance"
	case "offline":
		return "inactive"
	case "busy":
		return "busy"
	default:
		return "active"
	}
}
