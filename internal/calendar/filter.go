package calendar

// SidebarMode names the actor population that drives event visibility.
type SidebarMode string

const (
	SidebarClients     SidebarMode = "clients"
	SidebarCareWorkers SidebarMode = "careworkers"
	SidebarOfficeStaff SidebarMode = "officestaff"
)

// matchFunc decides whether an event is visible given the selected ids
// of the active sidebar mode. Kept as a named hook so the filtering
// axis per mode is pinned in one place (and by tests).
type matchFunc func(Event, map[string]struct{}) bool

func matchByStaff(e Event, ids map[string]struct{}) bool {
	_, ok := ids[e.ResourceID]
	return ok
}

func matchByClient(e Event, ids map[string]struct{}) bool {
	_, ok := ids[e.ClientID]
	return ok
}

// FilterEvents returns the events visible under the current sidebar
// mode: those whose staff (careworkers/officestaff modes) or client
// (clients mode) is selected. The selected set of the active mode is
// the single filtering axis. Input order is preserved and the input
// slice is never mutated. An unknown mode filters by clients, the
// store's initial mode.
func FilterEvents(events []Event, careWorkers, officeStaff, clients []Actor, mode SidebarMode) []Event {
	var (
		ids   map[string]struct{}
		match matchFunc
	)

	switch mode {
	case SidebarCareWorkers:
		ids, match = selectedIDs(careWorkers), matchByStaff
	case SidebarOfficeStaff:
		ids, match = selectedIDs(officeStaff), matchByStaff
	default:
		ids, match = selectedIDs(clients), matchByClient
	}

	res := make([]Event, 0, len(events))
	for _, e := range events {
		if match(e, ids) {
			res = append(res, e)
		}
	}

	return res
}

func selectedIDs(actors []Actor) map[string]struct{} {
	ids := make(map[string]struct{}, len(actors))
	for _, a := range actors {
		if a.Selected {
			ids[a.ID] = struct{}{}
		}
	}

	return ids
}
