package event

// SlotCadenceMinutes is the fixed length of one bookable networking
// slot. The first slot starts one cadence after the event ends, giving
// attendees a buffer to move to the networking area.
const SlotCadenceMinutes = 15

// NetworkingSlots derives the ordered list of bookable "HH:MM" labels
// for an event ending at endTime with the given networking block.
// Deterministic and side-effect free: the same inputs always produce
// the same sequence. A zero-length block yields no slots.
//
// Labels run from endTime + cadence through endTime + cadence + duration,
// both endpoints included: an 18:00 close with a one hour block yields
// 18:15 through 19:15.
func NetworkingSlots(endTime TimeOfDay, hours NetworkingHours) []string {
	if hours.IsZero() {
		return []string{}
	}

	start := endTime.Minutes() + SlotCadenceMinutes
	end := start + hours.DurationMinutes()

	slots := []string{}
	for current := start; current <= end; current += SlotCadenceMinutes {
		slots = append(slots, ReconstructTimeOfDay(current).String())
	}
	return slots
}
