package analytics

import "app/models"

// SummarizeMovements aggregates a window of realtime movements. An empty
// window reports all zeros. Quantities are taken as recorded: rows generated
// out of order may drive the net change negative and that is reported as-is.
func SummarizeMovements(events []models.MovementEvent) models.MovementSummary {
	var s models.MovementSummary
	for _, e := range events {
		s.TotalMovements++
		switch e.Type {
		case models.MovementIncoming:
			s.IncomingCount++
			s.IncomingItems += e.Quantity
		case models.MovementOutgoing:
			s.OutgoingCount++
			s.OutgoingItems += e.Quantity
		}
	}
	s.NetChange = s.IncomingItems - s.OutgoingItems
	return s
}
