package model

// Outcome classifies an (order, demand) pair.
// Keep these values stable; they are intended for CSV output.
type Outcome string

const (
	OutcomeShortage Outcome = "SHORTAGE"
	OutcomeMatched  Outcome = "MATCHED"
	OutcomeSurplus  Outcome = "SURPLUS"
)

func OutcomeFor(orderQty, demandQty int) Outcome {
	switch {
	case orderQty < demandQty:
		return OutcomeShortage
	case orderQty > demandQty:
		return OutcomeSurplus
	default:
		return OutcomeMatched
	}
}
