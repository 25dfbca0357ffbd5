package engine

import "github.com/stovetop-games/brigade/internal/models"

type rubricInputs struct {
	TicketTime  float64
	SendBackPct float64
	FQI         float64
	Priority    models.Priority
	Rent        float64
	Restaurant  *models.Restaurant
}

// deriveCustomerRubric converts this service's operational metrics into
// the six 1–5 customer-experience scores.
func deriveCustomerRubric(in rubricInputs) models.CustomerRubric {
	me := in.Restaurant
	return models.CustomerRubric{
		Flow:     scoreFlow(in.TicketTime),
		Recovery: scoreRecovery(in.SendBackPct, me.Culture, in.Priority),
		Warmth:   scoreWarmth(me.Culture, in.Priority),
		Trust:    scoreTrust(me.Standards, me.StandardsDebt, in.SendBackPct),
		Value:    scoreValue(me.Cash, in.Rent, me.Brand),
		Identity: scoreIdentity(me.Brand, in.FQI, in.Priority),
	}
}

// scoreFlow buckets ticket time: ≤20 → 5, ≤24 → 4, ≤28 → 3, ≤34 → 2,
// else 1 (inclusive upper bounds).
func scoreFlow(ticketTime float64) int {
	switch {
	case ticketTime <= 20:
		return 5
	case ticketTime <= 24:
		return 4
	case ticketTime <= 28:
		return 3
	case ticketTime <= 34:
		return 2
	default:
		return 1
	}
}

func scoreRecovery(sendBackPct, culture float64, priority models.Priority) int {
	base := 4 - int(sendBackPct/4)
	if priority == models.PriorityCulture {
		base++
	}
	if culture > 0.6 {
		base++
	} else if culture < 0.45 {
		base--
	}
	return clampInt(base, 1, 5)
}

func scoreWarmth(culture float64, priority models.Priority) int {
	s := 3 + int(jsRound((culture-0.5)*4))
	if priority == models.PriorityCulture {
		s++
	}
	if priority == models.PrioritySpeed {
		s--
	}
	return clampInt(s, 1, 5)
}

func scoreTrust(standards, debt, sendBackPct float64) int {
	s := 3 + int(jsRound((standards-0.5)*4)) - int(jsRound(debt*2))
	if sendBackPct > 6 {
		s--
	}
	return clampInt(s, 1, 5)
}

// scoreValue: a high-rent room has to feel premium, so rent above 1.15
// costs a point unless brand carries it.
func scoreValue(cash, rent, brand float64) int {
	s := 3 + int(jsRound((cash-0.5)*2)) + int(jsRound((brand-0.5)*2))
	if rent > 1.15 {
		s--
	}
	return clampInt(s, 1, 5)
}

func scoreIdentity(brand, fqi float64, priority models.Priority) int {
	s := 3 + int(jsRound((brand-0.5)*4))
	if fqi >= 6.8 {
		s++
	}
	if priority == models.PriorityCost {
		s--
	}
	return clampInt(s, 1, 5)
}
