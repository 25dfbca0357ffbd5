package simulator

import "github.com/stovetop-games/brigade/internal/models"

// nextPlan is the unattended-season heuristic: spend the manager move on
// the worst debt, chase the weakest pressure, size the prep to the cash
// float, rotate the mid-service call, and keep the signature dish on the
// menu while it earns mastery.
func (s *Simulator) nextPlan() models.ServicePlan {
	me := s.State.Player

	var manager models.ManagerMove
	switch {
	case me.StandardsDebt > 0.30:
		manager = models.MoveDeepClean
	case me.MaintenanceDebt > 0.22:
		manager = models.MoveMaintenance
	case me.CultureDebt > 0.18:
		manager = models.MoveTraining
	case me.StandardsDebt > 0.15:
		manager = models.MoveSupplierCall
	default:
		manager = models.MovePacing
	}

	priority := weakestPressure(me)

	prep := models.PrepBalanced
	switch {
	case me.CashFloat > 1500:
		prep = models.PrepAggressive
	case me.CashFloat < 400:
		prep = models.PrepConservative
	}

	calls := models.CallActions()
	call := calls[s.State.ServiceIndex%len(calls)]
	// comping tables is a luxury; skip it when the float is thin
	if call == models.CallCompTable && me.CashFloat < 300 {
		call = models.CallEightySix
	}

	menu := []string{"roast_chicken", "pasta_ragu", "seasonal_fish", "house_salad"}
	if prep == models.PrepAggressive {
		menu = append(menu, "steak_frites", "choc_cake")
	}

	return models.ServicePlan{
		Priority:    priority,
		Prep:        prep,
		Manager:     manager,
		Call:        call,
		MenuIDs:     menu,
		SignatureID: s.signatureID,
	}
}

// weakestPressure maps the lowest operating pressure onto the priority
// that props it up.
func weakestPressure(me *models.Restaurant) models.Priority {
	lowest := me.Cash
	priority := models.PriorityCost
	if me.Consistency < lowest {
		lowest = me.Consistency
		priority = models.PriorityQuality
	}
	if me.Standards < lowest {
		lowest = me.Standards
		priority = models.PriorityHygiene
	}
	if me.Throughput < lowest {
		lowest = me.Throughput
		priority = models.PrioritySpeed
	}
	if me.Culture < lowest {
		lowest = me.Culture
		priority = models.PriorityCulture
	}
	if me.Brand < lowest {
		priority = models.PriorityQuality
	}
	return priority
}
