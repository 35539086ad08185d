package orders

import "shopease_front_end/internal/models"

// Jalons canoniques de la frise de suivi, dans l'ordre.
var Milestones = []string{models.OrderPlaced, models.OrderShipped, models.OrderDelivered}

// StatusIndex renvoie la position du statut sur la frise. PROCESSING est
// assimilé à PLACED : la commande est bien prise, pas encore expédiée.
// Les statuts inconnus et CANCELLED renvoient -1 (aucun jalon atteint).
func StatusIndex(status string) int {
	if status == models.OrderProcessing {
		status = models.OrderPlaced
	}
	for i, m := range Milestones {
		if m == status {
			return i
		}
	}
	return -1
}

// MilestoneState est l'état d'un jalon pour le rendu.
type MilestoneState struct {
	Label   string `json:"label"`
	Reached bool   `json:"reached"`
}

// Timeline est la projection pure du statut : pas de timer, pas d'état
// d'animation. Une commande annulée est un état terminal hors frise.
type Timeline struct {
	Cancelled  bool             `json:"cancelled"`
	Milestones []MilestoneState `json:"milestones"`
}

// Project calcule la frise pour un statut donné : le jalon i est atteint
// si et seulement si l'index du statut courant est >= i.
func Project(status string) Timeline {
	if status == models.OrderCancelled {
		states := make([]MilestoneState, len(Milestones))
		for i, m := range Milestones {
			states[i] = MilestoneState{Label: m}
		}
		return Timeline{Cancelled: true, Milestones: states}
	}

	idx := StatusIndex(status)
	states := make([]MilestoneState, len(Milestones))
	for i, m := range Milestones {
		states[i] = MilestoneState{Label: m, Reached: i <= idx}
	}
	return Timeline{Milestones: states}
}
