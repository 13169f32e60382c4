package payement

// toMajorUnits convertit des centimes Stripe en euros. L'entrée étant un
// montant entier, la division donne directement deux décimales.
func toMajorUnits(amount int64) float64 {
	return float64(amount) / 100
}
