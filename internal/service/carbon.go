package service

// Per-region grid emission factors in kg CO2 per kWh.
var emissionFactors = map[string]float64{
	"US": 0.4,
	"EU": 0.3,
	"IN": 0.8,
	"CN": 0.6,
}

// defaultEmissionFactor applies to region codes outside the table.
const defaultEmissionFactor = 0.4

// EstimateCarbon converts consumption to estimated emissions for a region.
// Unknown region codes fall back to the US factor.
func EstimateCarbon(consumptionKWh float64, region string) float64 {
	factor, ok := emissionFactors[region]
	if !ok {
		factor = defaultEmissionFactor
	}
	return consumptionKWh * factor
}
