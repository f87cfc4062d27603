package kit

import "errors"

// Questionnaire enumerations. The JSON values match the storefront option
// labels verbatim.
type ObjectType string

const (
	ObjectPrivateHouse ObjectType = "Private House"
	ObjectBusiness     ObjectType = "Business"
	ObjectApartment    ObjectType = "Apartment"
)

type UsageTier string

const (
	UsageUnder300 UsageTier = "< 300 kWh"
	Usage300To600 UsageTier = "300-600 kWh"
	UsageOver600  UsageTier = "600+ kWh"
)

type Purpose string

const (
	PurposeBackup   Purpose = "Backup"
	PurposeAutonomy Purpose = "Autonomy"
	PurposeSavings  Purpose = "Savings"
)

type BudgetTier string

const (
	BudgetEconomy BudgetTier = "Economy"
	BudgetOptimal BudgetTier = "Optimal"
	BudgetPremium BudgetTier = "Premium"
)

// Configuration is the submitted questionnaire. Immutable once handed to the
// selector.
type Configuration struct {
	ObjectType ObjectType `json:"object_type"`
	Usage      UsageTier  `json:"monthly_usage"`
	Purpose    Purpose    `json:"purpose"`
	Budget     BudgetTier `json:"budget"`
}

var ErrInvalidConfiguration = errors.New("invalid configuration")

func (c Configuration) Validate() error {
	switch c.ObjectType {
	case ObjectPrivateHouse, ObjectBusiness, ObjectApartment:
	default:
		return ErrInvalidConfiguration
	}
	switch c.Usage {
	case UsageUnder300, Usage300To600, UsageOver600:
	default:
		return ErrInvalidConfiguration
	}
	switch c.Purpose {
	case PurposeBackup, PurposeAutonomy, PurposeSavings:
	default:
		return ErrInvalidConfiguration
	}
	switch c.Budget {
	case BudgetEconomy, BudgetOptimal, BudgetPremium:
	default:
		return ErrInvalidConfiguration
	}
	return nil
}

// KitComponent is one priced line of a recommended system.
type KitComponent struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	PriceEUR     float64        `json:"price"`
	Quantity     int            `json:"quantity"`
	Alternatives []KitComponent `json:"alternatives"`
}

// RecommendationResult is a kit. Components must be non-empty for the result
// to be valid.
type RecommendationResult struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Components  []KitComponent `json:"components"`
}

// TotalEUR aggregates price × quantity over all components.
func (r RecommendationResult) TotalEUR() float64 {
	var total float64
	for _, c := range r.Components {
		total += c.PriceEUR * float64(c.Quantity)
	}
	return total
}
