package enricher

import (
	"regexp"

	"fjacquet/work-metrics/internal/config"
	"fjacquet/work-metrics/internal/models"

	"github.com/shopspring/decimal"
)

// addressPattern matches shelf addresses such as F-9-1-1. It runs on the
// trimmed location text, before any accent stripping or case folding.
var addressPattern = regexp.MustCompile(`^[A-ZÁČĎÉĚÍŇÓŘŠŤÚŮÝŽ]-[0-9]+-[0-9]+-[0-9]+$`)

var palletMultiplier = decimal.NewFromInt(models.UnitsPerPallet)

// Classifier assigns categories from normalized work type and work class.
type Classifier struct {
	vocab config.Vocabulary
}

// NewClassifier creates a Classifier for an already normalized vocabulary.
func NewClassifier(vocab config.Vocabulary) Classifier {
	return Classifier{vocab: vocab}
}

func (c Classifier) isInbound(workType, workClass string) bool {
	return workType == c.vocab.Insert && workClass == c.vocab.Purchase
}

func (c Classifier) isOutbound(workType, workClass string) bool {
	return workType == c.vocab.Withdraw && (workClass == c.vocab.Sale || workClass == "")
}

func (c Classifier) isConversion(workType, workClass string) bool {
	if workType != c.vocab.Insert {
		return false
	}
	for _, cls := range c.vocab.Conversion {
		if workClass == cls {
			return true
		}
	}
	return false
}

func (c Classifier) isTransfer(workType, workClass string) bool {
	return workType == c.vocab.Insert && workClass == ""
}

// Classify returns the category of a row, or CategoryNone.
func (c Classifier) Classify(workType, workClass string) models.Category {
	switch {
	case c.isInbound(workType, workClass):
		return models.CategoryInbound
	case c.isOutbound(workType, workClass):
		return models.CategoryOutbound
	case c.isConversion(workType, workClass):
		return models.CategoryConversion
	case c.isTransfer(workType, workClass):
		return models.CategoryTransfer
	default:
		return models.CategoryNone
	}
}

// ParseQuantity reads a numeric quantity; anything unparsable counts as zero.
func ParseQuantity(raw string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// DeriveQuantities returns the unit-conditioned quantity variants.
// qtyUnitOne is 1 for piece units; qtyPalletExpanded multiplies pallets by 24.
// Any other unit leaves both equal to qty.
func DeriveQuantities(qty decimal.Decimal, unitNorm string) (qtyUnitOne, qtyPalletExpanded decimal.Decimal) {
	qtyUnitOne = qty
	if unitNorm == models.UnitPiece {
		qtyUnitOne = decimal.NewFromInt(1)
	}
	qtyPalletExpanded = qty
	if unitNorm == models.UnitPallet {
		qtyPalletExpanded = qty.Mul(palletMultiplier)
	}
	return qtyUnitOne, qtyPalletExpanded
}

// BucketLocation collapses shelf addresses into models.AddressBucket.
func BucketLocation(location string) string {
	if addressPattern.MatchString(location) {
		return models.AddressBucket
	}
	return location
}
