package config

import "fmt"

// Vocabulary holds the normalized work-type and sub-category codes that drive
// classification. The empty sub-category is reserved for outbound and transfer
// lines and may not be configured for any named class.
type Vocabulary struct {
	Insert     string
	Withdraw   string
	Purchase   string
	Sale       string
	Conversion []string
}

// DefaultVocabulary returns the codes used by the warehouse export.
func DefaultVocabulary() Vocabulary {
	return Defaults().Vocabulary()
}

// Validate rejects vocabularies under which two categories could match the same row.
func (v Vocabulary) Validate() error {
	if v.Insert == "" || v.Withdraw == "" {
		return fmt.Errorf("classification work types must not be empty")
	}
	if v.Insert == v.Withdraw {
		return fmt.Errorf("insert and withdraw work types must differ, both are %q", v.Insert)
	}
	if v.Purchase == "" || v.Sale == "" || len(v.Conversion) == 0 {
		return fmt.Errorf("purchase, sale and conversion classes must be set")
	}

	// Inbound, conversion and transfer all share the insert work type.
	seen := map[string]string{"": "transfer", v.Purchase: "purchase"}
	for _, c := range v.Conversion {
		if owner, dup := seen[c]; dup {
			return fmt.Errorf("conversion class %q overlaps the %s class", c, owner)
		}
		seen[c] = "conversion"
	}
	return nil
}
