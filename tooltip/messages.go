package tooltip

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// newBundle registers the hover vocabulary in French (default) and English.
func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.French)

	must := func(tag language.Tag, messages ...*i18n.Message) {
		if err := bundle.AddMessages(tag, messages...); err != nil {
			panic(err)
		}
	}

	must(language.French,
		&i18n.Message{ID: "vaccination_rate", Other: "Taux de vaccination : {{.Value}}%"},
		&i18n.Message{ID: "incidence_rate", Other: "Taux d'incidence : {{.Value}}"},
		&i18n.Message{ID: "icu_occupancy", Other: "Occupation réanimation : {{.Value}}%"},
		&i18n.Message{ID: "estimated_data", Other: "Données estimées"},
		&i18n.Message{ID: "hospital_saturation", Other: "Saturation : {{.Value}}%"},
		&i18n.Message{ID: "pharmacy_stock", Other: "Stock : {{.Value}} doses"},
		&i18n.Message{ID: "delivery", Other: "{{.From}} → dépt. {{.Dept}} : {{.Doses}} doses"},
		&i18n.Message{ID: "warehouse_stock", Other: "Stock actuel : {{.Current}} / prévu : {{.Planned}}"},
		&i18n.Message{ID: "epidemic_weight", Other: "Niveau de propagation : {{.Value}}"},
	)

	must(language.English,
		&i18n.Message{ID: "vaccination_rate", Other: "Vaccination rate: {{.Value}}%"},
		&i18n.Message{ID: "incidence_rate", Other: "Incidence rate: {{.Value}}"},
		&i18n.Message{ID: "icu_occupancy", Other: "ICU occupancy: {{.Value}}%"},
		&i18n.Message{ID: "estimated_data", Other: "Estimated data"},
		&i18n.Message{ID: "hospital_saturation", Other: "Saturation: {{.Value}}%"},
		&i18n.Message{ID: "pharmacy_stock", Other: "Stock: {{.Value}} doses"},
		&i18n.Message{ID: "delivery", Other: "{{.From}} → dept. {{.Dept}}: {{.Doses}} doses"},
		&i18n.Message{ID: "warehouse_stock", Other: "Current stock: {{.Current}} / planned: {{.Planned}}"},
		&i18n.Message{ID: "epidemic_weight", Other: "Spread level: {{.Value}}"},
	)

	return bundle
}
